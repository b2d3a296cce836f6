package jisho

import (
	"fmt"
	"regexp"
	"strings"
)

var reMultipleSpacesSeq = regexp.MustCompile(`\s{2,}`)

// String returns the segmented text.
func (s *Sentence) String() string {
	return s.Text
}

// Words returns the matched words in token order, unknown tokens skipped.
func (s *Sentence) Words() []*Word {
	var words []*Word
	for _, tok := range s.Tokens {
		if tok.Found {
			words = append(words, tok.Word)
		}
	}
	return words
}

// Tokenized returns a string of all tokens separated by spaces or commas.
func (s *Sentence) Tokenized() string {
	parts := s.TokenizedParts()
	Logger.Debug().Msgf("Tokenized parts: %v", parts)
	return reMultipleSpacesSeq.ReplaceAllString(strings.Join(parts, " "), ", ")
}

// TokenizedParts returns a slice of all token texts.
func (s *Sentence) TokenizedParts() (parts []string) {
	for _, tok := range s.Tokens {
		parts = append(parts, tok.Text)
	}
	return
}

// Kana returns the sentence with every found token in kana.
func (s *Sentence) Kana() string {
	return reMultipleSpacesSeq.ReplaceAllString(strings.Join(s.KanaParts(), ""), ", ")
}

// KanaParts returns a slice of all tokens in kana form where available.
func (s *Sentence) KanaParts() (parts []string) {
	for _, tok := range s.Tokens {
		parts = append(parts, tok.Kana())
	}
	return
}

// Roman returns a string of all tokens in romanized form.
func (s *Sentence) Roman() string {
	return reMultipleSpacesSeq.ReplaceAllString(strings.Join(s.RomanParts(), " "), ", ")
}

func (s *Sentence) RomanParts() (parts []string) {
	for _, tok := range s.Tokens {
		parts = append(parts, ToRomaji(tok.Kana()))
	}
	return
}

// Gloss returns the tokens followed by the glosses of their words.
func (s *Sentence) Gloss() string {
	return strings.Join(s.GlossParts(), " ")
}

func (s *Sentence) GlossParts() (parts []string) {
	for _, tok := range s.Tokens {
		if !tok.Found {
			parts = append(parts, tok.Text)
			continue
		}
		if glosses := tok.Word.Meanings(); len(glosses) > 0 {
			parts = append(parts, fmt.Sprintf("%s(%s)", tok.Text, strings.Join(glosses, "; ")))
		} else {
			parts = append(parts, tok.Text)
		}
	}
	return
}

// Kana is the reading of the token. A token matching a kana form reads as
// itself, one matching a kanji form reads as the first kana form of its word.
func (t Token) Kana() string {
	if !t.Found || HasKana(t.Text) && !ContainsKanjis(t.Text) {
		return t.Text
	}
	for _, k := range t.Word.Kana {
		if k == t.Text {
			return k
		}
	}
	return t.Word.Kana[0]
}
