package jisho

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

// Spaced returns the token texts separated according to the translitkit
// spacing rules, so that punctuation sticks to the preceding word. Runs of
// unknown tokens stay glued as they were written and whitespace of the input
// collapses to a single space.
func (s *Sentence) Spaced() string {
	return s.spaced(func(tok Token) string { return tok.Text })
}

// RomanSpaced is Spaced for the romanized tokens.
func (s *Sentence) RomanSpaced() string {
	return s.spaced(func(tok Token) string { return ToRomaji(tok.Kana()) })
}

func (s *Sentence) spaced(render func(Token) string) string {
	var b strings.Builder
	var prev string
	prevFound, pendingSpace := false, false

	for _, tok := range s.Tokens {
		text := render(tok)
		if strings.TrimSpace(text) == "" {
			pendingSpace = true
			continue
		}
		if b.Len() > 0 {
			glued := !tok.Found && !prevFound
			if pendingSpace || !glued && common.DefaultSpacingRule(prev, text) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(text)
		prev, prevFound, pendingSpace = text, tok.Found, false
	}
	return b.String()
}
