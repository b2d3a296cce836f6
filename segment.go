package jisho

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Token is a run of the input text, with the word it was matched to if any.
// Start and End are rune offsets into the segmented text.
type Token struct {
	Text  string
	Word  *Word
	Found bool // Word is set
	Exact bool // Text equals one of the forms of Word
	Start int
	End   int
}

// Sentence is the result of a linear segmentation. The texts of its tokens
// concatenate to exactly the segmented input.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Segment splits text into dictionary words, left to right.
//
// At each position the candidate set is narrowed to the words having a form
// that starts with a growing prefix of the rest of the text. When a single
// candidate is left and one of its forms lies at the position, that form is
// emitted. Otherwise the longest prefix seen that exactly matched a form is
// used, and failing that a single rune is emitted as an unknown token.
//
// Words tagged "exp" are ignored unless the dictionary was built
// WithExpressions(true).
func (d *Dictionary) Segment(text string) (*Sentence, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("segment: %w", ErrInvalidInput)
	}

	in := []rune(text)
	s := &Sentence{Text: text}
	for pos := 0; pos < len(in); {
		tok := d.nextToken(in, pos)
		s.Tokens = append(s.Tokens, tok)
		pos = tok.End
	}

	Logger.Debug().Int("runes", len(in)).Int("tokens", len(s.Tokens)).Msg("segmented")
	return s, nil
}

func (d *Dictionary) nextToken(in []rune, pos int) Token {
	rest := in[pos:]
	cands := d.byFirstRune[rest[0]]
	var last *Token

	for l := 1; l <= len(rest); l++ {
		sub := string(rest[:l])
		cands = withPrefix(cands, sub)
		for _, w := range cands {
			if w.HasForm(sub) {
				last = &Token{Text: sub, Word: w, Found: true, Exact: true, Start: pos, End: pos + l}
				break
			}
		}

		switch len(cands) {
		case 0:
			return fallback(last, in, pos)
		case 1:
			if tok, ok := formAt(cands[0], in, pos); ok {
				return tok
			}
			return fallback(last, in, pos)
		}
	}
	// out of input with several candidates left
	return fallback(last, in, pos)
}

func withPrefix(words []*Word, prefix string) []*Word {
	var out []*Word
	for _, w := range words {
		for _, f := range w.Forms() {
			if strings.HasPrefix(f, prefix) {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// formAt looks for a form of w lying in full at pos.
func formAt(w *Word, in []rune, pos int) (Token, bool) {
	for _, f := range w.Forms() {
		n := utf8.RuneCountInString(f)
		if n == 0 || pos+n > len(in) {
			continue
		}
		if string(in[pos:pos+n]) == f {
			return Token{Text: f, Word: w, Found: true, Exact: true, Start: pos, End: pos + n}, true
		}
	}
	return Token{}, false
}

func fallback(last *Token, in []rune, pos int) Token {
	if last != nil {
		return *last
	}
	return Token{Text: string(in[pos]), Start: pos, End: pos + 1}
}

// CandidatesByOffset lists, for every rune offset of text, the distinct words
// having a form that starts there, in order of discovery. At each offset the
// match length grows until the configured number of consecutive lengths
// found nothing. No path through the lattice is chosen.
func (d *Dictionary) CandidatesByOffset(text string) ([][]*Word, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("lattice: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("lattice: %w", ErrBlankInput)
	}

	in := []rune(text)
	lattice := make([][]*Word, len(in))

	var g errgroup.Group
	g.SetLimit(max(d.workers, 1))
	for _, r := range d.chunks(len(in)) {
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				lattice[i] = d.candidatesAt(in, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lattice, nil
}

func (d *Dictionary) candidatesAt(in []rune, i int) []*Word {
	var words []*Word
	seen := make(map[*Word]struct{})
	misses := 0
	for l := 1; i+l <= len(in); l++ {
		found := d.byForm[string(in[i:i+l])]
		if len(found) == 0 {
			misses++
			if misses >= d.latticeMissLimit {
				break
			}
			continue
		}
		misses = 0
		for _, w := range found {
			if _, dup := seen[w]; !dup {
				seen[w] = struct{}{}
				words = append(words, w)
			}
		}
	}
	return words
}
