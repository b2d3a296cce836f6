package jisho

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
)

type Suggestion struct {
	Word  string
	Score float32
}

// Suggest returns up to limit gloss words that are close to term, most
// similar first. It is meant for queries that returned ErrNoMatches.
func (d *Dictionary) Suggest(term string, limit int) []Suggestion {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || limit < 1 {
		return nil
	}

	var out []Suggestion
	for _, v := range d.vocabulary() {
		if v == term {
			continue
		}
		score, err := edlib.StringsSimilarity(term, v, edlib.JaroWinkler)
		if err != nil || score < d.suggestThreshold {
			continue
		}
		out = append(out, Suggestion{Word: v, Score: score})
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// vocabulary lists the distinct lowercase words found in glosses. It is built
// on first use.
func (d *Dictionary) vocabulary() []string {
	d.vocabOnce.Do(func() {
		seen := make(map[string]struct{})
		for _, w := range d.words {
			for _, g := range w.Meanings() {
				for _, f := range strings.FieldsFunc(strings.ToLower(g), notWordRune) {
					if _, ok := seen[f]; !ok {
						seen[f] = struct{}{}
						d.vocab = append(d.vocab, f)
					}
				}
			}
		}
		slices.Sort(d.vocab)
		Logger.Debug().Int("size", len(d.vocab)).Msg("suggestion vocabulary built")
	})
	return d.vocab
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
}
