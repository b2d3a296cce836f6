// Package jisho is an offline Japanese dictionary: romaji to kana input,
// word search by reading or meaning, and lexicon backed segmentation of
// Japanese text.
package jisho

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	DefaultLatticeMissLimit = 4
	DefaultSuggestThreshold = 0.85
)

// Dictionary is an immutable lexicon snapshot. It is safe for concurrent use
// by any number of searches and segmentations.
type Dictionary struct {
	words []*Word
	kanji []*Kanji

	kanjiByLiteral map[rune]*Kanji
	byForm         map[string][]*Word // every word, by exact kanji or kana form
	byFirstRune    map[rune][]*Word   // segmentable words, by first rune of any form
	firstGlosses   map[string]struct{}

	workers            int
	includeExpressions bool
	latticeMissLimit   int
	suggestThreshold   float32

	vocabOnce sync.Once
	vocab     []string
}

type Option func(*Dictionary)

// WithWorkers bounds the number of goroutines a single search or lattice
// segmentation fans out to. Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(d *Dictionary) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		d.workers = n
	}
}

// WithExpressions lets the linear segmenter match entries tagged "exp".
// They are skipped by default so that whole phrases do not swallow the
// words they are made of.
func WithExpressions(include bool) Option {
	return func(d *Dictionary) {
		d.includeExpressions = include
	}
}

// WithLatticeMissLimit sets how many consecutive lengths without an exact
// match end the extension at one offset of CandidatesByOffset.
func WithLatticeMissLimit(n int) Option {
	return func(d *Dictionary) {
		if n > 0 {
			d.latticeMissLimit = n
		}
	}
}

// WithSuggestThreshold sets the minimum Jaro-Winkler similarity of a
// suggestion, between 0 and 1.
func WithSuggestThreshold(t float32) Option {
	return func(d *Dictionary) {
		if t > 0 && t <= 1 {
			d.suggestThreshold = t
		}
	}
}

// NewDictionary builds a snapshot over already materialized records.
// Lexicon order is the order of words and is kept by every result that is
// not explicitly ranked. The records must not be modified afterwards.
func NewDictionary(words []*Word, kanji []*Kanji, opts ...Option) (*Dictionary, error) {
	d := &Dictionary{
		words:            words,
		kanji:            kanji,
		kanjiByLiteral:   make(map[rune]*Kanji, len(kanji)),
		byForm:           make(map[string][]*Word, len(words)*2),
		byFirstRune:      make(map[rune][]*Word),
		firstGlosses:     make(map[string]struct{}),
		workers:          runtime.GOMAXPROCS(0),
		latticeMissLimit: DefaultLatticeMissLimit,
		suggestThreshold: DefaultSuggestThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}

	for i, k := range kanji {
		if k == nil {
			return nil, fmt.Errorf("kanji #%d: %w", i, ErrInvalidEntry)
		}
		if _, dup := d.kanjiByLiteral[k.Literal]; !dup {
			d.kanjiByLiteral[k.Literal] = k
		}
	}

	for i, w := range words {
		if err := validateWord(w); err != nil {
			return nil, fmt.Errorf("word #%d: %w", i, err)
		}
		d.indexWord(w)
	}

	Logger.Debug().
		Int("words", len(words)).
		Int("kanji", len(kanji)).
		Int("forms", len(d.byForm)).
		Msg("dictionary ready")
	return d, nil
}

func validateWord(w *Word) error {
	if w == nil {
		return fmt.Errorf("nil word: %w", ErrInvalidEntry)
	}
	if len(w.Kana) == 0 {
		return fmt.Errorf("%v has no kana form: %w", w.Kanji, ErrInvalidEntry)
	}
	for _, f := range w.Forms() {
		if !utf8.ValidString(f) {
			return fmt.Errorf("form %q is not valid UTF-8: %w", f, ErrInvalidEntry)
		}
	}
	return nil
}

func (d *Dictionary) indexWord(w *Word) {
	var firsts []rune
	for _, f := range w.Forms() {
		if f == "" {
			continue
		}
		if !slices.Contains(d.byForm[f], w) {
			d.byForm[f] = append(d.byForm[f], w)
		}
		r, _ := utf8.DecodeRuneInString(f)
		if !slices.Contains(firsts, r) {
			firsts = append(firsts, r)
		}
	}

	if d.includeExpressions || !w.HasInfo("exp") {
		for _, r := range firsts {
			d.byFirstRune[r] = append(d.byFirstRune[r], w)
		}
	}

	if len(w.Senses) > 0 {
		for _, g := range w.Senses[0].Meaning {
			d.firstGlosses[strings.ToLower(g)] = struct{}{}
		}
	}
}

// Words returns the lexicon in its load order. The slice must not be modified.
func (d *Dictionary) Words() []*Word { return d.words }

// Kanji returns the kanji records in their load order.
func (d *Dictionary) Kanji() []*Kanji { return d.kanji }

func (d *Dictionary) Len() int { return len(d.words) }

// KanjiByLiteral returns the record of a kanji glyph, or nil.
func (d *Dictionary) KanjiByLiteral(r rune) *Kanji {
	return d.kanjiByLiteral[r]
}

// Lookup returns the words having form as one of their kanji or kana forms,
// in lexicon order.
func (d *Dictionary) Lookup(form string) []*Word {
	return d.byForm[form]
}

// UsedKanji returns the distinct known kanji appearing in the kanji forms of w.
func (d *Dictionary) UsedKanji(w *Word) []*Kanji {
	var used []*Kanji
	for _, form := range w.Kanji {
		for _, r := range form {
			if IsKanaRune(r) {
				continue
			}
			k := d.kanjiByLiteral[r]
			if k != nil && !slices.Contains(used, k) {
				used = append(used, k)
			}
		}
	}
	return used
}

// isKnownGloss reports whether term is, ignoring case, a gloss of the first
// sense of some word.
func (d *Dictionary) isKnownGloss(term string) bool {
	_, ok := d.firstGlosses[strings.ToLower(term)]
	return ok
}

// chunks splits the lexicon in at most d.workers contiguous ranges.
func (d *Dictionary) chunks(n int) [][2]int {
	w := max(d.workers, 1)
	size := (n + w - 1) / w
	if size == 0 {
		return nil
	}
	var out [][2]int
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}
