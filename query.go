package jisho

import (
	"strings"
)

// Query holds the terms of a search string sorted into buckets. Kana terms of
// the any-kana bucket are normalized to hiragana.
type Query struct {
	AnyKana      []string
	StrictKana   []string // terms holding katakana, matched script-sensitively
	ExactKana    []string
	Meaning      []string
	ExactMeaning []string
}

// ParseQuery splits raw into terms and sorts each one into a bucket.
//
// Text between double quotes is kept whole and searched as an exact term,
// the rest is split on whitespace. A term prefixed with * is exact, one
// prefixed with ! is searched as kana whenever it transliterates fully.
// Other terms are searched as kana unless they are a known English gloss.
func (d *Dictionary) ParseQuery(raw string) (*Query, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoQuery
	}

	q := new(Query)
	for i, seg := range strings.Split(raw, `"`) {
		if i%2 == 1 {
			q.addExact(seg)
			continue
		}
		for _, term := range strings.Fields(seg) {
			switch term[0] {
			case '*':
				q.addExact(term[1:])
			case '!':
				q.addForcedKana(term[1:])
			default:
				q.addTerm(d, term)
			}
		}
	}

	if q.Empty() {
		return nil, ErrNoQuery
	}
	Logger.Debug().Str("raw", raw).Strs("args", q.Args()).Msg("parsed query")
	return q, nil
}

func (q *Query) addExact(term string) {
	term = strings.TrimSpace(term)
	switch {
	case term == "":
	case IsKana(term):
		q.ExactKana = append(q.ExactKana, term)
	default:
		q.ExactMeaning = append(q.ExactMeaning, term)
	}
}

func (q *Query) addForcedKana(term string) {
	if term == "" {
		return
	}
	if k := ToKana(term, true, false); IsKana(k) {
		q.AnyKana = append(q.AnyKana, ToHiragana(k))
		return
	}
	q.Meaning = append(q.Meaning, term)
}

func (q *Query) addTerm(d *Dictionary, term string) {
	k := ToKana(term, true, false)
	switch {
	case !IsKana(k) || d.isKnownGloss(term):
		q.Meaning = append(q.Meaning, term)
	case HasKatakana(k):
		q.StrictKana = append(q.StrictKana, k)
	default:
		q.AnyKana = append(q.AnyKana, k)
	}
}

// Empty reports whether no bucket holds a term.
func (q *Query) Empty() bool {
	return len(q.AnyKana)+len(q.StrictKana)+len(q.ExactKana)+len(q.Meaning)+len(q.ExactMeaning) == 0
}

// Args renders the query back as canonical search terms, which parse to the
// same buckets.
func (q *Query) Args() []string {
	var args []string
	args = append(args, q.AnyKana...)
	args = append(args, q.StrictKana...)
	for _, t := range q.ExactKana {
		args = append(args, "*"+t)
	}
	args = append(args, q.Meaning...)
	for _, t := range q.ExactMeaning {
		args = append(args, `"`+t+`"`)
	}
	return args
}

func (q *Query) String() string {
	return strings.Join(q.Args(), " ")
}

func (q *Query) kanaTerms() []string {
	terms := make([]string, 0, len(q.AnyKana)+len(q.ExactKana)+len(q.StrictKana))
	for _, group := range [][]string{q.AnyKana, q.ExactKana, q.StrictKana} {
		for _, t := range group {
			terms = append(terms, ToHiragana(t))
		}
	}
	return terms
}

func (q *Query) meaningTerms() []string {
	return append(append([]string(nil), q.Meaning...), q.ExactMeaning...)
}
