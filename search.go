package jisho

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

const noMatch = math.MaxInt

// SearchForWords is Search with a background context.
func (d *Dictionary) SearchForWords(query string) ([]*Word, error) {
	return d.Search(context.Background(), query)
}

// Search parses query and returns the matching words, best ranked first.
// It returns ErrNoQuery for a blank query and ErrNoMatches when no word
// satisfies every term.
func (d *Dictionary) Search(ctx context.Context, query string) ([]*Word, error) {
	q, err := d.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return d.SearchQuery(ctx, q)
}

// SearchQuery runs an already parsed query.
func (d *Dictionary) SearchQuery(ctx context.Context, q *Query) ([]*Word, error) {
	if q == nil || q.Empty() {
		return nil, ErrNoQuery
	}

	matches, err := d.filter(ctx, q.matches)
	if err != nil {
		return nil, fmt.Errorf("failed to filter lexicon: %w", err)
	}

	if len(q.StrictKana) > 0 && len(matches) > 0 {
		strict := slices.DeleteFunc(slices.Clone(matches), func(w *Word) bool {
			return !q.matchesStrict(w, false)
		})
		if len(strict) == 0 {
			strict = slices.DeleteFunc(matches, func(w *Word) bool {
				return !q.matchesStrict(w, true)
			})
		}
		matches = strict
	}

	Logger.Debug().Str("query", q.String()).Int("matches", len(matches)).Msg("search")
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	rank(matches, q)
	return matches, nil
}

// filter runs keep over the lexicon in parallel and returns the words it
// kept, in lexicon order.
func (d *Dictionary) filter(ctx context.Context, keep func(*Word) bool) ([]*Word, error) {
	ranges := d.chunks(len(d.words))
	parts := make([][]*Word, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.workers, 1))
	for i, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, w := range d.words[r[0]:r[1]] {
				if keep(w) {
					parts[i] = append(parts[i], w)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

// matches reports whether w satisfies every term of every bucket but the
// strict kana one.
func (q *Query) matches(w *Word) bool {
	for _, t := range q.AnyKana {
		if !slices.ContainsFunc(w.Kana, func(k string) bool {
			return strings.HasPrefix(ToHiragana(k), t)
		}) {
			return false
		}
	}
	for _, t := range q.ExactKana {
		if !slices.Contains(w.Kana, t) {
			return false
		}
	}

	if len(q.Meaning) == 0 && len(q.ExactMeaning) == 0 {
		return true
	}
	glosses := w.Meanings()
	var glossWords []string
	for _, g := range glosses {
		glossWords = append(glossWords, strings.Fields(g)...)
	}

	for _, t := range q.Meaning {
		if !slices.ContainsFunc(glossWords, func(gw string) bool {
			return hasPrefixFold(gw, t)
		}) {
			return false
		}
	}
	for _, t := range q.ExactMeaning {
		if !slices.ContainsFunc(glosses, func(g string) bool {
			return containsFold(g, t)
		}) {
			return false
		}
		for _, sub := range strings.Fields(t) {
			if !slices.ContainsFunc(glossWords, func(gw string) bool {
				return strings.EqualFold(stripParens(gw), sub)
			}) {
				return false
			}
		}
	}
	return true
}

// matchesStrict checks the strict kana terms. Unless normalized is set, the
// script of the term must match the script of the kana form.
func (q *Query) matchesStrict(w *Word, normalized bool) bool {
	for _, t := range q.StrictKana {
		ok := slices.ContainsFunc(w.Kana, func(k string) bool {
			if normalized {
				return strings.HasPrefix(ToHiragana(k), ToHiragana(t))
			}
			return strings.HasPrefix(k, t)
		})
		if !ok {
			return false
		}
	}
	return true
}

// rank orders words by the first sense holding a gloss identical to a meaning
// term, then by the first kana form equal to a kana term. The sort is stable
// so ties keep lexicon order.
func rank(words []*Word, q *Query) {
	meaning := q.meaningTerms()
	kanaTerms := q.kanaTerms()

	type key struct{ sense, kana int }
	keys := make(map[*Word]key, len(words))
	for _, w := range words {
		keys[w] = key{senseRank(w, meaning), kanaRank(w, kanaTerms)}
	}
	slices.SortStableFunc(words, func(a, b *Word) int {
		ka, kb := keys[a], keys[b]
		if ka.sense != kb.sense {
			return cmp.Compare(ka.sense, kb.sense)
		}
		return cmp.Compare(ka.kana, kb.kana)
	})
}

func senseRank(w *Word, terms []string) int {
	if len(terms) == 0 {
		return noMatch
	}
	for i, s := range w.Senses {
		for _, g := range s.Meaning {
			if slices.Contains(terms, g) {
				return i
			}
		}
	}
	return noMatch
}

func kanaRank(w *Word, terms []string) int {
	if len(terms) == 0 {
		return noMatch
	}
	for i, k := range w.Kana {
		if slices.Contains(terms, ToHiragana(k)) {
			return i
		}
	}
	return noMatch
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func stripParens(s string) string {
	return strings.NewReplacer("(", "", ")", "").Replace(s)
}
