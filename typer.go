package jisho

import (
	"strings"
	"unicode"
)

const (
	longVowelMark = 'ー'
	smallTsuHira  = "っ"
	smallTsuKata  = "ッ"
	syllabicNHira = 'ん'
	syllabicNKata = 'ン'
)

// ToKana converts romaji to kana with the default cluster table.
//
// Lowercase clusters become hiragana, fully uppercase ones katakana. A doubled
// consonant yields a small tsu. Anything that matches no cluster is copied
// as is. In realtime mode a trailing lone n is left alone so that the caller
// can still extend it; forceConversion turns any n left in the output into ん.
func ToKana(text string, forceConversion, isRealtimeInput bool) string {
	return DefaultClusters.ToKana(text, forceConversion, isRealtimeInput)
}

func (t *ClusterTable) ToKana(text string, forceConversion, isRealtimeInput bool) string {
	in := []rune(text)
	var out strings.Builder
	out.Grow(len(text) * 2)

	i := 0
outer:
	for i < len(in) {
		rest := in[i:]
		c := rest[0]

		if !unicode.IsLetter(c) {
			if c == '-' {
				out.WriteRune(longVowelMark)
			} else {
				out.WriteRune(c)
			}
			i++
			continue
		}

		offset := 0
		if len(rest) >= 3 && rest[0] == rest[1] && !isVowel(c) && c != 'n' && c != 'N' {
			offset = 1
		}

		for l := t.maxLen; l > 0; l-- {
			if offset+l > len(rest) {
				continue
			}
			cand := rest[offset : offset+l]
			katakana := isUpperCluster(cand)
			mapped, ok := t.Lookup(strings.ToLower(string(cand)), katakana)
			if !ok {
				continue
			}
			if offset == 1 {
				if katakana {
					out.WriteString(smallTsuKata)
				} else {
					out.WriteString(smallTsuHira)
				}
			}
			out.WriteString(mapped)
			i += offset + l
			continue outer
		}

		if (c == 'n' || c == 'N') && (!isRealtimeInput || len(rest) > 1) {
			out.WriteRune(syllabicN(c))
			i++
			continue
		}

		out.WriteRune(c)
		i++
	}

	result := out.String()
	if forceConversion {
		result = strings.Map(func(r rune) rune {
			if r == 'n' || r == 'N' {
				return syllabicN(r)
			}
			return r
		}, result)
	}
	return result
}

func syllabicN(r rune) rune {
	if r == 'N' {
		return syllabicNKata
	}
	return syllabicNHira
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// isUpperCluster reports whether every letter of cand is uppercase.
func isUpperCluster(cand []rune) bool {
	for _, r := range cand {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
