package jisho

import (
	"strings"
	"unicode"
)

// The two tables are index-aligned: position i holds the same mora in both.
// Any edit must be mirrored at the same index in the other table.
const (
	hiraganaTable = "あいうえおかきくけこがぎぐげごさしすせそざじずぜぞたちつてとだぢづでどはひふへほばびぶべぼぱぴぷぺぽなにぬねのまみむめもらりるれろわをやゆよんゃゅょぁぃぅぇぉっゑゐゔー"
	katakanaTable = "アイウエオカキクケコガギグゲゴサシスセソザジズゼゾタチツテトダヂヅデドハヒフヘホバビブベボパピプペポナニヌネノマミムメモラリルレロワヲヤユヨンャュョァィゥェォッヱヰヴー"
)

type kanaTable struct {
	hiragana []rune
	katakana []rune
	hiraIdx  map[rune]int
	kataIdx  map[rune]int
}

var kanaTables = newKanaTable(hiraganaTable, katakanaTable)

func newKanaTable(hira, kata string) *kanaTable {
	t := &kanaTable{
		hiragana: []rune(hira),
		katakana: []rune(kata),
	}
	if len(t.hiragana) != len(t.katakana) {
		panic("jisho: kana tables are not aligned")
	}
	t.hiraIdx = make(map[rune]int, len(t.hiragana))
	t.kataIdx = make(map[rune]int, len(t.katakana))
	for i, r := range t.hiragana {
		t.hiraIdx[r] = i
	}
	for i, r := range t.katakana {
		t.kataIdx[r] = i
	}
	return t
}

// IsHiraganaRune reports whether r belongs to the hiragana table.
// The long vowel mark ー belongs to both scripts.
func IsHiraganaRune(r rune) bool {
	_, ok := kanaTables.hiraIdx[r]
	return ok
}

// IsKatakanaRune reports whether r belongs to the katakana table.
func IsKatakanaRune(r rune) bool {
	_, ok := kanaTables.kataIdx[r]
	return ok
}

// IsKanaRune reports whether r is hiragana or katakana.
func IsKanaRune(r rune) bool {
	return IsHiraganaRune(r) || IsKatakanaRune(r)
}

// IsKana reports whether every rune of s is kana.
func IsKana(s string) bool { return all(s, IsKanaRune) }

// HasKana reports whether s contains at least one kana rune.
func HasKana(s string) bool { return strings.IndexFunc(s, IsKanaRune) >= 0 }

func IsHiragana(s string) bool  { return all(s, IsHiraganaRune) }
func HasHiragana(s string) bool { return strings.IndexFunc(s, IsHiraganaRune) >= 0 }
func IsKatakana(s string) bool  { return all(s, IsKatakanaRune) }

// HasKatakana reports whether s holds a rune that is katakana only.
// The shared long vowel mark does not count.
func HasKatakana(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return IsKatakanaRune(r) && !IsHiraganaRune(r)
	}) >= 0
}

// ToHiraganaRune maps a katakana rune to the hiragana at the same index.
// Any other rune is returned unchanged.
func ToHiraganaRune(r rune) rune {
	if i, ok := kanaTables.kataIdx[r]; ok {
		return kanaTables.hiragana[i]
	}
	return r
}

// ToKatakanaRune maps a hiragana rune to the katakana at the same index.
func ToKatakanaRune(r rune) rune {
	if i, ok := kanaTables.hiraIdx[r]; ok {
		return kanaTables.katakana[i]
	}
	return r
}

// ToHiragana normalizes every katakana rune of s to hiragana.
func ToHiragana(s string) string { return strings.Map(ToHiraganaRune, s) }

// ToKatakana converts every hiragana rune of s to katakana.
func ToKatakana(s string) string { return strings.Map(ToKatakanaRune, s) }

// ContainsKanjis checks if a string contains any kanji characters
func ContainsKanjis(s string) bool {
	return strings.IndexFunc(s, isKanji) >= 0
}

func isKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func all(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
