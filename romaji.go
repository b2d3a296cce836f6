package jisho

import (
	"strings"
	"unicode/utf8"
)

var romajiByKana = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"ぁ": "xa", "ぃ": "xi", "ぅ": "xu", "ぇ": "xe", "ぉ": "xo",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "を": "wo", "ゑ": "we", "ゐ": "wi", "ゔ": "vu",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ゃ": "xya", "ゅ": "xyu", "ょ": "xyo", "っ": "xtsu",
	"ん": "n",

	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"ぢゃ": "ja", "ぢゅ": "ju", "ぢょ": "jo",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
}

// ToRomaji renders kana as romaji. Katakana comes out in uppercase so that
// the result reads back through ToKana in the same script. A small tsu
// doubles the consonant that follows it, ー becomes a dash and a syllabic n
// that could merge with the next syllable is written n'.
// Runes outside the kana tables are copied.
func ToRomaji(s string) string {
	in := []rune(s)
	var out strings.Builder
	geminate := false

	for i := 0; i < len(in); {
		r := in[i]
		if r == longVowelMark {
			out.WriteByte('-')
			i++
			continue
		}
		if !IsKanaRune(r) {
			flushGeminate(&out, &geminate)
			out.WriteRune(r)
			i++
			continue
		}

		upper := IsKatakanaRune(r)
		if ToHiraganaRune(r) == 'っ' && i+1 < len(in) && IsKanaRune(in[i+1]) && in[i+1] != longVowelMark {
			flushGeminate(&out, &geminate)
			geminate = true
			i++
			continue
		}

		roman, n := romajiAt(in[i:])
		if geminate {
			if c, _ := utf8.DecodeRuneInString(roman); !isVowel(c) && c != 'n' {
				roman = string(c) + roman
			} else {
				roman = romajiByKana["っ"] + roman
			}
			geminate = false
		}
		if roman == "n" && i+n < len(in) && IsKanaRune(in[i+n]) {
			if next, _ := romajiAt(in[i+n:]); ambiguousAfterN(next) {
				roman = "n'"
			}
		}
		if upper {
			roman = strings.ToUpper(roman)
		}
		out.WriteString(roman)
		i += n
	}
	flushGeminate(&out, &geminate)
	return out.String()
}

// ambiguousAfterN reports whether a syllabic n written before next would be
// read as part of next's syllable.
func ambiguousAfterN(next string) bool {
	c, _ := utf8.DecodeRuneInString(next)
	return isVowel(c) || c == 'y' || next == "n" || strings.HasPrefix(next, "ny")
}

// romajiAt reads the longest kana unit at the head of in.
func romajiAt(in []rune) (string, int) {
	if len(in) > 1 {
		if s, ok := romajiByKana[ToHiragana(string(in[:2]))]; ok {
			return s, 2
		}
	}
	if s, ok := romajiByKana[string(ToHiraganaRune(in[0]))]; ok {
		return s, 1
	}
	return string(in[0]), 1
}

func flushGeminate(out *strings.Builder, pending *bool) {
	if *pending {
		out.WriteString(romajiByKana["っ"])
		*pending = false
	}
}
