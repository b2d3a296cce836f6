package jisho

// ClusterTable maps lowercase romaji clusters of one to four letters to kana,
// once per script. It is built once and never modified afterwards.
type ClusterTable struct {
	hiragana map[string]string
	katakana map[string]string
	maxLen   int
}

// DefaultClusters is the table used by the package level ToKana.
var DefaultClusters = NewClusterTable(hiraganaClusters)

// NewClusterTable builds a table from a romaji to hiragana mapping.
// The katakana side is derived index by index from the kana tables.
func NewClusterTable(hira map[string]string) *ClusterTable {
	t := &ClusterTable{
		hiragana: make(map[string]string, len(hira)),
		katakana: make(map[string]string, len(hira)),
	}
	for k, v := range hira {
		t.hiragana[k] = v
		t.katakana[k] = ToKatakana(v)
		if n := len([]rune(k)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// Lookup returns the kana for a lowercase cluster in the requested script.
func (t *ClusterTable) Lookup(cluster string, katakana bool) (string, bool) {
	m := t.hiragana
	if katakana {
		m = t.katakana
	}
	s, ok := m[cluster]
	return s, ok
}

// Len is the number of clusters per script.
func (t *ClusterTable) Len() int { return len(t.hiragana) }

var hiraganaClusters = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",

	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"sa": "さ", "shi": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "ji": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ta": "た", "chi": "ち", "tsu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"ha": "は", "hi": "ひ", "fu": "ふ", "he": "へ", "ho": "ほ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wo": "を", "we": "ゑ", "wi": "ゐ", "vu": "ゔ",
	"n'": "ん",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	"xtsu": "っ",

	// a doubled or tripled n before a vowel settles the syllabic n
	"na": "な", "nna": "んな", "nnna": "んな",
	"ni": "に", "nni": "んに", "nnni": "んに",
	"nu": "ぬ", "nnu": "んぬ", "nnnu": "んぬ",
	"ne": "ね", "nne": "んね", "nnne": "んね",
	"no": "の", "nno": "んの", "nnno": "んの",
	"nn": "ん",

	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"shya": "しゃ", "shyu": "しゅ", "shyo": "しょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"chya": "ちゃ", "chyu": "ちゅ", "chyo": "ちょ",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
}
