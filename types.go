package jisho

import (
	"slices"
	"strings"
)

// WordKind discriminates the kind-specific payload held by a Word.
type WordKind int

const (
	KindWord WordKind = iota
	KindVerb
	KindAdjective
)

func (k WordKind) String() string {
	switch k {
	case KindVerb:
		return "verb"
	case KindAdjective:
		return "adjective"
	}
	return "word"
}

type VerbType int

const (
	VerbIchidan VerbType = iota
	VerbGodan
	VerbIrregular
	VerbSuru
	VerbNidan
	VerbYodan
	VerbOther
)

func (v VerbType) String() string {
	return map[VerbType]string{
		VerbIchidan:   "ichidan",
		VerbGodan:     "godan",
		VerbIrregular: "irregular",
		VerbSuru:      "suru",
		VerbNidan:     "nidan",
		VerbYodan:     "yodan",
		VerbOther:     "other",
	}[v]
}

type AdjectiveType int

const (
	AdjectiveI AdjectiveType = iota
	AdjectiveNa
	AdjectiveOther
)

func (a AdjectiveType) String() string {
	return map[AdjectiveType]string{
		AdjectiveI:     "i",
		AdjectiveNa:    "na",
		AdjectiveOther: "other",
	}[a]
}

// Sense bundles the tags and glosses of one reading of a word.
// Order is significant in both slices.
type Sense struct {
	Info    []string `json:"info,omitempty"`
	Meaning []string `json:"meaning"`
}

// Word is a lexicon entry. Words are owned by a Dictionary and must not be
// modified once it has been built.
type Word struct {
	Kind      WordKind `json:"-"`
	Kanji     []string `json:"kanji,omitempty"`
	Kana      []string `json:"kana"`
	Senses    []Sense  `json:"senses"`
	Frequency int      `json:"frequency,omitempty"` // 0 = unranked
	Level     int      `json:"level,omitempty"`     // 0 = unranked

	// Set for verbs and adjectives only.
	Stem          string        `json:"stem,omitempty"`
	VerbType      VerbType      `json:"verb_type,omitempty"`
	AdjectiveType AdjectiveType `json:"adjective_type,omitempty"`
}

// Kanji holds the dictionary data of a single kanji glyph.
type Kanji struct {
	Literal     rune     `json:"literal"`
	Meanings    []string `json:"meanings,omitempty"`
	KunReadings []string `json:"kun,omitempty"`
	OnReadings  []string `json:"on,omitempty"`
	Grade       int      `json:"grade,omitempty"`
	JLPT        int      `json:"jlpt,omitempty"`
	Frequency   int      `json:"frequency,omitempty"`
	Level       int      `json:"level,omitempty"`
}

// OnlyKana reports whether the word has no kanji form.
func (w *Word) OnlyKana() bool {
	return len(w.Kanji) == 0
}

// UsuallyKana reports whether the word is normally written in kana,
// either because it has no kanji form or because a sense is tagged "uk".
func (w *Word) UsuallyKana() bool {
	if w.OnlyKana() {
		return true
	}
	for _, s := range w.Senses {
		if slices.Contains(s.Info, "uk") {
			return true
		}
	}
	return false
}

// MainReading is the form a word is usually written with.
func (w *Word) MainReading() string {
	if !w.UsuallyKana() && len(w.Kanji) > 0 {
		return w.Kanji[0]
	}
	return w.firstKana()
}

func (w *Word) MainMeaning() string {
	if len(w.Senses) == 0 || len(w.Senses[0].Meaning) == 0 {
		return ""
	}
	return w.Senses[0].Meaning[0]
}

// MainKana returns the first kana form in hiragana, for use as a reading
// hint. Words spelled in hiragana only need no hint and yield "".
func (w *Word) MainKana() string {
	k := w.firstKana()
	if w.OnlyKana() && !HasKatakana(k) {
		return ""
	}
	return ToHiragana(k)
}

func (w *Word) firstKana() string {
	if len(w.Kana) == 0 {
		return ""
	}
	return w.Kana[0]
}

// Infos returns the distinct tags of all senses, in first seen order.
func (w *Word) Infos() []string {
	var infos []string
	for _, s := range w.Senses {
		for _, i := range s.Info {
			if !slices.Contains(infos, i) {
				infos = append(infos, i)
			}
		}
	}
	return infos
}

// ParsedInfo is Infos with every tag spelled out.
func (w *Word) ParsedInfo() []string {
	infos := w.Infos()
	for i, tag := range infos {
		infos[i] = DescribeTag(tag)
	}
	return infos
}

// HasInfo reports whether any sense carries tag.
func (w *Word) HasInfo(tag string) bool {
	return slices.Contains(w.Infos(), tag)
}

// Meanings flattens the glosses of all senses.
func (w *Word) Meanings() []string {
	var m []string
	for _, s := range w.Senses {
		m = append(m, s.Meaning...)
	}
	return m
}

// Forms lists the kanji forms followed by the kana forms.
func (w *Word) Forms() []string {
	return append(slices.Clone(w.Kanji), w.Kana...)
}

func (w *Word) HasForm(form string) bool {
	return slices.Contains(w.Kanji, form) || slices.Contains(w.Kana, form)
}

func (w *Word) String() string {
	var b strings.Builder
	b.WriteString(w.MainReading())
	if k := w.MainKana(); k != "" && k != w.MainReading() {
		b.WriteString("【" + k + "】")
	}
	if m := w.MainMeaning(); m != "" {
		b.WriteString(" " + m)
	}
	return b.String()
}
