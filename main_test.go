package jisho

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fixture words, in lexicon order
var (
	wNeko      = &Word{Kanji: []string{"猫"}, Kana: []string{"ねこ"}, Frequency: 2300, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"cat"}}, {Info: []string{"n", "col"}, Meaning: []string{"shamisen"}}}}
	wKoneko    = &Word{Kanji: []string{"子猫", "仔猫"}, Kana: []string{"こねこ"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"kitten"}}}}
	wNeko2     = &Word{Kanji: []string{"寝子"}, Kana: []string{"ねこ"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"sleeping child"}}, {Info: []string{"n", "arch"}, Meaning: []string{"cat"}}}}
	wMokuroku  = &Word{Kanji: []string{"目録"}, Kana: []string{"もくろく"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"catalogue", "catalog", "list"}}}}
	wKatarogu  = &Word{Kana: []string{"カタログ"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"catalog", "catalogue"}}}}
	wWatashi   = &Word{Kanji: []string{"私"}, Kana: []string{"わたし", "わたくし"}, Frequency: 120, Senses: []Sense{{Info: []string{"pn"}, Meaning: []string{"I", "me"}}}}
	wHa        = &Word{Kana: []string{"は"}, Frequency: 3, Senses: []Sense{{Info: []string{"prt"}, Meaning: []string{"indicates sentence topic"}}}}
	wNihon     = &Word{Kanji: []string{"日本"}, Kana: []string{"にほん", "にっぽん"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"Japan"}}}}
	wNihongo   = &Word{Kanji: []string{"日本語"}, Kana: []string{"にほんご"}, Senses: []Sense{{Info: []string{"n"}, Meaning: []string{"Japanese (language)"}}}}
	wGo        = &Word{Kanji: []string{"語"}, Kana: []string{"ご"}, Senses: []Sense{{Info: []string{"n", "n-suf"}, Meaning: []string{"language", "word"}}}}
	wDesu      = &Word{Kana: []string{"です"}, Senses: []Sense{{Info: []string{"aux-v"}, Meaning: []string{"be", "is"}}}}
	wNekoniKob = &Word{Kanji: []string{"猫に小判"}, Kana: []string{"ねこにこばん"}, Senses: []Sense{{Info: []string{"exp", "id"}, Meaning: []string{"pearls before swine"}}}}
	wIppai     = &Word{Kanji: []string{"一杯"}, Kana: []string{"いっぱい"}, Senses: []Sense{{Info: []string{"adv", "uk"}, Meaning: []string{"full", "a lot"}}, {Info: []string{"n", "ctr"}, Meaning: []string{"cupful"}}}}
	wSushi     = &Word{Kanji: []string{"寿司"}, Kana: []string{"すし"}, Senses: []Sense{{Info: []string{"n", "ateji"}, Meaning: []string{"sushi"}}}}
	wTaberu    = &Word{Kind: KindVerb, Kanji: []string{"食べる"}, Kana: []string{"たべる"}, Stem: "食べ", VerbType: VerbIchidan, Senses: []Sense{{Info: []string{"v1", "vt"}, Meaning: []string{"to eat"}}}}
	wTakai     = &Word{Kind: KindAdjective, Kanji: []string{"高い"}, Kana: []string{"たかい"}, Stem: "高", AdjectiveType: AdjectiveI, Senses: []Sense{{Info: []string{"adj-i"}, Meaning: []string{"high", "tall"}}, {Info: []string{"adj-i"}, Meaning: []string{"expensive"}}}}
	wIie       = &Word{Kana: []string{"いいえ"}, Senses: []Sense{{Info: []string{"int"}, Meaning: []string{"no", "nay"}}}}
)

func fixtureWords() []*Word {
	return []*Word{
		wNeko, wKoneko, wNeko2, wMokuroku, wKatarogu, wWatashi, wHa, wNihon,
		wNihongo, wGo, wDesu, wNekoniKob, wIppai, wSushi, wTaberu, wTakai, wIie,
	}
}

func fixtureKanji() []*Kanji {
	return []*Kanji{
		{Literal: '日', Meanings: []string{"day", "sun", "Japan"}, OnReadings: []string{"ニチ", "ジツ"}, KunReadings: []string{"ひ", "か"}, Grade: 1, JLPT: 5, Frequency: 1},
		{Literal: '一', Meanings: []string{"one"}, OnReadings: []string{"イチ"}, KunReadings: []string{"ひと"}, Grade: 1, JLPT: 5, Frequency: 2},
		{Literal: '本', Meanings: []string{"book", "origin"}, OnReadings: []string{"ホン"}, KunReadings: []string{"もと"}, Grade: 1, JLPT: 5, Frequency: 10},
		{Literal: '子', Meanings: []string{"child"}, OnReadings: []string{"シ", "ス"}, KunReadings: []string{"こ"}, Grade: 1, JLPT: 5, Frequency: 38},
		{Literal: '高', Meanings: []string{"tall", "high"}, OnReadings: []string{"コウ"}, KunReadings: []string{"たか.い"}, Grade: 2, JLPT: 5, Frequency: 65},
		{Literal: '目', Meanings: []string{"eye"}, OnReadings: []string{"モク"}, KunReadings: []string{"め"}, Grade: 1, JLPT: 4, Frequency: 76},
		{Literal: '語', Meanings: []string{"word", "language"}, OnReadings: []string{"ゴ"}, KunReadings: []string{"かた.る"}, Grade: 2, JLPT: 5, Frequency: 301},
		{Literal: '食', Meanings: []string{"eat", "food"}, OnReadings: []string{"ショク"}, KunReadings: []string{"た.べる"}, Grade: 2, JLPT: 5, Frequency: 328},
		{Literal: '私', Meanings: []string{"private", "I", "me"}, OnReadings: []string{"シ"}, KunReadings: []string{"わたくし", "わたし"}, Grade: 6, JLPT: 4, Frequency: 424},
		{Literal: '司', Meanings: []string{"director", "official"}, OnReadings: []string{"シ"}, KunReadings: []string{"つかさど.る"}, Grade: 4, JLPT: 1, Frequency: 600},
		{Literal: '録', Meanings: []string{"record"}, OnReadings: []string{"ロク"}, Grade: 4, JLPT: 2, Frequency: 700},
		{Literal: '杯', Meanings: []string{"cupful", "counter for cupfuls"}, OnReadings: []string{"ハイ"}, KunReadings: []string{"さかずき"}, JLPT: 2, Frequency: 1000},
		{Literal: '寿', Meanings: []string{"longevity", "congratulations"}, OnReadings: []string{"ジュ", "ス"}, KunReadings: []string{"ことぶき"}, JLPT: 1, Frequency: 1400},
		{Literal: '猫', Meanings: []string{"cat"}, OnReadings: []string{"ビョウ"}, KunReadings: []string{"ねこ"}, JLPT: 2, Frequency: 1702},
	}
}

func newTestDictionary(t *testing.T, opts ...Option) *Dictionary {
	t.Helper()
	d, err := NewDictionary(fixtureWords(), fixtureKanji(), opts...)
	require.NoError(t, err)
	return d
}
