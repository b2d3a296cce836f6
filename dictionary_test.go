package jisho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionaryRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		words []*Word
		kanji []*Kanji
	}{
		{"word without kana", []*Word{{Kanji: []string{"猫"}}}, nil},
		{"nil word", []*Word{wNeko, nil}, nil},
		{"invalid utf-8 form", []*Word{{Kana: []string{"\xff"}}}, nil},
		{"nil kanji", nil, []*Kanji{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDictionary(tt.words, tt.kanji)
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestDictionaryAccessors(t *testing.T) {
	d := newTestDictionary(t)

	assert.Equal(t, len(fixtureWords()), d.Len())
	assert.Equal(t, fixtureWords(), d.Words())
	assert.Len(t, d.Kanji(), len(fixtureKanji()))

	assert.Equal(t, []*Word{wNeko, wNeko2}, d.Lookup("ねこ"))
	assert.Equal(t, []*Word{wNihon}, d.Lookup("にっぽん"))
	assert.Empty(t, d.Lookup("いぬ"))

	k := d.KanjiByLiteral('猫')
	require.NotNil(t, k)
	assert.Equal(t, 1702, k.Frequency)
	assert.Nil(t, d.KanjiByLiteral('犬'))
}

func TestUsedKanji(t *testing.T) {
	d := newTestDictionary(t)

	var literals []rune
	for _, k := range d.UsedKanji(wNihongo) {
		literals = append(literals, k.Literal)
	}
	assert.Equal(t, []rune{'日', '本', '語'}, literals)

	// kana of okurigana is skipped, unknown kanji are dropped
	used := d.UsedKanji(wTaberu)
	require.Len(t, used, 1)
	assert.Equal(t, '食', used[0].Literal)

	assert.Empty(t, d.UsedKanji(wDesu))
	// 仔 is unknown and 猫 appears in both forms
	literals = literals[:0]
	for _, k := range d.UsedKanji(wKoneko) {
		literals = append(literals, k.Literal)
	}
	assert.Equal(t, []rune{'子', '猫'}, literals)
}

func TestKnownGloss(t *testing.T) {
	d := newTestDictionary(t)

	assert.True(t, d.isKnownGloss("no"))
	assert.True(t, d.isKnownGloss("CAT"))
	assert.True(t, d.isKnownGloss("Japanese (language)"))
	// only first senses count
	assert.False(t, d.isKnownGloss("shamisen"))
	assert.False(t, d.isKnownGloss("neko"))
}

func TestChunks(t *testing.T) {
	d := newTestDictionary(t, WithWorkers(3))
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, d.chunks(10))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, d.chunks(2))
	assert.Empty(t, d.chunks(0))
}
