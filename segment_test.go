package jisho

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTexts(s *Sentence) []string {
	var texts []string
	for _, tok := range s.Tokens {
		texts = append(texts, tok.Text)
	}
	return texts
}

func TestSegment(t *testing.T) {
	d := newTestDictionary(t)

	tests := []struct {
		name     string
		text     string
		expected []string
		words    []*Word
	}{
		{
			name:     "simple sentence",
			text:     "私は日本語です",
			expected: []string{"私", "は", "日本語", "です"},
			words:    []*Word{wWatashi, wHa, wNihongo, wDesu},
		},
		{
			name:     "expressions are skipped",
			text:     "猫に小判",
			expected: []string{"猫", "に", "小", "判"},
			words:    []*Word{wNeko},
		},
		{
			name:     "ambiguous at end of input",
			text:     "日本",
			expected: []string{"日本"},
			words:    []*Word{wNihon},
		},
		{
			name:     "kana spelling of a kanji word",
			text:     "いっぱい食べる",
			expected: []string{"いっぱい", "食べる"},
			words:    []*Word{wIppai, wTaberu},
		},
		{
			name:     "unknown runes",
			text:     "abc 猫!",
			expected: []string{"a", "b", "c", " ", "猫", "!"},
			words:    []*Word{wNeko},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := d.Segment(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokenTexts(s))
			assert.Equal(t, tt.words, s.Words())
		})
	}
}

func TestSegmentWithExpressions(t *testing.T) {
	d := newTestDictionary(t, WithExpressions(true))

	s, err := d.Segment("猫に小判")
	require.NoError(t, err)
	require.Len(t, s.Tokens, 1)
	assert.Equal(t, wNekoniKob, s.Tokens[0].Word)
	assert.True(t, s.Tokens[0].Exact)
}

func TestSegmentCoversInput(t *testing.T) {
	d := newTestDictionary(t)

	for _, text := range []string{
		"私は日本語です",
		"猫に小判",
		"子猫と寝子、ねこ。",
		"カタログはいいえ",
		"高い寿司を食べる",
		"ｘ日本日本語語",
		"🐈ねこ",
	} {
		s, err := d.Segment(text)
		require.NoError(t, err, "%q", text)
		assert.Equal(t, text, strings.Join(tokenTexts(s), ""), "%q", text)

		pos := 0
		for _, tok := range s.Tokens {
			assert.Equal(t, pos, tok.Start, "%q", text)
			assert.Equal(t, tok.Start+utf8.RuneCountInString(tok.Text), tok.End, "%q", text)
			assert.Equal(t, tok.Found, tok.Word != nil, "%q", text)
			if tok.Found {
				assert.True(t, tok.Word.HasForm(tok.Text), "%q: %q", text, tok.Text)
			} else {
				assert.Equal(t, 1, utf8.RuneCountInString(tok.Text), "%q", text)
			}
			pos = tok.End
		}
		assert.Equal(t, utf8.RuneCountInString(text), pos, "%q", text)
	}
}

func TestSegmentEdgeCases(t *testing.T) {
	d := newTestDictionary(t)

	s, err := d.Segment("")
	require.NoError(t, err)
	assert.Empty(t, s.Tokens)

	_, err = d.Segment("猫\xff")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCandidatesByOffset(t *testing.T) {
	d := newTestDictionary(t)

	lattice, err := d.CandidatesByOffset("日本語")
	require.NoError(t, err)
	require.Len(t, lattice, 3)
	assert.Equal(t, []*Word{wNihon, wNihongo}, lattice[0])
	assert.Empty(t, lattice[1])
	assert.Equal(t, []*Word{wGo}, lattice[2])

	// expressions take part in the lattice
	lattice, err = d.CandidatesByOffset("猫に小判")
	require.NoError(t, err)
	assert.Equal(t, []*Word{wNeko, wNekoniKob}, lattice[0])
}

func TestCandidatesByOffsetMissLimit(t *testing.T) {
	d := newTestDictionary(t, WithLatticeMissLimit(1))

	lattice, err := d.CandidatesByOffset("日本語")
	require.NoError(t, err)
	assert.Empty(t, lattice[0], "日 alone is no word")
	assert.Equal(t, []*Word{wGo}, lattice[2])
}

func TestCandidatesByOffsetDefaultMissLimit(t *testing.T) {
	afterThree := &Word{Kana: []string{"あいうえ"}, Senses: []Sense{{Meaning: []string{"vowels"}}}}
	afterFour := &Word{Kana: []string{"かきくけこ"}, Senses: []Sense{{Meaning: []string{"k row"}}}}
	d, err := NewDictionary([]*Word{afterThree, afterFour}, nil)
	require.NoError(t, err)
	require.Equal(t, 4, DefaultLatticeMissLimit)

	lattice, err := d.CandidatesByOffset("あいうえかきくけこ")
	require.NoError(t, err)
	assert.Equal(t, []*Word{afterThree}, lattice[0], "found after 3 misses")
	assert.Empty(t, lattice[4], "4 misses end the extension")

	// the linear segmenter is not bound by the limit
	s, err := d.Segment("あいうえかきくけこ")
	require.NoError(t, err)
	assert.Equal(t, []*Word{afterThree, afterFour}, s.Words())
}

func TestCandidatesByOffsetMatchesForms(t *testing.T) {
	text := "私は日本語です。猫に小判、いっぱい食べる"
	runes := []rune(text)

	for _, workers := range []int{1, 3, 16} {
		d := newTestDictionary(t, WithWorkers(workers), WithLatticeMissLimit(len(runes)))
		lattice, err := d.CandidatesByOffset(text)
		require.NoError(t, err)
		require.Len(t, lattice, len(runes))

		for i, words := range lattice {
			for _, w := range words {
				found := false
				for _, f := range w.Forms() {
					if strings.HasPrefix(string(runes[i:]), f) {
						found = true
					}
				}
				assert.True(t, found, "%v at offset %d", w.Forms(), i)
			}
		}
	}
}

func TestCandidatesByOffsetErrors(t *testing.T) {
	d := newTestDictionary(t)

	for _, text := range []string{"", " \t"} {
		_, err := d.CandidatesByOffset(text)
		assert.ErrorIs(t, err, ErrBlankInput)
	}
	_, err := d.CandidatesByOffset("\xff")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
