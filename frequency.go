package jisho

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadKanjiFrequency loads a kanji ranking table in CSV form: a header line,
// then one kanji per record with the literal in the first column and its rank
// in the third. Records whose rank does not parse are skipped.
func ReadKanjiFrequency(r io.Reader) (map[rune]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ranks := make(map[rune]int)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if len(record) < 3 {
			continue
		}

		literal := strings.TrimSpace(record[0])
		k, size := utf8.DecodeRuneInString(literal)
		if size == 0 || size != len(literal) || !isKanji(k) {
			Logger.Debug().Str("literal", literal).Msg("skipping non kanji record")
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil || rank < 1 {
			continue
		}
		if _, dup := ranks[k]; !dup {
			ranks[k] = rank
		}
	}
	return ranks, nil
}

// ApplyKanjiFrequency overwrites the Frequency of every kanji found in ranks
// and returns how many records it changed.
func ApplyKanjiFrequency(kanji []*Kanji, ranks map[rune]int) (updated int) {
	for _, k := range kanji {
		if rank, ok := ranks[k.Literal]; ok && rank != k.Frequency {
			k.Frequency = rank
			updated++
		}
	}
	return
}
