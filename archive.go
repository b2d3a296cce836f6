package jisho

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/klauspost/compress/gzip"
)

// ArchiveName is the path of the lexicon archive relative to the XDG data
// directories.
const ArchiveName = "jisho/dictionary.json.gz"

// On disk, words are wrapped with their kind so that verb and adjective
// payloads survive a round trip.
type archive struct {
	Kanji []archiveKanji `json:"kanji"`
	Words []archiveWord  `json:"words"`
}

type archiveWord struct {
	Type  WordKind        `json:"type"`
	Value json.RawMessage `json:"value"`
}

type archiveKanji struct {
	Literal     string   `json:"literal"`
	Meanings    []string `json:"meanings,omitempty"`
	KunReadings []string `json:"kun,omitempty"`
	OnReadings  []string `json:"on,omitempty"`
	Grade       int      `json:"grade,omitempty"`
	JLPT        int      `json:"jlpt,omitempty"`
	Frequency   int      `json:"frequency,omitempty"`
	Level       int      `json:"level,omitempty"`
}

// DefaultArchivePath finds the lexicon archive in the XDG data directories.
func DefaultArchivePath() (string, error) {
	path, err := xdg.SearchDataFile(ArchiveName)
	if err != nil {
		return "", fmt.Errorf("failed to locate lexicon archive: %w", err)
	}
	return path, nil
}

// LoadArchive reads the archive at path and builds a dictionary from it.
// An empty path selects DefaultArchivePath.
func LoadArchive(path string, opts ...Option) (*Dictionary, error) {
	if path == "" {
		var err error
		if path, err = DefaultArchivePath(); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon archive: %w", err)
	}
	defer f.Close()

	words, kanji, err := ReadArchive(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger.Debug().Str("path", path).Int("words", len(words)).Int("kanji", len(kanji)).Msg("archive loaded")
	return NewDictionary(words, kanji, opts...)
}

// ReadArchive decodes an archive, gzip compressed or not.
func ReadArchive(r io.Reader) ([]*Word, []*Kanji, error) {
	br := bufio.NewReader(r)
	var src io.Reader = br
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var a archive
	if err := json.NewDecoder(src).Decode(&a); err != nil {
		return nil, nil, fmt.Errorf("failed to decode archive: %w", err)
	}

	kanji := make([]*Kanji, 0, len(a.Kanji))
	for i, ak := range a.Kanji {
		r, size := utf8.DecodeRuneInString(ak.Literal)
		if r == utf8.RuneError || size != len(ak.Literal) {
			return nil, nil, fmt.Errorf("kanji #%d %q: %w", i, ak.Literal, ErrInvalidEntry)
		}
		kanji = append(kanji, &Kanji{
			Literal:     r,
			Meanings:    ak.Meanings,
			KunReadings: ak.KunReadings,
			OnReadings:  ak.OnReadings,
			Grade:       ak.Grade,
			JLPT:        ak.JLPT,
			Frequency:   ak.Frequency,
			Level:       ak.Level,
		})
	}

	words := make([]*Word, 0, len(a.Words))
	for i, aw := range a.Words {
		if aw.Type < KindWord || aw.Type > KindAdjective {
			return nil, nil, fmt.Errorf("word #%d: unknown kind %d: %w", i, aw.Type, ErrInvalidEntry)
		}
		w := new(Word)
		if err := json.Unmarshal(aw.Value, w); err != nil {
			return nil, nil, fmt.Errorf("word #%d: %w", i, err)
		}
		w.Kind = aw.Type
		words = append(words, w)
	}
	return words, kanji, nil
}

// WriteArchive encodes words and kanji as a gzip compressed archive.
func WriteArchive(w io.Writer, words []*Word, kanji []*Kanji) error {
	a := archive{
		Kanji: make([]archiveKanji, 0, len(kanji)),
		Words: make([]archiveWord, 0, len(words)),
	}
	for _, k := range kanji {
		a.Kanji = append(a.Kanji, archiveKanji{
			Literal:     string(k.Literal),
			Meanings:    k.Meanings,
			KunReadings: k.KunReadings,
			OnReadings:  k.OnReadings,
			Grade:       k.Grade,
			JLPT:        k.JLPT,
			Frequency:   k.Frequency,
			Level:       k.Level,
		})
	}
	for i, word := range words {
		raw, err := json.Marshal(word)
		if err != nil {
			return fmt.Errorf("word #%d: %w", i, err)
		}
		a.Words = append(a.Words, archiveWord{Type: word.Kind, Value: raw})
	}

	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(zw).Encode(a); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	return zw.Close()
}
