package jisho

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

type ProcessingStatus int

const (
	StatusPreserved  ProcessingStatus = iota // Kanji was preserved (regular reading & under frequency threshold)
	StatusIrregular                          // Kanji was transliterated due to irregular reading
	StatusInfrequent                         // Kanji was transliterated due to being over frequency threshold
	StatusUnmappable                         // Kanji was kept as is for lack of a dictionary word
	StatusNotKanji                           // Token was not a kanji character
)

// TransliterationResult contains both the final text and detailed token information
type TransliterationResult struct {
	Text   string
	Tokens []ProcessedToken
}

// ProcessedToken represents a processed token with its original form and transliteration
type ProcessedToken struct {
	Original string
	Result   string
	Status   ProcessingStatus
}

// sense tags marking a spelling whose kanji do not carry their usual reading
var irregularTags = []string{"ateji", "gikun", "iK", "ik", "rK", "oK"}

// SelectiveTranslit performs selective transliteration of the tokens based on kanji frequency.
// It preserves the kanji of a token when all of them are:
//   - Ranked at most freqThreshold (lower number = more frequent)
//   - Read regularly by the word they spell
//
// Other tokens are converted to their kana reading.
func (d *Dictionary) SelectiveTranslit(s *Sentence, freqThreshold int) string {
	return d.SelectiveTranslitFullMapping(s, freqThreshold).Text
}

func (d *Dictionary) SelectiveTranslitFullMapping(s *Sentence, freqThreshold int) *TransliterationResult {
	res := new(TransliterationResult)
	var text strings.Builder

	for _, tok := range s.Tokens {
		pt := ProcessedToken{Original: tok.Text, Result: tok.Text}
		switch {
		case !ContainsKanjis(tok.Text):
			pt.Status = StatusNotKanji
		case !tok.Found:
			pt.Status = StatusUnmappable
		case !d.frequentKanji(tok.Text, freqThreshold):
			pt.Result = tok.Kana()
			pt.Status = StatusInfrequent
		case slices.ContainsFunc(irregularTags, tok.Word.HasInfo):
			pt.Result = tok.Kana()
			pt.Status = StatusIrregular
		default:
			pt.Status = StatusPreserved
		}
		text.WriteString(pt.Result)
		res.Tokens = append(res.Tokens, pt)
	}

	res.Text = text.String()
	return res
}

// frequentKanji reports whether every kanji of s is ranked within threshold.
func (d *Dictionary) frequentKanji(s string, threshold int) bool {
	for _, r := range s {
		if !isKanji(r) {
			continue
		}
		k := d.KanjiByLiteral(r)
		if k == nil || k.Frequency <= 0 || k.Frequency > threshold {
			return false
		}
	}
	return true
}

// String provides human-readable status descriptions
func (s ProcessingStatus) String() string {
	return map[ProcessingStatus]string{
		StatusPreserved:  "Preserved (regular reading & frequent)",
		StatusIrregular:  "Transliterated (irregular reading)",
		StatusInfrequent: "Transliterated (infrequent)",
		StatusUnmappable: "Preserved (unknown word)",
		StatusNotKanji:   "Preserved (not kanji)",
	}[s]
}

// PrintProcessingDetails prints a human-readable report of the transliteration process
func PrintProcessingDetails(result *TransliterationResult) {
	FprintProcessingDetails(os.Stdout, result)
}

func FprintProcessingDetails(w io.Writer, result *TransliterationResult) {
	fmt.Fprintf(w, "Final text: %s\n\n", result.Text)
	fmt.Fprintln(w, "Processing details:")
	for _, token := range result.Tokens {
		fmt.Fprintf(w, "\tOriginal: %s\n", token.Original)
		fmt.Fprintf(w, "\tResult:   %s\n", token.Result)
		fmt.Fprintf(w, "\tStatus:   %s\n", token.Status)
		fmt.Fprintln(w, "------------------")
	}
}
