package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"

	"github.com/tassa-yoniso-manasi-karoto/go-jisho"
)

// print writes v as JSON in --json mode, plain otherwise.
func (e *env) print(c *cli.Context, v any, plain string) error {
	if e.json {
		return printJSON(c.App.Writer, v)
	}
	_, err := fmt.Fprintln(c.App.Writer, plain)
	return err
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = w.Write(pretty.Pretty(b))
	return err
}

func printWord(w io.Writer, d *jisho.Dictionary, n int, word *jisho.Word) {
	head := color.Bold.Sprint(word.MainReading())
	if k := word.MainKana(); k != "" && k != word.MainReading() {
		head += " " + color.Cyan.Sprint("【"+k+"】")
	}
	var extra []string
	if len(word.Kanji) > 1 {
		extra = append(extra, "also "+strings.Join(word.Kanji[1:], "、"))
	}
	if len(word.Kana) > 1 {
		extra = append(extra, "read "+strings.Join(word.Kana[1:], "、"))
	}
	if word.Frequency > 0 {
		extra = append(extra, fmt.Sprintf("#%d", word.Frequency))
	}
	fmt.Fprintf(w, "%s %s %s\n", color.Gray.Sprintf("%2d.", n), head, color.Gray.Sprint(strings.Join(extra, " · ")))

	for i, s := range word.Senses {
		tags := ""
		if len(s.Info) > 0 {
			tags = color.Yellow.Sprint("["+strings.Join(s.Info, ", ")+"] ")
		}
		fmt.Fprintf(w, "     %d. %s%s\n", i+1, tags, strings.Join(s.Meaning, "; "))
	}
	if used := d.UsedKanji(word); len(used) > 0 {
		var parts []string
		for _, k := range used {
			parts = append(parts, string(k.Literal)+" "+strings.Join(k.Meanings, ", "))
		}
		fmt.Fprintln(w, "    ", color.Gray.Sprint(strings.Join(parts, " | ")))
	}
}

func printKanji(w io.Writer, k *jisho.Kanji) {
	fmt.Fprintf(w, "%s  %s\n", color.Bold.Sprint(string(k.Literal)), strings.Join(k.Meanings, ", "))
	if len(k.KunReadings) > 0 {
		fmt.Fprintf(w, "   kun: %s\n", strings.Join(k.KunReadings, "、"))
	}
	if len(k.OnReadings) > 0 {
		fmt.Fprintf(w, "   on:  %s\n", strings.Join(k.OnReadings, "、"))
	}
	fmt.Fprintln(w, color.Gray.Sprintf("   grade %d · JLPT N%d · frequency #%d", k.Grade, k.JLPT, k.Frequency))
}

func printSentence(w io.Writer, s *jisho.Sentence, gloss bool) {
	if gloss {
		fmt.Fprintln(w, s.Gloss())
		return
	}
	var parts []string
	for _, tok := range s.Tokens {
		if tok.Found {
			parts = append(parts, color.Green.Sprint(tok.Text))
		} else {
			parts = append(parts, color.Red.Sprint(tok.Text))
		}
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	fmt.Fprintln(w, color.Gray.Sprint(s.Kana()))
	fmt.Fprintln(w, color.Gray.Sprint(s.RomanSpaced()))
}

type tokenJSON struct {
	Text    string `json:"text"`
	Kana    string `json:"kana"`
	Found   bool   `json:"found"`
	Exact   bool   `json:"exact"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Meaning string `json:"meaning,omitempty"`
}

func sentenceJSON(s *jisho.Sentence) []tokenJSON {
	out := make([]tokenJSON, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		t := tokenJSON{
			Text:  tok.Text,
			Kana:  tok.Kana(),
			Found: tok.Found,
			Exact: tok.Exact,
			Start: tok.Start,
			End:   tok.End,
		}
		if tok.Found {
			t.Meaning = tok.Word.MainMeaning()
		}
		out = append(out, t)
	}
	return out
}

func dump(w io.Writer, v any) {
	pp.Fprintln(w, v)
}

func (e *env) printLattice(c *cli.Context, d *jisho.Dictionary, text string) error {
	lattice, err := d.CandidatesByOffset(text)
	if err != nil {
		return err
	}
	runes := []rune(text)
	if e.json {
		out := make([][]string, len(lattice))
		for i, words := range lattice {
			for _, w := range words {
				out[i] = append(out[i], w.MainReading())
			}
		}
		return printJSON(c.App.Writer, out)
	}
	for i, words := range lattice {
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s %s\n", color.Gray.Sprintf("%3d", i), color.Bold.Sprint(string(runes[i])))
		for _, w := range words {
			fmt.Fprintf(c.App.Writer, "      %s\n", w)
		}
	}
	return nil
}

func (e *env) printNoMatches(c *cli.Context, d *jisho.Dictionary, q *jisho.Query) error {
	var suggestions []string
	if n := e.cfg.Search.Suggest; n > 0 {
		for _, t := range slices.Concat(q.Meaning, q.ExactMeaning) {
			for _, s := range d.Suggest(t, n) {
				suggestions = append(suggestions, s.Word)
			}
		}
	}
	if e.json {
		return printJSON(c.App.Writer, map[string]any{"results": []any{}, "suggestions": suggestions})
	}
	fmt.Fprintln(c.App.Writer, color.Yellow.Sprintf("no matches for %s", q))
	if len(suggestions) > 0 {
		fmt.Fprintln(c.App.Writer, "did you mean:", strings.Join(suggestions, ", "))
	}
	return nil
}
