package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/urfave/cli/v2"

	"github.com/tassa-yoniso-manasi-karoto/go-jisho"
)

func kanaCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "kana",
		Aliases:   []string{"k"},
		Usage:     "Convert romaji to kana (UPPERCASE gives katakana)",
		ArgsUsage: "<romaji>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Convert any n left over (default: true unless --realtime)"},
			&cli.BoolFlag{Name: "realtime", Aliases: []string{"r"}, Usage: "Leave a trailing n unconverted"},
		},
		Action: func(c *cli.Context) error {
			text, err := joinArgs(c, "usage: jisho kana <romaji>...")
			if err != nil {
				return err
			}
			realtime := c.Bool("realtime")
			force := !realtime
			if c.IsSet("force") {
				force = c.Bool("force")
			}
			out := jisho.ToKana(text, force, realtime)
			return e.print(c, map[string]string{"input": text, "kana": out}, out)
		},
	}
}

func romajiCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "romaji",
		Aliases:   []string{"r"},
		Usage:     "Convert kana to romaji",
		ArgsUsage: "<kana>...",
		Action: func(c *cli.Context) error {
			text, err := joinArgs(c, "usage: jisho romaji <kana>...")
			if err != nil {
				return err
			}
			out := jisho.ToRomaji(text)
			return e.print(c, map[string]string{"input": text, "romaji": out}, out)
		},
	}
}

func searchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Search words by reading or meaning",
		Description: `Terms are searched as kana when they transliterate fully and are not an
English word of the lexicon, otherwise as the start of an English word.
  *term     exact kana form or exact meaning
  !term     kana whenever possible
  "a b"     exact meaning phrase`,
		ArgsUsage: "<query>...",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Maximum number of results (0 = config)"},
		},
		Action: func(c *cli.Context) error {
			raw := strings.Join(c.Args().Slice(), " ")
			d, err := e.dictionary()
			if err != nil {
				return err
			}

			q, err := d.ParseQuery(raw)
			if errors.Is(err, jisho.ErrNoQuery) {
				return errors.New("usage: jisho search <query>...")
			}
			if err != nil {
				return err
			}
			jisho.Logger.Debug().
				Str("canonical", shellescape.QuoteCommand(append([]string{"jisho", "search"}, q.Args()...))).
				Msg("query")

			words, err := d.SearchQuery(c.Context, q)
			if errors.Is(err, jisho.ErrNoMatches) {
				return e.printNoMatches(c, d, q)
			}
			if err != nil {
				return err
			}

			limit := c.Int("limit")
			if limit == 0 {
				limit = e.cfg.Search.Limit
			}
			if limit > 0 && len(words) > limit {
				words = words[:limit]
			}
			if e.json {
				return printJSON(c.App.Writer, words)
			}
			for i, w := range words {
				printWord(c.App.Writer, d, i+1, w)
			}
			return nil
		},
	}
}

func segmentCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "segment",
		Aliases:   []string{"seg"},
		Usage:     "Split Japanese text into dictionary words",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lattice", Aliases: []string{"l"}, Usage: "List every word found at each offset"},
			&cli.BoolFlag{Name: "dump", Usage: "Dump the raw segmentation"},
			&cli.BoolFlag{Name: "gloss", Aliases: []string{"g"}, Usage: "Print glosses next to the tokens"},
			&cli.IntFlag{Name: "selective", Usage: "Keep only kanji ranked within `N`, spell the rest in kana (0 = config)"},
			&cli.BoolFlag{Name: "details", Usage: "With --selective, explain every token"},
		},
		Action: func(c *cli.Context) error {
			text, err := joinArgs(c, "usage: jisho segment <text>")
			if err != nil {
				return err
			}
			d, err := e.dictionary()
			if err != nil {
				return err
			}
			if c.Bool("lattice") {
				return e.printLattice(c, d, text)
			}

			s, err := d.Segment(text)
			if err != nil {
				return err
			}
			switch {
			case c.Bool("dump"):
				dump(c.App.Writer, s)
			case c.IsSet("selective"):
				threshold := c.Int("selective")
				if threshold == 0 {
					threshold = e.cfg.Segment.FrequencyThreshold
				}
				res := d.SelectiveTranslitFullMapping(s, threshold)
				if e.json {
					return printJSON(c.App.Writer, res)
				}
				if c.Bool("details") {
					jisho.FprintProcessingDetails(c.App.Writer, res)
					return nil
				}
				fmt.Fprintln(c.App.Writer, res.Text)
			case e.json:
				return printJSON(c.App.Writer, sentenceJSON(s))
			default:
				printSentence(c.App.Writer, s, c.Bool("gloss"))
			}
			return nil
		},
	}
}

func kanjiCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "kanji",
		Usage:     "Show the kanji of the text",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			text, err := joinArgs(c, "usage: jisho kanji <text>")
			if err != nil {
				return err
			}
			d, err := e.dictionary()
			if err != nil {
				return err
			}

			var found []*jisho.Kanji
			for _, r := range text {
				if k := d.KanjiByLiteral(r); k != nil {
					found = append(found, k)
				}
			}
			if len(found) == 0 {
				return fmt.Errorf("no known kanji in %q", text)
			}
			if e.json {
				return printJSON(c.App.Writer, found)
			}
			for _, k := range found {
				printKanji(c.App.Writer, k)
			}
			return nil
		},
	}
}

func rankCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "rank",
		Usage:     "Rewrite the kanji frequency ranks of the archive from a CSV table",
		ArgsUsage: "<table.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the ranked archive to `FILE`", Required: true},
			&cli.BoolFlag{Name: "dump", Usage: "Dump the parsed ranks"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: jisho rank --out <archive> <table.csv>")
			}
			table, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer table.Close()
			ranks, err := jisho.ReadKanjiFrequency(table)
			if err != nil {
				return err
			}
			if c.Bool("dump") {
				dump(c.App.Writer, ranks)
			}

			path := e.cfg.Archive
			if path == "" {
				if path, err = jisho.DefaultArchivePath(); err != nil {
					return err
				}
			}
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			words, kanji, err := jisho.ReadArchive(in)
			in.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			updated := jisho.ApplyKanjiFrequency(kanji, ranks)
			out, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := jisho.WriteArchive(out, words, kanji); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			jisho.Logger.Info().Int("ranks", len(ranks)).Int("updated", updated).Str("out", c.String("out")).Msg("archive ranked")
			return e.print(c, map[string]int{"ranks": len(ranks), "updated": updated},
				fmt.Sprintf("%d of %d kanji re-ranked", updated, len(kanji)))
		},
	}
}

func joinArgs(c *cli.Context, usage string) (string, error) {
	if c.NArg() < 1 {
		return "", errors.New(usage)
	}
	return strings.Join(c.Args().Slice(), " "), nil
}
