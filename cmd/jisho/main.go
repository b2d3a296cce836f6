package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/tassa-yoniso-manasi-karoto/go-jisho"
)

// env is shared by every command of one invocation.
type env struct {
	cfg  *jisho.Config
	json bool

	once sync.Once
	dict *jisho.Dictionary
	err  error
}

func newApp() *cli.App {
	e := new(env)
	return &cli.App{
		Name:                   "jisho",
		Usage:                  "Japanese dictionary: romaji input, word search and text segmentation",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: $XDG_CONFIG_HOME/" + jisho.ConfigName + ")",
			},
			&cli.StringFlag{
				Name:    "archive",
				Aliases: []string{"a"},
				Usage:   "Lexicon archive (overrides config)",
				EnvVars: []string{"JISHO_ARCHIVE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug information to stderr",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			kanaCommand(e),
			romajiCommand(e),
			searchCommand(e),
			segmentCommand(e),
			kanjiCommand(e),
			rankCommand(e),
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	cfg, err := jisho.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if a := c.String("archive"); a != "" {
		cfg.Archive = a
	}
	e.cfg = cfg
	e.json = c.Bool("json")

	level := cfg.Level()
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	jisho.Logger = jisho.NewConsoleLogger(c.App.ErrWriter, level)
	return nil
}

// dictionary loads the lexicon on first use, so that commands which do not
// need it stay fast.
func (e *env) dictionary() (*jisho.Dictionary, error) {
	e.once.Do(func() {
		e.dict, e.err = jisho.LoadArchive(e.cfg.Archive, e.cfg.Options()...)
	})
	return e.dict, e.err
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}
}
