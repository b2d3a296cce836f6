package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tassa-yoniso-manasi-karoto/go-jisho"
)

func TestMain(m *testing.M) {
	color.Enable = false
	goleak.VerifyTestMain(m)
}

func writeFixtures(t *testing.T) (configPath string) {
	t.Helper()
	dir := t.TempDir()

	words := []*jisho.Word{
		{Kanji: []string{"猫"}, Kana: []string{"ねこ"}, Senses: []jisho.Sense{{Info: []string{"n"}, Meaning: []string{"cat"}}}},
		{Kanji: []string{"目録"}, Kana: []string{"もくろく"}, Senses: []jisho.Sense{{Info: []string{"n"}, Meaning: []string{"catalogue", "list"}}}},
		{Kanji: []string{"私"}, Kana: []string{"わたし"}, Senses: []jisho.Sense{{Info: []string{"pn"}, Meaning: []string{"I", "me"}}}},
		{Kana: []string{"は"}, Senses: []jisho.Sense{{Info: []string{"prt"}, Meaning: []string{"topic marker"}}}},
		{Kanji: []string{"日本"}, Kana: []string{"にほん"}, Senses: []jisho.Sense{{Info: []string{"n"}, Meaning: []string{"Japan"}}}},
		{Kanji: []string{"日本語"}, Kana: []string{"にほんご"}, Senses: []jisho.Sense{{Info: []string{"n"}, Meaning: []string{"Japanese"}}}},
		{Kana: []string{"です"}, Senses: []jisho.Sense{{Info: []string{"aux-v"}, Meaning: []string{"be"}}}},
	}
	kanji := []*jisho.Kanji{
		{Literal: '日', Meanings: []string{"day", "sun"}, Frequency: 1},
		{Literal: '本', Meanings: []string{"book"}, Frequency: 10},
		{Literal: '語', Meanings: []string{"word"}, Frequency: 301},
		{Literal: '私', Meanings: []string{"I"}, Frequency: 424},
		{Literal: '猫', Meanings: []string{"cat"}, KunReadings: []string{"ねこ"}, Frequency: 1702},
	}

	archive := filepath.Join(dir, "dictionary.json.gz")
	f, err := os.Create(archive)
	require.NoError(t, err)
	require.NoError(t, jisho.WriteArchive(f, words, kanji))
	require.NoError(t, f.Close())

	cfg := jisho.DefaultConfig()
	cfg.Archive = archive
	cfg.LogLevel = "error"
	cfg.Workers = 2
	data, err := cfg.Encode()
	require.NoError(t, err)

	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, data, 0o644))
	return configPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"jisho", "--config", writeFixtures(t)}, args...))
	return stdout.String(), err
}

func TestKanaAndRomaji(t *testing.T) {
	out, err := run(t, "kana", "kyouto")
	require.NoError(t, err)
	assert.Equal(t, "きょうと\n", out)

	out, err = run(t, "kana", "shin")
	require.NoError(t, err)
	assert.Equal(t, "しん\n", out)

	out, err = run(t, "kana", "--realtime", "shin")
	require.NoError(t, err)
	assert.Equal(t, "しn\n", out)

	out, err = run(t, "kana", "--realtime", "--force", "shin")
	require.NoError(t, err)
	assert.Equal(t, "しん\n", out)

	out, err = run(t, "romaji", "カタカナ")
	require.NoError(t, err)
	assert.Equal(t, "KATAKANA\n", out)

	_, err = run(t, "kana")
	assert.ErrorContains(t, err, "usage")
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "--json", "search", "cat")
	require.NoError(t, err)

	var words []jisho.Word
	require.NoError(t, json.Unmarshal([]byte(out), &words))
	require.Len(t, words, 2)
	assert.Equal(t, []string{"猫"}, words[0].Kanji)
	assert.Equal(t, []string{"目録"}, words[1].Kanji)

	out, err = run(t, "search", "-n", "1", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "猫")
	assert.NotContains(t, out, "目録")

	out, err = run(t, "search", "catalgue")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
	assert.Contains(t, out, "catalogue")

	_, err = run(t, "search", `""`)
	assert.ErrorContains(t, err, "usage")
}

func TestSegmentCommand(t *testing.T) {
	out, err := run(t, "segment", "--gloss", "私は日本語です")
	require.NoError(t, err)
	assert.Equal(t, "私(I; me) は(topic marker) 日本語(Japanese) です(be)\n", out)

	out, err = run(t, "segment", "--selective", "100", "私は日本語です")
	require.NoError(t, err)
	assert.Equal(t, "わたしはにほんごです\n", out)

	out, err = run(t, "--json", "segment", "--lattice", "日本語")
	require.NoError(t, err)
	var lattice [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &lattice))
	assert.Equal(t, [][]string{{"日本", "日本語"}, nil, nil}, lattice)

	out, err = run(t, "segment", "私は")
	require.NoError(t, err)
	assert.Contains(t, out, "watashi ha")
}

func TestKanjiCommand(t *testing.T) {
	out, err := run(t, "kanji", "日本猫")
	require.NoError(t, err)
	assert.Contains(t, out, "day, sun")
	assert.Contains(t, out, "kun: ねこ")

	_, err = run(t, "kanji", "ねこ")
	assert.Error(t, err)
}

func TestMissingArchive(t *testing.T) {
	_, err := run(t, "--archive", filepath.Join(t.TempDir(), "none.json.gz"), "search", "cat")
	assert.Error(t, err)
}

func TestRankCommand(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "ranks.csv")
	require.NoError(t, os.WriteFile(table, []byte("kanji,id,frequency\n猫,1,50\n語,2,301\n"), 0o644))
	ranked := filepath.Join(dir, "ranked.json.gz")

	out, err := run(t, "rank", "--out", ranked, table)
	require.NoError(t, err)
	assert.Equal(t, "1 of 5 kanji re-ranked\n", out)

	d, err := jisho.LoadArchive(ranked)
	require.NoError(t, err)
	assert.Equal(t, 50, d.KanjiByLiteral('猫').Frequency)

	_, err = run(t, "rank", table)
	assert.Error(t, err, "--out is required")
}
