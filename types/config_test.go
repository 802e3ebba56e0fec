package types

import (
	"errors"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	filePath := filepath.Join(t.TempDir(), "postag.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

func TestLoadConfiguration(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		filePath := writeConfig(t, `
tagger: hmm
decoder:
  terminal: best
output: s3://bucket/out.txt
dump_model: model.json
gold: true
`)
		cfg, err := LoadConfiguration(filePath)
		require.NoError(t, err)
		require.Equal(t, Configuration{
			FilePath:  filePath,
			Tagger:    HMMTagger,
			Decoder:   DecoderConfig{Terminal: TerminalBest},
			Output:    "s3://bucket/out.txt",
			DumpModel: "model.json",
			Gold:      true,
		}, cfg)
	})
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfiguration(writeConfig(t, "tagger: baseline\n"))
		require.NoError(t, err)
		require.Equal(t, BaselineTagger, cfg.Tagger)
		require.Equal(t, TerminalFirst, cfg.Decoder.Terminal)
		require.False(t, cfg.Gold)
	})
	t.Run("Unknown terminal", func(t *testing.T) {
		_, err := LoadConfiguration(writeConfig(t, "decoder:\n  terminal: last\n"))
		require.True(t, errors.Is(err, ErrUnknownTerminalPolicy))
	})
	t.Run("Broken YAML", func(t *testing.T) {
		_, err := LoadConfiguration(writeConfig(t, "decoder: [\n"))
		require.Error(t, err)
	})
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
		require.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestSentence(t *testing.T) {
	sent := NewSentence([]string{"the", "dog"})
	require.Equal(t, 2, sent.Len())
	require.Equal(t, []string{"the", "dog"}, sent.Words())
	require.False(t, sent.Tokens[0].IsTagged())

	tagged := Sentence{Tokens: []Token{{Word: "the", Tag: "DET"}, {Word: "dog", Tag: "NOUN"}}}
	require.Equal(t, []string{"DET", "NOUN"}, tagged.Tags())
	require.Equal(t, sent.GetHashCode(), tagged.GetHashCode())
	require.NotEqual(t, tagged.Tokens[0].GetHashCode(), sent.Tokens[0].GetHashCode())

	var hashable Hashable = tagged
	require.NotEqual(t, hashable.GetHashCode(), NewSentence([]string{"thedog"}).GetHashCode())
}
