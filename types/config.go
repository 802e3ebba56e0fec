package types

import (
	"text2phenotype.com/postag/logger"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	// tagger selection
	BaselineTagger = "baseline"
	HMMTagger      = "hmm"

	// terminal state selection of the lattice decoder
	TerminalFirst = "first"
	TerminalBest  = "best"
)

var ErrUnknownTerminalPolicy = errors.New("unknown terminal policy")

type DecoderConfig struct {
	Terminal string `yaml:"terminal" json:"terminal"`
}

type Configuration struct {
	FilePath  string        `json:"file_path"`
	Tagger    string        `yaml:"tagger" json:"tagger"`
	Decoder   DecoderConfig `yaml:"decoder" json:"decoder"`
	Output    string        `yaml:"output" json:"output"`
	DumpModel string        `yaml:"dump_model" json:"dump_model"`
	Gold      bool          `yaml:"gold" json:"gold"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Decoder: DecoderConfig{Terminal: TerminalFirst},
	}
}

func (cfg Configuration) Validate() error {
	switch cfg.Decoder.Terminal {
	case TerminalFirst, TerminalBest:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTerminalPolicy, cfg.Decoder.Terminal)
}

// LoadConfiguration reads a YAML file on top of DefaultConfiguration, so
// fields missing from the file keep their defaults.
func LoadConfiguration(filePath string) (Configuration, error) {
	cfgLogger := logger.NewLogger("LoadConfiguration")

	cfg := DefaultConfiguration()
	cfg.FilePath = filePath

	buf, err := os.ReadFile(filePath)
	if err != nil {
		cfgLogger.Err(err).Str("file_path", filePath).Msg("Failed to read configuration")
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		cfgLogger.Err(err).Str("file_path", filePath).Msg("Failed to parse configuration")
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		cfgLogger.Err(err).Str("file_path", filePath).Msg("Invalid configuration")
		return cfg, err
	}

	return cfg, nil
}
