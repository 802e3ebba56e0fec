package main

import (
	"text2phenotype.com/postag/corpus"
	"text2phenotype.com/postag/logger"
	"text2phenotype.com/postag/pipeline"
	"text2phenotype.com/postag/pos"
	"text2phenotype.com/postag/s3client"
	"text2phenotype.com/postag/types"
	"errors"
	"flag"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"os"
)

type Config struct {
	ConfigPath string `envconfig:"POSTAG_CONFIG_PATH" default:""`
}

const (
	exitFailure = 1
	exitUsage   = 2
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: %s [flags] <train corpus> <test corpus> [%s|%s]\n",
		os.Args[0], types.BaselineTagger, types.HMMTagger)
	flag.PrintDefaults()
}

func newObjectStorage() (corpus.ObjectStorage, error) {
	client, err := s3client.New()
	if err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	logger.SetupLogging()
	postagLogger := logger.NewLogger("Main")
	errLogger := postagLogger.With().Caller().Logger()

	configPath := flag.String("config", "", "YAML configuration file (overrides POSTAG_CONFIG_PATH)")
	output := flag.String("out", "", "output location, defaults to <test>.out.<mode>.txt")
	terminal := flag.String("terminal", "", "terminal state selection of the hmm decoder: first or best")
	dumpModel := flag.String("dump-model", "", "write the trained hmm tables as JSON to this location")
	gold := flag.Bool("gold", false, "test corpus is tagged; report accuracy")
	flag.Usage = usage
	flag.Parse()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		errLogger.Error().Err(err).Msg("Failed to read environment")
		os.Exit(exitFailure)
	}
	if len(*configPath) == 0 {
		*configPath = env.ConfigPath
	}

	cfg := types.DefaultConfiguration()
	if len(*configPath) > 0 {
		var err error
		cfg, err = types.LoadConfiguration(*configPath)
		if err != nil {
			errLogger.Error().Err(err).Str("config_path", *configPath).Msg("Failed to load configuration")
			os.Exit(exitFailure)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *output
		case "terminal":
			cfg.Decoder.Terminal = *terminal
		case "dump-model":
			cfg.DumpModel = *dumpModel
		case "gold":
			cfg.Gold = *gold
		}
	})

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		usage()
		os.Exit(exitUsage)
	}
	mode := cfg.Tagger
	if len(args) == 3 {
		mode = args[2]
	}
	if err := pos.CheckTaggerName(mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	params := pipeline.GetParams(cfg, args[0], args[1], mode)
	store := corpus.NewStore(newObjectStorage)
	report, err := pipeline.Run(store, params)
	if err != nil {
		if errors.Is(err, pos.ErrUnknownTagger) {
			os.Exit(exitUsage)
		}
		errLogger.Error().Err(err).Msg("Tagging failed")
		os.Exit(exitFailure)
	}

	postagLogger.Info().Interface("report", report).Msg("Done")
}
