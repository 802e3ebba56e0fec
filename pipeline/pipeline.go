package pipeline

import (
	"bytes"
	"text2phenotype.com/postag/corpus"
	"text2phenotype.com/postag/logger"
	"text2phenotype.com/postag/pos"
	"text2phenotype.com/postag/types"
	"text2phenotype.com/postag/utils"
	"encoding/json"
	"fmt"
)

type Params struct {
	TrainLocation     string              `json:"train_location"`
	TestLocation      string              `json:"test_location"`
	OutputLocation    string              `json:"output_location"`
	Mode              string              `json:"mode"`
	Decoder           types.DecoderConfig `json:"decoder"`
	DumpModelLocation string              `json:"dump_model_location"`
	Gold              bool                `json:"gold"`
}

type Report struct {
	Mode              string    `json:"mode"`
	OutputLocation    string    `json:"output_location"`
	TrainingSentences int       `json:"training_sentences"`
	TrainingTokens    int       `json:"training_tokens"`
	TestSentences     int       `json:"test_sentences"`
	UnseenWords       int       `json:"unseen_words"`
	Accuracy          *Accuracy `json:"accuracy,omitempty"`
}

func GetParams(cfg types.Configuration, trainLocation string, testLocation string, mode string) Params {
	outputLocation := cfg.Output
	if len(outputLocation) == 0 {
		outputLocation = corpus.OutputLocation(testLocation, mode)
	}
	return Params{
		TrainLocation:     trainLocation,
		TestLocation:      testLocation,
		OutputLocation:    outputLocation,
		Mode:              mode,
		Decoder:           cfg.Decoder,
		DumpModelLocation: cfg.DumpModel,
		Gold:              cfg.Gold,
	}
}

func readCorpus(store *corpus.Store, location string, tagged bool, interner utils.StringStore) ([]types.Sentence, uint64, error) {
	buf, err := store.Read(location)
	if err != nil {
		return nil, 0, err
	}
	sents, err := corpus.ReadSentences(bytes.NewReader(buf), tagged, interner)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", location, err)
	}
	return sents, utils.HashString(string(buf)), nil
}

// Run trains the selected tagger on the training corpus, tags the test corpus
// and writes the result. Tagged output is only written once every sentence
// has been tagged; on any error it is not written at all.
func Run(store *corpus.Store, params Params) (Report, error) {
	runLogger := logger.NewLogger("Tagging pipeline").With().Str("mode", params.Mode).Logger()
	errLogger := runLogger.With().Caller().Logger()
	report := Report{Mode: params.Mode, OutputLocation: params.OutputLocation}

	if err := pos.CheckTaggerName(params.Mode); err != nil {
		errLogger.Err(err).Msg("Invalid tagger selection")
		return report, err
	}
	if err := (types.Configuration{Decoder: params.Decoder}).Validate(); err != nil {
		errLogger.Err(err).Msg("Invalid decoder configuration")
		return report, err
	}
	runLogger.Info().
		Interface("params", params).
		Msg("Starting tagging pipeline (see parameters in 'params' field)")

	interner := utils.NewStringStore()
	trainSents, fingerprint, err := readCorpus(store, params.TrainLocation, true, interner)
	if err != nil {
		errLogger.Err(err).Str("train_location", params.TrainLocation).Msg("Failed to read training corpus")
		return report, err
	}
	interner.Lock()
	report.TrainingSentences = len(trainSents)
	runLogger.Info().
		Int("sentences", len(trainSents)).
		Int("interned_strings", interner.Len()).
		Str("fingerprint", fmt.Sprintf("%016x", fingerprint)).
		Msg("Read training corpus")

	var tagger pos.Tagger
	var session *pos.Session
	switch params.Mode {
	case types.BaselineTagger:
		tagger, err = pos.NewBaselineTagger(trainSents)
		if err != nil {
			errLogger.Err(err).Msg("Failed to train baseline tagger")
			return report, err
		}
	case types.HMMTagger:
		model := pos.Estimate(trainSents)
		if model.IsEmpty() {
			errLogger.Err(pos.ErrEmptyModel).Msg("Failed to train sequence tagger")
			return report, pos.ErrEmptyModel
		}
		report.TrainingTokens = model.TokenCount
		runLogger.Info().
			Int("tokens", model.TokenCount).
			Int("words", len(model.Emissions)).
			Strs("tags", model.Tags()).
			Msg("Estimated sequence model")

		if len(params.DumpModelLocation) > 0 {
			if err := dumpModel(store, params.DumpModelLocation, model); err != nil {
				errLogger.Err(err).Str("dump_model_location", params.DumpModelLocation).Msg("Failed to dump model")
				return report, err
			}
		}
		session = model.NewSession()
		tagger = pos.NewSequenceTagger(session, params.Decoder)
	}

	testSents, _, err := readCorpus(store, params.TestLocation, params.Gold, interner)
	if err != nil {
		errLogger.Err(err).Str("test_location", params.TestLocation).Msg("Failed to read test corpus")
		return report, err
	}
	report.TestSentences = len(testSents)

	var acc *Accuracy
	if params.Gold {
		acc = &Accuracy{}
	}

	errCh := make(chan error, 1)
	in := corpus.NewSentenceReader(testSents)
	tagged := NewTaggingStage(tagger, runLogger, errCh)(in)
	scored := NewAccuracyStage(acc)(tagged)

	var out bytes.Buffer
	writeErr := corpus.WriteTagged(&out, scored)
	if err := <-errCh; err != nil {
		errLogger.Err(err).Msg("Failed to tag test corpus")
		return report, err
	}
	if writeErr != nil {
		errLogger.Err(writeErr).Msg("Failed to format tagged output")
		return report, writeErr
	}

	if session != nil {
		report.UnseenWords = session.Fallbacks()
	}
	if acc != nil {
		report.Accuracy = acc
		runLogger.Info().
			Float64("token_accuracy", acc.TokenAccuracy()).
			Float64("sentence_accuracy", acc.SentenceAccuracy()).
			Int("tokens", acc.TotalTokens).
			Msg("Evaluated against gold tags")
	}

	if err := store.Write(params.OutputLocation, out.Bytes()); err != nil {
		errLogger.Err(err).Str("output_location", params.OutputLocation).Msg("Failed to write output")
		return report, err
	}
	runLogger.Info().
		Int("sentences", len(testSents)).
		Int("unseen_words", report.UnseenWords).
		Str("output_location", params.OutputLocation).
		Msg("Finished tagging pipeline")
	return report, nil
}

func dumpModel(store *corpus.Store, location string, model *pos.Model) error {
	buf, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return err
	}
	return store.Write(location, buf)
}
