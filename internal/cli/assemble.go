package cli

import (
	"fmt"

	"tfidf/config"
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/port"
	"tfidf/internal/usecase"
)

// newPipeline assembles the analysis pipeline from the configuration:
// stopword set (builtin list, inline words, optional file), stemmer,
// and n-gram builder.
func newPipeline(cfg *config.Config) (*usecase.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var words []string
	if cfg.Normalize.BuiltinStopwords {
		words = append(words, analyzer.DefaultStopwords()...)
	}
	words = append(words, cfg.Normalize.Stopwords...)
	if cfg.Normalize.StopwordsFile != "" {
		fromFile, err := analyzer.LoadStopwords(cfg.Normalize.StopwordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load stopwords: %w", err)
		}
		words = append(words, fromFile...)
	}

	var stemmer port.Stemmer
	if cfg.Normalize.Stemming {
		stemmer = analyzer.NewPorterStemmer()
	}

	ngrams, err := analyzer.NewNGramBuilder(cfg.NGram.Size, cfg.NGram.AllSizes)
	if err != nil {
		return nil, err
	}

	normalizer := analyzer.NewNormalizer(analyzer.NewStopwordSet(words), stemmer, cfg.Normalize.CaseSensitive)
	return usecase.NewPipeline(analyzer.NewTokenizer(), normalizer, ngrams), nil
}
