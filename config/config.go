package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tfidf/internal/adapter/scorer"
	"tfidf/internal/domain"
)

// Config holds all configuration for the TF-IDF pipeline.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	NGram     NGramConfig     `yaml:"ngram"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Score     ScoreConfig     `yaml:"score"`
	Extract   ExtractConfig   `yaml:"extract"`
}

// CorpusConfig selects which files the index command ingests.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// NGramConfig controls n-gram assembly.
type NGramConfig struct {
	Size     int  `yaml:"size"`
	AllSizes bool `yaml:"all_sizes"` // emit every size 1..Size, not only Size
}

// NormalizeConfig controls stopword filtering and stemming.
type NormalizeConfig struct {
	Stemming         bool     `yaml:"stemming"`
	CaseSensitive    bool     `yaml:"case_sensitive"`
	Stopwords        []string `yaml:"stopwords"`
	StopwordsFile    string   `yaml:"stopwords_file"`
	BuiltinStopwords bool     `yaml:"builtin_stopwords"` // include the bundled English stoplist
}

// ScoreConfig selects the TF and IDF weighting schemes.
type ScoreConfig struct {
	TFWeight  string `yaml:"tf_weight"`  // raw, log, binary, norm50
	IDFWeight string `yaml:"idf_weight"` // smooth, basic, max, prob
}

// ExtractConfig holds keyword extraction defaults.
type ExtractConfig struct {
	TopK   int    `yaml:"top_k"`
	Render string `yaml:"render"` // surface or normalized
}

// DefaultConfig returns the default configuration: unigrams, no
// stopwords, identity stemming, case-insensitive matching.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.tfidf/**", "**/node_modules/**", "**/vendor/**"},
		},
		NGram: NGramConfig{
			Size:     1,
			AllSizes: false,
		},
		Normalize: NormalizeConfig{
			Stemming:         false,
			CaseSensitive:    false,
			BuiltinStopwords: false,
		},
		Score: ScoreConfig{
			TFWeight:  string(scorer.TFRaw),
			IDFWeight: string(scorer.IDFSmooth),
		},
		Extract: ExtractConfig{
			TopK:   20,
			Render: string(scorer.RenderSurface),
		},
	}
}

// Validate rejects configurations the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.NGram.Size < 1 {
		return fmt.Errorf("ngram size %d: %w", c.NGram.Size, domain.ErrInvalidGramSize)
	}
	if _, err := scorer.ParseTFWeight(c.Score.TFWeight); err != nil {
		return err
	}
	if _, err := scorer.ParseIDFWeight(c.Score.IDFWeight); err != nil {
		return err
	}
	if _, err := scorer.ParseRender(c.Extract.Render); err != nil {
		return err
	}
	return nil
}

// Load loads configuration from a YAML file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory, looking for
// tfidf.yaml then .tfidf/config.yaml.
func LoadFromDir(dir string) (*Config, error) {
	for _, path := range []string{
		filepath.Join(dir, "tfidf.yaml"),
		filepath.Join(dir, ".tfidf", "config.yaml"),
	} {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CorpusDBPath returns the path to the corpus snapshot database.
func CorpusDBPath(dir string) string {
	return filepath.Join(dir, ".tfidf", "corpus.db")
}

// EnsureWorkDir ensures the .tfidf directory exists.
func EnsureWorkDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".tfidf"), 0755)
}
