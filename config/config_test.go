package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tfidf/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NGram.Size != 1 {
		t.Errorf("expected ngram size 1, got %d", cfg.NGram.Size)
	}
	if cfg.Normalize.Stemming {
		t.Error("expected stemming off by default")
	}
	if cfg.Normalize.CaseSensitive {
		t.Error("expected case-insensitive matching by default")
	}
	if len(cfg.Normalize.Stopwords) != 0 || cfg.Normalize.BuiltinStopwords {
		t.Error("expected empty stopword set by default")
	}
	if cfg.Score.TFWeight != "raw" || cfg.Score.IDFWeight != "smooth" {
		t.Errorf("unexpected default weights: %s/%s", cfg.Score.TFWeight, cfg.Score.IDFWeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidate_GramSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NGram.Size = 0

	if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidGramSize) {
		t.Errorf("expected ErrInvalidGramSize, got %v", err)
	}
}

func TestValidate_UnknownNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Score.TFWeight = "quadratic"
	if err := cfg.Validate(); !errors.Is(err, domain.ErrUnknownWeight) {
		t.Errorf("expected ErrUnknownWeight, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Extract.Render = "fancy"
	if err := cfg.Validate(); !errors.Is(err, domain.ErrUnknownRender) {
		t.Errorf("expected ErrUnknownRender, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/tfidf.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tfidf.yaml")

	content := `
ngram:
  size: 3
  all_sizes: true
normalize:
  stemming: true
  stopwords: [the, and]
extract:
  top_k: 5
  render: normalized
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NGram.Size != 3 || !cfg.NGram.AllSizes {
		t.Errorf("unexpected ngram config: %+v", cfg.NGram)
	}
	if !cfg.Normalize.Stemming {
		t.Error("expected stemming enabled")
	}
	if len(cfg.Normalize.Stopwords) != 2 {
		t.Errorf("expected 2 stopwords, got %v", cfg.Normalize.Stopwords)
	}
	if cfg.Extract.TopK != 5 || cfg.Extract.Render != "normalized" {
		t.Errorf("unexpected extract config: %+v", cfg.Extract)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tfidf.yaml")

	content := `
ngram:
  size: -1
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); !errors.Is(err, domain.ErrInvalidGramSize) {
		t.Errorf("expected ErrInvalidGramSize, got %v", err)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tfidf.yaml")

	content := `
extract:
  top_k: 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Extract.TopK != 7 {
		t.Errorf("expected top_k=7, got %d", cfg.Extract.TopK)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NGram.Size != 1 {
		t.Error("expected defaults when no config file exists")
	}
}
