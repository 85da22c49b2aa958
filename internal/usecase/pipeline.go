package usecase

import (
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/domain"
)

// Pipeline runs the full analysis flow for one document:
// clean → tokenize → normalize → n-gram assembly.
type Pipeline struct {
	tokenizer  *analyzer.Tokenizer
	normalizer *analyzer.Normalizer
	ngrams     *analyzer.NGramBuilder
}

func NewPipeline(tokenizer *analyzer.Tokenizer, normalizer *analyzer.Normalizer, ngrams *analyzer.NGramBuilder) *Pipeline {
	return &Pipeline{
		tokenizer:  tokenizer,
		normalizer: normalizer,
		ngrams:     ngrams,
	}
}

// Analyze returns the cleaned text and its n-gram terms. Malformed
// input degrades to fewer or zero terms, never an error.
func (p *Pipeline) Analyze(raw string) (string, []domain.Term) {
	text := analyzer.Clean(raw)
	tokens := p.tokenizer.Tokenize(text)
	tokens = p.normalizer.Normalize(tokens)
	return text, p.ngrams.Build(text, tokens)
}
