package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrEmptyCorpus indicates a score was requested before any document
	// was ingested. IDF is undefined for an empty corpus.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrInvalidGramSize indicates an n-gram size of zero or less.
	ErrInvalidGramSize = errors.New("ngram size must be positive")

	// ErrInvalidLimit indicates a negative keyword limit.
	ErrInvalidLimit = errors.New("limit must not be negative")

	// ErrUnknownRender indicates an unrecognized render mode.
	ErrUnknownRender = errors.New("unknown render mode")

	// ErrUnknownWeight indicates an unrecognized TF or IDF weighting name.
	ErrUnknownWeight = errors.New("unknown weighting scheme")

	// ErrDocumentNotFound indicates the document id is not in the corpus.
	ErrDocumentNotFound = errors.New("document not found")
)
