package analyzer

import (
	"strings"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// Normalizer filters stopwords out of a token sequence and annotates
// the survivors with their stemmed form. Order-preserving. Stopword
// matching is case-insensitive exact match after stripping common
// contractions; with no stemmer configured the stem falls back to the
// (lowercased) surface form.
type Normalizer struct {
	stopwords     map[string]struct{}
	stemmer       port.Stemmer
	caseSensitive bool
}

func NewNormalizer(stopwords map[string]struct{}, stemmer port.Stemmer, caseSensitive bool) *Normalizer {
	return &Normalizer{
		stopwords:     stopwords,
		stemmer:       stemmer,
		caseSensitive: caseSensitive,
	}
}

// Normalize returns the filtered, stem-annotated token sequence.
// Dropped stopwords are removed entirely, not replaced.
func (n *Normalizer) Normalize(tokens []domain.Token) []domain.Token {
	out := make([]domain.Token, 0, len(tokens))

	for _, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		if _, stop := n.stopwords[StripContractions(lower)]; stop {
			continue
		}

		key := lower
		if n.caseSensitive {
			key = tok.Text
		}
		if n.stemmer != nil {
			key = n.stemmer.Stem(key)
		}

		tok.Stem = key
		out = append(out, tok)
	}

	return out
}
