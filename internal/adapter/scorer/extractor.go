package scorer

import (
	"fmt"
	"sort"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// Render selects how an extracted keyword is written out.
type Render string

const (
	// RenderSurface renders the original source span of the term's
	// first occurrence, casing and spacing preserved.
	RenderSurface Render = "surface"
	// RenderNormalized renders the stemmed n-gram key.
	RenderNormalized Render = "normalized"
)

// ParseRender maps a config name to a render mode. Empty means
// surface.
func ParseRender(name string) (Render, error) {
	switch Render(name) {
	case "", RenderSurface:
		return RenderSurface, nil
	case RenderNormalized:
		return RenderNormalized, nil
	}
	return "", fmt.Errorf("render %q: %w", name, domain.ErrUnknownRender)
}

// Extractor ranks a document's terms by TF-IDF score.
type Extractor struct {
	stats  port.Statistics
	scorer *Scorer
}

func NewExtractor(stats port.Statistics, scorer *Scorer) *Extractor {
	return &Extractor{stats: stats, scorer: scorer}
}

// TopKeywords scores every distinct term of the document, sorts
// descending by score with ties broken by first occurrence in the
// document, and returns the top k rendered per the requested mode.
// k = 0 yields an empty result; k beyond the distinct term count
// returns everything available.
func (e *Extractor) TopKeywords(docID string, k int, render Render) ([]domain.ScoredTerm, error) {
	if k < 0 {
		return nil, fmt.Errorf("top keywords k=%d: %w", k, domain.ErrInvalidLimit)
	}
	if _, err := ParseRender(string(render)); err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}

	terms := e.stats.DocumentTerms(docID)
	results := make([]domain.ScoredTerm, 0, len(terms))

	for _, ts := range terms {
		score, err := e.scorer.Score(docID, ts.Key)
		if err != nil {
			return nil, err
		}

		rendered := ts.Key
		if render == RenderSurface || render == "" {
			rendered = ts.Surface
		}

		results = append(results, domain.ScoredTerm{
			DocID: docID,
			Term:  rendered,
			Key:   ts.Key,
			Score: score,
			Count: ts.Count,
		})
	}

	// terms arrive in first-occurrence order; a stable sort keeps
	// that order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
