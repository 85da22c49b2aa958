package usecase

import (
	"fmt"

	"tfidf/internal/adapter/memstore"
	"tfidf/internal/adapter/scorer"
	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// ExtractUseCase ranks keywords against a fully ingested corpus.
type ExtractUseCase struct {
	stats    port.Statistics
	pipeline *Pipeline
	tf       scorer.TFWeight
	idf      scorer.IDFWeight
}

func NewExtractUseCase(stats port.Statistics, pipeline *Pipeline, tf scorer.TFWeight, idf scorer.IDFWeight) *ExtractUseCase {
	return &ExtractUseCase{
		stats:    stats,
		pipeline: pipeline,
		tf:       tf,
		idf:      idf,
	}
}

// TopKeywords extracts the top k keywords of an ingested document.
func (u *ExtractUseCase) TopKeywords(docID string, k int, render scorer.Render) ([]domain.ScoredTerm, error) {
	sc := scorer.NewScorer(u.stats, u.tf, u.idf)
	return scorer.NewExtractor(u.stats, sc).TopKeywords(docID, k, render)
}

// TopKeywordsForText scores ad-hoc text against the corpus without
// ingesting it: term frequencies come from the text, document
// frequencies from the corpus. The corpus itself is left untouched.
func (u *ExtractUseCase) TopKeywordsForText(text string, k int, render scorer.Render) ([]domain.ScoredTerm, error) {
	if u.stats.DocumentCount() == 0 {
		return nil, fmt.Errorf("score ad-hoc text: %w", domain.ErrEmptyCorpus)
	}

	scratch := memstore.NewCorpus()
	_, grams := u.pipeline.Analyze(text)
	scratch.AddDocument("", grams)

	overlay := &adhocStats{corpus: u.stats, doc: scratch}
	sc := scorer.NewScorer(overlay, u.tf, u.idf)
	return scorer.NewExtractor(overlay, sc).TopKeywords("", k, render)
}

// adhocStats answers document-local queries from the scratch document
// and corpus-wide queries from the real statistics, so IDF weighting
// reflects the ingested corpus while TF reflects the ad-hoc text.
type adhocStats struct {
	corpus port.Statistics
	doc    *memstore.Corpus
}

func (a *adhocStats) DocumentCount() int                   { return a.corpus.DocumentCount() }
func (a *adhocStats) DocumentFrequency(term string) int    { return a.corpus.DocumentFrequency(term) }
func (a *adhocStats) MaxRawFrequency() int                 { return a.corpus.MaxRawFrequency() }
func (a *adhocStats) DocumentLength(docID string) int      { return a.doc.DocumentLength(docID) }
func (a *adhocStats) TermFrequency(docID, term string) int { return a.doc.TermFrequency(docID, term) }
func (a *adhocStats) MaxTermFrequency(docID string) int    { return a.doc.MaxTermFrequency(docID) }
func (a *adhocStats) DocumentTerms(docID string) []domain.TermStat {
	return a.doc.DocumentTerms(docID)
}
