package port

import "tfidf/internal/domain"

// Statistics is the read side of an accumulated corpus. All queries
// return zero values for unseen documents or terms; absence is not an
// error. Implementations are read-only once ingestion completes.
type Statistics interface {
	// DocumentCount returns the number of ingested documents.
	DocumentCount() int

	// DocumentLength returns the total number of n-grams extracted
	// from the document.
	DocumentLength(docID string) int

	// TermFrequency returns the raw count of term in the document.
	TermFrequency(docID, term string) int

	// MaxTermFrequency returns the count of the most frequent term in
	// the document.
	MaxTermFrequency(docID string) int

	// DocumentFrequency returns how many documents contain the term.
	// Never exceeds DocumentCount.
	DocumentFrequency(term string) int

	// MaxRawFrequency returns the highest term count across all
	// documents in the corpus.
	MaxRawFrequency() int

	// DocumentTerms returns the document's terms in first-occurrence
	// order.
	DocumentTerms(docID string) []domain.TermStat
}
