package memstore

import "tfidf/internal/domain"

// docStats accumulates per-document frequency data. order keeps terms
// in first-occurrence order so extraction tie-breaks are reproducible.
type docStats struct {
	total   int
	counts  map[string]int
	first   map[string]int
	surface map[string]string
	order   []string
}

// Corpus is the in-memory corpus statistics accumulator. It is
// populated by AddDocument during the ingestion phase and read-only
// afterwards; all ingestion must complete before any score query.
// Queries for unseen documents or terms return zero values.
//
// Corpus implements port.Statistics. It is not safe for concurrent
// writes; the pipeline is a single-threaded batch.
type Corpus struct {
	docs       map[string]*docStats
	docOrder   []string
	docFreq    map[string]int
	docCount   int
	maxRawFreq int
	gramTotal  int
}

func NewCorpus() *Corpus {
	return &Corpus{
		docs:    make(map[string]*docStats),
		docFreq: make(map[string]int),
	}
}

// AddDocument ingests one document's n-grams. Each call counts as one
// document: per-document term counts are incremented, and the global
// document frequency is incremented exactly once per distinct term in
// this call. The caller is responsible for supplying unique ids;
// re-ingesting an id merges counts but still counts as a new document.
func (c *Corpus) AddDocument(docID string, grams []domain.Term) {
	ds, ok := c.docs[docID]
	if !ok {
		ds = &docStats{
			counts:  make(map[string]int),
			first:   make(map[string]int),
			surface: make(map[string]string),
		}
		c.docs[docID] = ds
		c.docOrder = append(c.docOrder, docID)
	}

	seen := make(map[string]struct{}, len(grams))
	for i, gram := range grams {
		if _, present := ds.counts[gram.Key]; !present {
			ds.first[gram.Key] = ds.total + i
			ds.surface[gram.Key] = gram.Surface
			ds.order = append(ds.order, gram.Key)
		}
		ds.counts[gram.Key]++
		if ds.counts[gram.Key] > c.maxRawFreq {
			c.maxRawFreq = ds.counts[gram.Key]
		}
		if _, dup := seen[gram.Key]; !dup {
			seen[gram.Key] = struct{}{}
			c.docFreq[gram.Key]++
		}
	}

	ds.total += len(grams)
	c.gramTotal += len(grams)
	c.docCount++
}

// RestoreDocument rebuilds a document's statistics from a snapshot.
// Like AddDocument, each call counts as one document.
func (c *Corpus) RestoreDocument(docID string, total int, terms []domain.TermStat) {
	ds := &docStats{
		total:   total,
		counts:  make(map[string]int, len(terms)),
		first:   make(map[string]int, len(terms)),
		surface: make(map[string]string, len(terms)),
		order:   make([]string, 0, len(terms)),
	}

	for _, ts := range terms {
		ds.counts[ts.Key] = ts.Count
		ds.first[ts.Key] = ts.FirstPos
		ds.surface[ts.Key] = ts.Surface
		ds.order = append(ds.order, ts.Key)
		c.docFreq[ts.Key]++
		if ts.Count > c.maxRawFreq {
			c.maxRawFreq = ts.Count
		}
	}

	c.docs[docID] = ds
	c.docOrder = append(c.docOrder, docID)
	c.gramTotal += total
	c.docCount++
}

// DocumentCount returns the number of ingested documents.
func (c *Corpus) DocumentCount() int {
	return c.docCount
}

// DocumentLength returns the total n-gram count of a document, zero
// if the document was never ingested.
func (c *Corpus) DocumentLength(docID string) int {
	if ds, ok := c.docs[docID]; ok {
		return ds.total
	}
	return 0
}

// TermFrequency returns the raw count of term within the document.
func (c *Corpus) TermFrequency(docID, term string) int {
	if ds, ok := c.docs[docID]; ok {
		return ds.counts[term]
	}
	return 0
}

// MaxTermFrequency returns the count of the most frequent term in the
// document.
func (c *Corpus) MaxTermFrequency(docID string) int {
	ds, ok := c.docs[docID]
	if !ok {
		return 0
	}
	max := 0
	for _, n := range ds.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// DocumentFrequency returns how many documents contain the term.
func (c *Corpus) DocumentFrequency(term string) int {
	return c.docFreq[term]
}

// MaxRawFrequency returns the highest single-document term count seen
// across the corpus.
func (c *Corpus) MaxRawFrequency() int {
	return c.maxRawFreq
}

// DocumentTerms returns the document's terms in first-occurrence
// order. Unseen documents yield nil.
func (c *Corpus) DocumentTerms(docID string) []domain.TermStat {
	ds, ok := c.docs[docID]
	if !ok {
		return nil
	}

	terms := make([]domain.TermStat, 0, len(ds.order))
	for _, key := range ds.order {
		terms = append(terms, domain.TermStat{
			Key:      key,
			Count:    ds.counts[key],
			FirstPos: ds.first[key],
			Surface:  ds.surface[key],
		})
	}
	return terms
}

// HasDocument reports whether the id was ingested.
func (c *Corpus) HasDocument(docID string) bool {
	_, ok := c.docs[docID]
	return ok
}

// Documents returns the ingested document ids in ingestion order.
func (c *Corpus) Documents() []string {
	out := make([]string, len(c.docOrder))
	copy(out, c.docOrder)
	return out
}

// Stats summarizes the corpus.
func (c *Corpus) Stats() domain.Stats {
	return domain.Stats{
		Documents:     c.docCount,
		DistinctTerms: len(c.docFreq),
		TotalNGrams:   c.gramTotal,
	}
}
