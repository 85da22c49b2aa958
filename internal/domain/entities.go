package domain

// Document is one body of text in the corpus, immutable once ingested.
type Document struct {
	ID   string
	Text string
}

// Token is a single word unit produced by the tokenizer. Text is the
// original surface substring; Stem is set by the normalizer (identity
// when no stemmer is configured). Start and End are byte offsets into
// the cleaned document text. Tokens in different segments may not be
// joined into one n-gram.
type Token struct {
	Text    string
	Stem    string
	Start   int
	End     int
	Segment int
}

// Term is one n-gram. Key is the stemmed tokens joined by a single
// space and is the unit of equality for all frequency accounting.
// Surface is the contiguous source span from the first to the last
// token, original spacing and casing preserved. Because n-grams are
// built from the stopword-filtered stream, the span may include words
// that were dropped from the key.
type Term struct {
	Key     string
	Surface string
	Pos     int
	Start   int
	End     int
}

// TermStat is the accumulated record for one term within one document.
type TermStat struct {
	Key      string `json:"key"`
	Count    int    `json:"count"`
	FirstPos int    `json:"first_pos"`
	Surface  string `json:"surface"`
}

// ScoredTerm is an immutable extraction result. Term holds the
// requested rendering (surface or normalized); Key always holds the
// normalized form.
type ScoredTerm struct {
	DocID string  `json:"doc_id"`
	Term  string  `json:"term"`
	Key   string  `json:"key"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// Stats summarizes an ingested corpus.
type Stats struct {
	Documents     int `json:"documents"`
	DistinctTerms int `json:"distinct_terms"`
	TotalNGrams   int `json:"total_ngrams"`
}
