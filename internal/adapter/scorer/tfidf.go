package scorer

import (
	"fmt"
	"math"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// TFWeight selects the term frequency weighting scheme.
type TFWeight string

const (
	// TFRaw is raw count normalized by document length, the default.
	TFRaw TFWeight = "raw"
	// TFLog is 1 + log of the raw frequency.
	TFLog TFWeight = "log"
	// TFBinary is 1 when the term is present, 0 otherwise.
	TFBinary TFWeight = "binary"
	// TFNorm50 is double normalization: 0.5 + 0.5 * tf / maxtf.
	TFNorm50 TFWeight = "norm50"
)

// IDFWeight selects the inverse document frequency weighting scheme.
type IDFWeight string

const (
	// IDFSmooth is log(N / (1 + df)) + 1, the default. Strictly
	// positive for N >= 1, so a term present in every document still
	// carries a small weight instead of vanishing.
	IDFSmooth IDFWeight = "smooth"
	// IDFBasic is log(N / df).
	IDFBasic IDFWeight = "basic"
	// IDFMax is log(1 + maxRawFreq / df).
	IDFMax IDFWeight = "max"
	// IDFProb is log((N - df) / df).
	IDFProb IDFWeight = "prob"
)

// ParseTFWeight maps a config name to a TF weighting. Empty means the
// default.
func ParseTFWeight(name string) (TFWeight, error) {
	switch TFWeight(name) {
	case "", TFRaw:
		return TFRaw, nil
	case TFLog, TFBinary, TFNorm50:
		return TFWeight(name), nil
	}
	return "", fmt.Errorf("tf weight %q: %w", name, domain.ErrUnknownWeight)
}

// ParseIDFWeight maps a config name to an IDF weighting. Empty means
// the default.
func ParseIDFWeight(name string) (IDFWeight, error) {
	switch IDFWeight(name) {
	case "", IDFSmooth:
		return IDFSmooth, nil
	case IDFBasic, IDFMax, IDFProb:
		return IDFWeight(name), nil
	}
	return "", fmt.Errorf("idf weight %q: %w", name, domain.ErrUnknownWeight)
}

// Scorer combines term frequency and inverse document frequency into
// a per-term, per-document score. It only reads the statistics, so the
// corpus must be fully ingested before the first call. Scores are
// deterministic: the same ingested corpus yields bit-identical results.
type Scorer struct {
	stats port.Statistics
	tf    TFWeight
	idf   IDFWeight
}

func NewScorer(stats port.Statistics, tf TFWeight, idf IDFWeight) *Scorer {
	if tf == "" {
		tf = TFRaw
	}
	if idf == "" {
		idf = IDFSmooth
	}
	return &Scorer{stats: stats, tf: tf, idf: idf}
}

// Score returns TF(doc, term) * IDF(term). Querying an empty corpus
// is a configuration error; querying an unseen document or term
// yields zero.
func (s *Scorer) Score(docID, term string) (float64, error) {
	if s.stats.DocumentCount() == 0 {
		return 0, domain.ErrEmptyCorpus
	}
	return s.termFrequency(docID, term) * s.inverseDocFrequency(term), nil
}

func (s *Scorer) termFrequency(docID, term string) float64 {
	count := s.stats.TermFrequency(docID, term)
	length := s.stats.DocumentLength(docID)
	if count == 0 || length == 0 {
		return 0
	}

	raw := float64(count) / float64(length)

	switch s.tf {
	case TFLog:
		return 1 + math.Log(raw)
	case TFBinary:
		return 1
	case TFNorm50:
		maxTF := s.stats.MaxTermFrequency(docID)
		return 0.5 + 0.5*float64(count)/float64(maxTF)
	default:
		return raw
	}
}

func (s *Scorer) inverseDocFrequency(term string) float64 {
	n := float64(s.stats.DocumentCount())
	df := float64(s.stats.DocumentFrequency(term))

	switch s.idf {
	case IDFBasic:
		if df == 0 {
			return 0
		}
		return math.Log(n / df)
	case IDFMax:
		if df == 0 {
			return 0
		}
		return math.Log(1 + float64(s.stats.MaxRawFrequency())/df)
	case IDFProb:
		if df == 0 || df == n {
			return 0
		}
		return math.Log((n - df) / df)
	default:
		return math.Log(n/(1+df)) + 1
	}
}
