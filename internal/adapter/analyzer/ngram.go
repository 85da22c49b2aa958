package analyzer

import (
	"strings"

	"tfidf/internal/domain"
)

// NGramBuilder assembles sliding windows over a normalized token
// sequence. Windows slide by one position and never cross a segment
// boundary. With allSizes set, every window of size 1 up to size is
// emitted, otherwise only windows of exactly size.
//
// N-grams are built from the stopword-filtered stream on purpose: a
// bigram may join two words that were separated by a stopword in the
// raw text. The surface span still covers the full source range, so
// "Mary had a little lamb" with "had"/"a" stopped yields the key
// "mary little" with surface "Mary had a little".
type NGramBuilder struct {
	size     int
	allSizes bool
}

// NewNGramBuilder returns a builder for windows of the given size.
// A size below one is a configuration error.
func NewNGramBuilder(size int, allSizes bool) (*NGramBuilder, error) {
	if size < 1 {
		return nil, domain.ErrInvalidGramSize
	}
	return &NGramBuilder{size: size, allSizes: allSizes}, nil
}

// Build returns all n-grams of tokens in source order. A sequence
// shorter than the window size yields no n-grams, not an error.
func (b *NGramBuilder) Build(text string, tokens []domain.Token) []domain.Term {
	if len(tokens) == 0 {
		return nil
	}

	var grams []domain.Term
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = tok.Stem
	}

	for i := range tokens {
		for size := 1; size <= b.size; size++ {
			if !b.allSizes && size != b.size {
				continue
			}
			j := i + size - 1
			if j >= len(tokens) || tokens[j].Segment != tokens[i].Segment {
				break
			}
			grams = append(grams, domain.Term{
				Key:     strings.Join(stems[i:j+1], " "),
				Surface: text[tokens[i].Start:tokens[j].End],
				Pos:     i,
				Start:   tokens[i].Start,
				End:     tokens[j].End,
			})
		}
	}

	return grams
}

// Size returns the configured maximum window size.
func (b *NGramBuilder) Size() int {
	return b.size
}
