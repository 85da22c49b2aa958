package analyzer

import (
	"unicode"

	"tfidf/internal/domain"
)

// Tokenizer splits cleaned text into offset-carrying word tokens.
// Words are runs of unicode letters, digits, underscores, in-word
// hyphens and apostrophes. Any other rune ends the current token;
// gram-break punctuation additionally starts a new segment, and
// n-grams never cross a segment boundary. Unrecognized characters are
// dropped, never fatal.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the token sequence for text. Empty input yields an
// empty sequence. Tokenizing the same text twice yields identical
// sequences.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	segment := 0
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		lo, hi := trimBounds(text, start, end)
		if lo < hi {
			tokens = append(tokens, domain.Token{
				Text:    text[lo:hi],
				Start:   lo,
				End:     hi,
				Segment: segment,
			})
		}
		start = -1
	}

	for i, r := range text {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case isGramBreak(r):
			flush(i)
			segment++
		default:
			flush(i)
		}
	}
	flush(len(text))

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '\''
}

// isGramBreak reports whether r is punctuation an n-gram may not
// cross, e.g. "saw the car, he ran" never yields the bigram "car he".
func isGramBreak(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '^', '(', ')', '[', ']', '"', '`', '|':
		return true
	}
	return false
}

// trimBounds narrows [start, end) past leading and trailing
// apostrophes and hyphens, which are word runes only in-word.
func trimBounds(text string, start, end int) (int, int) {
	for start < end && (text[start] == '\'' || text[start] == '-') {
		start++
	}
	for end > start && (text[end-1] == '\'' || text[end-1] == '-') {
		end--
	}
	return start, end
}
