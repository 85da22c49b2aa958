package analyzer

import (
	"bufio"
	"os"
	"strings"
)

// contractionSuffixes are stripped from a word before the stopword
// membership test, so "isn't" matches a stoplist entry "is".
var contractionSuffixes = []string{"n't", "'s", "'re"}

// StripContractions removes a trailing English contraction for
// stopword matching. The token itself is left untouched.
func StripContractions(word string) string {
	for _, suffix := range contractionSuffixes {
		if strings.HasSuffix(word, suffix) {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

// NewStopwordSet builds a lowercase membership set from a word list.
func NewStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// LoadStopwords reads a stopword file, one word per line. Blank lines
// and lines starting with '#' are skipped.
func LoadStopwords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// DefaultStopwords returns a common English stoplist.
func DefaultStopwords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
	}
}
