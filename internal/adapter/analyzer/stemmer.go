package analyzer

import "strings"

// PorterStemmer implements the Porter suffix-stripping algorithm. It
// satisfies port.Stemmer and is the default pluggable stemmer; any
// other implementation of the interface works in its place.
type PorterStemmer struct{}

func NewPorterStemmer() *PorterStemmer {
	return &PorterStemmer{}
}

// suffixRule rewrites a suffix to a replacement when the remaining
// stem has a positive measure. Rules are ordered longest suffix first
// so the longest match always wins.
type suffixRule struct {
	suffix string
	repl   string
}

var step2Rules = []suffixRule{
	{"ization", "ize"}, {"iveness", "ive"}, {"fulness", "ful"},
	{"ousness", "ous"}, {"ational", "ate"}, {"tional", "tion"},
	{"biliti", "ble"}, {"entli", "ent"}, {"ousli", "ous"},
	{"ation", "ate"}, {"alism", "al"}, {"aliti", "al"},
	{"iviti", "ive"}, {"enci", "ence"}, {"anci", "ance"},
	{"izer", "ize"}, {"abli", "able"}, {"alli", "al"},
	{"ator", "ate"}, {"eli", "e"},
}

var step3Rules = []suffixRule{
	{"icate", "ic"}, {"ative", ""}, {"alize", "al"},
	{"iciti", "ic"}, {"ical", "ic"}, {"ness", ""}, {"ful", ""},
}

var step4Suffixes = []string{
	"ement", "ance", "ence", "able", "ible", "ment", "ant", "ent",
	"ion", "ism", "ate", "iti", "ous", "ive", "ize", "al", "er",
	"ic", "ou",
}

// Stem returns the Porter stem of word. Words shorter than three
// characters are returned unchanged.
func (p *PorterStemmer) Stem(word string) string {
	if len(word) < 3 {
		return word
	}

	word = strings.ToLower(word)
	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = applyRules(word, step2Rules)
	word = applyRules(word, step3Rules)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)

	return word
}

func isConsonant(word string, i int) bool {
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(word, i-1)
	}
	return true
}

// measure counts the vowel-consonant sequences in word, the "m" of
// the Porter paper.
func measure(word string) int {
	n := len(word)
	m := 0
	i := 0

	for i < n && isConsonant(word, i) {
		i++
	}
	for i < n {
		for i < n && !isConsonant(word, i) {
			i++
		}
		if i >= n {
			break
		}
		m++
		for i < n && isConsonant(word, i) {
			i++
		}
	}
	return m
}

func hasVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isConsonant(word, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	if n < 2 {
		return false
	}
	return word[n-1] == word[n-2] && isConsonant(word, n-1)
}

// endsCVC reports a consonant-vowel-consonant ending where the final
// consonant is not w, x or y.
func endsCVC(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	if !isConsonant(word, n-3) || isConsonant(word, n-2) || !isConsonant(word, n-1) {
		return false
	}
	c := word[n-1]
	return c != 'w' && c != 'x' && c != 'y'
}

func applyRules(word string, rules []suffixRule) string {
	for _, rule := range rules {
		if strings.HasSuffix(word, rule.suffix) {
			stem := word[:len(word)-len(rule.suffix)]
			if measure(stem) > 0 {
				return stem + rule.repl
			}
			return word
		}
	}
	return word
}

func step1a(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}

func step1b(word string) string {
	if strings.HasSuffix(word, "eed") {
		if measure(word[:len(word)-3]) > 0 {
			return word[:len(word)-1]
		}
		return word
	}

	modified := false
	if stem := strings.TrimSuffix(word, "ed"); stem != word && hasVowel(stem) {
		word = stem
		modified = true
	} else if stem := strings.TrimSuffix(word, "ing"); stem != word && hasVowel(stem) {
		word = stem
		modified = true
	}

	if !modified {
		return word
	}

	switch {
	case strings.HasSuffix(word, "at"), strings.HasSuffix(word, "bl"), strings.HasSuffix(word, "iz"):
		return word + "e"
	case endsDoubleConsonant(word):
		c := word[len(word)-1]
		if c != 'l' && c != 's' && c != 'z' {
			return word[:len(word)-1]
		}
	case measure(word) == 1 && endsCVC(word):
		return word + "e"
	}
	return word
}

func step1c(word string) string {
	if strings.HasSuffix(word, "y") {
		stem := word[:len(word)-1]
		if hasVowel(stem) {
			return stem + "i"
		}
	}
	return word
}

func step4(word string) string {
	for _, suffix := range step4Suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := word[:len(word)-len(suffix)]
		if measure(stem) <= 1 {
			return word
		}
		if suffix == "ion" {
			n := len(stem)
			if n == 0 || (stem[n-1] != 's' && stem[n-1] != 't') {
				return word
			}
		}
		return stem
	}
	return word
}

func step5a(word string) string {
	if strings.HasSuffix(word, "e") {
		stem := word[:len(word)-1]
		if measure(stem) > 1 {
			return stem
		}
		if measure(stem) == 1 && !endsCVC(stem) {
			return stem
		}
	}
	return word
}

func step5b(word string) string {
	if measure(word) > 1 && endsDoubleConsonant(word) && word[len(word)-1] == 'l' {
		return word[:len(word)-1]
	}
	return word
}
