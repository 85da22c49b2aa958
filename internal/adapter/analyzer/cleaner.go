package analyzer

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRe  = regexp.MustCompile(`<[^<]+?>`)
	htmlEntRe  = regexp.MustCompile(`&#?x?[0-9A-Za-z]{2,10};`)
	breakDash  = regexp.MustCompile(`\s+-\s*|\s*-\s+`)
	whitespace = regexp.MustCompile(`\s+`)

	quoteFixer = strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", `'`, "’", `'`,
	)
)

// Clean strips raw text of markup and typographic noise before
// tokenization: HTML tags and entities, curly quotes, and collapsed
// whitespace. A dash used as a text break becomes a semicolon so it
// acts as a gram boundary; in-word hyphens ("27-year-old") are kept.
// Casing is preserved so surface renderings keep the original text.
func Clean(raw string) string {
	text := htmlTagRe.ReplaceAllString(raw, "")
	if htmlEntRe.MatchString(text) {
		text = html.UnescapeString(text)
	}
	text = quoteFixer.Replace(text)
	text = breakDash.ReplaceAllString(text, "; ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
