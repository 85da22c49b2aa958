package port

// Stemmer reduces a word to its root form. Implementations must be
// deterministic; stemming is not required to be idempotent.
type Stemmer interface {
	Stem(word string) string
}
