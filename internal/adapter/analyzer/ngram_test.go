package analyzer

import "testing"

func analyze(t *testing.T, text string, size int, allSizes bool, stopwords []string) []string {
	t.Helper()

	tok := NewTokenizer()
	norm := NewNormalizer(NewStopwordSet(stopwords), nil, false)
	builder, err := NewNGramBuilder(size, allSizes)
	if err != nil {
		t.Fatal(err)
	}

	grams := builder.Build(text, norm.Normalize(tok.Tokenize(text)))
	keys := make([]string, len(grams))
	for i, g := range grams {
		keys[i] = g.Key
	}
	return keys
}

func TestNGramBuilder_InvalidSize(t *testing.T) {
	if _, err := NewNGramBuilder(0, false); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := NewNGramBuilder(-3, false); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestNGramBuilder_Bigrams(t *testing.T) {
	keys := analyze(t, "a b c", 2, false, nil)
	want := []string{"a b", "b c"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("expected %v, got %v", want, keys)
		}
	}
}

func TestNGramBuilder_WindowLargerThanSequence(t *testing.T) {
	if keys := analyze(t, "a b c", 4, false, nil); len(keys) != 0 {
		t.Errorf("expected empty sequence for n=4 over 3 tokens, got %v", keys)
	}
}

func TestNGramBuilder_AllSizes(t *testing.T) {
	keys := analyze(t, "a b c", 2, true, nil)
	// every unigram plus every bigram, in source order
	want := map[string]bool{"a": true, "b": true, "c": true, "a b": true, "b c": true}
	if len(keys) != len(want) {
		t.Fatalf("expected %d grams, got %v", len(want), keys)
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("unexpected gram %q", k)
		}
	}
}

func TestNGramBuilder_SegmentBoundary(t *testing.T) {
	keys := analyze(t, "he saw the car, he ran", 2, false, nil)
	for _, k := range keys {
		if k == "car he" {
			t.Error("bigram must not cross the comma boundary")
		}
	}
}

func TestNGramBuilder_StopwordBridge(t *testing.T) {
	tok := NewTokenizer()
	norm := NewNormalizer(NewStopwordSet([]string{"had", "a"}), nil, false)
	builder, err := NewNGramBuilder(2, false)
	if err != nil {
		t.Fatal(err)
	}

	text := "Mary had a little lamb"
	grams := builder.Build(text, norm.Normalize(tok.Tokenize(text)))

	found := false
	for _, g := range grams {
		if g.Key == "mary little" {
			found = true
			if g.Surface != "Mary had a little" {
				t.Errorf("expected surface to span the source range, got %q", g.Surface)
			}
		}
	}
	if !found {
		t.Errorf("expected bigram bridging removed stopwords, got %v", grams)
	}
}

func TestNGramBuilder_EmptyInput(t *testing.T) {
	if keys := analyze(t, "", 1, false, nil); len(keys) != 0 {
		t.Errorf("expected no grams for empty input, got %v", keys)
	}
}
