package usecase

import (
	"errors"
	"testing"

	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/adapter/memstore"
	"tfidf/internal/adapter/scorer"
	"tfidf/internal/domain"
)

func newTestPipeline(t *testing.T, size int, stopwords []string) *Pipeline {
	t.Helper()

	builder, err := analyzer.NewNGramBuilder(size, false)
	if err != nil {
		t.Fatal(err)
	}
	norm := analyzer.NewNormalizer(analyzer.NewStopwordSet(stopwords), nil, false)
	return NewPipeline(analyzer.NewTokenizer(), norm, builder)
}

func ingestCatDog(t *testing.T) (*memstore.Corpus, *Pipeline) {
	t.Helper()

	pipeline := newTestPipeline(t, 1, []string{"the"})
	corpus := memstore.NewCorpus()
	uc := NewIngestUseCase(corpus, pipeline, nil)
	uc.IngestText("doc0", "the cat sat")
	uc.IngestText("doc1", "the dog sat")
	return corpus, pipeline
}

func TestIngestAndExtract(t *testing.T) {
	corpus, pipeline := ingestCatDog(t)

	if corpus.DocumentFrequency("sat") != 2 {
		t.Errorf("expected df(sat)=2, got %d", corpus.DocumentFrequency("sat"))
	}
	if corpus.DocumentFrequency("the") != 0 {
		t.Error("stopword must not enter the statistics")
	}

	uc := NewExtractUseCase(corpus, pipeline, scorer.TFRaw, scorer.IDFSmooth)
	results, err := uc.TopKeywords("doc1", 10, scorer.RenderNormalized)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(results))
	}
	if results[0].Key != "dog" {
		t.Errorf("expected 'dog' to outrank the shared 'sat', got %q", results[0].Key)
	}
}

func TestExtract_Determinism(t *testing.T) {
	corpus, pipeline := ingestCatDog(t)
	uc := NewExtractUseCase(corpus, pipeline, scorer.TFRaw, scorer.IDFSmooth)

	first, err := uc.TopKeywords("doc0", 10, scorer.RenderNormalized)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := uc.TopKeywords("doc0", 10, scorer.RenderNormalized)
		if err != nil {
			t.Fatal(err)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("extraction not deterministic: %+v vs %+v", first[j], again[j])
			}
		}
	}
}

func TestExtract_AdHocText(t *testing.T) {
	corpus, pipeline := ingestCatDog(t)
	uc := NewExtractUseCase(corpus, pipeline, scorer.TFRaw, scorer.IDFSmooth)

	before := corpus.DocumentCount()
	results, err := uc.TopKeywordsForText("the cat ran", 10, scorer.RenderNormalized)
	if err != nil {
		t.Fatal(err)
	}
	if corpus.DocumentCount() != before {
		t.Error("ad-hoc scoring must not mutate the corpus")
	}

	keys := map[string]float64{}
	for _, r := range results {
		keys[r.Key] = r.Score
	}
	if _, ok := keys["cat"]; !ok {
		t.Errorf("expected 'cat' in ad-hoc results, got %v", results)
	}
	if _, ok := keys["the"]; ok {
		t.Error("stopword must not appear in ad-hoc results")
	}
	// "ran" is absent from the corpus: df=0, smoothed idf still scores it
	if _, ok := keys["ran"]; !ok {
		t.Errorf("expected corpus-unseen term to be scored, got %v", results)
	}
}

func TestExtract_AdHocEmptyCorpus(t *testing.T) {
	pipeline := newTestPipeline(t, 1, nil)
	uc := NewExtractUseCase(memstore.NewCorpus(), pipeline, scorer.TFRaw, scorer.IDFSmooth)

	if _, err := uc.TopKeywordsForText("anything", 5, scorer.RenderSurface); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestIngest_MalformedInput(t *testing.T) {
	pipeline := newTestPipeline(t, 1, nil)
	corpus := memstore.NewCorpus()
	uc := NewIngestUseCase(corpus, pipeline, nil)

	// malformed text degrades to fewer tokens, never an error
	uc.IngestText("junk", "\x00\x01 <<<>>> &&& ,,,")
	if corpus.DocumentCount() != 1 {
		t.Errorf("expected the document to be counted, got %d", corpus.DocumentCount())
	}
	if corpus.DocumentLength("junk") != 0 {
		t.Errorf("expected 0 n-grams for junk input, got %d", corpus.DocumentLength("junk"))
	}
}

func TestExtract_SurfaceBigrams(t *testing.T) {
	pipeline := newTestPipeline(t, 2, []string{"the"})
	corpus := memstore.NewCorpus()
	ingest := NewIngestUseCase(corpus, pipeline, nil)
	ingest.IngestText("doc", "The Bulb Onion grows")
	ingest.IngestText("other", "carrots grow")

	uc := NewExtractUseCase(corpus, pipeline, scorer.TFRaw, scorer.IDFSmooth)
	results, err := uc.TopKeywords("doc", 10, scorer.RenderSurface)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, r := range results {
		if r.Term == "Bulb Onion" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected surface bigram 'Bulb Onion', got %v", results)
	}
}
