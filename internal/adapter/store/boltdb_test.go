package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"tfidf/internal/adapter/memstore"
	"tfidf/internal/domain"
)

func grams(keys ...string) []domain.Term {
	out := make([]domain.Term, len(keys))
	for i, k := range keys {
		out[i] = domain.Term{Key: k, Surface: k, Pos: i}
	}
	return out
}

func TestBoltStore_Roundtrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.db")

	st, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	corpus := memstore.NewCorpus()
	corpus.AddDocument("doc0", grams("cat", "sat", "cat"))
	corpus.AddDocument("doc1", grams("dog", "sat"))

	if err := st.Save(corpus); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}

	if loaded.DocumentCount() != 2 {
		t.Errorf("expected 2 documents, got %d", loaded.DocumentCount())
	}
	if !reflect.DeepEqual(loaded.Documents(), corpus.Documents()) {
		t.Errorf("document order changed: %v vs %v", loaded.Documents(), corpus.Documents())
	}
	if loaded.TermFrequency("doc0", "cat") != 2 {
		t.Errorf("expected tf(doc0, cat)=2, got %d", loaded.TermFrequency("doc0", "cat"))
	}
	if loaded.DocumentFrequency("sat") != 2 {
		t.Errorf("expected df(sat)=2, got %d", loaded.DocumentFrequency("sat"))
	}
	if loaded.DocumentLength("doc0") != 3 {
		t.Errorf("expected length 3, got %d", loaded.DocumentLength("doc0"))
	}
	if !reflect.DeepEqual(loaded.DocumentTerms("doc0"), corpus.DocumentTerms("doc0")) {
		t.Errorf("term stats changed across roundtrip")
	}
	if loaded.MaxRawFrequency() != corpus.MaxRawFrequency() {
		t.Errorf("max raw frequency changed: %d vs %d", loaded.MaxRawFrequency(), corpus.MaxRawFrequency())
	}
}

func TestBoltStore_LoadEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.db")

	st, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	corpus, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if corpus.DocumentCount() != 0 {
		t.Errorf("expected empty corpus, got %d documents", corpus.DocumentCount())
	}
}

func TestBoltStore_SaveReplaces(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.db")

	st, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	first := memstore.NewCorpus()
	first.AddDocument("old", grams("x"))
	if err := st.Save(first); err != nil {
		t.Fatal(err)
	}

	second := memstore.NewCorpus()
	second.AddDocument("new", grams("y"))
	if err := st.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.HasDocument("old") {
		t.Error("expected old snapshot to be replaced")
	}
	if !loaded.HasDocument("new") {
		t.Error("expected new snapshot document")
	}
}
