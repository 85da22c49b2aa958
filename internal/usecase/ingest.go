package usecase

import (
	"fmt"
	"path/filepath"

	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/memstore"
)

// IngestUseCase feeds documents through the pipeline into the corpus
// accumulator. All ingestion must complete before scoring begins.
type IngestUseCase struct {
	corpus   *memstore.Corpus
	pipeline *Pipeline
	walker   *fs.Walker
}

func NewIngestUseCase(corpus *memstore.Corpus, pipeline *Pipeline, walker *fs.Walker) *IngestUseCase {
	return &IngestUseCase{
		corpus:   corpus,
		pipeline: pipeline,
		walker:   walker,
	}
}

// IngestResult contains the results of a directory ingestion.
type IngestResult struct {
	FilesIngested int
	Errors        []string
}

// IngestText ingests one in-memory document.
func (u *IngestUseCase) IngestText(docID, raw string) {
	_, grams := u.pipeline.Analyze(raw)
	u.corpus.AddDocument(docID, grams)
}

// IngestDir walks root per the configured globs and ingests every
// matching file as one document, id = path relative to root. The
// progress callback, if set, is invoked after each file.
func (u *IngestUseCase) IngestDir(root string, progress func(done, total int, path string)) (*IngestResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &IngestResult{}
	for i, rel := range files {
		text, err := fs.ReadFile(filepath.Join(root, rel))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", rel, err))
			continue
		}

		u.IngestText(filepath.ToSlash(rel), text)
		result.FilesIngested++

		if progress != nil {
			progress(i+1, len(files), rel)
		}
	}

	return result, nil
}
