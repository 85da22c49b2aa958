package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tfidf/config"
	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/memstore"
	"tfidf/internal/adapter/store"
	"tfidf/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Ingest a corpus of text files",
	Long: `Ingest every matching file under the given directory as one document
and persist the accumulated corpus statistics. The snapshot is stored
in .tfidf/corpus.db within the target directory.

Examples:
  tfidf index .                 # Ingest current directory
  tfidf index /path/to/corpus   # Ingest specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if err := config.EnsureWorkDir(path); err != nil {
		return fmt.Errorf("failed to create .tfidf directory: %w", err)
	}

	corpus := memstore.NewCorpus()
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	ingestUC := usecase.NewIngestUseCase(corpus, pipeline, walker)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	progress := func(done, total int, file string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Ingesting[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := ingestUC.IngestDir(path, progress)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	dbPath := config.CorpusDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	if err := st.Save(corpus); err != nil {
		return fmt.Errorf("failed to save corpus snapshot: %w", err)
	}

	stats := corpus.Stats()
	fmt.Printf("\nIngestion complete:\n")
	fmt.Printf("  Documents:      %d\n", stats.Documents)
	fmt.Printf("  Distinct terms: %d\n", stats.DistinctTerms)
	fmt.Printf("  Total n-grams:  %d\n", stats.TotalNGrams)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nCorpus stored at: %s\n", dbPath)
	return nil
}
