package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfidf/config"
	"tfidf/internal/adapter/scorer"
	"tfidf/internal/adapter/store"
	"tfidf/internal/domain"
	"tfidf/internal/usecase"
)

var (
	keywordsDoc    string
	keywordsText   string
	keywordsTopK   int
	keywordsRender string
	keywordsJSON   bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract top TF-IDF keywords",
	Long: `Rank the terms of a document by TF-IDF against the ingested corpus.
Pass --doc for a document already in the corpus, or --text to score
ad-hoc text against the corpus statistics.

Examples:
  tfidf keywords --doc notes/plan.txt -k 10
  tfidf keywords --doc readme.md --render normalized
  tfidf keywords --text "several other species" -k 5`,
	RunE: runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().StringVar(&keywordsDoc, "doc", "", "document id (path relative to the indexed root)")
	keywordsCmd.Flags().StringVar(&keywordsText, "text", "", "score this text instead of a stored document")
	keywordsCmd.Flags().IntVarP(&keywordsTopK, "top-k", "k", 0, "number of keywords (default from config)")
	keywordsCmd.Flags().StringVar(&keywordsRender, "render", "", "render mode: surface or normalized (default from config)")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "output as JSON")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if keywordsDoc == "" && keywordsText == "" {
		return fmt.Errorf("either --doc or --text is required")
	}

	cfg := GetConfig()
	rootDir := GetRootDir()

	dbPath := config.CorpusDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no corpus found. Run 'tfidf index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer st.Close()

	corpus, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	tf, err := scorer.ParseTFWeight(cfg.Score.TFWeight)
	if err != nil {
		return err
	}
	idf, err := scorer.ParseIDFWeight(cfg.Score.IDFWeight)
	if err != nil {
		return err
	}

	renderName := cfg.Extract.Render
	if keywordsRender != "" {
		renderName = keywordsRender
	}
	render, err := scorer.ParseRender(renderName)
	if err != nil {
		return err
	}

	topK := resolveTopK(cmd.Flags().Changed("top-k"), keywordsTopK, cfg.Extract.TopK)

	extractUC := usecase.NewExtractUseCase(corpus, pipeline, tf, idf)

	results, err := extract(extractUC, corpus.HasDocument, topK, render)
	if err != nil {
		return err
	}

	if keywordsJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No keywords found.")
		return nil
	}
	for i, r := range results {
		fmt.Printf("%3d. %-30s %.6f  (count %d)\n", i+1, r.Term, r.Score, r.Count)
	}
	return nil
}

// resolveTopK prefers the flag whenever it was set on the command
// line, so an explicit -k 0 requests zero keywords instead of falling
// back to the configured default.
func resolveTopK(flagSet bool, flag, fallback int) int {
	if flagSet {
		return flag
	}
	return fallback
}

func extract(uc *usecase.ExtractUseCase, hasDoc func(string) bool, topK int, render scorer.Render) ([]domain.ScoredTerm, error) {
	if keywordsText != "" {
		return uc.TopKeywordsForText(keywordsText, topK, render)
	}
	if !hasDoc(keywordsDoc) {
		return nil, fmt.Errorf("document %q is not in the corpus", keywordsDoc)
	}
	return uc.TopKeywords(keywordsDoc, topK, render)
}
