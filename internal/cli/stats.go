package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfidf/config"
	"tfidf/internal/adapter/store"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
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

	stats := corpus.Stats()
	if statsJSON {
		output, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Documents:      %d\n", stats.Documents)
	fmt.Printf("Distinct terms: %d\n", stats.DistinctTerms)
	fmt.Printf("Total n-grams:  %d\n", stats.TotalNGrams)
	for _, docID := range corpus.Documents() {
		fmt.Printf("  %-40s %d n-grams\n", docID, corpus.DocumentLength(docID))
	}
	return nil
}
