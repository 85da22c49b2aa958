package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfidf/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "tfidf",
	Short: "TF-IDF keyword extraction over a document corpus",
	Long: `tfidf indexes a corpus of text documents and ranks each document's
terms by TF-IDF: term frequency within the document weighted by
inverse document frequency across the corpus. Tokenization, n-gram
size, stopwords and stemming are configurable via tfidf.yaml.

Example usage:
  tfidf index .                     # Ingest the corpus in the current directory
  tfidf keywords --doc notes.txt    # Top keywords for one document
  tfidf stats                       # Corpus totals`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tfidf.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
