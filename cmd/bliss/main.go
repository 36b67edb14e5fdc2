// Command bliss exposes the Blissymbolics engine on the command line:
// gloss lookup, composition analysis and classification, semantic
// composition, and the offline dictionary-preparation pipeline.
//
// Results are printed as JSON on stdout; diagnostics go to stderr.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blisslang/bliss"
)

var (
	dictPath   string
	tablesPath string
	lang       string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "bliss",
	Short:         "Analyze and compose Blissymbolics symbol sequences",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bliss: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "data/bliss_dict_multi_langs.json", "path to the cleaned dictionary JSON")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "semantics", "", "path to the semantic-tables JSON")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "ISO 639-1 language code for glosses")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "bliss: %v\n", err)
		os.Exit(1)
	}
}

// loadEngine builds the engine from the --dict and --semantics flags.
func loadEngine() (*bliss.Engine, error) {
	dict, err := bliss.LoadDictionary(dictPath)
	if err != nil {
		return nil, err
	}

	var tables *bliss.SemanticTables
	if tablesPath != "" {
		tables, err = bliss.LoadSemanticTables(tablesPath)
		if err != nil {
			return nil, err
		}
	}

	engine, err := bliss.New(dict, tables)
	if err != nil {
		return nil, err
	}
	logger.Info("dictionary loaded",
		zap.String("path", dictPath),
		zap.Int("symbols", len(dict)))
	return engine, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
