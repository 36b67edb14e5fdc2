package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blisslang/bliss"
)

var composeCmd = &cobra.Command{
	Use:   "compose [spec.json]",
	Short: "Compose a symbol sequence from a semantic specification",
	Long: `Reads a semantic specification and synthesizes a composition.

The specification is JSON:

  {
    "classifier": "building",
    "specifiers": ["medicine"],
    "semantics": [{"NUMBER": "plural"}, {"QUANTIFIER": "many"}]
  }

With no argument the specification is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("read spec: %w", err)
		}

		var spec bliss.ComposeSpec
		if err := json.Unmarshal(data, &spec); err != nil {
			return fmt.Errorf("parse spec: %w", err)
		}

		engine, err := loadEngine()
		if err != nil {
			return err
		}
		result, err := engine.ComposeFromSpec(spec)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			logger.Warn("compose", zap.String("warning", w))
		}
		return printJSON(result)
	},
}

var (
	composeSpecifiers []string
	composeModifiers  []string
	composeIndicators []string
)

var composeIDsCmd = &cobra.Command{
	Use:   "compose-ids <classifier-id>",
	Short: "Compose a symbol sequence from explicit role-tagged ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		result, err := engine.ComposeWithIDs(
			bliss.SymbolID(args[0]),
			toSymbolIDs(composeSpecifiers),
			toSymbolIDs(composeModifiers),
			toSymbolIDs(composeIndicators),
		)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			logger.Warn("compose-ids", zap.String("warning", w))
		}
		return printJSON(result)
	},
}

func toSymbolIDs(ss []string) []bliss.SymbolID {
	ids := make([]bliss.SymbolID, 0, len(ss))
	for _, s := range ss {
		ids = append(ids, bliss.SymbolID(s))
	}
	return ids
}

func init() {
	composeIDsCmd.Flags().StringSliceVar(&composeSpecifiers, "specifier", nil, "specifier symbol id (repeatable)")
	composeIDsCmd.Flags().StringSliceVar(&composeModifiers, "modifier", nil, "modifier symbol id (repeatable)")
	composeIDsCmd.Flags().StringSliceVar(&composeIndicators, "indicator", nil, "indicator symbol id (repeatable)")
	rootCmd.AddCommand(composeCmd, composeIDsCmd)
}
