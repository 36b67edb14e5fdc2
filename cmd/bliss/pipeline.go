package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blisslang/bliss"
)

var cleanDictCmd = &cobra.Command{
	Use:   "clean-dict <raw.json> <out.json>",
	Short: "Clean a raw symbol-explanation dictionary",
	Long: `Runs the offline preparation pipeline: expands "(s)" plurals,
strips "_(OLD)" and "-(to)" markers, retains trailing context suffixes,
applies special-symbol glosses and derives POS-based semantics.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := bliss.LoadRawDictionary(args[0])
		if err != nil {
			return err
		}
		logger.Info("cleaning dictionary",
			zap.String("input", args[0]),
			zap.Int("symbols", len(raw)))

		dict := bliss.CleanDictionary(raw)
		if err := bliss.WriteDictionary(args[1], dict); err != nil {
			return err
		}
		logger.Info("dictionary written",
			zap.String("output", args[1]),
			zap.Int("symbols", len(dict)))
		return nil
	},
}

var duplicatesOut string

var findDuplicatesCmd = &cobra.Command{
	Use:   "find-duplicates",
	Short: "Report glosses shared by multiple symbols",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := bliss.LoadDictionary(dictPath)
		if err != nil {
			return err
		}

		report := bliss.FindDuplicateGlosses(dict)
		logger.Info("duplicate scan finished", zap.Int("groups", report.Groups))
		for _, code := range report.LanguageCodes() {
			logger.Info("duplicates",
				zap.String("lang", code),
				zap.Int("groups", report.PerLanguage[code]))
		}

		if duplicatesOut != "" {
			data, err := json.MarshalIndent(report.Languages, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(duplicatesOut, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write report %s: %w", duplicatesOut, err)
			}
			return nil
		}
		return printJSON(report)
	},
}

func init() {
	findDuplicatesCmd.Flags().StringVar(&duplicatesOut, "out", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(cleanDictCmd, findDuplicatesCmd)
}
