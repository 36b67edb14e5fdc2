package main

import (
	"github.com/spf13/cobra"

	"github.com/blisslang/bliss"
)

var glossCmd = &cobra.Command{
	Use:   "gloss <symbol-id>",
	Short: "Show glosses and explanation for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		info, err := engine.SymbolGlosses(bliss.SymbolID(args[0]), lang)
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var glossesCmd = &cobra.Command{
	Use:   "glosses <symbol-id>...",
	Short: "Show glosses for every symbol of a composition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		return printJSON(engine.Glosses(args, lang))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <symbol-id>...",
	Short: "Extract the combined semantic meaning of a composition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		analysis, err := engine.Analyze(args, lang)
		if err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <symbol-id>...",
	Short: "Assign functional roles to a composition's symbols",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		return printJSON(engine.Classify(args))
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure <symbol-id>...",
	Short: "Show the structural breakdown of a composition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		return printJSON(engine.Structure(args))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <symbol-id>",
	Short: "Show the full profile of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		info, err := engine.SymbolInfo(bliss.SymbolID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dictionary statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		return printJSON(engine.Stats())
	},
}

func init() {
	rootCmd.AddCommand(glossCmd, glossesCmd, analyzeCmd, classifyCmd, structureCmd, infoCmd, statsCmd)
}
