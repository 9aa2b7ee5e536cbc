package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diagfmt"
	"mica/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mi",
	Short: "Parse a mica source file",
	Long:  `Parse builds the syntax tree for a mica source file and reports its top-level shape`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type parseReport struct {
	Ok      bool                   `json:"ok"`
	Summary diagfmt.ProgramSummary `json:"summary"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd, os.Stderr))
	}

	summary := diagfmt.BuildProgramSummary(result.Builder, result.FileID, nil)

	switch format {
	case "pretty":
		if result.Ok {
			fmt.Fprintln(os.Stdout, "Parsing successful")
		} else {
			fmt.Fprintln(os.Stdout, "Parsing failed")
		}
		if result.Ok && !quietFlag(cmd) {
			diagfmt.FormatSummaryPretty(os.Stdout, summary)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(parseReport{Ok: result.Ok, Summary: summary}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Ok {
		return fmt.Errorf("%d syntax error(s)", result.Bag.ErrorCount())
	}
	return nil
}
