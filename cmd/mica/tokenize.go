package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diagfmt"
	"mica/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mi",
	Short: "Tokenize a mica source file",
	Long:  `Tokenize breaks a mica source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd, os.Stderr))
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%d lexical error(s)", result.Bag.ErrorCount())
	}
	return nil
}
