package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diagfmt"
	"mica/internal/driver"
	"mica/internal/symbols"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.mi|directory>",
	Short: "Run the full front end over a file or directory",
	Long: `Check tokenizes, parses, and scope-checks mica sources. For a single
file it prints the token dump, the parse status, the program summary, and
the symbol table. For a directory it checks every *.mi file in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory checks (0=auto)")
	checkCmd.Flags().Bool("ui", false, "show interactive progress for directory checks")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if st.IsDir() {
		return runCheckDir(cmd, path)
	}
	return runCheckFile(cmd, path, format)
}

func runCheckFile(cmd *cobra.Command, path, format string) error {
	maxDiags := maxDiagnostics(cmd)
	quiet := quietFlag(cmd)

	// Token preview runs its own lexer over the file; the parse below
	// scans independently, so a lex error here is reported only once
	// (the preview bag is rendered, the parse bag is rendered after).
	if format == "pretty" && !quiet {
		preview, err := driver.Tokenize(path, maxDiags)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if err := diagfmt.FormatTokensPretty(os.Stdout, preview.Tokens, preview.FileSet); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
	}

	result, err := driver.Check(path, driver.CheckOptions{MaxDiagnostics: maxDiags})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	switch format {
	case "pretty":
		if result.ParseOk {
			fmt.Fprintln(os.Stdout, "Parsing successful")
		} else {
			fmt.Fprintln(os.Stdout, "Parsing failed")
		}

		if result.ParseOk && !quiet {
			summary := diagfmt.BuildProgramSummary(result.Builder, result.FileID, tableOf(result))
			diagfmt.FormatSummaryPretty(os.Stdout, summary)
		}

		if result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd, os.Stderr))
		}

		if result.Ok && !quiet {
			fmt.Fprintln(os.Stdout)
			err := diagfmt.FormatSemanticsPretty(os.Stdout, &diagfmt.SemanticsInput{
				Builder: result.Builder,
				FileID:  result.FileID,
				Result:  result.Symbols,
			})
			if err != nil {
				return err
			}
		}
	case "json":
		err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeSemantics: result.Symbols != nil,
			Max:              maxDiags,
		}, &diagfmt.SemanticsInput{
			Builder: result.Builder,
			FileID:  result.FileID,
			Result:  result.Symbols,
		})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Ok {
		return fmt.Errorf("%d error(s)", result.Bag.ErrorCount())
	}
	return nil
}

func runCheckDir(cmd *cobra.Command, dir string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	opts := driver.CheckDirOptions{
		CheckOptions: driver.CheckOptions{MaxDiagnostics: maxDiagnostics(cmd)},
		Jobs:         jobs,
	}

	// Manifest values fill in what flags left at defaults.
	if manifest, ok, _ := projectManifest(dir); ok {
		if manifest.Check.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			opts.MaxDiagnostics = manifest.Check.MaxDiagnostics
		}
	}

	if !noCache {
		if cache, err := driver.OpenDiskCache("mica"); err == nil {
			opts.Cache = cache
		}
	}

	var results []driver.CheckDirResult
	if withUI && isTerminal(os.Stdout) {
		results, err = runCheckDirWithUI(cmd, dir, opts)
	} else {
		results, err = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	popts := prettyOpts(cmd, os.Stderr)
	failed, cached := 0, 0
	for _, r := range results {
		if r.Bag != nil && r.Bag.Len() > 0 && r.Result != nil {
			diagfmt.Pretty(os.Stderr, r.Bag, r.Result.FileSet, popts)
		}
		if r.Cached {
			cached++
		}
		if !r.Ok {
			failed++
		}
	}

	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "checked %d file(s): %d ok, %d failed", len(results), len(results)-failed, failed)
		if cached > 0 {
			fmt.Fprintf(os.Stdout, " (%d cached)", cached)
		}
		fmt.Fprintln(os.Stdout)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

func tableOf(result *driver.CheckResult) *symbols.Table {
	if result.Symbols == nil {
		return nil
	}
	return result.Symbols.Table
}
