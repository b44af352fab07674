package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oscar-osmig/Jweb-sub003/internal/csscheck"
	"github.com/oscar-osmig/Jweb-sub003/internal/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns]",
	Short: "Check CSS files for structural problems",
	Long: `Tokenize CSS files matching the glob patterns and report unbalanced
braces, stray closers and blocks without a selector in
golangci-lint format.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("patterns", nil, "Glob patterns for CSS files to check")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-check-name", true, "Show (csscheck) suffix on issues")
}

func runCheck(_ *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = getStringsWithFallback("patterns", "check.patterns", []string{"**/*.css"})
	}

	files, err := manifest.ExpandPatterns(patterns)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}

	result, err := csscheck.CheckFiles(files)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := csscheck.NewReporter(os.Stdout, csscheck.ReporterOptions{
			UseColors:      getBoolWithFallback("color", "color", false),
			PrintLines:     getBoolWithFallback("print-lines", "check.print-lines", true),
			PrintCheckName: getBoolWithFallback("print-check-name", "check.print-check-name", true),
		})
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
