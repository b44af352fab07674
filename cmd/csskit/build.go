package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oscar-osmig/Jweb-sub003/internal/csscheck"
	"github.com/oscar-osmig/Jweb-sub003/internal/manifest"
)

var buildCmd = &cobra.Command{
	Use:   "build [patterns]",
	Short: "Compile stylesheet manifests to CSS",
	Long: `Load YAML stylesheet manifests matching the glob patterns, compile
them through the fluent builders, and write one .css file per manifest
(or print to stdout when no output directory is set).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("out-dir", "", "Output directory for compiled CSS (default: stdout)")
	f.StringSlice("patterns", nil, "Glob patterns for manifests to compile")
	f.Bool("check", false, "Run the syntax checker on compiled output")
}

func runBuild(_ *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = getStringsWithFallback("patterns", "build.patterns", []string{"**/*.css.yaml"})
	}

	files, err := manifest.ExpandPatterns(patterns)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no manifests match %v", patterns)
	}

	outDir := getStringWithFallback("out-dir", "build.out-dir", "")
	check := getBoolWithFallback("check", "build.check", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var issues []csscheck.Issue
	written := 0

	for _, path := range files {
		if verbose && !quiet {
			fmt.Printf("Compiling %s\n", path)
		}

		m, err := manifest.Load(path)
		if err != nil {
			return err
		}
		sheet, err := m.Build()
		if err != nil {
			return fmt.Errorf("building %s: %w", path, err)
		}
		out := sheet.Render()

		target := outputName(path)
		if check {
			issues = append(issues, csscheck.Check(out, target)...)
		}

		if outDir == "" {
			fmt.Print(out)
			continue
		}

		dest := filepath.Join(outDir, target)
		if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		written++
	}

	if outDir != "" && !quiet {
		fmt.Printf("Compiled %d manifests into %s\n", written, outDir)
	}

	if len(issues) > 0 {
		reporter := csscheck.NewReporter(os.Stderr, csscheck.ReporterOptions{
			UseColors:      getBoolWithFallback("color", "color", false),
			PrintLines:     true,
			PrintCheckName: true,
		})
		reporter.PrintIssues(issues)
		return fmt.Errorf("compiled output failed the syntax check (%d issues)", len(issues))
	}

	return nil
}

// outputName maps a manifest path to its CSS file name:
// styles/site.css.yaml -> site.css.
func outputName(path string) string {
	name := filepath.Base(path)
	for _, suffix := range []string{".css.yaml", ".css.yml", ".yaml", ".yml"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix) + ".css"
		}
	}
	return name + ".css"
}
