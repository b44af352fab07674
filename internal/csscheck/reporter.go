package csscheck

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter formats check results in golangci-lint style:
// file:line:col: message (csscheck), with the offending source line and
// a caret indicator underneath.
type Reporter struct {
	w              io.Writer
	useColors      bool
	printLines     bool
	printCheckName bool
}

// ReporterOptions configures a Reporter.
type ReporterOptions struct {
	UseColors      bool
	PrintLines     bool
	PrintCheckName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		w:              w,
		useColors:      opts.UseColors || forceColors(),
		printLines:     opts.PrintLines,
		printCheckName: opts.PrintCheckName,
	}
}

// forceColors honors the common CI color environment switches.
func forceColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// PrintIssues outputs issues sorted by file, line, then column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	suffix := ""
	if r.printCheckName {
		suffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(styleCyan, location, r.useColors),
		issue.Text,
		renderStyle(styleGray, suffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaret(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(styleYellow, caret, r.useColors))
	}
}

// buildCaret builds the "^" indicator aligned with the column,
// preserving tabs from the source line so alignment survives tab
// expansion.
func buildCaret(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count breakdown after the issues.
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	if total == 0 {
		fmt.Fprintf(r.w, "%s checked, no issues\n",
			pluralize(result.FilesChecked, "file", "files"))
		return
	}

	if result.ErrorCount > 0 && result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralize(total, "issue", "issues"),
			pluralize(result.ErrorCount, "error", "errors"),
			pluralize(result.WarningCount, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s\n", pluralize(total, "issue", "issues"))
	}
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
