// Package csscheck verifies that emitted CSS text is structurally
// sound: balanced braces, no stray closers, no blocks without a
// selector. It tokenizes with tdewolff/parse and reports findings as
// golangci-lint-shaped issues; it does not validate CSS grammar beyond
// the token level.
package csscheck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Result contains the issues and statistics of a check run.
type Result struct {
	Issues       []Issue
	FilesChecked int
	ErrorCount   int
	WarningCount int
}

// checkState tracks lexer position and open blocks while scanning.
type checkState struct {
	filename string
	lines    []string
	line     int
	col      int

	openStack   []IssuePos // positions of unclosed "{"
	significant bool       // non-trivia token seen since last block boundary
	issues      []Issue
}

// Check tokenizes CSS content and returns the structural issues found.
// A clean fragment returns no issues; Check itself cannot fail.
func Check(content, filename string) []Issue {
	state := &checkState{
		filename: filename,
		lines:    strings.Split(content, "\n"),
		line:     1,
		col:      1,
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				state.report(SeverityError, fmt.Sprintf(issueLexer, err), state.pos())
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			if !state.significant {
				state.report(SeverityWarning, issueEmptySelector, state.pos())
			}
			state.openStack = append(state.openStack, state.pos())
			state.significant = false

		case css.RightBraceToken:
			if len(state.openStack) == 0 {
				state.report(SeverityError, issueUnexpectedClose, state.pos())
			} else {
				state.openStack = state.openStack[:len(state.openStack)-1]
			}
			state.significant = false

		case css.SemicolonToken:
			state.significant = false

		case css.WhitespaceToken, css.CommentToken:
			// trivia, does not make a selector

		default:
			state.significant = true
		}

		state.advance(text)
	}

	if n := len(state.openStack); n > 0 {
		state.report(SeverityError, fmt.Sprintf(issueUnterminated, n), state.openStack[0])
	}

	return state.issues
}

// CheckFiles checks every path and aggregates read failures into a
// single combined error while still reporting issues for readable
// files.
func CheckFiles(paths []string) (*Result, error) {
	result := &Result{}
	var errs error

	for _, path := range paths {
		// #nosec G304 - paths come from caller-supplied glob patterns
		content, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", path, err))
			continue
		}

		result.Issues = append(result.Issues, Check(string(content), path)...)
		result.FilesChecked++
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, errs
}

func (s *checkState) pos() IssuePos {
	return IssuePos{Filename: s.filename, Line: s.line, Column: s.col}
}

func (s *checkState) report(severity, text string, pos IssuePos) {
	issue := Issue{
		FromLinter: "csscheck",
		Text:       text,
		Severity:   severity,
		Pos:        pos,
	}
	if pos.Line >= 1 && pos.Line <= len(s.lines) {
		issue.SourceLines = []string{s.lines[pos.Line-1]}
	}
	s.issues = append(s.issues, issue)
}

// advance moves the tracked line/column past the consumed token text.
func (s *checkState) advance(text []byte) {
	for _, b := range text {
		if b == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}
