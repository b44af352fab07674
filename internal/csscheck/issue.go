package csscheck

// Issue represents a single problem found in emitted CSS, shaped like a
// golangci-lint issue so editor and CI integrations can consume it.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "csscheck"
	Text        string   `json:"Text"`       // `unexpected "}" outside any block`
	Severity    string   `json:"Severity"`   // "warning", "error"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 1-based
	Column   int    `json:"Column"` // 1-based
}

// Issue severity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message templates
const (
	issueUnexpectedClose = "unexpected \"}\" outside any block"
	issueUnterminated    = "unterminated block: %d unclosed \"{\" at end of file"
	issueEmptySelector   = "block opened without a selector"
	issueLexer           = "cannot tokenize CSS: %v"
)
