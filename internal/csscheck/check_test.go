package csscheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	css "github.com/oscar-osmig/Jweb-sub003"
)

func TestCheckCleanFragments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "flat rule",
			content: ".card {\n  padding: 1rem;\n}\n",
		},
		{
			name:    "nested rule with at-rule",
			content: ".card {\n  color: red;\n\n  @media (max-width: 600px) {\n    color: blue;\n  }\n}\n",
		},
		{
			name:    "empty input",
			content: "",
		},
		{
			name:    "comment only",
			content: "/* nothing here */\n",
		},
		{
			name:    "font face",
			content: "@font-face {\n  font-family: \"Inter\";\n  src: url(/inter.woff2);\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Empty(t, Check(tt.content, "test.css"))
		})
	}
}

func TestCheckUnexpectedClose(t *testing.T) {
	issues := Check(".a {\n  color: red;\n}\n}\n", "bad.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, 4, issues[0].Pos.Line)
	assert.Equal(t, 1, issues[0].Pos.Column)
	assert.Contains(t, issues[0].Text, `unexpected "}"`)
}

func TestCheckUnterminatedBlock(t *testing.T) {
	issues := Check(".a {\n  .b {\n    color: red;\n", "bad.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Text, "2 unclosed")
	// Reported at the first unclosed "{".
	assert.Equal(t, 1, issues[0].Pos.Line)
	assert.Equal(t, 4, issues[0].Pos.Column)
}

func TestCheckBlockWithoutSelector(t *testing.T) {
	issues := Check("{\n  color: red;\n}\n", "bad.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, issueEmptySelector, issues[0].Text)
}

func TestCheckIssueCarriesSourceLine(t *testing.T) {
	issues := Check(".a { color: red; }\n  }\n", "bad.css")
	require.Len(t, issues, 1)
	require.Equal(t, []string{"  }"}, issues[0].SourceLines)
	require.Equal(t, 3, issues[0].Pos.Column)
}

func TestCheckBuilderOutputIsClean(t *testing.T) {
	// Everything the builders emit must pass the checker.
	tokens := css.NewVariables().Set("brand", "#336699")
	card := css.NewRule(".card").Prop("padding", "1rem")
	card.Nest("&:hover").Prop("color", css.Var("brand"))
	m := css.NewMedia().Screen().MinWidth("768px")
	m.Rule(".card").Prop("padding", "2rem")
	snap := css.NewScrollSnap(".strip").Type("x", "mandatory")
	snap.Item(".strip > *").Align("start")

	sheet := css.NewStylesheet().Add(
		tokens, card, m, snap,
		css.NewFontFace("Inter").Src("/inter.woff2", "woff2"),
		css.NewLogical(".article").PaddingInline("2rem"),
	)

	require.Empty(t, Check(sheet.Render(), "generated.css"))
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.css")
	require.NoError(t, os.WriteFile(good, []byte(".a {\n  color: red;\n}\n"), 0o644))

	bad := filepath.Join(dir, "bad.css")
	require.NoError(t, os.WriteFile(bad, []byte(".a {\n"), 0o644))

	result, err := CheckFiles([]string{good, bad})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesChecked)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 0, result.WarningCount)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, bad, result.Issues[0].Pos.Filename)
}

func TestCheckFilesAggregatesReadErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.css")
	require.NoError(t, os.WriteFile(good, []byte("body {\n}\n"), 0o644))

	result, err := CheckFiles([]string{
		good,
		filepath.Join(dir, "missing-one.css"),
		filepath.Join(dir, "missing-two.css"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-one.css")
	assert.Contains(t, err.Error(), "missing-two.css")
	assert.Equal(t, 1, result.FilesChecked)
}
