package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexSkipsBlankAndCommentLines(t *testing.T) {
	source := "// leading comment\n\n0>keydown a\n   \n100>keyup a\n"

	lines, diags := Lex(source)

	require.Empty(t, diags)
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Number)
	assert.Equal(t, "0>keydown a", lines[0].Text)
	assert.Equal(t, 5, lines[1].Number)
	assert.Equal(t, "100>keyup a", lines[1].Text)
}

func TestLexStripsTrailingLineComment(t *testing.T) {
	lines, diags := Lex("0>keydown a // press it\n")

	require.Empty(t, diags)
	require.Len(t, lines, 1)
	assert.Equal(t, "0>keydown a", lines[0].Text)
}

func TestLexBlockCommentWithinLine(t *testing.T) {
	lines, diags := Lex("0>keydown /* held */ a\n")

	require.Empty(t, diags)
	require.Len(t, lines, 1)
	assert.Equal(t, "0>keydown  a", lines[0].Text)
}

func TestLexBlockCommentAcrossLines(t *testing.T) {
	source := "0>keydown a\n/* comment\nstill comment\n*/100>keyup a\n"

	lines, diags := Lex(source)

	require.Empty(t, diags)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Number)
	// Line numbers after the comment still match the original source
	assert.Equal(t, 4, lines[1].Number)
	assert.Equal(t, "100>keyup a", lines[1].Text)
}

func TestLexFirstCloserEndsBlockComment(t *testing.T) {
	lines, diags := Lex("0>keydown a /* one /* two */\n")

	require.Empty(t, diags)
	require.Len(t, lines, 1)
	assert.Equal(t, "0>keydown a", lines[0].Text)
}

func TestLexUnterminatedBlockCommentWarns(t *testing.T) {
	source := "0>keydown a\n/* never closed\n100>keyup a\n"

	lines, diags := Lex(source)

	require.Len(t, lines, 1)
	assert.Equal(t, "0>keydown a", lines[0].Text)

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Equal(t, 2, diags[0].Line)
	assert.False(t, diags.HasErrors())
}
