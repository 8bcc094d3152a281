package internal

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testBase = "base"
	testMode = "plugin_obs"
)

// newTagLexer registers [obs/], [obs] and [/obs] the way a tag plugin does
func newTagLexer() *Lexer {
	l := NewLexer(testBase, zap.NewNop())
	l.AddSpecialPattern(`\[obs/\]`, testBase, testMode)
	l.AddEntryPattern(`\[obs\]`, testBase, testMode)
	l.AddExitPattern(`\[/obs\]`, testMode)
	return l
}

// assertMatches compares text, state and mode, ignoring positions
func assertMatches(t *testing.T, expected, actual []Match) {
	t.Helper()
	strip := func(ms []Match) []Match {
		out := make([]Match, len(ms))
		for i, m := range ms {
			out[i] = Match{Text: m.Text, State: m.State, Mode: m.Mode}
		}
		return out
	}
	if diff := cmp.Diff(strip(expected), strip(actual)); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Match
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "plain text",
			input: "Hello, world!",
			expected: []Match{
				{Text: "Hello, world!", State: StateUnmatched, Mode: testBase},
			},
		},
		{
			name:  "self-closing tag",
			input: "a [obs/] b",
			expected: []Match{
				{Text: "a ", State: StateUnmatched, Mode: testBase},
				{Text: "[obs/]", State: StateSpecial, Mode: testMode},
				{Text: " b", State: StateUnmatched, Mode: testBase},
			},
		},
		{
			name:  "entry and exit",
			input: "[obs]body[/obs]",
			expected: []Match{
				{Text: "[obs]", State: StateEnter, Mode: testMode},
				{Text: "body", State: StateUnmatched, Mode: testMode},
				{Text: "[/obs]", State: StateExit, Mode: testMode},
			},
		},
		{
			name:  "self-closing inside body is body text",
			input: "[obs][obs/][/obs]",
			expected: []Match{
				{Text: "[obs]", State: StateEnter, Mode: testMode},
				{Text: "[obs/]", State: StateUnmatched, Mode: testMode},
				{Text: "[/obs]", State: StateExit, Mode: testMode},
			},
		},
		{
			name:  "unterminated entry",
			input: "[obs]rest",
			expected: []Match{
				{Text: "[obs]", State: StateEnter, Mode: testMode},
				{Text: "rest", State: StateUnmatched, Mode: testMode},
			},
		},
		{
			name:  "exit outside its mode",
			input: "x[/obs]",
			expected: []Match{
				{Text: "x[/obs]", State: StateUnmatched, Mode: testBase},
			},
		},
		{
			name:  "text after exit returns to base",
			input: "[obs]a[/obs]b[obs/]",
			expected: []Match{
				{Text: "[obs]", State: StateEnter, Mode: testMode},
				{Text: "a", State: StateUnmatched, Mode: testMode},
				{Text: "[/obs]", State: StateExit, Mode: testMode},
				{Text: "b", State: StateUnmatched, Mode: testBase},
				{Text: "[obs/]", State: StateSpecial, Mode: testMode},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := newTagLexer().Tokenize(tt.input)
			require.NoError(t, err)
			assertMatches(t, tt.expected, matches)
		})
	}
}

func TestLexer_Tokenize_Positions(t *testing.T) {
	matches, err := newTagLexer().Tokenize("line one\nsee [obs/] now")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, matches[0].Position)
	assert.Equal(t, Position{Offset: 13, Line: 2, Column: 5}, matches[1].Position)
	assert.Equal(t, Position{Offset: 19, Line: 2, Column: 11}, matches[2].Position)
}

func TestLexer_Tokenize_TieGoesToFirstPattern(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`\[x\]`, testBase, "first")
	l.AddSpecialPattern(`\[x\]`, testBase, "second")

	matches, err := l.Tokenize("[x]")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "first", matches[0].Mode)
}

func TestLexer_Tokenize_EarliestMatchWins(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`\[b/\]`, testBase, "b")
	l.AddSpecialPattern(`\[a/\]`, testBase, "a")

	matches, err := l.Tokenize("[a/][b/]")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].Mode)
	assert.Equal(t, "b", matches[1].Mode)
}

func TestLexer_Tokenize_IgnoresEmptyMatches(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`x*`, testBase, "x")

	matches, err := l.Tokenize("abxxc")
	require.NoError(t, err)
	assertMatches(t, []Match{
		{Text: "ab", State: StateUnmatched, Mode: testBase},
		{Text: "xx", State: StateSpecial, Mode: "x"},
		{Text: "c", State: StateUnmatched, Mode: testBase},
	}, matches)
}

func TestLexer_Tokenize_EmptyAlternativeFallsBack(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`x*`, testBase, "x")
	l.AddSpecialPattern(`\[a/\]`, testBase, "a")

	matches, err := l.Tokenize("[a/]xx")
	require.NoError(t, err)
	assertMatches(t, []Match{
		{Text: "[a/]", State: StateSpecial, Mode: "a"},
		{Text: "xx", State: StateSpecial, Mode: "x"},
	}, matches)
}

func TestLexer_Tokenize_PatternsWithGroups(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`\[(a|b)(c)?/\]`, testBase, "ab")
	l.AddSpecialPattern(`\[(?i:d)/\]`, testBase, "d")
	l.AddEntryPattern(`\[(e)\]`, testBase, "e")
	l.AddExitPattern(`\[/(e)\]`, "e")

	matches, err := l.Tokenize("[bc/][D/][e]x[/e][a/]")
	require.NoError(t, err)
	assertMatches(t, []Match{
		{Text: "[bc/]", State: StateSpecial, Mode: "ab"},
		{Text: "[D/]", State: StateSpecial, Mode: "d"},
		{Text: "[e]", State: StateEnter, Mode: "e"},
		{Text: "x", State: StateUnmatched, Mode: "e"},
		{Text: "[/e]", State: StateExit, Mode: "e"},
		{Text: "[a/]", State: StateSpecial, Mode: "ab"},
	}, matches)
}

func TestLexer_Tokenize_LargeInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large input test in short mode")
	}

	l := NewLexer(testBase, nil)
	for i := 0; i < 10; i++ {
		mode := fmt.Sprintf("plugin_t%d", i)
		l.AddSpecialPattern(fmt.Sprintf(`\[t%d/\]`, i), testBase, mode)
		l.AddEntryPattern(fmt.Sprintf(`\[t%d\]`, i), testBase, mode)
		l.AddExitPattern(fmt.Sprintf(`\[/t%d\]`, i), mode)
	}
	const repeats = 50000
	source := strings.Repeat("some text here [t0/] ", repeats)

	start := time.Now()
	matches, err := l.Tokenize(source)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, matches, 2*repeats+1)
	assert.Less(t, elapsed, 10*time.Second, "tokenizing %d bytes took %s", len(source), elapsed)
}

func TestLexer_Tokenize_InvalidPattern(t *testing.T) {
	l := NewLexer(testBase, nil)
	l.AddSpecialPattern(`[obs/]`, testBase, testMode)
	l.AddEntryPattern(`(unclosed`, testBase, testMode)

	_, err := l.Tokenize("text")
	require.Error(t, err)

	var lexErr *LexerError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, ErrMsgInvalidPattern, lexErr.Message)
	assert.Equal(t, `(unclosed`, lexErr.Pattern)

	var syntaxErr *syntax.Error
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestLexer_PatternsAddedAfterTokenize(t *testing.T) {
	l := newTagLexer()
	_, err := l.Tokenize("[ta/]")
	require.NoError(t, err)

	l.AddSpecialPattern(`\[ta/\]`, testBase, "plugin_ta")
	matches, err := l.Tokenize("[ta/]")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, StateSpecial, matches[0].State)
	assert.Equal(t, 2, l.Modes())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, StateNameEnter, StateEnter.String())
	assert.Equal(t, StateNameMatched, StateMatched.String())
	assert.Equal(t, StateNameUnmatched, StateUnmatched.String())
	assert.Equal(t, StateNameExit, StateExit.String())
	assert.Equal(t, StateNameSpecial, StateSpecial.String())
	assert.Equal(t, StateNameUnknown, State(0).String())
}
