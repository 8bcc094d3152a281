package internal

import "fmt"

// Position represents a location in the source document
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// advance returns the position reached after consuming text
func (p Position) advance(text string) Position {
	next := p
	next.Offset += len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			next.Line++
			next.Column = 1
		} else {
			next.Column++
		}
	}
	return next
}

// Match is one span of the document as seen by the lexer
type Match struct {
	Text     string   // Raw matched text
	State    State    // How the span relates to its mode
	Mode     string   // Mode that owns the span
	Position Position // Where the span starts
}

// String returns a human-readable representation of the match
func (m Match) String() string {
	return fmt.Sprintf("Match{%s %s: %q @ %s}", m.Mode, m.State, m.Text, m.Position)
}

// NewMatch creates a match with the given fields
func NewMatch(text string, state State, mode string, pos Position) Match {
	return Match{
		Text:     text,
		State:    state,
		Mode:     mode,
		Position: pos,
	}
}
