package internal

// State is the lexer state reported with every match, numbered like the
// host engine's handler states.
type State int

// Lexer state constants
const (
	StateEnter State = iota + 1
	StateMatched
	StateUnmatched
	StateExit
	StateSpecial
)

// State string names for debugging
const (
	StateNameEnter     = "ENTER"
	StateNameMatched   = "MATCHED"
	StateNameUnmatched = "UNMATCHED"
	StateNameExit      = "EXIT"
	StateNameSpecial   = "SPECIAL"
	StateNameUnknown   = "UNKNOWN"
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateEnter:
		return StateNameEnter
	case StateMatched:
		return StateNameMatched
	case StateUnmatched:
		return StateNameUnmatched
	case StateExit:
		return StateNameExit
	case StateSpecial:
		return StateNameSpecial
	default:
		return StateNameUnknown
	}
}

// patternKind distinguishes how a pattern affects the mode stack
type patternKind int

const (
	patternKindSpecial patternKind = iota
	patternKindEntry
	patternKindExit
)

// Log message constants
const (
	LogMsgLexerCreated   = "lexer created"
	LogMsgPatternAdded   = "pattern added"
	LogMsgTokenizerStart = "starting tokenization"
	LogMsgTokenizerEnd   = "tokenization complete"
	LogMsgUnbalancedExit = "exit pattern matched at base mode"
)

// Log field constants
const (
	LogFieldPattern = "pattern"
	LogFieldMode    = "mode"
	LogFieldOuter   = "outer_mode"
	LogFieldKind    = "kind"
	LogFieldSource  = "source_len"
	LogFieldMatches = "matches"
	LogFieldOffset  = "offset"
)

// Error message constants
const (
	ErrMsgInvalidPattern = "invalid lexer pattern"
	ErrMsgEmptyMode      = "lexer mode cannot be empty"
)

// Format strings
const (
	ErrFmtPatternMessage = "%s %q in mode %q: %v"
	ErrFmtModeMessage    = "%s (pattern %q)"
)
