package internal

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// pattern is one registered regular expression and the mode it leads to
type pattern struct {
	source string
	kind   patternKind
	target string // own mode for special and entry patterns
	re     *regexp.Regexp
}

func (k patternKind) String() string {
	switch k {
	case patternKindEntry:
		return "entry"
	case patternKindExit:
		return "exit"
	default:
		return "special"
	}
}

// parallelRegex is every pattern of one mode joined into a single alternation.
// groups[i] is the capture group that wraps patterns[i].
type parallelRegex struct {
	re       *regexp.Regexp
	patterns []*pattern
	groups   []int
}

// Lexer splits a document into matches using patterns scoped to modes.
// Patterns are registered before tokenizing and compiled on first use.
type Lexer struct {
	baseMode string
	modes    map[string][]*pattern
	parallel map[string]*parallelRegex
	compiled bool
	logger   *zap.Logger
}

// NewLexer creates a lexer whose outermost mode is baseMode
func NewLexer(baseMode string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.String(LogFieldMode, baseMode))
	return &Lexer{
		baseMode: baseMode,
		modes:    make(map[string][]*pattern),
		parallel: make(map[string]*parallelRegex),
		logger:   logger,
	}
}

// AddSpecialPattern registers a pattern that, matched in outerMode, reports a
// single span owned by ownMode without entering it.
func (l *Lexer) AddSpecialPattern(source, outerMode, ownMode string) {
	l.add(outerMode, &pattern{source: source, kind: patternKindSpecial, target: ownMode})
}

// AddEntryPattern registers a pattern that, matched in outerMode, enters ownMode.
func (l *Lexer) AddEntryPattern(source, outerMode, ownMode string) {
	l.add(outerMode, &pattern{source: source, kind: patternKindEntry, target: ownMode})
}

// AddExitPattern registers a pattern that leaves ownMode.
func (l *Lexer) AddExitPattern(source, ownMode string) {
	l.add(ownMode, &pattern{source: source, kind: patternKindExit})
}

func (l *Lexer) add(mode string, p *pattern) {
	l.modes[mode] = append(l.modes[mode], p)
	l.compiled = false
	l.logger.Debug(LogMsgPatternAdded,
		zap.String(LogFieldPattern, p.source),
		zap.String(LogFieldOuter, mode),
		zap.String(LogFieldMode, p.target),
		zap.Stringer(LogFieldKind, p.kind),
	)
}

// Modes returns the number of modes that have at least one pattern
func (l *Lexer) Modes() int {
	return len(l.modes)
}

// compile builds every pattern not yet compiled and one alternation per mode
func (l *Lexer) compile() error {
	if l.compiled {
		return nil
	}
	for mode, patterns := range l.modes {
		if mode == "" {
			return &LexerError{Message: ErrMsgEmptyMode, Pattern: patterns[0].source}
		}
		pr := &parallelRegex{patterns: patterns, groups: make([]int, len(patterns))}
		parts := make([]string, len(patterns))
		group := 1
		for i, p := range patterns {
			if p.re == nil {
				re, err := regexp.Compile(p.source)
				if err != nil {
					return &LexerError{Message: ErrMsgInvalidPattern, Pattern: p.source, Mode: mode, Cause: err}
				}
				p.re = re
			}
			parts[i] = "(" + p.source + ")"
			pr.groups[i] = group
			group += 1 + p.re.NumSubexp()
		}
		combined := strings.Join(parts, "|")
		re, err := regexp.Compile(combined)
		if err != nil {
			return &LexerError{Message: ErrMsgInvalidPattern, Pattern: combined, Mode: mode, Cause: err}
		}
		pr.re = re
		l.parallel[mode] = pr
	}
	l.compiled = true
	return nil
}

// next finds the pattern of mode matching closest to the start of text with a
// single scan of the mode's alternation. Leftmost-first alternation gives ties
// to the pattern registered first. An empty winner falls back to earliest.
func (l *Lexer) next(mode, text string) (*pattern, []int) {
	pr := l.parallel[mode]
	if pr == nil {
		return nil, nil
	}
	m := pr.re.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, nil
	}
	if m[0] == m[1] {
		return l.earliest(mode, text)
	}
	for i, g := range pr.groups {
		if m[2*g] >= 0 {
			return pr.patterns[i], m[:2]
		}
	}
	return nil, nil
}

// earliest finds the pattern of mode matching closest to the start of text.
// Ties go to the pattern registered first. Empty matches are ignored.
func (l *Lexer) earliest(mode, text string) (*pattern, []int) {
	var best *pattern
	var bestLoc []int
	for _, p := range l.modes[mode] {
		loc := firstNonEmpty(p.re, text)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < bestLoc[0] {
			best, bestLoc = p, loc
		}
	}
	return best, bestLoc
}

// firstNonEmpty returns the location of the first match of re in text that
// consumes at least one byte
func firstNonEmpty(re *regexp.Regexp, text string) []int {
	loc := re.FindStringIndex(text)
	if loc == nil || loc[0] < loc[1] {
		return loc
	}
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] < loc[1] {
			return loc
		}
	}
	return nil
}

// Tokenize splits source into matches. Text not claimed by any pattern is
// reported as unmatched in the mode that was current when it was read.
func (l *Lexer) Tokenize(source string) ([]Match, error) {
	if err := l.compile(); err != nil {
		return nil, err
	}
	l.logger.Debug(LogMsgTokenizerStart, zap.Int(LogFieldSource, len(source)))

	var matches []Match
	stack := []string{l.baseMode}
	pos := Position{Offset: 0, Line: 1, Column: 1}
	rest := source

	emit := func(text string, state State, mode string) {
		matches = append(matches, NewMatch(text, state, mode, pos))
		pos = pos.advance(text)
	}

	for len(rest) > 0 {
		mode := stack[len(stack)-1]
		p, loc := l.next(mode, rest)
		if p == nil {
			emit(rest, StateUnmatched, mode)
			break
		}
		if loc[0] > 0 {
			emit(rest[:loc[0]], StateUnmatched, mode)
		}
		text := rest[loc[0]:loc[1]]
		rest = rest[loc[1]:]

		switch p.kind {
		case patternKindSpecial:
			emit(text, StateSpecial, p.target)
		case patternKindEntry:
			emit(text, StateEnter, p.target)
			stack = append(stack, p.target)
		case patternKindExit:
			emit(text, StateExit, mode)
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			} else {
				l.logger.Warn(LogMsgUnbalancedExit,
					zap.String(LogFieldMode, mode),
					zap.Int(LogFieldOffset, pos.Offset),
				)
			}
		}
	}

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldMatches, len(matches)))
	return matches, nil
}

// LexerError represents a pattern that could not be compiled
type LexerError struct {
	Message string
	Pattern string
	Mode    string
	Cause   error
}

// Error implements the error interface
func (e *LexerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(ErrFmtPatternMessage, e.Message, e.Pattern, e.Mode, e.Cause)
	}
	return fmt.Sprintf(ErrFmtModeMessage, e.Message, e.Pattern)
}

// Unwrap returns the underlying cause
func (e *LexerError) Unwrap() error {
	return e.Cause
}
