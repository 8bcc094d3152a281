package syntaxplugin

import (
	"os"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/phillip-hopper/dokuwiki-plugin-shared/internal"
	"go.uber.org/zap"
)

// Lexer is the registration surface of the host lexer.
type Lexer interface {
	AddSpecialPattern(pattern, outerMode, ownMode string)
	AddEntryPattern(pattern, outerMode, ownMode string)
	AddExitPattern(pattern, ownMode string)
}

// LexerState tells a handler how a match relates to its mode.
type LexerState = internal.State

// Lexer states reported to Handle
const (
	StateEnter     = internal.StateEnter
	StateMatched   = internal.StateMatched
	StateUnmatched = internal.StateUnmatched
	StateExit      = internal.StateExit
	StateSpecial   = internal.StateSpecial
)

// MatchRecord is the data Handle passes on to Render for a single match.
type MatchRecord struct {
	Match string
}

var tagNameRe = regexp.MustCompile(tagNamePattern)

// TagPlugin adds a bracketed tag to the wiki syntax. "[name/]" renders the
// plugin's HTML template in place; "[name]" and "[/name]" delimit a span
// owned by the plugin's mode.
//
// A TagPlugin is immutable after construction and safe for concurrent use.
type TagPlugin struct {
	tagName      string
	templateFile string
	mode         string
	root         string

	specialMatch string
	entryMatch   string
	exitMatch    string
	delimiterRe  *regexp.Regexp

	translator Translator
	sanitizer  *bluemonday.Policy
	logger     *zap.Logger
}

// NewTagPlugin creates a plugin for tagName that renders templateFile from
// the plugin's templates directory.
func NewTagPlugin(tagName, templateFile string, opts ...Option) (*TagPlugin, error) {
	if tagName == "" {
		return nil, NewInvalidTagNameError(ErrMsgEmptyTagName, tagName)
	}
	if !tagNameRe.MatchString(tagName) {
		return nil, NewInvalidTagNameError(ErrMsgInvalidTagName, tagName)
	}
	if templateFile == "" {
		return nil, NewEmptyTemplateNameError(tagName)
	}

	config := defaultPluginConfig()
	for _, opt := range opts {
		opt(config)
	}

	mode := ModePrefix + tagName
	if config.modeSet {
		if config.mode == "" {
			return nil, NewEmptyModeError(tagName)
		}
		mode = config.mode
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &TagPlugin{
		tagName:      tagName,
		templateFile: templateFile,
		mode:         mode,
		root:         config.root,
		specialMatch: patternOpen + tagName + patternSlash + patternClose,
		entryMatch:   patternOpen + tagName + patternClose,
		exitMatch:    patternOpen + patternSlash + tagName + patternClose,
		translator:   config.translator,
		sanitizer:    config.sanitizer,
		logger:       logger,
	}
	p.delimiterRe = regexp.MustCompile(`^(?:` + p.entryMatch + `|` + p.exitMatch + `)$`)

	logger.Debug(LogMsgPluginCreated,
		zap.String(LogFieldTag, tagName),
		zap.String(LogFieldMode, mode),
		zap.String(LogFieldPath, p.TemplatePath()),
	)
	return p, nil
}

// MustNewTagPlugin creates a plugin and panics if there's an error.
func MustNewTagPlugin(tagName, templateFile string, opts ...Option) *TagPlugin {
	p, err := NewTagPlugin(tagName, templateFile, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// TagName returns the bare tag name
func (p *TagPlugin) TagName() string { return p.tagName }

// Mode returns the plugin's own lexer mode
func (p *TagPlugin) Mode() string { return p.mode }

// Root returns the plugin root directory
func (p *TagPlugin) Root() string { return p.root }

// TemplateFile returns the template file name
func (p *TagPlugin) TemplateFile() string { return p.templateFile }

// TemplatePath returns where the template is read from
func (p *TagPlugin) TemplatePath() string {
	return templatePath(p.root, p.templateFile)
}

// SpecialPattern returns the pattern for the self-closing tag, [name/]
func (p *TagPlugin) SpecialPattern() string { return p.specialMatch }

// EntryPattern returns the pattern for the opening tag, [name]
func (p *TagPlugin) EntryPattern() string { return p.entryMatch }

// ExitPattern returns the pattern for the closing tag, [/name]
func (p *TagPlugin) ExitPattern() string { return p.exitMatch }

// Type returns the host mode-type classification
func (p *TagPlugin) Type() string { return PluginType }

// PType returns the paragraph type
func (p *TagPlugin) PType() string { return PluginPType }

// Sort returns the registration priority. Low numbers go before high numbers.
func (p *TagPlugin) Sort() int { return PluginSort }

// ConnectTo registers the plugin's patterns with the lexer. The self-closing
// and opening tags are recognized inside mode; the closing tag is recognized
// inside the plugin's own mode.
func (p *TagPlugin) ConnectTo(lexer Lexer, mode string) {
	lexer.AddSpecialPattern(p.specialMatch, mode, p.mode)
	lexer.AddEntryPattern(p.entryMatch, mode, p.mode)
	lexer.AddExitPattern(p.exitMatch, p.mode)

	p.logger.Debug(LogMsgPluginConnected,
		zap.String(LogFieldTag, p.tagName),
		zap.String(LogFieldOuter, mode),
		zap.String(LogFieldMode, p.mode),
	)
}

// Handle packages a lexer match for Render. Only the matched text is kept.
func (p *TagPlugin) Handle(match string, state LexerState, pos int) MatchRecord {
	return MatchRecord{Match: match}
}

// Render appends the plugin's HTML to out. It reports false without touching
// out when format is not xhtml or the match is an opening or closing tag.
// A template that cannot be read is returned as an error and nothing is appended.
func (p *TagPlugin) Render(format string, out OutputSink, data MatchRecord) (bool, error) {
	if format != FormatXHTML {
		p.logger.Debug(LogMsgRenderSkipFormat,
			zap.String(LogFieldTag, p.tagName),
			zap.String(LogFieldFormat, format),
		)
		return false, nil
	}

	if !p.NeedToRender(data.Match) {
		p.logger.Debug(LogMsgRenderSkipDelim, zap.String(LogFieldTag, p.tagName))
		return false, nil
	}

	text, err := p.TextToRender(data.Match)
	if err != nil {
		return false, err
	}
	out.Append(text)
	return true, nil
}

// NeedToRender reports whether match is content rather than the opening or
// closing tag. Self-closing tags and body text both need rendering.
func (p *TagPlugin) NeedToRender(match string) bool {
	return !p.delimiterRe.MatchString(match)
}

// TextToRender loads the template, drops its leading doc comment and fills in
// the localized strings. The match itself does not affect the output.
func (p *TagPlugin) TextToRender(match string) (string, error) {
	path := p.TemplatePath()
	raw, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn(LogMsgTemplateFailed,
			zap.String(LogFieldTag, p.tagName),
			zap.String(LogFieldPath, path),
			zap.Error(err),
		)
		return "", NewTemplateReadError(path, err)
	}
	p.logger.Debug(LogMsgTemplateLoaded,
		zap.String(LogFieldPath, path),
		zap.Int(LogFieldBytes, len(raw)),
	)

	text := p.TranslateHTML(StripDocComment(string(raw)))
	if p.sanitizer != nil {
		text = p.sanitizer.Sanitize(text)
	}
	return text, nil
}

// TranslateHTML replaces @key@ tokens using the plugin's translator
func (p *TagPlugin) TranslateHTML(html string) string {
	return translateHTML(html, p.translator, p.logger)
}
