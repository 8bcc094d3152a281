package syntaxplugin

// Renderer formats understood by the host pipeline
const (
	FormatXHTML    = "xhtml"
	FormatMetadata = "metadata"
	FormatText     = "text"
)

// Fixed renderer query answers
const (
	// PluginType is the host's mode-type classification for inline substitutions.
	// The spelling matches the host engine.
	PluginType = "substition"
	// PluginPType is the paragraph type reported to the host.
	PluginPType = "normal"
	// PluginSort orders registration relative to other extensions; low numbers go first.
	PluginSort = 901
)

// Mode constants
const (
	// BaseMode is the outermost lexer mode of a document.
	BaseMode = "base"
	// ModePrefix is prepended to the tag name when no explicit mode is configured.
	ModePrefix = "plugin_"
)

// Plugin directory layout
const (
	SyntaxDirName    = "syntax"
	TemplatesDirName = "templates"
	LangDirName      = "lang"
	LangFileName     = "lang.yaml"
)

// Tag pattern fragments
const (
	patternOpen    = `\[`
	patternClose   = `\]`
	patternSlash   = `/`
	tagNamePattern = `^[A-Za-z0-9_-]+$`
)

// Template conventions
const (
	// leadingDocComment matches one HTML comment at the very start of a template,
	// terminated by the first "-->" and a newline.
	leadingDocComment = `\A<!--(?s:.*?)-->\n`
	// translationToken matches @key@ placeholders. Greedy within a line.
	translationToken = `@(.+)@`
)

// Localization defaults
const (
	DefaultLocale = "en"
)

// Log message constants
const (
	LogMsgPluginCreated     = "syntax plugin created"
	LogMsgPluginConnected   = "syntax plugin connected to lexer"
	LogMsgRenderSkipFormat  = "render skipped: unsupported format"
	LogMsgRenderSkipDelim   = "render skipped: tag delimiter"
	LogMsgTemplateLoaded    = "template loaded"
	LogMsgTemplateFailed    = "template load failed"
	LogMsgPipelineCreated   = "pipeline created"
	LogMsgPluginRegistered  = "plugin registered"
	LogMsgPluginCollision   = "plugin collision"
	LogMsgPipelineStart     = "starting document render"
	LogMsgPipelineEnd       = "document render complete"
	LogMsgCatalogLoaded     = "localization catalog loaded"
	LogMsgTranslationMissed = "translation missing"
)

// Log field constants
const (
	LogFieldTag      = "tag"
	LogFieldMode     = "mode"
	LogFieldOuter    = "outer_mode"
	LogFieldFormat   = "format"
	LogFieldPath     = "path"
	LogFieldKey      = "key"
	LogFieldExisting = "existing"
	LogFieldPlugins  = "plugins"
	LogFieldMatches  = "matches"
	LogFieldBytes    = "bytes"
	LogFieldLocales  = "locales"
)

// Metadata keys attached to errors
const (
	MetaKeyTag      = "tag"
	MetaKeyMode     = "mode"
	MetaKeyPath     = "path"
	MetaKeyTemplate = "template"
	MetaKeyOffset   = "offset"
	MetaKeyExisting = "existing"
	MetaKeyLocale   = "locale"
)
