package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Command summaries shown in the main help
const (
	CmdSummaryRender   = "Render wiki text to HTML"
	CmdSummaryValidate = "Check a plugin manifest and its templates"
	CmdSummaryVersion  = "Show version information"
	CmdSummaryHelp     = "Show help for a command"
)

// Flag names - long form
const (
	FlagManifest = "manifest"
	FlagInput    = "input"
	FlagOutput   = "output"
	FlagLocale   = "locale"
	FlagMode     = "mode"
	FlagFormat   = "format"
	FlagSanitize = "sanitize"
)

// Flag names - short form
const (
	FlagManifestShort = "m"
	FlagInputShort    = "i"
	FlagOutputShort   = "o"
	FlagLocaleShort   = "l"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultInput  = "-" // stdin
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidArguments  = "invalid arguments"
	ErrMsgMissingManifest   = "plugin manifest required"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidMode       = "invalid render mode"
	ErrMsgInvalidEnv        = "invalid environment configuration"
	ErrMsgInvalidLogLevel   = "invalid log level"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgManifestFailed    = "failed to load plugin manifest"
	ErrMsgPluginFailed      = "failed to create plugin"
	ErrMsgRegisterFailed    = "failed to register plugin"
	ErrMsgCatalogFailed     = "failed to load language files"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgNoPlugins         = "manifest declares no plugins"
)

// Environment variable names
const (
	EnvManifest = "WIKITAG_MANIFEST"
	EnvLocale   = "WIKITAG_LOCALE"
	EnvLogLevel = "WIKITAG_LOG_LEVEL"
	EnvSanitize = "WIKITAG_SANITIZE"
)

// Help text templates
const (
	HelpMainHeader = `wikitag - Render wiki text with bracketed tag plugins

Usage:
    wikitag <command> [options]

Commands:
`
	HelpMainFooter = `
Use "wikitag help <command>" for more information about a command.
`

	HelpRenderUsage = `Render wiki text to HTML

Usage:
    wikitag render [options]

Options:
    -m, --manifest <file>   Plugin manifest (YAML)
    -i, --input <file>      Wiki text (default: stdin)
    -o, --output <file>     Output file (default: stdout)
    -l, --locale <locale>   Locale for @key@ strings (default: en)
    --mode <mode>           Render mode: xhtml, text, metadata (default: xhtml)
    --sanitize              Sanitize rendered plugin HTML

Environment:
    WIKITAG_MANIFEST, WIKITAG_LOCALE, WIKITAG_LOG_LEVEL, WIKITAG_SANITIZE

Examples:
    wikitag render -m plugins.yaml -i page.txt
    echo "See [obsbutton/]" | wikitag render -m plugins.yaml -l de`

	HelpValidateUsage = `Check a plugin manifest and its templates

Usage:
    wikitag validate [options]

Options:
    -m, --manifest <file>   Plugin manifest (YAML)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    wikitag validate -m plugins.yaml
    wikitag validate -m plugins.yaml -F json`

	HelpVersionUsage = `Show version information

Usage:
    wikitag version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    wikitag help [command]`
)

// Version output format templates
const (
	VersionTextTemplate = "wikitag version %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess     = "Manifest is valid (%d plugin(s))"
	ValidationTextIssueHeader = "Validation issues:"
	ValidationTextIssueFormat = "  [%s] %s"
	ValidationTextSummary     = "%d issue(s)"
)

// CLI metadata
const (
	CLIName        = "wikitag"
	CLIDescription = "Render wiki text with bracketed tag plugins"
)

// Default configuration values
const (
	DefaultLogLevel = "warn"
)

// File permission constants
const (
	FilePermissions = 0644
	DirPermissions  = 0755
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtHelpCommandLine = "    %-12s%s\n"
)
