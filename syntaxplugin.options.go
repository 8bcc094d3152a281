package syntaxplugin

import (
	"path/filepath"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Option is a functional option for configuring a TagPlugin.
type Option func(*pluginConfig)

// pluginConfig holds the internal configuration for a TagPlugin.
type pluginConfig struct {
	mode       string
	modeSet    bool
	root       string
	translator Translator
	sanitizer  *bluemonday.Policy
	logger     *zap.Logger
}

// defaultPluginConfig returns the default plugin configuration.
func defaultPluginConfig() *pluginConfig {
	return &pluginConfig{
		translator: MapTranslator(nil),
	}
}

// WithMode sets the plugin's own lexer mode identifier.
// It must be unique across every plugin registered in one pipeline.
// Default: "plugin_" + tag name
func WithMode(mode string) Option {
	return func(c *pluginConfig) {
		c.mode = mode
		c.modeSet = true
	}
}

// WithRoot sets the plugin root directory. Templates are read from <root>/templates.
// Default: "" (relative to the working directory)
func WithRoot(root string) Option {
	return func(c *pluginConfig) {
		c.root = root
	}
}

// WithSourcePath derives the plugin root from the file that defines the plugin,
// e.g. "/wiki/plugins/door43obs/syntax/button.go" gives "/wiki/plugins/door43obs".
func WithSourcePath(path string) Option {
	return func(c *pluginConfig) {
		c.root = DeriveRoot(filepath.Dir(path))
	}
}

// WithTranslator sets the localization table used for @key@ tokens.
// Default: an empty table (every token is left as written)
func WithTranslator(t Translator) Option {
	return func(c *pluginConfig) {
		if t != nil {
			c.translator = t
		}
	}
}

// WithSanitizer runs every rendered fragment through the given policy.
// Default: nil (templates are trusted and emitted unchanged)
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(c *pluginConfig) {
		c.sanitizer = policy
	}
}

// WithLogger sets the logger for the plugin.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *pluginConfig) {
		c.logger = logger
	}
}

// PipelineOption is a functional option for configuring a Pipeline.
type PipelineOption func(*pipelineConfig)

// pipelineConfig holds the internal configuration for a Pipeline.
type pipelineConfig struct {
	logger *zap.Logger
}

// WithPipelineLogger sets the logger for the pipeline and its lexers.
// Default: nil (no logging)
func WithPipelineLogger(logger *zap.Logger) PipelineOption {
	return func(c *pipelineConfig) {
		c.logger = logger
	}
}
