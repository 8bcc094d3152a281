package syntaxplugin

import (
	"context"
	"html"
	"sort"
	"sync"

	"github.com/phillip-hopper/dokuwiki-plugin-shared/internal"
	"go.uber.org/zap"
)

// Pipeline renders wiki text with a set of registered tag plugins.
// Registration is first-come-wins: a plugin whose mode or tag name is already
// taken is rejected. It is safe for concurrent use.
type Pipeline struct {
	mu     sync.RWMutex
	byMode map[string]*TagPlugin
	byTag  map[string]*TagPlugin
	logger *zap.Logger
}

// NewPipeline creates an empty pipeline.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	config := &pipelineConfig{}
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgPipelineCreated)

	return &Pipeline{
		byMode: make(map[string]*TagPlugin),
		byTag:  make(map[string]*TagPlugin),
		logger: logger,
	}
}

// Register adds a plugin to the pipeline.
func (p *Pipeline) Register(plugin *TagPlugin) error {
	if plugin == nil {
		return NewNilPluginError()
	}
	if plugin.Mode() == BaseMode {
		return NewBaseModeCollisionError(plugin.TagName())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.byMode[plugin.Mode()]; ok {
		p.logger.Warn(LogMsgPluginCollision,
			zap.String(LogFieldMode, plugin.Mode()),
			zap.String(LogFieldExisting, existing.TagName()),
		)
		return NewModeCollisionError(plugin.Mode(), existing.TagName())
	}
	if existing, ok := p.byTag[plugin.TagName()]; ok {
		p.logger.Warn(LogMsgPluginCollision,
			zap.String(LogFieldTag, plugin.TagName()),
			zap.String(LogFieldExisting, existing.Mode()),
		)
		return NewTagCollisionError(plugin.TagName(), existing.Mode())
	}

	p.byMode[plugin.Mode()] = plugin
	p.byTag[plugin.TagName()] = plugin
	p.logger.Debug(LogMsgPluginRegistered,
		zap.String(LogFieldTag, plugin.TagName()),
		zap.String(LogFieldMode, plugin.Mode()),
	)
	return nil
}

// MustRegister adds a plugin and panics if registration fails.
func (p *Pipeline) MustRegister(plugin *TagPlugin) {
	if err := p.Register(plugin); err != nil {
		panic(err)
	}
}

// Plugin returns the plugin that owns mode
func (p *Pipeline) Plugin(mode string) (*TagPlugin, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	plugin, ok := p.byMode[mode]
	return plugin, ok
}

// Plugins returns the registered plugins in connection order: by Sort, then by mode.
func (p *Pipeline) Plugins() []*TagPlugin {
	p.mu.RLock()
	defer p.mu.RUnlock()

	plugins := make([]*TagPlugin, 0, len(p.byMode))
	for _, plugin := range p.byMode {
		plugins = append(plugins, plugin)
	}
	sort.Slice(plugins, func(i, j int) bool {
		if plugins[i].Sort() != plugins[j].Sort() {
			return plugins[i].Sort() < plugins[j].Sort()
		}
		return plugins[i].Mode() < plugins[j].Mode()
	})
	return plugins
}

// Count returns the number of registered plugins.
func (p *Pipeline) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.byMode)
}

// Render renders source in the given format and returns the document.
func (p *Pipeline) Render(ctx context.Context, format, source string) (string, error) {
	doc := &Document{}
	if err := p.RenderTo(ctx, format, source, doc); err != nil {
		return "", err
	}
	return doc.String(), nil
}

// RenderTo renders source into out. On error, out keeps whatever was appended
// before the failing match.
func (p *Pipeline) RenderTo(ctx context.Context, format, source string, out OutputSink) error {
	plugins := p.Plugins()
	p.logger.Debug(LogMsgPipelineStart,
		zap.String(LogFieldFormat, format),
		zap.Int(LogFieldPlugins, len(plugins)),
	)

	lexer := internal.NewLexer(BaseMode, p.logger)
	for _, plugin := range plugins {
		plugin.ConnectTo(lexer, BaseMode)
	}

	matches, err := lexer.Tokenize(source)
	if err != nil {
		return NewTokenizeError(err)
	}

	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return NewRenderCanceledError(m.Position.Offset, err)
		}

		plugin, ok := p.Plugin(m.Mode)
		if !ok {
			appendCData(format, out, m.Text)
			continue
		}

		data := plugin.Handle(m.Text, m.State, m.Position.Offset)
		if _, err := plugin.Render(format, out, data); err != nil {
			return NewRenderError(plugin.TagName(), plugin.Mode(), m.Position.Offset, err)
		}
	}

	p.logger.Debug(LogMsgPipelineEnd, zap.Int(LogFieldMatches, len(matches)))
	return nil
}

// appendCData writes text that no plugin claimed
func appendCData(format string, out OutputSink, text string) {
	switch format {
	case FormatXHTML:
		out.Append(html.EscapeString(text))
	case FormatText:
		out.Append(text)
	}
}
