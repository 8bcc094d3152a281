package syntaxplugin

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPipeline_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		p := NewPipeline()
		require.NoError(t, p.Register(MustNewTagPlugin("obs", testTemplateFile)))
		assert.Equal(t, 1, p.Count())

		plugin, ok := p.Plugin("plugin_obs")
		assert.True(t, ok)
		assert.Equal(t, "obs", plugin.TagName())
	})

	t.Run("nil plugin", func(t *testing.T) {
		err := NewPipeline().Register(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilPlugin)
	})

	t.Run("mode collision", func(t *testing.T) {
		p := NewPipeline()
		require.NoError(t, p.Register(MustNewTagPlugin("obs", testTemplateFile, WithMode("door43"))))

		err := p.Register(MustNewTagPlugin("ta", testTemplateFile, WithMode("door43")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgModeCollision)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		existing, ok := customErr.GetMetadata(MetaKeyExisting)
		assert.True(t, ok)
		assert.Equal(t, "obs", existing)
		assert.Equal(t, 1, p.Count())
	})

	t.Run("tag collision", func(t *testing.T) {
		p := NewPipeline()
		require.NoError(t, p.Register(MustNewTagPlugin("obs", testTemplateFile)))

		err := p.Register(MustNewTagPlugin("obs", testTemplateFile, WithMode("other")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTagCollision)
	})

	t.Run("base mode", func(t *testing.T) {
		err := NewPipeline().Register(MustNewTagPlugin("obs", testTemplateFile, WithMode(BaseMode)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgModeIsBaseMode)
	})

	t.Run("collision is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		p := NewPipeline(WithPipelineLogger(zap.New(core)))
		p.MustRegister(MustNewTagPlugin("obs", testTemplateFile))

		require.Error(t, p.Register(MustNewTagPlugin("obs", testTemplateFile)))
		assert.Equal(t, 1, logs.FilterMessage(LogMsgPluginCollision).Len())
	})

	t.Run("must register panics", func(t *testing.T) {
		p := NewPipeline()
		p.MustRegister(MustNewTagPlugin("obs", testTemplateFile))
		assert.Panics(t, func() {
			p.MustRegister(MustNewTagPlugin("obs", testTemplateFile))
		})
	})
}

func TestPipeline_Plugins_Ordered(t *testing.T) {
	p := NewPipeline()
	for _, tag := range []string{"zeta", "alpha", "mid"} {
		p.MustRegister(MustNewTagPlugin(tag, testTemplateFile))
	}

	var modes []string
	for _, plugin := range p.Plugins() {
		modes = append(modes, plugin.Mode())
	}
	assert.Equal(t, []string{"plugin_alpha", "plugin_mid", "plugin_zeta"}, modes)
}

func TestPipeline_Render(t *testing.T) {
	plugin := newTestPlugin(t, WithTranslator(MapTranslator{"label": "Stories"}))
	p := NewPipeline()
	p.MustRegister(plugin)

	button := `<a class="button" href="/obs">Stories</a>`

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "plain text is escaped",
			source:   "a < b & c",
			expected: "a &lt; b &amp; c",
		},
		{
			name:     "self-closing tag",
			source:   "See [obsbutton/] here",
			expected: "See " + button + " here",
		},
		{
			name:     "two self-closing tags",
			source:   "[obsbutton/][obsbutton/]",
			expected: button + button,
		},
		{
			name:     "entry and exit delimit a rendered body",
			source:   "x [obsbutton]body[/obsbutton] y",
			expected: "x " + button + " y",
		},
		{
			name:     "empty body renders nothing",
			source:   "[obsbutton][/obsbutton]",
			expected: "",
		},
		{
			name:     "unterminated entry keeps rendering body",
			source:   "[obsbutton]rest",
			expected: button,
		},
		{
			name:     "stray exit tag is plain text",
			source:   "[/obsbutton]",
			expected: "[/obsbutton]",
		},
		{
			name:     "other tags are plain text",
			source:   "[other/]",
			expected: "[other/]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Render(context.Background(), FormatXHTML, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPipeline_Render_OtherFormats(t *testing.T) {
	p := NewPipeline()
	p.MustRegister(newTestPlugin(t))

	out, err := p.Render(context.Background(), FormatText, "a [obsbutton/] b")
	require.NoError(t, err)
	assert.Equal(t, "a  b", out)

	out, err = p.Render(context.Background(), FormatMetadata, "a [obsbutton/] b")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestPipeline_Render_MultiplePlugins(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "obs.html", "<obs/>")
	writeTemplate(t, root, "ta.html", "<ta/>")

	p := NewPipeline()
	p.MustRegister(MustNewTagPlugin("obs", "obs.html", WithRoot(root)))
	p.MustRegister(MustNewTagPlugin("ta", "ta.html", WithRoot(root)))

	out, err := p.Render(context.Background(), FormatXHTML, "[ta/] and [obs/]")
	require.NoError(t, err)
	assert.Equal(t, "<ta/> and <obs/>", out)
}

func TestPipeline_RenderTo_TemplateFailure(t *testing.T) {
	p := NewPipeline()
	p.MustRegister(MustNewTagPlugin("obs", "missing.html", WithRoot(t.TempDir())))

	doc := &Document{}
	err := p.RenderTo(context.Background(), FormatXHTML, "before [obs/] after", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgRenderFailed)
	assert.Equal(t, "before ", doc.String())

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	offset, ok := customErr.GetMetadata(MetaKeyOffset)
	assert.True(t, ok)
	assert.Equal(t, strconv.Itoa(len("before ")), offset)

	out, err := p.Render(context.Background(), FormatXHTML, "before [obs/] after")
	require.Error(t, err)
	assert.Equal(t, "", out)
}

func TestPipeline_Render_Canceled(t *testing.T) {
	p := NewPipeline()
	p.MustRegister(newTestPlugin(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Render(ctx, FormatXHTML, "text [obsbutton/]")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), ErrMsgRenderCanceled)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	offset, ok := customErr.GetMetadata(MetaKeyOffset)
	assert.True(t, ok)
	assert.Equal(t, "0", offset)
}

func TestPipeline_Render_Concurrent(t *testing.T) {
	p := NewPipeline()
	p.MustRegister(newTestPlugin(t, WithTranslator(MapTranslator{"label": "Stories"})))

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := p.Render(context.Background(), FormatXHTML, "[obsbutton/]")
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, `<a class="button" href="/obs">Stories</a>`, out)
	}
}
