package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/microcosm-cc/bluemonday"
	syntaxplugin "github.com/phillip-hopper/dokuwiki-plugin-shared"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// envConfig holds settings read from the environment. Flags override them.
type envConfig struct {
	Manifest string `env:"WIKITAG_MANIFEST"`
	Locale   string `env:"WIKITAG_LOCALE"`
	LogLevel string `env:"WIKITAG_LOG_LEVEL" envDefault:"warn"`
	Sanitize bool   `env:"WIKITAG_SANITIZE"`
}

// manifest is the YAML file that lists the plugins to load.
//
//	locale: de
//	plugins:
//	  - tag: obsbutton
//	    template: button.html
//	    root: plugins/door43obs
//	  - tag: tabutton
//	    template: button.html
//	    source: plugins/door43ta/syntax/button.go
//	    mode: door43ta_button
type manifest struct {
	Locale  string           `yaml:"locale"`
	Plugins []manifestPlugin `yaml:"plugins"`
}

type manifestPlugin struct {
	Tag      string `yaml:"tag"`
	Template string `yaml:"template"`
	Mode     string `yaml:"mode"`
	Root     string `yaml:"root"`
	Source   string `yaml:"source"`
}

func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadManifest reads the manifest and resolves plugin paths against its directory
func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if len(m.Plugins) == 0 {
		return nil, errors.New(ErrMsgNoPlugins)
	}

	base := filepath.Dir(path)
	for i := range m.Plugins {
		m.Plugins[i].Root = resolvePath(base, m.Plugins[i].Root)
		m.Plugins[i].Source = resolvePath(base, m.Plugins[i].Source)
	}
	return &m, nil
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// pluginRoot returns the directory a manifest entry's files live in
func (p manifestPlugin) pluginRoot() string {
	if p.Root != "" {
		return p.Root
	}
	if p.Source != "" {
		return syntaxplugin.DeriveRoot(filepath.Dir(p.Source))
	}
	return ""
}

// newPlugin builds one plugin from a manifest entry with its own language files
func newPlugin(p manifestPlugin, locale string, sanitize bool, logger *zap.Logger) (*syntaxplugin.TagPlugin, error) {
	root := p.pluginRoot()
	catalog, err := syntaxplugin.LoadCatalog(root)
	if err != nil {
		return nil, err
	}

	opts := []syntaxplugin.Option{
		syntaxplugin.WithRoot(root),
		syntaxplugin.WithTranslator(catalog.Translator(locale)),
		syntaxplugin.WithLogger(logger),
	}
	if p.Mode != "" {
		opts = append(opts, syntaxplugin.WithMode(p.Mode))
	}
	if sanitize {
		opts = append(opts, syntaxplugin.WithSanitizer(bluemonday.UGCPolicy()))
	}
	return syntaxplugin.NewTagPlugin(p.Tag, p.Template, opts...)
}

// newLogger writes console-encoded logs at or above level to w
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
