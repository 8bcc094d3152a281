package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	syntaxplugin "github.com/phillip-hopper/dokuwiki-plugin-shared"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	manifestPath string
	inputPath    string
	outputPath   string
	locale       string
	mode         string
	sanitize     bool
	logLevel     string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	envCfg, err := loadEnvConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidEnv, err)
		return ExitCodeUsageError
	}

	cfg, err := parseRenderFlags(args, envCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidLogLevel, err)
		return ExitCodeUsageError
	}
	defer logger.Sync() //nolint:errcheck

	m, err := loadManifest(cfg.manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgManifestFailed, err)
		return ExitCodeInputError
	}
	locale := cfg.locale
	if locale == "" {
		locale = m.Locale
	}
	if locale == "" {
		locale = syntaxplugin.DefaultLocale
	}

	pipeline := syntaxplugin.NewPipeline(syntaxplugin.WithPipelineLogger(logger))
	for _, entry := range m.Plugins {
		plugin, err := newPlugin(entry, locale, cfg.sanitize, logger)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgPluginFailed, err)
			return ExitCodeValidationError
		}
		if err := pipeline.Register(plugin); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRegisterFailed, err)
			return ExitCodeValidationError
		}
	}

	source, err := readSource(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	result, err := pipeline.Render(context.Background(), cfg.mode, source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	if err := writeRendered(cfg.outputPath, result, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string, envCfg *envConfig) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{logLevel: envCfg.LogLevel}

	fs.StringVar(&cfg.manifestPath, FlagManifest, envCfg.Manifest, "")
	fs.StringVar(&cfg.manifestPath, FlagManifestShort, envCfg.Manifest, "")
	fs.StringVar(&cfg.inputPath, FlagInput, FlagDefaultInput, "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, FlagDefaultInput, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.locale, FlagLocale, "", "")
	fs.StringVar(&cfg.locale, FlagLocaleShort, "", "")
	fs.StringVar(&cfg.mode, FlagMode, syntaxplugin.FormatXHTML, "")
	fs.BoolVar(&cfg.sanitize, FlagSanitize, envCfg.Sanitize, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.manifestPath == "" {
		return nil, errors.New(ErrMsgMissingManifest)
	}
	switch cfg.mode {
	case syntaxplugin.FormatXHTML, syntaxplugin.FormatText, syntaxplugin.FormatMetadata:
	default:
		return nil, errors.New(ErrMsgInvalidMode)
	}

	// The manifest locale applies only when neither the flag nor the env sets one
	if cfg.locale == "" {
		cfg.locale = envCfg.Locale
	}

	return cfg, nil
}
