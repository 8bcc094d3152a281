package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	syntaxplugin "github.com/phillip-hopper/dokuwiki-plugin-shared"
	"go.uber.org/zap"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	manifestPath string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid   bool                    `json:"valid"`
	Plugins int                     `json:"plugins"`
	Issues  []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func runValidate(args []string, _ io.Reader, stdout, stderr io.Writer) int {
	envCfg, err := loadEnvConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidEnv, err)
		return ExitCodeUsageError
	}

	cfg, err := parseValidateFlags(args, envCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	m, err := loadManifest(cfg.manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgManifestFailed, err)
		return ExitCodeInputError
	}

	output := validateManifest(m)
	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
	} else {
		outputValidationText(output, stdout)
	}

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

// validateManifest builds every plugin, registers it and loads its template
func validateManifest(m *manifest) validationOutput {
	output := validationOutput{Plugins: len(m.Plugins)}
	pipeline := syntaxplugin.NewPipeline()

	addIssue := func(tag string, err error) {
		output.Issues = append(output.Issues, validationIssueOutput{Tag: tag, Message: err.Error()})
	}

	for _, entry := range m.Plugins {
		plugin, err := newPlugin(entry, syntaxplugin.DefaultLocale, false, zap.NewNop())
		if err != nil {
			addIssue(entry.Tag, err)
			continue
		}
		if err := pipeline.Register(plugin); err != nil {
			addIssue(entry.Tag, err)
			continue
		}
		if _, err := plugin.TextToRender(""); err != nil {
			addIssue(entry.Tag, err)
		}
	}

	output.Valid = len(output.Issues) == 0
	return output
}

func parseValidateFlags(args []string, envCfg *envConfig) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.manifestPath, FlagManifest, envCfg.Manifest, "")
	fs.StringVar(&cfg.manifestPath, FlagManifestShort, envCfg.Manifest, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.manifestPath == "" {
		return nil, errors.New(ErrMsgMissingManifest)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputValidationText(output validationOutput, stdout io.Writer) {
	if output.Valid {
		fmt.Fprintf(stdout, ValidationTextSuccess+FmtNewline, output.Plugins)
		return
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range output.Issues {
		fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline, issue.Tag, issue.Message)
	}
	fmt.Fprintf(stdout, ValidationTextSummary+FmtNewline, len(output.Issues))
}
