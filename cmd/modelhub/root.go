package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modelhub/internal/config"
	"modelhub/internal/models/genai"
)

// rootOptions holds persistent flag values.
type rootOptions struct {
	configPath      string
	addr            string
	availableModels string
	corsOrigins     string
	logLevel        string
	logFormat       string
}

func newRootCmd() *cobra.Command { return newRootCmdWith(&rootOptions{}) }

// newRootCmdWith builds the command tree with flags bound to opts.
func newRootCmdWith(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "modelhub",
		Short:         "Model registry and dispatch service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml|.json|.toml); searched in ./ and ~/.config/modelhub when empty")
	pf.StringVar(&opts.addr, "addr", "", "HTTP listen address (defaults MODELHUB_ADDR, :BACKEND_PORT or :3011)")
	pf.StringVar(&opts.availableModels, "available-models", "", "Comma-separated model allowlist (defaults AVAILABLE_MODELS; empty allows all)")
	pf.StringVar(&opts.corsOrigins, "cors-origins", "", "Comma-separated CORS origins (defaults MODELHUB_CORS_ORIGINS)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults MODELHUB_LOG_LEVEL or info)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json")

	root.AddCommand(newServeCmd(opts), newModelsCmd(opts))
	return root
}

// resolveConfig layers file, environment and explicitly set flags, then
// applies defaults.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, string, error) {
	cfg, used, err := config.LoadOrSearch(opts.configPath)
	if err != nil {
		return cfg, used, err
	}
	cfg = config.FromEnv(cfg)
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("available-models") {
		cfg.AvailableModels = opts.availableModels
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = config.SplitCSV(opts.corsOrigins)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	return cfg.WithDefaults(), used, nil
}

// newLogger builds the process logger.
func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if cfg.LogFormat != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func configureGenAI(cfg config.Config, log zerolog.Logger) {
	genai.Configure(genai.Settings{APIKey: cfg.GenAIAPIKey, BaseURL: cfg.GenAIBaseURL, Model: cfg.GenAIModel, Logger: &log})
}
