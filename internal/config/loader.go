package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"modelhub/internal/common/fsutil"
)

// Defaults applied by WithDefaults.
const (
	DefaultAddr            = ":3011"
	DefaultRetryDelay      = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

// SearchPaths are tried in order when no config file is given.
var SearchPaths = []string{"modelhub.yaml", "modelhub.toml", "modelhub.json", "~/.config/modelhub/config.yaml"}

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// AvailableModels is the comma-separated allowlist; empty allows all.
	AvailableModels string `json:"available_models" yaml:"available_models" toml:"available_models"`

	RegistryURL string `json:"registry_url" yaml:"registry_url" toml:"registry_url"`
	ServiceURL  string `json:"service_url" yaml:"service_url" toml:"service_url"`
	LoggerURL   string `json:"logger_url" yaml:"logger_url" toml:"logger_url"`

	GenAIAPIKey  string `json:"genai_api_key" yaml:"genai_api_key" toml:"genai_api_key"`
	GenAIBaseURL string `json:"genai_base_url" yaml:"genai_base_url" toml:"genai_base_url"`
	GenAIModel   string `json:"genai_model" yaml:"genai_model" toml:"genai_model"`

	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`

	MaxBodyBytes           int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	ProcessTimeoutSeconds  int   `json:"process_timeout_seconds" yaml:"process_timeout_seconds" toml:"process_timeout_seconds"`
	RetryDelaySeconds      int   `json:"retry_delay_seconds" yaml:"retry_delay_seconds" toml:"retry_delay_seconds"`
	ShutdownTimeoutSeconds int   `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' is expanded.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrSearch loads path, or the first of SearchPaths that exists when path
// is empty. No file at all yields a zero Config.
func LoadOrSearch(path string) (Config, string, error) {
	if path == "" {
		path = fsutil.FirstExisting(SearchPaths...)
		if path == "" {
			return Config{}, "", nil
		}
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// WithDefaults fills unspecified fields.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.RetryDelaySeconds <= 0 {
		c.RetryDelaySeconds = int(DefaultRetryDelay / time.Second)
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		c.ShutdownTimeoutSeconds = int(DefaultShutdownTimeout / time.Second)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
	return c
}

func (c Config) RetryDelay() time.Duration { return time.Duration(c.RetryDelaySeconds) * time.Second }
func (c Config) ProcessTimeout() time.Duration {
	return time.Duration(c.ProcessTimeoutSeconds) * time.Second
}
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// SplitCSV splits a comma-separated list, trimming spaces and dropping empty
// entries.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
