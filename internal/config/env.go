package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays environment variables on base. Unset variables leave the
// base value alone.
func FromEnv(base Config) Config { return fromEnv(base, os.LookupEnv) }

func fromEnv(c Config, lookup func(string) (string, bool)) Config {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("AVAILABLE_MODELS", &c.AvailableModels)
	if v, ok := lookup("BACKEND_PORT"); ok && strings.TrimSpace(v) != "" {
		c.Addr = ":" + strings.TrimSpace(v)
	}
	// An explicit address wins over the bare port.
	if v, ok := lookup("MODELHUB_ADDR"); ok && v != "" {
		c.Addr = v
	}
	str("REGISTRY_URL", &c.RegistryURL)
	str("SERVICE_URL", &c.ServiceURL)
	str("LOGGER_URL", &c.LoggerURL)
	str("GENAI_API_KEY", &c.GenAIAPIKey)
	str("GENAI_BASE_URL", &c.GenAIBaseURL)
	str("GENAI_MODEL", &c.GenAIModel)
	str("MODELHUB_LOG_LEVEL", &c.LogLevel)
	if v, ok := lookup("MODELHUB_CORS_ORIGINS"); ok {
		c.CORSOrigins = SplitCSV(v)
	}
	if v, ok := lookup("MODELHUB_PROCESS_TIMEOUT_SECONDS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.ProcessTimeoutSeconds = n
		}
	}
	return c
}
