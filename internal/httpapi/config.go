package httpapi

import (
	"net/http"
	"time"
)

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
// Default remains 1 MiB for backward compatibility.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// processTimeout bounds a single /api/process call.
// Zero means no additional timeout beyond server/connection timeouts.
var processTimeout time.Duration

// SetProcessTimeout sets the per-request model timeout (0 disables).
func SetProcessTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	processTimeout = d
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// processMiddleware wraps the /api/process routes, e.g. to forward request
// logs. Nil means none.
var processMiddleware func(http.Handler) http.Handler

// SetProcessMiddleware installs mw around the /api/process routes.
func SetProcessMiddleware(mw func(http.Handler) http.Handler) { processMiddleware = mw }
