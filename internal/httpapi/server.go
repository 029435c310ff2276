package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modelhub/internal/manager"
	"modelhub/internal/models"
	"modelhub/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Dispatch(ctx context.Context, name string, in models.Input) (models.Output, error)
	AvailableNames() []string
	AvailableNamesByType(t string) []string
	Status() types.StatusResponse
	Ready() bool
}

const missingNameMsg = "Model name must be specified in the request."

// envelope shapes the error bodies of one process endpoint.
type envelope struct {
	// missingName is the body when the request carries no modelName.
	missingName any
	// rejected builds the body for resolution failures.
	rejected func(msg string) any
	// failed is the body when the model itself fails.
	failed any
}

var chatEnvelope = envelope{
	missingName: types.ChatResponse{Actor: "system", Content: "Error: " + missingNameMsg, Error: "Missing model name"},
	rejected: func(msg string) any {
		return types.ChatResponse{Actor: "system", Content: "Error: " + msg, Error: msg}
	},
	failed: types.ChatResponse{Actor: "model", Content: "Error processing your request.", Error: "Error processing your request."},
}

var summarizeEnvelope = envelope{
	missingName: types.SummarizeResponse{Summary: "Error: " + missingNameMsg, Error: "Missing model name"},
	rejected: func(msg string) any {
		return types.SummarizeResponse{Summary: "Error: " + msg, Error: msg}
	},
	failed: types.SummarizeResponse{Summary: "Error processing your request. Please try again."},
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if processMiddleware != nil {
				r.Use(processMiddleware)
			}
			r.Post("/process/chat", processHandler(svc, chatEnvelope))
			r.Post("/process/summarize", processHandler(svc, summarizeEnvelope))
		})

		r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, types.ModelsResponse{AvailableModels: nonNil(svc.AvailableNames())})
		})

		r.Get("/models/types/{type}", func(w http.ResponseWriter, r *http.Request) {
			t := chi.URLParam(r, "type")
			writeJSON(w, http.StatusOK, types.ModelsResponse{AvailableModels: nonNil(svc.AvailableNamesByType(t))})
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339Nano)})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("no models available"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// processHandler decodes the request body, dispatches it to the named model
// and writes the model output verbatim or an error envelope.
func processHandler(svc Service, env envelope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var in models.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in == nil {
			// If exceeded size, MaxBytesReader may cause an error; still return 400 to avoid size leak details
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		name := in.String("modelName")
		lvl := requestLogLevel(r)
		start := time.Now()
		if name == "" {
			observeDispatch(name, outcomeNoName)
			writeJSON(w, http.StatusBadRequest, env.missingName)
			logProcessEnd(r, lvl, name, http.StatusBadRequest, start, manager.ErrNoNameProvided)
			return
		}
		if lvl >= LevelDebug {
			zlog.Debug().Str("path", r.URL.Path).Str("model", name).Str("request_id", middleware.GetReqID(r.Context())).Msg("process start")
		}

		// Join server base context with request context so shutdown cancels work too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if processTimeout > 0 {
			var tcancel context.CancelFunc
			ctx, tcancel = context.WithTimeout(ctx, processTimeout)
			defer tcancel()
		}

		out, err := svc.Dispatch(ctx, name, in)
		if err != nil {
			// Client went away or the server is shutting down; nobody to answer.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := statusFor(err)
			switch {
			case manager.IsExecError(err):
				observeDispatch(name, outcomeExecError)
				writeJSON(w, status, env.failed)
			case manager.IsInitError(err):
				observeDispatch(name, outcomeInitError)
				writeJSON(w, status, env.rejected(err.Error()))
			case manager.IsNotAvailable(err):
				observeDispatch(name, outcomeNotAvailable)
				writeJSON(w, status, env.rejected(err.Error()))
			case manager.IsNoName(err):
				observeDispatch(name, outcomeNoName)
				writeJSON(w, status, env.missingName)
			default:
				observeDispatch(name, outcomeExecError)
				status = http.StatusInternalServerError
				writeJSON(w, status, env.failed)
			}
			logProcessEnd(r, lvl, name, status, start, err)
			return
		}
		observeDispatch(name, outcomeOK)
		writeJSON(w, http.StatusOK, out)
		logProcessEnd(r, lvl, name, http.StatusOK, start, nil)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
