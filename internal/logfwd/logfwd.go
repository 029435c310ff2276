// Package logfwd forwards process request logs to an external logging
// service. Forwarding is best effort and never changes the response.
package logfwd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"modelhub/pkg/types"
)

// capture bounds how much of a request or response body is kept for the log.
const capture = 1 << 20

// Forwarder posts one LogEntry per process request to LOGGER_URL/api/logs.
type Forwarder struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// New returns a Forwarder for loggerURL. The client may be nil.
func New(loggerURL string, client *http.Client, log zerolog.Logger) *Forwarder {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Forwarder{
		endpoint: strings.TrimRight(loggerURL, "/") + "/api/logs",
		client:   client,
		log:      log.With().Str("component", "logfwd").Logger(),
	}
}

// Middleware captures requests whose path contains /process/ and forwards
// them after the handler has written its response.
func (f *Forwarder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/process/") {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()

		in, _ := io.ReadAll(io.LimitReader(r.Body, capture))
		// Downstream still sees the whole body, including anything past the
		// capture limit, so its own size checks keep working.
		r.Body = readCloser{io.MultiReader(bytes.NewReader(in), r.Body), r.Body}

		var out bytes.Buffer
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&limitWriter{w: &out, n: capture})
		next.ServeHTTP(ww, r)

		entry := types.LogEntry{
			Timestamp:      start.UnixMilli(),
			Endpoint:       r.URL.RequestURI(),
			Input:          rawOrString(in),
			Model:          modelName(in),
			Output:         rawOrString(out.Bytes()),
			ResponseTimeMs: float64(time.Since(start).Microseconds()) / 1000,
		}
		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			f.send(entry)
		}()
	})
}

// Wait blocks until every forwarded entry has been sent or has failed.
func (f *Forwarder) Wait() { f.wg.Wait() }

func (f *Forwarder) send(e types.LogEntry) {
	b, err := json.Marshal(e)
	if err != nil {
		f.log.Warn().Err(err).Msg("error encoding log entry")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(b))
	if err != nil {
		f.log.Warn().Err(err).Msg("error sending log")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn().Err(err).Msg("error sending log")
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Warn().Int("status", resp.StatusCode).Msg("error sending log to logging service")
	}
}

func modelName(body []byte) string {
	var v struct {
		ModelName string `json:"modelName"`
	}
	_ = json.Unmarshal(body, &v)
	return v.ModelName
}

// rawOrString embeds b as JSON when it is valid JSON, as a string otherwise.
func rawOrString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return json.RawMessage(append([]byte(nil), b...))
	}
	return string(b)
}

type readCloser struct {
	io.Reader
	io.Closer
}

// limitWriter keeps the first n bytes and silently drops the rest.
type limitWriter struct {
	w io.Writer
	n int
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if l.n > 0 {
		k := len(p)
		if k > l.n {
			k = l.n
		}
		l.w.Write(p[:k])
		l.n -= k
	}
	return len(p), nil
}
