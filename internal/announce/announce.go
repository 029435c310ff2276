// Package announce registers the service and its models with an external
// service registry, retrying until the registry accepts it.
package announce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"modelhub/pkg/types"
)

const defaultRetryDelay = 10 * time.Second

// Options configures a Client.
type Options struct {
	// RegistryURL is the registry base URL. Empty disables the client.
	RegistryURL string
	// ServiceURL is the URL the registry should route to.
	ServiceURL string
	Models     []types.ModelInfo
	// RetryDelay is the fixed wait between registration attempts.
	RetryDelay time.Duration
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Client announces this service to the registry.
type Client struct {
	registryURL string
	serviceURL  string
	models      []types.ModelInfo
	retryDelay  time.Duration
	http        *http.Client
	log         zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func New(opts Options) *Client {
	c := &Client{
		registryURL: strings.TrimRight(opts.RegistryURL, "/"),
		serviceURL:  opts.ServiceURL,
		models:      append([]types.ModelInfo(nil), opts.Models...),
		retryDelay:  opts.RetryDelay,
		http:        opts.HTTPClient,
		log:         zerolog.Nop(),
	}
	if c.retryDelay <= 0 {
		c.retryDelay = defaultRetryDelay
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("component", "announce").Logger()
	}
	return c
}

// Enabled reports whether a registry is configured.
func (c *Client) Enabled() bool { return c.registryURL != "" }

// Register makes one registration attempt. If it fails, attempts continue in
// the background every RetryDelay until one succeeds, ctx is done or Close is
// called. The first attempt's error is returned.
func (c *Client) Register(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	err := c.register(ctx)
	if err == nil {
		return nil
	}
	c.log.Error().Err(err).Dur("retry_in", c.retryDelay).Msg("failed to register with registry")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.cancel != nil {
		return err
	}
	rctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	go c.retryLoop(rctx)
	return err
}

func (c *Client) retryLoop(ctx context.Context) {
	defer c.wg.Done()
	t := time.NewTimer(c.retryDelay)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		err := c.register(ctx)
		if err == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		c.log.Error().Err(err).Dur("retry_in", c.retryDelay).Msg("failed to register with registry")
		t.Reset(c.retryDelay)
	}
}

func (c *Client) register(ctx context.Context) error {
	c.log.Info().Str("registry", c.registryURL).Int("models", len(c.models)).Msg("registering with registry")
	body := types.RegisterRequest{URL: c.serviceURL, Models: c.models}
	if body.Models == nil {
		body.Models = []types.ModelInfo{}
	}
	if err := c.send(ctx, http.MethodPost, "/register", body); err != nil {
		return err
	}
	c.log.Info().Str("registry", c.registryURL).Msg("registered with registry")
	return nil
}

// Unregister removes this service from the registry. It is attempted once;
// failures are logged and returned.
func (c *Client) Unregister(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	c.log.Info().Str("registry", c.registryURL).Msg("unregistering from registry")
	err := c.send(ctx, http.MethodDelete, "/unregister", types.UnregisterRequest{URL: c.serviceURL})
	if err != nil {
		c.log.Error().Err(err).Msg("failed to unregister from registry")
	}
	return err
}

// Close stops any background retries and waits for them to exit.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	c.http.CloseIdleConnections()
}

// StatusError is returned when the registry answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry returned %d: %s", e.Code, e.Body)
}

func (c *Client) send(ctx context.Context, method, path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.registryURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
