package announce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"modelhub/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRegistry records requests and fails the first failFirst registrations.
type fakeRegistry struct {
	failFirst int32
	attempts  atomic.Int32

	mu         sync.Mutex
	registered []types.RegisterRequest
	removed    []types.UnregisterRequest
}

func (f *fakeRegistry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/register":
		if f.attempts.Add(1) <= f.failFirst {
			http.Error(w, "not yet", http.StatusServiceUnavailable)
			return
		}
		var req types.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.registered = append(f.registered, req)
		f.mu.Unlock()
	case r.Method == http.MethodDelete && r.URL.Path == "/unregister":
		var req types.UnregisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.removed = append(f.removed, req)
		f.mu.Unlock()
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeRegistry) registrations() []types.RegisterRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.RegisterRequest(nil), f.registered...)
}

func newClient(t *testing.T, url string, delay time.Duration) *Client {
	t.Helper()
	c := New(Options{
		RegistryURL: url,
		ServiceURL:  "http://backend:3011",
		Models:      []types.ModelInfo{{Name: "echo", Type: "CHAT"}},
		RetryDelay:  delay,
	})
	t.Cleanup(c.Close)
	return c
}

func TestDisabledWithoutRegistry(t *testing.T) {
	c := newClient(t, "", time.Millisecond)
	assert.False(t, c.Enabled())
	assert.NoError(t, c.Register(context.Background()))
	assert.NoError(t, c.Unregister(context.Background()))
}

func TestRegisterSendsModels(t *testing.T) {
	reg := &fakeRegistry{}
	srv := httptest.NewServer(reg)
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL+"/", time.Millisecond)
	require.NoError(t, c.Register(context.Background()))

	got := reg.registrations()
	require.Len(t, got, 1)
	assert.Equal(t, "http://backend:3011", got[0].URL)
	assert.Equal(t, []types.ModelInfo{{Name: "echo", Type: "CHAT"}}, got[0].Models)
}

func TestRegisterRetriesUntilAccepted(t *testing.T) {
	reg := &fakeRegistry{failFirst: 2}
	srv := httptest.NewServer(reg)
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, 10*time.Millisecond)
	err := c.Register(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)

	require.Eventually(t, func() bool { return len(reg.registrations()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), reg.attempts.Load())
}

func TestCloseStopsRetries(t *testing.T) {
	reg := &fakeRegistry{failFirst: 1 << 30}
	srv := httptest.NewServer(reg)
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, 5*time.Millisecond)
	require.Error(t, c.Register(context.Background()))
	require.Eventually(t, func() bool { return reg.attempts.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	c.Close()
	n := reg.attempts.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, reg.attempts.Load())
}

func TestContextCancelStopsRetries(t *testing.T) {
	c := newClient(t, "http://127.0.0.1:1", time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.Error(t, c.Register(ctx))
	cancel()
	c.wg.Wait()
}

func TestUnregister(t *testing.T) {
	reg := &fakeRegistry{}
	srv := httptest.NewServer(reg)
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, time.Millisecond)
	require.NoError(t, c.Unregister(context.Background()))
	reg.mu.Lock()
	defer reg.mu.Unlock()
	require.Len(t, reg.removed, 1)
	assert.Equal(t, "http://backend:3011", reg.removed[0].URL)
}

func TestUnregisterReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, time.Millisecond)
	err := c.Unregister(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "gone", se.Body)
}
