package manager

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"modelhub/internal/models"
	"modelhub/internal/registry"
)

// stubModel is a configurable in-memory model used across tests.
type stubModel struct {
	models.Base
	out    models.Output
	err    error
	panics bool
	calls  atomic.Int32
}

func (s *stubModel) Process(_ context.Context, in models.Input) (models.Output, error) {
	s.calls.Add(1)
	if s.panics {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.out != nil {
		return s.out, nil
	}
	return models.Output{"echo": in["userMessage"]}, nil
}

// countingFactory returns a factory producing stub models and a counter of
// how many times it ran.
func countingFactory(t models.ModelType, name string) (models.Factory, *atomic.Int32) {
	n := &atomic.Int32{}
	return func() (models.Model, error) {
		n.Add(1)
		return &stubModel{Base: models.MustBase(t, name)}, nil
	}, n
}

var errCtor = errors.New("constructor failed")

// flakyFactory succeeds on the probe call only; every later call fails.
func flakyFactory(name string) (models.Factory, *atomic.Int32) {
	n := &atomic.Int32{}
	return func() (models.Model, error) {
		if n.Add(1) == 1 {
			return &stubModel{Base: models.MustBase(models.TypeChat, name)}, nil
		}
		return nil, errCtor
	}, n
}

// newTestManager discovers units and applies allowlist like startup does.
func newTestManager(t *testing.T, allowlist string, units ...models.Unit) *Manager {
	t.Helper()
	log := zerolog.Nop()
	return New(models.UnitList(units), allowlist, log)
}

func unit(name string, f models.Factory) models.Unit { return models.Unit{Name: name, Factory: f} }

func descriptors(m *Manager) []registry.Descriptor { return m.Available() }

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}
