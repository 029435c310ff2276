package manager

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"modelhub/internal/models"
	"modelhub/internal/registry"
)

type Manager struct {
	// Written once in NewWithConfig, read-only afterwards.
	catalog   registry.Catalog
	available []registry.Descriptor
	availSet  map[string]struct{}

	mu        sync.RWMutex
	instances map[string]*instance
	building  map[string]*build

	log       zerolog.Logger
	publisher EventPublisher
	startTime time.Time
}

// instance is a cached live model.
type instance struct {
	model     models.Model
	createdAt time.Time
}

// New runs discovery over src, applies the allowlist and returns a Manager
// serving the result. This is the startup path; it never fails.
func New(src models.Source, allowlist string, log zerolog.Logger) *Manager {
	cat := registry.Discover(src, log)
	avail := registry.Filter(cat.Discovered, allowlist, log)
	m := NewWithConfig(ManagerConfig{Catalog: cat, Available: avail, Logger: &log})
	m.log.Info().Strs("available", m.AvailableNames()).Msg("model manager initialized")
	return m
}

// SetEventPublisher replaces the event publisher. Call before serving.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	if p == nil {
		p = noopPublisher{}
	}
	m.publisher = p
}

// AvailableNames returns the available model names in order.
func (m *Manager) AvailableNames() []string {
	out := make([]string, len(m.available))
	for i, d := range m.available {
		out[i] = d.Name
	}
	return out
}

// AvailableNamesByType returns the available names declared with type t.
// t is compared exactly; an unknown type yields an empty slice.
func (m *Manager) AvailableNamesByType(t string) []string {
	out := []string{}
	for _, d := range m.available {
		if string(d.Type) == t {
			out = append(out, d.Name)
		}
	}
	return out
}

// Available returns a copy of the available descriptors, for announcing the
// service to a registry.
func (m *Manager) Available() []registry.Descriptor {
	return append([]registry.Descriptor(nil), m.available...)
}

// Discovered returns every discovered descriptor, including filtered ones.
func (m *Manager) Discovered() []registry.Descriptor {
	return append([]registry.Descriptor(nil), m.catalog.Discovered...)
}

// State reports the cache state of name (lowercase).
func (m *Manager) State(name string) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.instances[name]; ok {
		return StateActive
	}
	if _, ok := m.building[name]; ok {
		return StateLoading
	}
	return StateUnresolved
}

// Cached returns the names with live instances, sorted.
func (m *Manager) Cached() []string {
	m.mu.RLock()
	out := make([]string, 0, len(m.instances))
	for n := range m.instances {
		out = append(out, n)
	}
	m.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Ready reports whether at least one model can be served.
func (m *Manager) Ready() bool { return len(m.available) > 0 }
