package manager

import (
	"time"

	"github.com/rs/zerolog"

	"modelhub/internal/registry"
)

// ManagerConfig encapsulates all inputs for Manager construction.
type ManagerConfig struct {
	// Catalog is the full discovery result.
	Catalog registry.Catalog
	// Available is the filtered subset exposed to callers, in order.
	Available []registry.Descriptor
	// Logger receives diagnostics. Nil disables logging.
	Logger *zerolog.Logger
	// Publisher receives lifecycle events. Nil drops them.
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		catalog:   cfg.Catalog,
		available: append([]registry.Descriptor(nil), cfg.Available...),
		availSet:  make(map[string]struct{}, len(cfg.Available)),
		instances: make(map[string]*instance),
		building:  make(map[string]*build),
		log:       zerolog.Nop(),
		publisher: noopPublisher{},
		startTime: time.Now(),
	}
	for _, d := range m.available {
		m.availSet[d.Name] = struct{}{}
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "manager").Logger()
	}
	if cfg.Publisher != nil {
		m.publisher = cfg.Publisher
	}
	return m
}
