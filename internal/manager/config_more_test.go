package manager

import (
	"testing"

	"github.com/rs/zerolog"

	"modelhub/internal/models"
	"modelhub/internal/registry"
)

func TestNewWithConfig_DefaultsAndAvailableSet(t *testing.T) {
	f, _ := countingFactory(models.TypeChat, "echo")
	cfg := ManagerConfig{
		Catalog: registry.Catalog{
			Factories:  map[string]models.Factory{"echo": f},
			Discovered: []registry.Descriptor{{Name: "echo", Type: models.TypeChat}},
		},
		Available: []registry.Descriptor{{Name: "echo", Type: models.TypeChat}},
	}
	m := NewWithConfig(cfg)
	if m.publisher == nil {
		t.Fatalf("expected noop publisher default")
	}
	if _, ok := m.availSet["echo"]; !ok {
		t.Fatalf("expected echo in available set")
	}
	// Mutating the config slice afterwards must not leak into the manager.
	cfg.Available[0].Name = "mutated"
	if got := m.AvailableNames(); len(got) != 1 || got[0] != "echo" {
		t.Fatalf("available changed through config alias: %v", got)
	}
}

func TestNewWithConfig_LoggerAndPublisher(t *testing.T) {
	log := zerolog.Nop()
	pub := NewMemoryPublisher()
	m := NewWithConfig(ManagerConfig{Logger: &log, Publisher: pub})
	if m.publisher != pub {
		t.Fatalf("expected configured publisher")
	}
	if m.Ready() {
		t.Fatalf("manager with no available models must not be ready")
	}
}
