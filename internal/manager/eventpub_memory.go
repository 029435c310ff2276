package manager

import "sync"

// MemoryPublisher records events in memory. Tests use it to observe the
// manager's lifecycle.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

// Events returns the recorded events, optionally only those with one of the
// given names.
func (p *MemoryPublisher) Events(names ...string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Event
	for _, e := range p.events {
		if len(names) == 0 || contains(names, e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events named name were published.
func (p *MemoryPublisher) Count(name string) int { return len(p.Events(name)) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
