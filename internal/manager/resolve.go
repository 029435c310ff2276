package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"modelhub/internal/models"
)

// Resolve returns the shared instance for name, constructing it on first use.
//
// At most one construction per name runs at a time; concurrent callers wait
// for it and share its outcome. A failed construction is not cached, so the
// next call retries.
func (m *Manager) Resolve(ctx context.Context, name string) (models.Model, error) {
	if name == "" {
		return nil, ErrNoNameProvided
	}
	key := strings.ToLower(name)
	if _, ok := m.availSet[key]; !ok {
		m.publisher.Publish(Event{Name: EventResolveMiss, Model: key, Fields: map[string]any{}})
		return nil, ErrNotAvailable(name, m.AvailableNames())
	}

	for {
		m.mu.RLock()
		inst, ok := m.instances[key]
		m.mu.RUnlock()
		if ok {
			return inst.model, nil
		}

		m.mu.Lock()
		if inst, ok := m.instances[key]; ok {
			m.mu.Unlock()
			return inst.model, nil
		}
		if b, ok := m.building[key]; ok {
			m.mu.Unlock()
			select {
			case <-b.done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if b.err != nil {
				return nil, b.err
			}
			// Re-read the cache for the instance the builder stored.
			continue
		}
		b := &build{done: make(chan struct{})}
		m.building[key] = b
		m.mu.Unlock()

		mdl, err := m.construct(key)

		m.mu.Lock()
		delete(m.building, key)
		if err == nil {
			m.instances[key] = &instance{model: mdl, createdAt: time.Now()}
		}
		b.err = err
		m.mu.Unlock()
		close(b.done)
		return mdl, err
	}
}

// construct calls the catalog factory for key, converting errors and panics
// into InitError.
func (m *Manager) construct(key string) (mdl models.Model, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			mdl, err = nil, &InitError{Name: key, Cause: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			m.log.Error().Err(unwrapCause(err)).Str("model", key).Msg("error creating model instance")
			m.publisher.Publish(Event{Name: EventInitError, Model: key, Fields: map[string]any{"error": unwrapCause(err).Error()}})
			return
		}
		m.log.Info().Str("model", key).Dur("dur", time.Since(start)).Msg("created new model instance")
		m.publisher.Publish(Event{Name: EventInstanceCreated, Model: key, Fields: map[string]any{"dur_ms": int(time.Since(start) / time.Millisecond)}})
	}()

	f, ok := m.catalog.Factory(key)
	if !ok {
		return nil, &InitError{Name: key, Cause: fmt.Errorf("model factory not found for %q", key)}
	}
	mdl, err = f()
	if err != nil {
		return nil, &InitError{Name: key, Cause: err}
	}
	if err := models.Validate(mdl); err != nil {
		return nil, &InitError{Name: key, Cause: err}
	}
	return mdl, nil
}

func unwrapCause(err error) error {
	switch e := err.(type) {
	case *InitError:
		return e.Cause
	case *ExecError:
		return e.Cause
	}
	return err
}
