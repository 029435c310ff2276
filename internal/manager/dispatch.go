package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"modelhub/internal/models"
)

// Dispatch resolves name and runs in through the model. Failures inside
// Process, including panics, are returned as *ExecError.
func (m *Manager) Dispatch(ctx context.Context, name string, in models.Input) (models.Output, error) {
	mdl, err := m.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(name)
	start := time.Now()
	out, err := process(ctx, mdl, in)
	if err != nil {
		m.log.Error().Err(err).Str("model", key).Dur("dur", time.Since(start)).Msg("error processing request")
		m.publisher.Publish(Event{Name: EventProcessError, Model: key, Fields: map[string]any{"error": err.Error()}})
		return nil, &ExecError{Name: key, Cause: err}
	}
	m.log.Debug().Str("model", key).Dur("dur", time.Since(start)).Msg("processed request")
	return out, nil
}

func process(ctx context.Context, mdl models.Model, in models.Input) (out models.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return mdl.Process(ctx, in)
}
