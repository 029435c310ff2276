// Package composite is a multi-file chat model: message analysis lives in
// analyze.go next to the model.
package composite

import (
	"context"
	"fmt"
	"sync/atomic"

	"modelhub/internal/models"
)

const Name = "complex"

var examples = []string{
	"This is a complex model in its own directory",
	"It has access to utilities and resources in the same folder",
	"It's automatically discovered by the model registry",
}

// Model rotates through its example lines, one per call.
type Model struct {
	models.Base
	calls atomic.Uint64
}

func New() (models.Model, error) {
	b, err := models.NewBase(models.TypeChat, "Complex")
	if err != nil {
		return nil, err
	}
	return &Model{Base: b}, nil
}

func (m *Model) Process(_ context.Context, in models.Input) (models.Output, error) {
	processed := analyze(in.String("userMessage"), history(in["conversationHistory"]))
	n := m.calls.Add(1) - 1
	example := examples[n%uint64(len(examples))]
	return models.Output{
		"actor":   "model",
		"content": fmt.Sprintf("Complex model processing: %s\n\n%s", processed, example),
	}, nil
}

func init() { models.Register("composite", New) }
