// Package fault provides a deliberately wrong summarizer, useful for
// comparing summaries in the UI.
package fault

import (
	"context"

	"modelhub/internal/models"
)

const (
	Name    = "fault"
	Summary = "Always the summary is this."
)

type Model struct {
	models.Base
}

func New() (models.Model, error) {
	b, err := models.NewBase(models.TypeSummarize, "Fault")
	if err != nil {
		return nil, err
	}
	return &Model{Base: b}, nil
}

func (m *Model) Process(context.Context, models.Input) (models.Output, error) {
	return models.Output{"actor": "model", "summary": Summary}, nil
}

func init() { models.Register("fault", New) }
