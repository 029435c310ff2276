// Package pysummary provides a summarizer that answers every request with the
// same fixed summary.
package pysummary

import (
	"context"

	"modelhub/internal/models"
)

const (
	Name    = "py-summary"
	Summary = "This is from the Python environment"
)

type Model struct {
	models.Base
}

func New() (models.Model, error) {
	b, err := models.NewBase(models.TypeSummarize, Name)
	if err != nil {
		return nil, err
	}
	return &Model{Base: b}, nil
}

func (m *Model) Process(context.Context, models.Input) (models.Output, error) {
	return models.Output{"actor": "model", "summary": Summary}, nil
}

func init() { models.Register("pysummary", New) }
