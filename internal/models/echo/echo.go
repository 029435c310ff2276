// Package echo provides a chat model that repeats the user's message.
package echo

import (
	"context"
	"fmt"

	"modelhub/internal/models"
)

// Name is the identifier the model registers under.
const Name = "echo"

type Model struct {
	models.Base
}

func New() (models.Model, error) {
	b, err := models.NewBase(models.TypeChat, Name)
	if err != nil {
		return nil, err
	}
	return &Model{Base: b}, nil
}

func (m *Model) Process(_ context.Context, in models.Input) (models.Output, error) {
	return models.Output{
		"actor":   "model",
		"content": fmt.Sprintf("You said: \"%s\" - Hello from the Python Echo Model!", in.String("userMessage")),
	}, nil
}

func init() { models.Register("echo", New) }
