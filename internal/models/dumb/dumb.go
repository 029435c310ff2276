// Package dumb provides a summarizer that shortens text by dropping every
// third word.
package dumb

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"modelhub/internal/models"
)

const Name = "dumb"

// chunkSize bounds how much text is read as one unit. Word positions run
// across chunks, so chunking never changes the result.
const chunkSize = 2000

var errNoText = errors.New("originalText is required")

type Model struct {
	models.Base
	splitter textsplitter.RecursiveCharacter
}

func New() (models.Model, error) {
	b, err := models.NewBase(models.TypeSummarize, "Dumb")
	if err != nil {
		return nil, err
	}
	return &Model{
		Base: b,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(0),
			textsplitter.WithSeparators([]string{"\n\n", "\n", " "}),
		),
	}, nil
}

func (m *Model) Process(_ context.Context, in models.Input) (models.Output, error) {
	text, ok := in["originalText"].(string)
	if !ok {
		return nil, errNoText
	}
	chunks, err := m.splitter.SplitText(text)
	if err != nil {
		return nil, err
	}
	var kept []string
	pos := 0
	for _, c := range chunks {
		for _, w := range strings.Fields(c) {
			pos++
			if pos%3 != 0 {
				kept = append(kept, w)
			}
		}
	}
	return models.Output{"actor": "model", "summary": strings.Join(kept, " ")}, nil
}

func init() { models.Register("dumb", New) }
