package pysummary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelhub/internal/models"
)

func TestFixedSummary(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	assert.Equal(t, models.TypeSummarize, m.Type())
	assert.Equal(t, "py-summary", m.Name())

	out, err := m.Process(context.Background(), models.Input{"originalText": "anything at all"})
	require.NoError(t, err)
	assert.Equal(t, "This is from the Python environment", out["summary"])
}
