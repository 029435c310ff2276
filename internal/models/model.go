// Package models defines the contract every pluggable model satisfies and the
// extension point model variants register themselves through.
//
// Each variant lives in its own package under internal/models and calls
// Register from init(). Importing internal/models/all pulls every variant into
// the binary.
package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ModelType tags what kind of request a model serves.
type ModelType string

const (
	TypeChat          ModelType = "CHAT"
	TypeSummarize     ModelType = "SUMMARIZE"
	TypeGenerateImage ModelType = "GENERATE_IMAGE"
)

// Types lists every supported ModelType.
var Types = []ModelType{TypeChat, TypeSummarize, TypeGenerateImage}

var (
	ErrUnsupportedType = errors.New("unsupported model type")
	ErrEmptyName       = errors.New("model name is required")
	// ErrAbstractModel is returned for a model whose Base was never initialized.
	ErrAbstractModel = errors.New("model base cannot be used directly")
)

// Valid reports whether t is one of the supported types.
func (t ModelType) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

func (t ModelType) String() string { return string(t) }

// ParseModelType converts s (any case) into a ModelType.
func ParseModelType(s string) (ModelType, error) {
	t := ModelType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// Input is the request payload handed to a model. The dispatch layer treats it
// as opaque; each model reads the fields it understands.
type Input map[string]any

// Output is the response payload produced by a model.
type Output map[string]any

// String returns the string field key or "" when absent or not a string.
func (in Input) String(key string) string {
	if v, ok := in[key].(string); ok {
		return v
	}
	return ""
}

// Model is implemented by every pluggable model variant.
type Model interface {
	Type() ModelType
	Name() string
	// Process handles one request. It may block on I/O and must not mutate
	// state shared with other models.
	Process(ctx context.Context, in Input) (Output, error)
}

// Base carries the immutable identity of a model. Variants embed it and add
// Process; Base alone does not satisfy Model.
type Base struct {
	typ  ModelType
	name string
}

// NewBase validates the type and name for a model variant.
func NewBase(t ModelType, name string) (Base, error) {
	if !t.Valid() {
		return Base{}, fmt.Errorf("%w %q for model %q", ErrUnsupportedType, string(t), name)
	}
	if strings.TrimSpace(name) == "" {
		return Base{}, fmt.Errorf("%w (type %s)", ErrEmptyName, t)
	}
	return Base{typ: t, name: name}, nil
}

// MustBase is NewBase for package-level literals; it panics on invalid input.
func MustBase(t ModelType, name string) Base {
	b, err := NewBase(t, name)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Base) Type() ModelType { return b.typ }
func (b Base) Name() string    { return b.name }

// Validate checks that m carries an initialized identity.
func Validate(m Model) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrAbstractModel)
	}
	if m.Type() == "" && m.Name() == "" {
		return ErrAbstractModel
	}
	if !m.Type().Valid() {
		return fmt.Errorf("%w %q for model %q", ErrUnsupportedType, string(m.Type()), m.Name())
	}
	if strings.TrimSpace(m.Name()) == "" {
		return ErrEmptyName
	}
	return nil
}
