// Package registry discovers model variants and narrows them to the set an
// operator allows.
package registry

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"modelhub/internal/models"
)

// Descriptor is the identity of one discovered model.
type Descriptor struct {
	Name string           `json:"name"`
	Type models.ModelType `json:"type"`
}

// Catalog is the full result of discovery. It is built once and not mutated
// afterwards.
type Catalog struct {
	// Factories maps lowercase model name to its constructor.
	Factories map[string]models.Factory
	// Discovered lists descriptors in discovery order.
	Discovered []Descriptor
}

// Factory returns the constructor registered for name (already lowercase).
func (c Catalog) Factory(name string) (models.Factory, bool) {
	f, ok := c.Factories[name]
	return f, ok
}

// Names returns the discovered model names in discovery order.
func (c Catalog) Names() []string { return names(c.Discovered) }

// Discover probes every unit in src and builds a Catalog.
//
// Each unit is isolated: a panicking factory, a factory error or a model with
// an invalid identity is logged and skipped. A later unit reusing a name
// replaces the earlier factory; both descriptors stay listed in discovery
// order.
func Discover(src models.Source, log zerolog.Logger) Catalog {
	cat := Catalog{Factories: make(map[string]models.Factory)}
	if src == nil {
		log.Error().Msg("error discovering models: no model source")
		return cat
	}
	for _, u := range src.Units() {
		d, err := probe(u)
		if err != nil {
			if isLoadError(err) {
				log.Error().Err(err).Str("unit", u.Name).Msg("error loading model")
			} else {
				log.Warn().Err(err).Str("unit", u.Name).Msg("failed to initialize model")
			}
			continue
		}
		if _, dup := cat.Factories[d.Name]; dup {
			log.Warn().Str("model", d.Name).Str("unit", u.Name).Msg("duplicate model name, later registration serves it")
		}
		cat.Factories[d.Name] = u.Factory
		cat.Discovered = append(cat.Discovered, d)
		log.Info().Str("model", d.Name).Str("type", d.Type.String()).Str("unit", u.Name).Msg("discovered model")
	}
	return cat
}

type loadError struct{ v any }

func (e loadError) Error() string { return fmt.Sprintf("panic while loading: %v", e.v) }

func isLoadError(err error) bool {
	_, ok := err.(loadError)
	return ok
}

// probe builds one throwaway instance to read its identity.
func probe(u models.Unit) (d Descriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = loadError{v: r}
		}
	}()
	if u.Factory == nil {
		return d, fmt.Errorf("unit %q has no factory", u.Name)
	}
	m, err := u.Factory()
	if err != nil {
		return d, err
	}
	if err := models.Validate(m); err != nil {
		return d, err
	}
	return Descriptor{Name: strings.ToLower(m.Name()), Type: m.Type()}, nil
}

func names(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}
