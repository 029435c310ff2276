package models

import "sync"

// Factory builds a fresh model instance. It is called once as a probe during
// discovery and again whenever the manager needs a live instance.
type Factory func() (Model, error)

// Unit is one registered extension: the name of the package that provided it
// and its factory.
type Unit struct {
	Name    string
	Factory Factory
}

// Source enumerates extension units for discovery.
type Source interface {
	Units() []Unit
}

// UnitList is a fixed list of units; handy for tests and custom wiring.
type UnitList []Unit

func (l UnitList) Units() []Unit { return append([]Unit(nil), l...) }

var (
	regMu sync.Mutex
	units []Unit
)

// Register adds a model factory to the process-wide extension list. Variants
// call it from init(). Units keep registration order.
func Register(unit string, f Factory) {
	regMu.Lock()
	units = append(units, Unit{Name: unit, Factory: f})
	regMu.Unlock()
}

type registered struct{}

func (registered) Units() []Unit {
	regMu.Lock()
	defer regMu.Unlock()
	return append([]Unit(nil), units...)
}

// Registered returns the Source backed by every Register call made so far.
func Registered() Source { return registered{} }
