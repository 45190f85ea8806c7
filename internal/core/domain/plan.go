package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Plan is an ordered set of modules to build. It carries no edges: modules are
// visited in insertion order and the caller decides that order.
type Plan struct {
	modules map[ModuleName]Module
	order   []ModuleName
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{
		modules: make(map[ModuleName]Module),
	}
}

// Add appends a module to the plan.
// It returns an error if a module with the same name was already added, which
// guarantees no two builds in one run share an output directory.
func (p *Plan) Add(m Module) error {
	if _, exists := p.modules[m.Name]; exists {
		return zerr.With(zerr.Wrap(ErrModuleAlreadyPlanned, "cannot add module"), "module", m.Name.String())
	}
	p.modules[m.Name] = m
	p.order = append(p.order, m.Name)
	return nil
}

// Len returns the number of planned modules.
func (p *Plan) Len() int {
	return len(p.order)
}

// Names returns the planned module names in order.
func (p *Plan) Names() []ModuleName {
	out := make([]ModuleName, len(p.order))
	copy(out, p.order)
	return out
}

// Walk returns an iterator that yields modules in insertion order.
func (p *Plan) Walk() iter.Seq[Module] {
	return func(yield func(Module) bool) {
		for _, name := range p.order {
			if !yield(p.modules[name]) {
				return
			}
		}
	}
}
