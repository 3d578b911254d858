package registry

import (
	"k8s.io/klog/v2"

	"github.com/vladimirvivien/csdview/binding"
	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/indicator"
)

// DefaultColumns is the width of the custom element toggle grid.
const DefaultColumns = 4

// Slot is a cell of the toggle control grid.
type Slot struct {
	Row, Column int
}

// Control is the host handle of a toggle control bound to a custom element.
type Control interface {
	Release()
}

// ControlFactory creates toggle controls for custom elements. The control
// writes plotted when the user toggles it.
type ControlFactory interface {
	NewControl(e element.Element, slot Slot, plotted *binding.Bool) Control
}

// IndicatorSet is the part of indicator.Set the registry drives.
type IndicatorSet interface {
	AddElementIndicator(e element.Element, plotted *binding.Bool) (*indicator.Indicator, error)
	RemoveElementIndicator(e element.Element) bool
	Update()
}

// Entry is one registered custom element.
type Entry struct {
	Element element.Element
	Slot    Slot
	Plotted *binding.Bool
	Control Control
}

// Registry tracks the custom elements added at runtime. Indicator
// lifecycle is delegated to the IndicatorSet; the registry only keeps slot
// bookkeeping and control handles.
type Registry struct {
	set      IndicatorSet
	builtin  []element.Element
	controls ControlFactory
	columns  int
	entries  []Entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithColumns sets the toggle grid width.
func WithColumns(columns int) Option {
	return func(r *Registry) {
		if columns > 0 {
			r.columns = columns
		}
	}
}

// New returns an empty registry. builtin lists the persistent and variable
// elements new entries must not collide with. controls may be nil.
func New(set IndicatorSet, builtin []element.Element, controls ControlFactory, opts ...Option) *Registry {
	r := &Registry{
		set:      set,
		builtin:  append([]element.Element(nil), builtin...),
		controls: controls,
		columns:  DefaultColumns,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validate checks a candidate against the rules below, in order, and
// returns the first violation:
//
//  1. same species as a built-in element
//  2. same species as a custom element
//  3. atomic number greater than atomic weight
//  4. atomic weight or number not positive, or weight not finite
func (r *Registry) Validate(e element.Element) error {
	for _, b := range r.builtin {
		if e.SameSpecies(b) {
			return newValidationError(CodeDuplicateBuiltin, e)
		}
	}
	for _, entry := range r.entries {
		if e.SameSpecies(entry.Element) {
			return newValidationError(CodeDuplicateCustom, e)
		}
	}
	if float64(e.AtomicNumber) > e.AtomicWeight {
		return newValidationError(CodeInvalidChargeState, e)
	}
	if err := e.Validate(); err != nil {
		verr := newValidationError(CodeInvalidElement, e)
		verr.Cause = err
		return verr
	}
	return nil
}

// AddElement validates e, adds a plotted indicator for it and places its
// toggle control in the next grid slot. Nothing changes on error.
func (r *Registry) AddElement(e element.Element) (Entry, error) {
	if err := r.Validate(e); err != nil {
		klog.V(1).InfoS("Custom element rejected", "element", e.String(), "reason", err)
		return Entry{}, err
	}

	plotted := binding.NewBool(true)
	if _, err := r.set.AddElementIndicator(e, plotted); err != nil {
		return Entry{}, err
	}

	entry := Entry{Element: e, Slot: r.nextSlot(), Plotted: plotted}
	if r.controls != nil {
		entry.Control = r.controls.NewControl(e, entry.Slot, plotted)
	}
	r.entries = append(r.entries, entry)
	r.set.Update()
	klog.InfoS("Custom element added", "element", e.String(), "row", entry.Slot.Row, "column", entry.Slot.Column, "count", len(r.entries))
	return entry, nil
}

func (r *Registry) nextSlot() Slot {
	if len(r.entries) == 0 {
		return Slot{}
	}
	last := r.entries[len(r.entries)-1].Slot
	if last.Column == r.columns-1 {
		return Slot{Row: last.Row + 1, Column: 0}
	}
	return Slot{Row: last.Row, Column: last.Column + 1}
}

// RemoveAllElements removes every custom indicator, releases the toggle
// controls and empties the registry. Custom elements cannot be removed one
// at a time.
func (r *Registry) RemoveAllElements() {
	count := len(r.entries)
	for _, entry := range r.entries {
		if !r.set.RemoveElementIndicator(entry.Element) {
			klog.ErrorS(nil, "Custom element has no indicator to remove", "element", entry.Element.String())
		}
		if entry.Control != nil {
			entry.Control.Release()
		}
	}
	r.entries = nil
	r.set.Update()
	klog.InfoS("Custom elements cleared", "count", count)
}

// Entries returns the registered custom elements in insertion order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of custom elements.
func (r *Registry) Len() int { return len(r.entries) }

// Columns returns the toggle grid width.
func (r *Registry) Columns() int { return r.columns }
