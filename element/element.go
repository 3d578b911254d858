package element

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Element describes a chemical species used to place charge-state markers.
// It is a plain value and is safe to use as a map key.
type Element struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AtomicWeight float64 `json:"atomicWeight"`
	AtomicNumber int     `json:"atomicNumber"`
}

// Key identifies a species: two elements with the same key are the same
// species regardless of symbol or name.
type Key struct {
	AtomicNumber int
	AtomicWeight float64
}

// New returns an Element. No validation is performed; built-in elements are
// trusted, user-supplied ones go through Validate.
func New(symbol, name string, weight float64, number int) Element {
	return Element{Symbol: symbol, Name: name, AtomicWeight: weight, AtomicNumber: number}
}

// Key returns the (atomic number, atomic weight) pair of e.
func (e Element) Key() Key {
	return Key{AtomicNumber: e.AtomicNumber, AtomicWeight: e.AtomicWeight}
}

// SameSpecies reports whether e and other share atomic number and weight.
func (e Element) SameSpecies(other Element) bool {
	return e.Key() == other.Key()
}

// String returns the toggle text, e.g. "Ar-40".
func (e Element) String() string {
	return fmt.Sprintf("%s-%s", e.Symbol, strconv.FormatFloat(e.AtomicWeight, 'f', -1, 64))
}

// ChargeStates returns the achievable charge states 1..AtomicNumber.
func (e Element) ChargeStates() []int {
	if e.AtomicNumber <= 0 {
		return nil
	}
	qs := make([]int, e.AtomicNumber)
	for i := range qs {
		qs[i] = i + 1
	}
	return qs
}

// MassToCharge returns AtomicWeight/q for every charge state, ordered by q.
func (e Element) MassToCharge() []float64 {
	qs := e.ChargeStates()
	mq := make([]float64, len(qs))
	for i, q := range qs {
		mq[i] = e.AtomicWeight / float64(q)
	}
	return mq
}

var (
	ErrNonFiniteWeight     = errors.New("atomic weight must be a finite number")
	ErrNonPositiveWeight   = errors.New("atomic weight must be positive")
	ErrNonPositiveNumber   = errors.New("atomic number must be positive")
	ErrNumberExceedsWeight = errors.New("atomic number must not exceed atomic weight")
)

// Validate checks the physical constraints of a user-supplied element.
func (e Element) Validate() error {
	if math.IsNaN(e.AtomicWeight) || math.IsInf(e.AtomicWeight, 0) {
		return ErrNonFiniteWeight
	}
	if e.AtomicWeight <= 0 {
		return ErrNonPositiveWeight
	}
	if e.AtomicNumber <= 0 {
		return ErrNonPositiveNumber
	}
	if float64(e.AtomicNumber) > e.AtomicWeight {
		return ErrNumberExceedsWeight
	}
	return nil
}

// Parse builds an Element from the three free-text fields of the custom
// element form. The symbol doubles as the display name. Only the field
// syntax is checked here; collision and charge-state rules belong to the
// custom element registry.
func Parse(symbol, mass, number string) (Element, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Element{}, errors.New("symbol is empty")
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(mass), 64)
	if err != nil {
		return Element{}, fmt.Errorf("mass %q: %w", mass, err)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Element{}, fmt.Errorf("mass %q: %w", mass, ErrNonFiniteWeight)
	}
	if weight <= 0 {
		return Element{}, fmt.Errorf("mass %q: %w", mass, ErrNonPositiveWeight)
	}
	z, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return Element{}, fmt.Errorf("number %q: %w", number, err)
	}
	if z <= 0 {
		return Element{}, fmt.Errorf("number %q: %w", number, ErrNonPositiveNumber)
	}
	return New(symbol, symbol, weight, z), nil
}
