package element

import (
	"errors"
	"math"
	"testing"
)

func TestMassToCharge(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		expected []float64
	}{
		{
			name:     "helium",
			element:  New("He", "Helium", 4, 2),
			expected: []float64{4, 2},
		},
		{
			name:     "oxygen",
			element:  New("O", "Oxygen", 16, 8),
			expected: []float64{16, 8, 16.0 / 3, 4, 3.2, 16.0 / 6, 16.0 / 7, 2},
		},
		{
			name:     "no charge states",
			element:  New("X", "X", 10, 0),
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mq := tt.element.MassToCharge()
			if len(mq) != len(tt.expected) {
				t.Fatalf("Expected %d positions, got %d", len(tt.expected), len(mq))
			}
			for i := range mq {
				if mq[i] != tt.expected[i] {
					t.Errorf("Expected m/q %v at q=%d, got %v", tt.expected[i], i+1, mq[i])
				}
			}
			qs := tt.element.ChargeStates()
			if len(qs) != tt.element.AtomicNumber && tt.element.AtomicNumber > 0 {
				t.Errorf("Expected %d charge states, got %d", tt.element.AtomicNumber, len(qs))
			}
			for i, q := range qs {
				if q != i+1 {
					t.Errorf("Expected charge state %d, got %d", i+1, q)
				}
			}
		})
	}
}

func TestSameSpecies(t *testing.T) {
	ar := New("Ar", "Argon", 40, 18)
	renamed := New("A", "argon-40", 40, 18)
	ca := New("Ca", "Calcium", 40, 20)

	if !ar.SameSpecies(renamed) {
		t.Error("Expected elements with equal number and weight to be the same species")
	}
	if ar.SameSpecies(ca) {
		t.Error("Expected elements with different numbers to differ")
	}
	if ar.Key() != (Key{AtomicNumber: 18, AtomicWeight: 40}) {
		t.Errorf("Unexpected key %+v", ar.Key())
	}
}

func TestString(t *testing.T) {
	if s := New("Ar", "Argon", 40, 18).String(); s != "Ar-40" {
		t.Errorf("Expected 'Ar-40', got '%s'", s)
	}
	if s := New("Cl", "Chlorine", 35.5, 17).String(); s != "Cl-35.5" {
		t.Errorf("Expected 'Cl-35.5', got '%s'", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		element Element
		err     error
	}{
		{name: "valid", element: New("Xe", "Xenon", 132, 54)},
		{name: "number equals weight", element: New("H", "Hydrogen", 1, 1)},
		{name: "number exceeds weight", element: New("X", "X", 10, 12), err: ErrNumberExceedsWeight},
		{name: "zero weight", element: New("X", "X", 0, 1), err: ErrNonPositiveWeight},
		{name: "zero number", element: New("X", "X", 4, 0), err: ErrNonPositiveNumber},
		{name: "negative number", element: New("X", "X", 4, -2), err: ErrNonPositiveNumber},
		{name: "NaN weight", element: New("X", "X", math.NaN(), 2), err: ErrNonFiniteWeight},
		{name: "infinite weight", element: New("X", "X", math.Inf(1), 2), err: ErrNonFiniteWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.element.Validate()
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	e, err := Parse(" Fe ", "56", " 26")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := New("Fe", "Fe", 56, 26)
	if e != expected {
		t.Errorf("Expected %+v, got %+v", expected, e)
	}

	bad := []struct {
		name                 string
		symbol, mass, number string
	}{
		{name: "empty symbol", symbol: "", mass: "56", number: "26"},
		{name: "mass not a number", symbol: "Fe", mass: "abc", number: "26"},
		{name: "number not an integer", symbol: "Fe", mass: "56", number: "2.5"},
		{name: "negative mass", symbol: "Fe", mass: "-56", number: "26"},
		{name: "zero number", symbol: "Fe", mass: "56", number: "0"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.symbol, tt.mass, tt.number); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestParseNonFinite(t *testing.T) {
	for _, mass := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		t.Run(mass, func(t *testing.T) {
			_, err := Parse("Fe", mass, "26")
			if !errors.Is(err, ErrNonFiniteWeight) {
				t.Errorf("Expected ErrNonFiniteWeight for mass %q, got %v", mass, err)
			}
		})
	}
}

func TestSortedByNumber(t *testing.T) {
	in := []Element{Variable[2], Persistent[0], Variable[0]}
	out := SortedByNumber(in)
	for i := 1; i < len(out); i++ {
		if out[i].AtomicNumber < out[i-1].AtomicNumber {
			t.Errorf("Expected ascending atomic numbers, got %v", out)
		}
	}
	if in[0] != Variable[2] {
		t.Error("Expected input slice to be left untouched")
	}

	all := Builtin(Persistent, Variable)
	if len(all) != len(Persistent)+len(Variable) {
		t.Errorf("Expected %d builtin elements, got %d", len(Persistent)+len(Variable), len(all))
	}
}
