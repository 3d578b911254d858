package indicator

import "testing"

func TestDeclutter(t *testing.T) {
	tests := []struct {
		name      string
		screenX   []float64
		lo, hi    float64
		threshold float64
		expected  []bool
	}{
		{
			name:      "close pair collapses",
			screenX:   []float64{10, 11, 50},
			lo:        0,
			hi:        100,
			threshold: 5,
			expected:  []bool{true, false, true},
		},
		{
			name:      "small threshold keeps all",
			screenX:   []float64{10, 11, 50},
			lo:        0,
			hi:        100,
			threshold: 0.5,
			expected:  []bool{true, true, true},
		},
		{
			name:      "unsorted input",
			screenX:   []float64{50, 11, 10},
			lo:        0,
			hi:        100,
			threshold: 5,
			expected:  []bool{true, false, true},
		},
		{
			name:      "distance equal to threshold is not enough",
			screenX:   []float64{10, 15, 20},
			lo:        0,
			hi:        100,
			threshold: 5,
			expected:  []bool{true, false, true},
		},
		{
			name:      "off screen labels hidden",
			screenX:   []float64{-5, 0, 40, 100, 120},
			lo:        0,
			hi:        100,
			threshold: 3,
			expected:  []bool{false, false, true, false, false},
		},
		{
			name:      "chain measured from last kept label",
			screenX:   []float64{0.5, 3, 5.5, 8},
			lo:        0,
			hi:        100,
			threshold: 3,
			expected:  []bool{true, false, true, false},
		},
		{
			name:     "empty",
			screenX:  nil,
			lo:       0,
			hi:       100,
			expected: []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep := Declutter(tt.screenX, tt.lo, tt.hi, tt.threshold)
			if len(keep) != len(tt.expected) {
				t.Fatalf("Expected %d results, got %d", len(tt.expected), len(keep))
			}
			for i := range keep {
				if keep[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, keep)
					break
				}
			}
		})
	}
}

func TestDeclutterIdempotent(t *testing.T) {
	xs := []float64{12, 13, 14, 30, 31, 70, 72, 99}
	first := Declutter(xs, 0, 100, 3)
	second := Declutter(xs, 0, 100, 3)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical results, got %v and %v", first, second)
		}
	}
}

func TestDeclutterSmallerThresholdReveals(t *testing.T) {
	xs := []float64{10, 11, 50}
	wide := Declutter(xs, 0, 100, 5)
	narrow := Declutter(xs, 0, 100, 0.5)
	for i := range xs {
		if wide[i] && !narrow[i] {
			t.Errorf("Expected label at %v to stay visible with the smaller threshold", xs[i])
		}
	}
	if wide[1] || !narrow[1] {
		t.Errorf("Expected label at 11 to be revealed, got wide=%v narrow=%v", wide, narrow)
	}
}
