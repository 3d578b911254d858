package application

import (
	"math"

	"github.com/vladimirvivien/csdview/element"
)

const (
	demoStep     = 0.025
	demoWidth    = 0.08
	demoBaseline = 0.02
)

// DemoSignal synthesizes a charge state distribution with one Gaussian peak
// per charge state of every element. Peak q of an element has height 1/q.
func DemoSignal(elements []element.Element) (xs, ys []float64) {
	max := 0.0
	for _, e := range elements {
		if e.AtomicWeight > max {
			max = e.AtomicWeight
		}
	}
	if max == 0 {
		return nil, nil
	}

	n := int(math.Ceil(max * 1.05 / demoStep))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		x := float64(i+1) * demoStep
		y := demoBaseline
		for _, e := range elements {
			for q, mq := range e.MassToCharge() {
				d := (x - mq) / demoWidth
				y += math.Exp(-d*d/2) / float64(q+1)
			}
		}
		xs[i], ys[i] = x, y
	}
	return xs, ys
}
