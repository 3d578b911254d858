package indicator

import "sort"

// labelSpacing is the minimum distance between two shown labels as a
// fraction of the viewport pixel width.
const labelSpacing = 0.03

// Declutter decides which labels to show. screenX holds label positions in
// screen space; lo and hi are the screen bounds of the viewport. Labels
// outside (lo, hi) are hidden. The rest are visited left to right and a
// label is kept only when it is more than threshold pixels from the last
// kept label. The result is indexed like screenX.
func Declutter(screenX []float64, lo, hi, threshold float64) []bool {
	keep := make([]bool, len(screenX))
	if lo > hi {
		lo, hi = hi, lo
	}

	onScreen := make([]int, 0, len(screenX))
	for i, x := range screenX {
		if lo < x && x < hi {
			onScreen = append(onScreen, i)
		}
	}
	sort.SliceStable(onScreen, func(a, b int) bool {
		return screenX[onScreen[a]] < screenX[onScreen[b]]
	})

	var last float64
	for n, i := range onScreen {
		x := screenX[i]
		if n == 0 || x-last > threshold {
			keep[i] = true
			last = x
		}
	}
	return keep
}
