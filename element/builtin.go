package element

import "sort"

// Persistent lists the residual-gas species that are always offered as
// toggles.
var Persistent = []Element{
	New("C", "Carbon", 12, 6),
	New("N", "Nitrogen", 14, 7),
	New("O", "Oxygen", 16, 8),
}

// Variable lists the support and operating gases that vary between runs.
var Variable = []Element{
	New("He", "Helium", 4, 2),
	New("Ar", "Argon", 40, 18),
	New("Kr", "Krypton", 84, 36),
}

// Builtin returns persistent followed by variable elements in a new slice.
func Builtin(persistent, variable []Element) []Element {
	all := make([]Element, 0, len(persistent)+len(variable))
	all = append(all, persistent...)
	return append(all, variable...)
}

// SortedByNumber returns a copy of elements ordered by atomic number.
// Elements sharing a number keep their relative order.
func SortedByNumber(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AtomicNumber < out[j].AtomicNumber
	})
	return out
}
