package plot

// Marker is a marker shape code.
type Marker string

const (
	MarkerTriangleDown Marker = "v"
	MarkerTriangleUp   Marker = "^"
	MarkerPentagon     Marker = "p"
	MarkerThinDiamond  Marker = "d"
	MarkerStar         Marker = "*"
	MarkerDiamond      Marker = "D"
)

var markerGlyphs = map[Marker]rune{
	MarkerTriangleDown: '▼',
	MarkerTriangleUp:   '▲',
	MarkerPentagon:     '⬟',
	MarkerThinDiamond:  '◊',
	MarkerStar:         '✶',
	MarkerDiamond:      '◆',
}

// Glyph returns the terminal rune used to draw the marker.
func (m Marker) Glyph() rune {
	if g, ok := markerGlyphs[m]; ok {
		return g
	}
	return '•'
}

// DefaultMarkers returns the indicator marker palette in assignment order.
func DefaultMarkers() []Marker {
	return []Marker{
		MarkerTriangleDown,
		MarkerTriangleUp,
		MarkerPentagon,
		MarkerThinDiamond,
		MarkerStar,
		MarkerDiamond,
	}
}

// Default color cycle for series, assigned by creation index.
var defaultColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// CycleColor returns the i-th color of the default cycle, wrapping around.
func CycleColor(i int) string {
	if i < 0 {
		i = -i
	}
	return defaultColors[i%len(defaultColors)]
}
