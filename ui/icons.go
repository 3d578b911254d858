package ui

var (
	Icons = struct {
		Atom        string
		Chart       string
		Info        string
		Warning     string
		Error       string
		Success     string
		AxisCorner  rune
		AxisHLine   rune
		AxisVLine   rune
		AxisTick    rune
		GuideLine   rune
		LegendBlock rune
	}{
		Atom:        "⚛",
		Chart:       "📈",
		Info:        "ℹ",
		Warning:     "⚠",
		Error:       "✗",
		Success:     "✓",
		AxisCorner:  '└',
		AxisHLine:   '─',
		AxisVLine:   '│',
		AxisTick:    '┬',
		GuideLine:   '┊',
		LegendBlock: '■',
	}
)

// Block bar characters, 8 height levels plus baseline, used to draw the
// signal trace one column at a time.
var blockBarChars = []rune{
	' ',
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
	'█',
}
