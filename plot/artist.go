package plot

import "strings"

// legendExcludePrefix marks a line label as not part of the legend.
const legendExcludePrefix = "_"

// ExcludedLabel returns name prefixed so that the legend skips it.
func ExcludedLabel(name string) string {
	return legendExcludePrefix + name
}

// InLegend reports whether a line with this label is listed in the legend.
func InLegend(label string) bool {
	return label != "" && !strings.HasPrefix(label, legendExcludePrefix)
}

// Line is a series of markers sharing one marker shape and color.
// Lines can optionally draw vertical guides through every point.
type Line struct {
	xs, ys  []float64
	label   string
	marker  Marker
	color   string
	visible bool
	guides  bool
}

// NewLine returns a visible marker series. xs and ys are copied; when ys is
// shorter than xs the missing values are zero.
func NewLine(xs, ys []float64, marker Marker, color, label string) *Line {
	l := &Line{
		xs:      append([]float64(nil), xs...),
		ys:      make([]float64, len(xs)),
		marker:  marker,
		color:   color,
		label:   label,
		visible: true,
	}
	copy(l.ys, ys)
	return l
}

// XData returns a copy of the x positions.
func (l *Line) XData() []float64 { return append([]float64(nil), l.xs...) }

// YData returns a copy of the y positions.
func (l *Line) YData() []float64 { return append([]float64(nil), l.ys...) }

// Len returns the number of points.
func (l *Line) Len() int { return len(l.xs) }

// SetYData replaces the y positions. Extra values are ignored and missing
// ones are left as they were.
func (l *Line) SetYData(ys []float64) { copy(l.ys, ys) }

func (l *Line) Label() string { return l.label }
func (l *Line) SetLabel(label string) { l.label = label }
func (l *Line) Marker() Marker { return l.marker }
func (l *Line) Color() string { return l.color }
func (l *Line) Visible() bool { return l.visible }
func (l *Line) SetVisible(visible bool) { l.visible = visible }
func (l *Line) Guides() bool { return l.guides }
func (l *Line) SetGuides(show bool) { l.guides = show }

// HAlign is the horizontal alignment of a Text around its x position.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign anchors a Text relative to its y position.
type VAlign int

const (
	AnchorBottom VAlign = iota
	AnchorMiddle
	AnchorTop
)

// Text is a string drawn at a data position.
type Text struct {
	x, y    float64
	text    string
	color   string
	alpha   float64
	visible bool
	bold    bool
	HAlign  HAlign
	VAlign  VAlign
}

// NewText returns a visible, opaque text artist.
func NewText(x, y float64, text, color string) *Text {
	return &Text{x: x, y: y, text: text, color: color, alpha: 1, visible: true}
}

// Position returns the data position of the text.
func (t *Text) Position() (x, y float64) { return t.x, t.y }

func (t *Text) SetY(y float64) { t.y = y }
func (t *Text) Text() string { return t.text }
func (t *Text) Color() string { return t.color }
func (t *Text) Visible() bool { return t.visible }
func (t *Text) SetVisible(visible bool) { t.visible = visible }
func (t *Text) Bold() bool { return t.bold }
func (t *Text) SetBold(bold bool) { t.bold = bold }

// Alpha returns the opacity in [0, 1].
func (t *Text) Alpha() float64 { return t.alpha }

// SetAlpha sets the opacity, clamped to [0, 1].
func (t *Text) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	t.alpha = alpha
}

// Shown reports whether the text would be painted: visible and not fully
// transparent.
func (t *Text) Shown() bool {
	return t.visible && t.alpha > 0
}
