package plot

import (
	"errors"
	"math"
)

// ErrEmptyRange is returned when a limit pair has no extent.
var ErrEmptyRange = errors.New("axis range is empty")

// Limits is an axis range.
type Limits struct {
	Min, Max float64
}

// Span returns Max-Min.
func (l Limits) Span() float64 {
	return l.Max - l.Min
}

// Contains reports whether v lies strictly inside the range.
func (l Limits) Contains(v float64) bool {
	return l.Min < v && v < l.Max
}

var _ Surface = (*Axes)(nil)

// Axes is an in-memory Surface with linear x and y axes. Screen space has
// its origin at the lower left corner and spans Size() pixels; hosts map
// it onto their own coordinate system when painting.
//
// Axes never changes its limits on its own. Zoom, Pan, Fit and Reset are
// driven by the host.
type Axes struct {
	x, y          Limits
	homeX, homeY  Limits
	width, height float64
	artists       []Artist
	onRedraw      func()
	redraws       int
}

// NewAxes returns axes of the given pixel size with unit limits.
func NewAxes(width, height int) *Axes {
	unit := Limits{Min: 0, Max: 1}
	return &Axes{
		x:      unit,
		y:      unit,
		homeX:  unit,
		homeY:  unit,
		width:  float64(width),
		height: float64(height),
	}
}

// XLim returns the current x limits.
func (a *Axes) XLim() (float64, float64) { return a.x.Min, a.x.Max }

// YLim returns the current y limits.
func (a *Axes) YLim() (float64, float64) { return a.y.Min, a.y.Max }

// SetXLim sets the x limits. Reversed bounds are swapped.
func (a *Axes) SetXLim(min, max float64) error {
	l, err := newLimits(min, max)
	if err != nil {
		return err
	}
	a.x = l
	return nil
}

// SetYLim sets the y limits. Reversed bounds are swapped.
func (a *Axes) SetYLim(min, max float64) error {
	l, err := newLimits(min, max)
	if err != nil {
		return err
	}
	a.y = l
	return nil
}

func newLimits(min, max float64) (Limits, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Limits{}, ErrEmptyRange
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return Limits{}, ErrEmptyRange
	}
	return Limits{Min: min, Max: max}, nil
}

// SetSize sets the pixel size of the drawing area.
func (a *Axes) SetSize(width, height int) {
	a.width = float64(width)
	a.height = float64(height)
}

// Size returns the pixel size of the drawing area.
func (a *Axes) Size() (width, height int) {
	return int(a.width), int(a.height)
}

// Transform maps a data position to screen space.
func (a *Axes) Transform(x, y float64) (float64, float64) {
	sx := (x - a.x.Min) / a.x.Span() * a.width
	sy := (y - a.y.Min) / a.y.Span() * a.height
	return sx, sy
}

// Inverse maps a screen position back to data space.
func (a *Axes) Inverse(sx, sy float64) (float64, float64) {
	var x, y float64
	if a.width > 0 {
		x = a.x.Min + sx/a.width*a.x.Span()
	}
	if a.height > 0 {
		y = a.y.Min + sy/a.height*a.y.Span()
	}
	return x, y
}

// SetHome records the limits that Reset returns to and applies them.
func (a *Axes) SetHome(x, y Limits) error {
	if _, err := newLimits(x.Min, x.Max); err != nil {
		return err
	}
	if _, err := newLimits(y.Min, y.Max); err != nil {
		return err
	}
	a.homeX, a.homeY = x, y
	a.Reset()
	return nil
}

// Reset restores the home limits.
func (a *Axes) Reset() {
	a.x, a.y = a.homeX, a.homeY
}

// Zoom scales the x range around its center. factor > 1 zooms in.
func (a *Axes) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	center := (a.x.Min + a.x.Max) / 2
	half := a.x.Span() / 2 / factor
	a.x = Limits{Min: center - half, Max: center + half}
}

// Pan shifts the x range by fraction of its span. Positive moves right.
func (a *Axes) Pan(fraction float64) {
	d := a.x.Span() * fraction
	a.x = Limits{Min: a.x.Min + d, Max: a.x.Max + d}
}

// Fit sets the home limits to the bounding box of the data plus a relative
// margin and applies them.
func (a *Axes) Fit(xs, ys []float64, margin float64) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrEmptyRange
	}
	x := bounds(xs)
	y := bounds(ys)
	if y.Min > 0 {
		y.Min = 0
	}
	if y.Span() == 0 {
		y.Max = y.Min + 1
	}
	if x.Span() == 0 {
		x.Min, x.Max = x.Min-0.5, x.Max+0.5
	}
	dx, dy := x.Span()*margin, y.Span()*margin
	return a.SetHome(Limits{Min: x.Min - dx, Max: x.Max + dx}, Limits{Min: y.Min, Max: y.Max + dy})
}

func bounds(vs []float64) Limits {
	l := Limits{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		l.Min = math.Min(l.Min, v)
		l.Max = math.Max(l.Max, v)
	}
	return l
}

// Add registers an artist with the scene. Adding an artist twice is a no-op.
func (a *Axes) Add(artist Artist) {
	if a.indexOf(artist) >= 0 {
		return
	}
	a.artists = append(a.artists, artist)
}

// Remove detaches an artist and reports whether it was part of the scene.
func (a *Axes) Remove(artist Artist) bool {
	i := a.indexOf(artist)
	if i < 0 {
		return false
	}
	a.artists = append(a.artists[:i], a.artists[i+1:]...)
	return true
}

// Contains reports whether the artist is part of the scene.
func (a *Axes) Contains(artist Artist) bool {
	return a.indexOf(artist) >= 0
}

func (a *Axes) indexOf(artist Artist) int {
	for i, existing := range a.artists {
		if existing == artist {
			return i
		}
	}
	return -1
}

// Artists returns the scene in insertion order.
func (a *Axes) Artists() []Artist {
	return append([]Artist(nil), a.artists...)
}

// Lines returns the marker series of the scene in insertion order.
func (a *Axes) Lines() []*Line {
	var lines []*Line
	for _, artist := range a.artists {
		if l, ok := artist.(*Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Texts returns the text artists of the scene in insertion order.
func (a *Axes) Texts() []*Text {
	var texts []*Text
	for _, artist := range a.artists {
		if t, ok := artist.(*Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Legend returns the visible lines whose label takes part in the legend.
func (a *Axes) Legend() []*Line {
	var entries []*Line
	for _, l := range a.Lines() {
		if l.Visible() && InLegend(l.Label()) {
			entries = append(entries, l)
		}
	}
	return entries
}

// SetRedrawFunc sets the callback run by Redraw, typically a host refresh.
func (a *Axes) SetRedrawFunc(fn func()) {
	a.onRedraw = fn
}

// Redraw asks the host to repaint.
func (a *Axes) Redraw() {
	a.redraws++
	if a.onRedraw != nil {
		a.onRedraw()
	}
}

// Redraws returns how many times Redraw was called.
func (a *Axes) Redraws() int {
	return a.redraws
}
