package indicator

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/vladimirvivien/csdview/binding"
	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/plot"
)

// ErrPaletteExhausted is returned when a batch needs more marker shapes than
// are free and the set is not allowed to reuse them.
var ErrPaletteExhausted = errors.New("marker palette exhausted")

// PalettePolicy decides what happens when every marker shape is in use.
type PalettePolicy string

const (
	// PaletteReject fails the whole batch with ErrPaletteExhausted.
	PaletteReject PalettePolicy = "reject"
	// PaletteCycle reuses the least used shape and logs the reuse.
	PaletteCycle PalettePolicy = "cycle"
)

// DefaultMarkerHeight places the marker row at 90% of the y range.
const DefaultMarkerHeight = 0.9

// Entry pairs an element with the visibility cell its toggle control writes.
type Entry struct {
	Element element.Element
	Plotted *binding.Bool
}

// Set owns the indicators of every element currently on display and the
// artists they draw. Indicators keep creation order, which drives shape and
// color assignment and redraw order. A marker shape belongs to one indicator
// at a time and becomes free again when that indicator is removed.
type Set struct {
	surface      plot.Surface
	indicators   []*Indicator
	markers      []plot.Marker
	policy       PalettePolicy
	markerHeight float64
	guides       *binding.Bool
	colors       int
}

// Option configures a Set.
type Option func(*Set)

// WithPalettePolicy sets the palette exhaustion policy.
func WithPalettePolicy(p PalettePolicy) Option {
	return func(s *Set) { s.policy = p }
}

// WithMarkerHeight sets where Update places marker rows, as a fraction of
// the y range measured from its bottom.
func WithMarkerHeight(fraction float64) Option {
	return func(s *Set) { s.markerHeight = fraction }
}

// WithGuides binds the "show lines" display option.
func WithGuides(show *binding.Bool) Option {
	return func(s *Set) { s.guides = show }
}

// WithMarkers replaces the marker palette.
func WithMarkers(markers []plot.Marker) Option {
	return func(s *Set) { s.markers = append([]plot.Marker(nil), markers...) }
}

// NewSet returns an empty set drawing onto surface.
func NewSet(surface plot.Surface, opts ...Option) *Set {
	s := &Set{
		surface:      surface,
		markers:      plot.DefaultMarkers(),
		policy:       PaletteReject,
		markerHeight: DefaultMarkerHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.guides == nil {
		s.guides = binding.NewBool(false)
	}
	return s
}

// Guides returns the "show lines" cell.
func (s *Set) Guides() *binding.Bool { return s.guides }

// AddElementIndicators creates one indicator per entry, in order. Each
// entry takes the first free shape of the marker palette and the next color
// of the set-wide cycle. Marker rows start at y=0 and every artist is added
// to the surface scene; nothing is drawn until Update.
//
// A batch needing more shapes than are free fails under PaletteReject
// without creating anything.
func (s *Set) AddElementIndicators(entries []Entry) ([]*Indicator, error) {
	markers, err := s.assignMarkers(len(entries))
	if err != nil {
		return nil, err
	}

	created := make([]*Indicator, 0, len(entries))
	for i, entry := range entries {
		if entry.Plotted == nil {
			entry.Plotted = binding.NewBool(false)
		}
		marker := markers[i]
		color := plot.CycleColor(s.colors)
		s.colors++

		ind := newIndicator(entry.Element, marker, color, entry.Plotted)
		for _, a := range ind.artists() {
			s.surface.Add(a)
		}
		s.indicators = append(s.indicators, ind)
		created = append(created, ind)
		klog.V(2).InfoS("Element indicator created", "element", entry.Element.String(), "marker", string(marker), "color", color)
	}
	return created, nil
}

// assignMarkers picks n shapes, least used first and in palette order
// among equals.
func (s *Set) assignMarkers(n int) ([]plot.Marker, error) {
	used := make(map[plot.Marker]int, len(s.markers))
	for _, ind := range s.indicators {
		used[ind.markers.Marker()]++
	}
	free := 0
	for _, m := range s.markers {
		if used[m] == 0 {
			free++
		}
	}
	if len(s.markers) == 0 || (n > free && s.policy != PaletteCycle) {
		klog.ErrorS(ErrPaletteExhausted, "Cannot assign marker shapes", "requested", n, "free", free, "palette", len(s.markers))
		return nil, fmt.Errorf("%d elements, %d of %d marker shapes free: %w", n, free, len(s.markers), ErrPaletteExhausted)
	}

	assigned := make([]plot.Marker, n)
	for i := range assigned {
		best := s.markers[0]
		for _, m := range s.markers[1:] {
			if used[m] < used[best] {
				best = m
			}
		}
		if used[best] > 0 {
			klog.InfoS("Reusing marker shape", "marker", string(best), "users", used[best])
		}
		used[best]++
		assigned[i] = best
	}
	return assigned, nil
}

// AddElementIndicator adds a single element.
func (s *Set) AddElementIndicator(e element.Element, plotted *binding.Bool) (*Indicator, error) {
	created, err := s.AddElementIndicators([]Entry{{Element: e, Plotted: plotted}})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// RemoveElementIndicator detaches the indicator of e and all of its artists
// from the scene. It reports false when e has no indicator.
func (s *Set) RemoveElementIndicator(e element.Element) bool {
	i := s.indexOf(e)
	if i < 0 {
		return false
	}
	ind := s.indicators[i]
	for _, a := range ind.artists() {
		s.surface.Remove(a)
	}
	ind.release()
	s.indicators = append(s.indicators[:i], s.indicators[i+1:]...)
	klog.V(2).InfoS("Element indicator removed", "element", e.String())
	return true
}

func (s *Set) indexOf(e element.Element) int {
	for i, ind := range s.indicators {
		if ind.element == e {
			return i
		}
	}
	return -1
}

// Get returns the indicator of e.
func (s *Set) Get(e element.Element) (*Indicator, bool) {
	if i := s.indexOf(e); i >= 0 {
		return s.indicators[i], true
	}
	return nil, false
}

// Indicators returns the indicators in creation order.
func (s *Set) Indicators() []*Indicator {
	return append([]*Indicator(nil), s.indicators...)
}

// Len returns the number of indicators.
func (s *Set) Len() int { return len(s.indicators) }

// Update runs the redraw cycle: place every marker row, show or hide each
// indicator according to its visibility cell, declutter the labels of the
// plotted ones against the current view and ask the surface to repaint.
func (s *Set) Update() {
	yMin, yMax := s.surface.YLim()
	y := yMin + s.markerHeight*(yMax-yMin)
	guides := s.guides.Get()
	for _, ind := range s.indicators {
		ind.SetYValue(y, yMin, yMax)
		plotted := ind.IsPlotted()
		ind.setArtistsVisible(plotted, guides)
		if plotted {
			ind.SetXScale(s.surface)
		}
	}
	s.surface.Redraw()
}

// VisibleIn returns the plotted elements with a marker strictly inside
// (xMin, xMax), in creation order.
func (s *Set) VisibleIn(xMin, xMax float64) []element.Element {
	var found []element.Element
	for _, ind := range s.indicators {
		if ind.IsPlotted() && ind.IsVisible(xMin, xMax) {
			found = append(found, ind.element)
		}
	}
	return found
}
