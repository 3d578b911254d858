package indicator

import (
	"math"
	"strconv"

	"github.com/vladimirvivien/csdview/binding"
	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/plot"
)

// labelLift is the label offset above the marker row as a fraction of the
// y-range span.
const labelLift = 0.02

// Indicator is the overlay for one element: a marker per charge state at
// m/q = W/q and a label above each marker showing q.
//
// Whether the indicator is plotted is held in a shared binding.Bool. Every
// write to it relabels the marker series for the legend; the artists
// themselves are kept for the life of the indicator.
type Indicator struct {
	element element.Element
	markers *plot.Line
	labels  []*plot.Text
	plotted *binding.Bool
	cancel  func()
}

func newIndicator(e element.Element, marker plot.Marker, color string, plotted *binding.Bool) *Indicator {
	mq := e.MassToCharge()
	markers := plot.NewLine(mq, nil, marker, color, e.Name)
	labels := make([]*plot.Text, len(mq))
	for i, x := range mq {
		txt := plot.NewText(x, 0, strconv.Itoa(i+1), color)
		txt.HAlign = plot.AlignCenter
		txt.VAlign = plot.AnchorBottom
		txt.SetBold(true)
		labels[i] = txt
	}

	ind := &Indicator{
		element: e,
		markers: markers,
		labels:  labels,
		plotted: plotted,
	}
	ind.cancel = plotted.Subscribe(func(bool) { ind.relabel() })
	ind.relabel()
	return ind
}

func (ind *Indicator) relabel() {
	if ind.plotted.Get() {
		ind.markers.SetLabel(ind.element.Name)
		return
	}
	ind.markers.SetLabel(plot.ExcludedLabel(ind.element.Name))
}

// Element returns the element the indicator represents.
func (ind *Indicator) Element() element.Element { return ind.element }

// Markers returns the marker series artist.
func (ind *Indicator) Markers() *plot.Line { return ind.markers }

// Labels returns the charge-state label artists ordered by q.
func (ind *Indicator) Labels() []*plot.Text {
	return append([]*plot.Text(nil), ind.labels...)
}

// Plotted returns the shared visibility cell.
func (ind *Indicator) Plotted() *binding.Bool { return ind.plotted }

// IsPlotted reports the current value of the visibility cell.
func (ind *Indicator) IsPlotted() bool { return ind.plotted.Get() }

// SetPlotted writes the visibility cell, which notifies every observer
// including the indicator itself.
func (ind *Indicator) SetPlotted(plotted bool) { ind.plotted.Set(plotted) }

// SetYValue moves the marker row to y and places the labels 2% of the
// y-range span above it.
func (ind *Indicator) SetYValue(y, yMin, yMax float64) {
	ys := make([]float64, ind.markers.Len())
	for i := range ys {
		ys[i] = y
	}
	ind.markers.SetYData(ys)
	offset := labelLift * math.Abs(yMax-yMin)
	for _, l := range ind.labels {
		l.SetY(y + offset)
	}
}

// SetXScale hides labels that would crowd each other in the current view.
// Labels outside the view or closer than 3% of the view width to the
// previous shown label get alpha 0, the rest alpha 1.
func (ind *Indicator) SetXScale(view plot.View) {
	xMin, xMax := view.XLim()
	lo, _ := view.Transform(xMin, 0)
	hi, _ := view.Transform(xMax, 0)
	threshold := labelSpacing * (hi - lo)

	screenX := make([]float64, len(ind.labels))
	for i, l := range ind.labels {
		x, y := l.Position()
		screenX[i], _ = view.Transform(x, y)
	}
	for i, keep := range Declutter(screenX, lo, hi, threshold) {
		if keep {
			ind.labels[i].SetAlpha(1)
		} else {
			ind.labels[i].SetAlpha(0)
		}
	}
}

// IsVisible reports whether any marker lies strictly inside (xMin, xMax).
func (ind *Indicator) IsVisible(xMin, xMax float64) bool {
	for _, x := range ind.markers.XData() {
		if xMin < x && x < xMax {
			return true
		}
	}
	return false
}

// ShownLabels returns the charge states whose labels are currently painted.
func (ind *Indicator) ShownLabels() []int {
	var qs []int
	for i, l := range ind.labels {
		if l.Shown() {
			qs = append(qs, i+1)
		}
	}
	return qs
}

func (ind *Indicator) setArtistsVisible(visible, guides bool) {
	ind.markers.SetVisible(visible)
	ind.markers.SetGuides(visible && guides)
	for _, l := range ind.labels {
		l.SetVisible(visible)
	}
}

func (ind *Indicator) artists() []plot.Artist {
	artists := make([]plot.Artist, 0, len(ind.labels)+1)
	artists = append(artists, ind.markers)
	for _, l := range ind.labels {
		artists = append(artists, l)
	}
	return artists
}

// release stops observing the visibility cell.
func (ind *Indicator) release() {
	if ind.cancel != nil {
		ind.cancel()
		ind.cancel = nil
	}
}
