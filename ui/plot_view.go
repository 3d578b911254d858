package ui

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vladimirvivien/csdview/plot"
)

const (
	axisRows     = 2  // x axis line and tick labels
	axisCols     = 1  // y axis line
	tickSpacing  = 12 // columns between x ticks
	zoomStep     = 1.25
	panStep      = 0.1
	minPlotWidth = 4
)

// PlotView is a tview primitive that paints a plot.Axes: the measured
// signal as block bars, its marker series and labels, guide lines, an x
// axis and a legend. One terminal cell is one screen pixel of the axes.
//
// PlotView keeps the axes size in sync with its inner rectangle and
// handles zoom and pan keys. Every view change (resize, zoom, pan, reset)
// calls the function set with SetViewChangedFunc, which is expected to run
// the overlay redraw cycle.
type PlotView struct {
	*tview.Box

	axes    *plot.Axes
	signalX []float64
	signalY []float64

	onViewChanged func()
}

// NewPlotView returns a view painting axes.
func NewPlotView(axes *plot.Axes) *PlotView {
	v := &PlotView{
		Box:  tview.NewBox(),
		axes: axes,
	}
	v.Box.SetBorder(true)
	v.Box.SetTitle(" " + Icons.Chart + " Signal vs m/q ")
	v.Box.SetTitleAlign(tview.AlignLeft)
	return v
}

// Axes returns the painted axes.
func (v *PlotView) Axes() *plot.Axes {
	return v.axes
}

// SetSignal sets the measured trace. xs and ys are copied.
func (v *PlotView) SetSignal(xs, ys []float64) *PlotView {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	v.signalX = append([]float64(nil), xs[:n]...)
	v.signalY = append([]float64(nil), ys[:n]...)
	return v
}

// SetViewChangedFunc sets the callback run after every view change.
func (v *PlotView) SetViewChangedFunc(fn func()) *PlotView {
	v.onViewChanged = fn
	return v
}

// SetFocused implements FocusablePanel.
func (v *PlotView) SetFocused(focused bool) {
	SetBoxFocused(v.Box, focused)
}

func (v *PlotView) viewChanged() {
	if v.onViewChanged != nil {
		v.onViewChanged()
	}
}

// plotArea returns the screen rectangle of the data area.
func (v *PlotView) plotArea() (x, y, width, height int) {
	x, y, width, height = v.GetInnerRect()
	return x + axisCols, y, width - axisCols, height - axisRows
}

// Draw implements tview.Primitive.
func (v *PlotView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)

	x, y, width, height := v.plotArea()
	if width < minPlotWidth || height <= 0 {
		return
	}

	if w, h := v.axes.Size(); w != width || h != height {
		v.axes.SetSize(width, height)
		v.viewChanged()
	}

	c := canvas{screen: screen, x: x, y: y, width: width, height: height}
	v.drawGuides(c)
	v.drawSignal(c)
	v.drawMarkers(c)
	v.drawLabels(c)
	v.drawAxis(c)
	v.drawLegend(c)
}

// canvas maps axes screen space (origin lower left) to terminal cells.
type canvas struct {
	screen              tcell.Screen
	x, y, width, height int
}

// cell returns the terminal cell of an axes screen position.
func (c canvas) cell(sx, sy float64) (col, row int, ok bool) {
	col = int(math.Floor(sx))
	rowFromBottom := int(math.Floor(sy))
	if col < 0 || col >= c.width || rowFromBottom < 0 || rowFromBottom >= c.height {
		return 0, 0, false
	}
	return c.x + col, c.y + c.height - 1 - rowFromBottom, true
}

func (c canvas) set(col, row int, r rune, color tcell.Color) {
	c.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(color))
}

func (v *PlotView) drawGuides(c canvas) {
	color := GetTcellColor(Theme.GuideColor)
	for _, l := range v.axes.Lines() {
		if !l.Visible() || !l.Guides() {
			continue
		}
		for _, x := range l.XData() {
			sx, _ := v.axes.Transform(x, 0)
			col := int(math.Floor(sx))
			if col < 0 || col >= c.width {
				continue
			}
			for row := 0; row < c.height; row++ {
				c.set(c.x+col, c.y+row, Icons.GuideLine, color)
			}
		}
	}
}

func (v *PlotView) drawSignal(c canvas) {
	if len(v.signalX) == 0 {
		return
	}
	yMin, yMax := v.axes.YLim()
	span := yMax - yMin
	peaks := make([]float64, c.width)
	hit := make([]bool, c.width)
	for i, x := range v.signalX {
		sx, _ := v.axes.Transform(x, 0)
		col := int(math.Floor(sx))
		if col < 0 || col >= c.width {
			continue
		}
		if !hit[col] || v.signalY[i] > peaks[col] {
			peaks[col] = v.signalY[i]
			hit[col] = true
		}
	}

	color := GetTcellColor(Theme.SignalColor)
	levels := len(blockBarChars) - 1
	for col, peak := range peaks {
		if !hit[col] {
			continue
		}
		cells := (peak - yMin) / span * float64(c.height)
		if cells <= 0 {
			continue
		}
		if cells > float64(c.height) {
			cells = float64(c.height)
		}
		full := int(cells)
		for row := 0; row < full; row++ {
			c.set(c.x+col, c.y+c.height-1-row, blockBarChars[levels], color)
		}
		if part := int((cells - float64(full)) * float64(levels)); part > 0 && full < c.height {
			c.set(c.x+col, c.y+c.height-1-full, blockBarChars[part], color)
		}
	}
}

func (v *PlotView) drawMarkers(c canvas) {
	for _, l := range v.axes.Lines() {
		if !l.Visible() {
			continue
		}
		color := GetTcellColor(l.Color())
		glyph := l.Marker().Glyph()
		ys := l.YData()
		for i, x := range l.XData() {
			sx, sy := v.axes.Transform(x, ys[i])
			if col, row, ok := c.cell(sx, sy); ok {
				c.set(col, row, glyph, color)
			}
		}
	}
}

func (v *PlotView) drawLabels(c canvas) {
	for _, t := range v.axes.Texts() {
		if !t.Shown() {
			continue
		}
		x, y := t.Position()
		sx, sy := v.axes.Transform(x, y)
		switch t.VAlign {
		case plot.AnchorBottom:
			sy++
		case plot.AnchorTop:
			sy--
		}
		col, row, ok := c.cell(sx, sy)
		if !ok {
			continue
		}
		text := t.Text()
		switch t.HAlign {
		case plot.AlignCenter:
			col -= len(text) / 2
		case plot.AlignRight:
			col -= len(text) - 1
		}
		style := tcell.StyleDefault.Foreground(GetTcellColor(t.Color())).Bold(t.Bold())
		for i, r := range text {
			if cx := col + i; cx >= c.x && cx < c.x+c.width {
				c.screen.SetContent(cx, row, r, nil, style)
			}
		}
	}
}

func (v *PlotView) drawAxis(c canvas) {
	axisColor := GetTcellColor(Theme.AxisColor)
	tickColor := GetTcellColor(Theme.TickColor)
	axisRow := c.y + c.height

	for row := c.y; row < axisRow; row++ {
		c.set(c.x-1, row, Icons.AxisVLine, axisColor)
	}
	c.set(c.x-1, axisRow, Icons.AxisCorner, axisColor)
	for col := 0; col < c.width; col++ {
		c.set(c.x+col, axisRow, Icons.AxisHLine, axisColor)
	}

	for col := 0; col < c.width; col += tickSpacing {
		x, _ := v.axes.Inverse(float64(col), 0)
		c.set(c.x+col, axisRow, Icons.AxisTick, axisColor)
		label := FormatTick(x)
		tview.Print(c.screen, label, c.x+col-len(label)/2, axisRow+1, len(label), tview.AlignLeft, tickColor)
	}
}

func (v *PlotView) drawLegend(c canvas) {
	row := c.y
	for _, l := range v.axes.Legend() {
		if row >= c.y+c.height {
			return
		}
		text := string(l.Marker().Glyph()) + " " + l.Label()
		col := c.x + c.width - len([]rune(text)) - 1
		if col < c.x {
			col = c.x
		}
		tview.Print(c.screen, text, col, row, c.width, tview.AlignLeft, GetTcellColor(l.Color()))
		row++
	}
}

// FormatTick renders an axis value with at most 4 significant digits.
func FormatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// InputHandler implements tview.Primitive: +/- zoom, arrows pan, r resets.
func (v *PlotView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft:
			v.axes.Pan(-panStep)
		case tcell.KeyRight:
			v.axes.Pan(panStep)
		case tcell.KeyRune:
			switch event.Rune() {
			case '+', '=':
				v.axes.Zoom(zoomStep)
			case '-', '_':
				v.axes.Zoom(1 / zoomStep)
			case 'r', 'R':
				v.axes.Reset()
			default:
				return
			}
		default:
			return
		}
		v.viewChanged()
	})
}
