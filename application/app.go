package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"k8s.io/klog/v2"

	"github.com/vladimirvivien/csdview/binding"
	"github.com/vladimirvivien/csdview/config"
	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/indicator"
	"github.com/vladimirvivien/csdview/plot"
	"github.com/vladimirvivien/csdview/registry"
	"github.com/vladimirvivien/csdview/ui"
)

const (
	mainPage  = "main"
	toastPage = "toast"

	fitMargin   = 0.05
	homeHeadway = 1.1
	panelWidth  = 44
)

// Application wires the plot, the indicator overlay, the custom element
// registry and the element panel into one tview application.
type Application struct {
	cfg      *config.Config
	elements config.ElementList

	tviewApp *tview.Application
	pages    *tview.Pages
	header   *tview.TextView
	footer   *ui.Footer
	plotView *ui.PlotView
	panel    *ui.ElementPanel
	focus    *FocusRing

	axes       *plot.Axes
	set        *indicator.Set
	registry   *registry.Registry
	visibility map[element.Element]*binding.Bool

	toastOpen bool
	refreshQ  chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// New builds the application. The persistent and variable elements of
// elements get an indicator each, all hidden.
func New(cfg *config.Config, elements config.ElementList) (*Application, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	app := &Application{
		cfg:      cfg,
		elements: elements,
		tviewApp: tview.NewApplication(),
		refreshQ: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}

	if err := app.setupPlot(); err != nil {
		return nil, err
	}
	app.setupPanels()
	app.layout()
	app.tviewApp.SetInputCapture(app.handleKey)

	// setup refresh queue
	go func() {
		for {
			select {
			case <-app.refreshQ:
				app.tviewApp.Draw()
			case <-app.stopCh:
				return
			}
		}
	}()

	return app, nil
}

func (app *Application) setupPlot() error {
	app.axes = plot.NewAxes(1, 1)
	app.set = indicator.NewSet(app.axes,
		indicator.WithPalettePolicy(app.cfg.Policy()),
		indicator.WithMarkerHeight(app.cfg.MarkerHeight),
		indicator.WithGuides(binding.NewBool(app.cfg.ShowLines)),
	)

	all := app.elements.All()
	app.visibility = make(map[element.Element]*binding.Bool, len(all))
	entries := make([]indicator.Entry, len(all))
	for i, e := range all {
		flag := binding.NewBool(false)
		app.visibility[e] = flag
		entries[i] = indicator.Entry{Element: e, Plotted: flag}
	}
	if _, err := app.set.AddElementIndicators(entries); err != nil {
		return fmt.Errorf("built-in element indicators: %w", err)
	}

	app.plotView = ui.NewPlotView(app.axes).SetViewChangedFunc(app.set.Update)
	if app.cfg.Demo {
		xs, ys := DemoSignal(all)
		app.plotView.SetSignal(xs, ys)
		if err := app.axes.Fit(xs, ys, fitMargin); err != nil {
			return fmt.Errorf("demo signal: %w", err)
		}
	} else if err := app.axes.SetHome(plot.Limits{Min: 0, Max: homeMax(all)}, plot.Limits{Min: 0, Max: 1}); err != nil {
		return fmt.Errorf("plot limits: %w", err)
	}

	// every overlay update ends with a redraw request
	app.axes.SetRedrawFunc(func() {
		app.updateStatus()
		app.Refresh()
	})
	return nil
}

// homeMax returns the upper x limit that shows the charge state 1 marker
// of every element.
func homeMax(elements []element.Element) float64 {
	max := 0.0
	for _, e := range elements {
		if e.AtomicWeight > max {
			max = e.AtomicWeight
		}
	}
	if max == 0 {
		return 1
	}
	return max * homeHeadway
}

func (app *Application) setupPanels() {
	app.panel = ui.NewElementPanel(ui.ElementPanelConfig{
		Persistent: app.elements.Persistent,
		Variable:   app.elements.Variable,
		Visibility: app.visibility,
		ShowLines:  app.set.Guides(),
		Update:     app.set.Update,
		Focus:      app.focusPrimitive,
		ShowError:  app.showError,
	})
	app.registry = registry.New(app.set, app.elements.All(), app.panel, registry.WithColumns(app.cfg.Columns))
	app.panel.SetRegistry(app.registry)

	app.footer = ui.NewFooter()
	app.focus = NewFocusRing()
	app.focus.Add(PanelPlot, app.plotView, ui.PlotContext{}, func() {
		app.focusPrimitive(app.plotView)
	})
	app.focus.Add(PanelElements, app.panel, ui.ElementsContext{}, app.panel.Focus)
}

func (app *Application) layout() {
	app.header = tview.NewTextView().SetDynamicColors(true)
	app.header.SetBorder(true)
	app.setHeader()

	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(app.plotView, 0, 1, true).
		AddItem(app.panel.GetView(), panelWidth, 0, false)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.header, 3, 1, false).          // header
		AddItem(body, 0, 1, true).                 // body
		AddItem(app.footer.GetView(), 3, 1, false) // footer

	app.pages = tview.NewPages().AddPage(mainPage, content, true, true)
	app.tviewApp.SetRoot(app.pages, true)
	app.focus.Select(PanelPlot)
}

func (app *Application) setHeader() {
	title := ui.FormatTag(ui.Theme.TitleColor, "")
	sub := ui.FormatTag(ui.Theme.SubtitleColor, "")
	value := ui.FormatTag(ui.Theme.HeaderForeground, "")
	app.header.SetText(fmt.Sprintf(
		"%s %scsdview %spersistent: %s%d %svariable: %s%d %spalette: %s%s",
		ui.Icons.Atom, title,
		sub, value, len(app.elements.Persistent),
		sub, value, len(app.elements.Variable),
		sub, value, app.cfg.PalettePolicy,
	))
}

func (app *Application) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if app.toastOpen {
		return event
	}
	switch event.Key() {
	case tcell.KeyCtrlC:
		app.Stop()
		return nil
	case tcell.KeyEsc:
		if app.focus.Current() == PanelElements {
			app.focus.Select(PanelPlot)
			return nil
		}
		app.Stop()
		return nil
	case tcell.KeyTab:
		if app.focus.Current() == PanelPlot {
			app.focus.Select(PanelElements)
			return nil
		}
	}
	return event
}

// focusPrimitive moves tview focus and refreshes the footer shortcuts.
func (app *Application) focusPrimitive(p tview.Primitive) {
	app.tviewApp.SetFocus(p)
	app.refreshFooter()
}

func (app *Application) refreshFooter() {
	ctx := app.focus.Footer()
	if _, ok := ctx.(ui.ElementsContext); ok {
		ctx = ui.ElementsContext{Editing: app.panel.Editing()}
	}
	app.footer.SetContext(ctx)
}

// updateStatus lists the plotted elements with a marker in the x range.
func (app *Application) updateStatus() {
	min, max := app.axes.XLim()
	visible := app.set.VisibleIn(min, max)
	names := make([]string, len(visible))
	for i, e := range visible {
		names[i] = e.String()
	}
	status := "none"
	if len(names) > 0 {
		status = strings.Join(names, ", ")
	}
	app.footer.SetStatus(fmt.Sprintf("%sin view:[white] %s", ui.FormatTag(ui.Theme.StatusColor, ""), status))
}

func (app *Application) showError(err error) {
	klog.V(2).InfoS("Custom element input rejected", "error", err)
	prev := app.tviewApp.GetFocus()
	toast := ui.NewErrorToast(err, func() {
		app.pages.RemovePage(toastPage)
		app.toastOpen = false
		if prev != nil {
			app.tviewApp.SetFocus(prev)
		}
	})
	app.toastOpen = true
	app.pages.AddPage(toastPage, toast, true, true)
	app.tviewApp.SetFocus(toast)
}

// Refresh requests a redraw. It does not block.
func (app *Application) Refresh() {
	select {
	case app.refreshQ <- struct{}{}:
	default:
	}
}

// Axes returns the plot axes.
func (app *Application) Axes() *plot.Axes {
	return app.axes
}

// Set returns the indicator overlay.
func (app *Application) Set() *indicator.Set {
	return app.set
}

// Registry returns the custom element registry.
func (app *Application) Registry() *registry.Registry {
	return app.registry
}

// Footer returns the footer.
func (app *Application) Footer() *ui.Footer {
	return app.footer
}

// GetStopChan returns a channel closed by Stop.
func (app *Application) GetStopChan() <-chan struct{} {
	return app.stopCh
}

// Run draws the overlay once and runs the event loop until Stop is called
// or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if app.tviewApp == nil {
		return errors.New("failed to start, tview.Application nil")
	}
	go func() {
		select {
		case <-ctx.Done():
			app.Stop()
		case <-app.stopCh:
		}
	}()

	app.set.Update()
	klog.InfoS("Starting csdview",
		"persistent", len(app.elements.Persistent),
		"variable", len(app.elements.Variable),
		"palettePolicy", app.cfg.PalettePolicy,
		"demo", app.cfg.Demo,
	)
	return app.tviewApp.Run()
}

// Stop ends the event loop. Calling it more than once is safe.
func (app *Application) Stop() error {
	if app.tviewApp == nil {
		return errors.New("failed to stop, tview.Application nil")
	}
	app.stopOnce.Do(func() {
		app.tviewApp.Stop()
		close(app.stopCh)
		klog.InfoS("csdview finished")
	})
	return nil
}
