package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vladimirvivien/csdview/binding"
	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/registry"
)

// ElementPanel hosts the element toggles: the "show lines" option, one
// checkbox per persistent and variable element, the custom element form,
// the custom element toggle grid and the "Clear all" button.
//
// ElementPanel is the registry's ControlFactory: every custom element gets
// a checkbox placed in the grid slot the registry assigns.
type ElementPanel struct {
	root *tview.Flex

	showLines *tview.Checkbox
	builtins  []*tview.Checkbox
	symbol    *tview.InputField
	mass      *tview.InputField
	number    *tview.InputField
	add       *tview.Button
	clear     *tview.Button
	grid      *tview.Grid
	gridRows  int
	customs   []*customControl

	registry  *registry.Registry
	update    func()
	focus     func(p tview.Primitive)
	showError func(err error)
}

// ElementPanelConfig carries what the panel binds to.
type ElementPanelConfig struct {
	Persistent []element.Element
	Variable   []element.Element
	// Visibility holds the cell of every persistent and variable element.
	Visibility map[element.Element]*binding.Bool
	ShowLines  *binding.Bool
	// Update runs the overlay redraw cycle after a toggle.
	Update func()
	// Focus moves application focus.
	Focus func(p tview.Primitive)
	// ShowError reports rejected input.
	ShowError func(err error)
}

// NewElementPanel builds the panel. The registry is attached later with
// SetRegistry because the registry needs the panel as its ControlFactory.
func NewElementPanel(cfg ElementPanelConfig) *ElementPanel {
	p := &ElementPanel{
		update:    cfg.Update,
		focus:     cfg.Focus,
		showError: cfg.ShowError,
	}
	p.layout(cfg)
	return p
}

// SetRegistry attaches the custom element registry driven by the form.
func (p *ElementPanel) SetRegistry(r *registry.Registry) {
	p.registry = r
}

// GetView returns the root primitive.
func (p *ElementPanel) GetView() tview.Primitive {
	return p.root
}

// SetFocused implements FocusablePanel.
func (p *ElementPanel) SetFocused(focused bool) {
	SetBoxFocused(p.root.Box, focused)
}

// Focus gives focus to the first control of the panel.
func (p *ElementPanel) Focus() {
	if p.focus != nil {
		p.focus(p.showLines)
	}
}

// Editing reports whether one of the form fields has focus.
func (p *ElementPanel) Editing() bool {
	return p.symbol.HasFocus() || p.mass.HasFocus() || p.number.HasFocus()
}

func (p *ElementPanel) layout(cfg ElementPanelConfig) {
	p.root = tview.NewFlex().SetDirection(tview.FlexRow)
	p.root.SetBorder(true)
	p.root.SetTitle(" " + Icons.Atom + " Element M/Q indicators ")
	p.root.SetTitleColor(GetTcellColor(Theme.TitleColor))

	p.showLines = tview.NewCheckbox().SetLabel("Show lines ")
	showLines := cfg.ShowLines
	if showLines == nil {
		showLines = binding.NewBool(false)
	}
	bindCheckbox(p.showLines, showLines, p.changed)

	builtins := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(p.elementColumn("Persistent", cfg.Persistent, cfg.Visibility), 0, 1, false).
		AddItem(p.elementColumn("Variable", cfg.Variable, cfg.Visibility), 0, 1, false)
	builtinRows := len(cfg.Persistent)
	if len(cfg.Variable) > builtinRows {
		builtinRows = len(cfg.Variable)
	}

	p.symbol = newField("Symbol: ")
	p.mass = newField("Mass: ")
	p.number = newField("Number: ")
	p.add = newButton("Add", p.addCustom)
	form := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(p.symbol, 0, 1, false).
		AddItem(p.mass, 0, 1, false).
		AddItem(p.number, 0, 1, false).
		AddItem(p.add, 5, 0, false)

	p.grid = tview.NewGrid()
	p.clear = newButton("Clear all", p.clearCustom)

	p.root.
		AddItem(subtitle("Display options"), 1, 0, false).
		AddItem(p.showLines, 1, 0, false).
		AddItem(builtins, builtinRows+1, 0, false).
		AddItem(subtitle("Custom Elements"), 1, 0, false).
		AddItem(form, 1, 0, false).
		AddItem(p.grid, 0, 1, false).
		AddItem(p.clear, 1, 0, false)

	p.root.SetInputCapture(p.navigate)
}

func (p *ElementPanel) elementColumn(title string, elements []element.Element, visibility map[element.Element]*binding.Bool) tview.Primitive {
	col := tview.NewFlex().SetDirection(tview.FlexRow)
	col.AddItem(subtitle(title), 1, 0, false)
	for _, e := range element.SortedByNumber(elements) {
		flag, ok := visibility[e]
		if !ok {
			continue
		}
		cb := tview.NewCheckbox().SetLabel(e.String() + " ")
		bindCheckbox(cb, flag, p.changed)
		p.builtins = append(p.builtins, cb)
		col.AddItem(cb, 1, 0, false)
	}
	return col
}

func subtitle(text string) *tview.TextView {
	return tview.NewTextView().
		SetText(text).
		SetTextColor(GetTcellColor(Theme.SubtitleColor))
}

func newField(label string) *tview.InputField {
	return tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(5).
		SetFieldBackgroundColor(GetTcellColor(Theme.FieldBackground))
}

func newButton(label string, selected func()) *tview.Button {
	b := tview.NewButton(label).SetSelectedFunc(selected)
	b.SetBackgroundColor(GetTcellColor(Theme.ButtonBackground))
	b.SetLabelColor(GetTcellColor(Theme.ButtonForeground))
	return b
}

// bindCheckbox keeps a checkbox and a visibility cell in step in both
// directions. changed runs after every user toggle.
func bindCheckbox(cb *tview.Checkbox, flag *binding.Bool, changed func()) (cancel func()) {
	cb.SetChecked(flag.Get())
	cb.SetChangedFunc(func(checked bool) {
		flag.Set(checked)
		if changed != nil {
			changed()
		}
	})
	return flag.Subscribe(func(v bool) {
		if cb.IsChecked() != v {
			cb.SetChecked(v)
		}
	})
}

func (p *ElementPanel) changed() {
	if p.update != nil {
		p.update()
	}
}

// focusables lists the controls in navigation order.
func (p *ElementPanel) focusables() []tview.Primitive {
	items := []tview.Primitive{p.showLines}
	for _, cb := range p.builtins {
		items = append(items, cb)
	}
	items = append(items, p.symbol, p.mass, p.number, p.add)
	for _, c := range p.customs {
		items = append(items, c.checkbox)
	}
	return append(items, p.clear)
}

func (p *ElementPanel) navigate(event *tcell.EventKey) *tcell.EventKey {
	step := 0
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		step = 1
	case tcell.KeyBacktab, tcell.KeyUp:
		step = -1
	case tcell.KeyEnter:
		if p.Editing() {
			step = 1
		}
	}
	if step == 0 || p.focus == nil {
		return event
	}

	items := p.focusables()
	current := 0
	for i, item := range items {
		if item.HasFocus() {
			current = i
			break
		}
	}
	next := (current + step + len(items)) % len(items)
	p.focus(items[next])
	return nil
}

func (p *ElementPanel) addCustom() {
	e, err := element.Parse(p.symbol.GetText(), p.mass.GetText(), p.number.GetText())
	if err != nil {
		p.reportError(err)
		return
	}
	if p.registry == nil {
		return
	}
	if _, err := p.registry.AddElement(e); err != nil {
		p.reportError(err)
	}
}

func (p *ElementPanel) clearCustom() {
	if p.registry != nil {
		p.registry.RemoveAllElements()
	}
}

func (p *ElementPanel) reportError(err error) {
	if p.showError != nil {
		p.showError(err)
	}
}

// NewControl implements registry.ControlFactory.
func (p *ElementPanel) NewControl(e element.Element, slot registry.Slot, plotted *binding.Bool) registry.Control {
	cb := tview.NewCheckbox().SetLabel(e.String() + " ")
	c := &customControl{panel: p, checkbox: cb}
	c.cancel = bindCheckbox(cb, plotted, p.changed)

	if slot.Row+1 > p.gridRows {
		p.gridRows = slot.Row + 1
		rows := make([]int, p.gridRows)
		for i := range rows {
			rows[i] = 1
		}
		p.grid.SetRows(rows...)
	}
	p.grid.AddItem(cb, slot.Row, slot.Column, 1, 1, 0, 0, false)
	p.customs = append(p.customs, c)
	return c
}

// CustomControls returns the number of custom element toggles on display.
func (p *ElementPanel) CustomControls() int {
	return len(p.customs)
}

type customControl struct {
	panel    *ElementPanel
	checkbox *tview.Checkbox
	cancel   func()
}

// Release removes the checkbox from the grid and unbinds it.
func (c *customControl) Release() {
	c.cancel()
	p := c.panel
	p.grid.RemoveItem(c.checkbox)
	for i, other := range p.customs {
		if other == c {
			p.customs = append(p.customs[:i], p.customs[i+1:]...)
			break
		}
	}
	if len(p.customs) == 0 {
		p.gridRows = 0
		p.grid.SetRows()
	}
}

// ErrorMessage returns the user-facing text of an input error.
func ErrorMessage(err error) string {
	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
