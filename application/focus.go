package application

import (
	"github.com/vladimirvivien/csdview/ui"
)

// PanelType identifies a focusable panel of the main layout.
type PanelType string

const (
	PanelPlot     PanelType = "plot"
	PanelElements PanelType = "elements"
)

// focusable shows focus with a border color change.
type focusable interface {
	SetFocused(focused bool)
}

// focusPanel is one entry of the focus ring.
type focusPanel struct {
	panelType PanelType
	panel     focusable
	footer    ui.FooterContext
	// enter moves tview focus into the panel
	enter func()
}

// FocusRing cycles focus across the panels of the main layout in order.
type FocusRing struct {
	panels  []focusPanel
	current int
}

// NewFocusRing creates an empty ring.
func NewFocusRing() *FocusRing {
	return &FocusRing{}
}

// Add appends a panel to the ring.
func (r *FocusRing) Add(t PanelType, panel focusable, footer ui.FooterContext, enter func()) {
	r.panels = append(r.panels, focusPanel{panelType: t, panel: panel, footer: footer, enter: enter})
}

// Current returns the focused panel type, or "" for an empty ring.
func (r *FocusRing) Current() PanelType {
	if len(r.panels) == 0 {
		return ""
	}
	return r.panels[r.current].panelType
}

// Footer returns the footer context of the focused panel.
func (r *FocusRing) Footer() ui.FooterContext {
	if len(r.panels) == 0 {
		return nil
	}
	return r.panels[r.current].footer
}

// Next focuses the following panel, wrapping at the end.
func (r *FocusRing) Next() *focusPanel {
	if len(r.panels) == 0 {
		return nil
	}
	return r.focus((r.current + 1) % len(r.panels))
}

// Select focuses the panel of type t. It returns nil if t is not in the ring.
func (r *FocusRing) Select(t PanelType) *focusPanel {
	for i, p := range r.panels {
		if p.panelType == t {
			return r.focus(i)
		}
	}
	return nil
}

func (r *FocusRing) focus(i int) *focusPanel {
	r.current = i
	for j := range r.panels {
		r.panels[j].panel.SetFocused(j == i)
	}
	p := &r.panels[i]
	if p.enter != nil {
		p.enter()
	}
	return p
}

// Len returns the number of panels.
func (r *FocusRing) Len() int {
	return len(r.panels)
}
