package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FocusablePanel is implemented by panels that show focus with a border
// color change.
type FocusablePanel interface {
	tview.Primitive
	// SetFocused updates the panel's visual state for focus
	SetFocused(focused bool)
}

// SetBoxFocused applies focus styling to a tview.Box (or any type that embeds it)
// Focused: yellow border color
// Unfocused: white border color
func SetBoxFocused(box *tview.Box, focused bool) {
	if box == nil {
		return
	}
	if focused {
		box.SetBorderColor(FocusBorderColor())
	} else {
		box.SetBorderColor(UnfocusBorderColor())
	}
}

// FocusBorderColor returns the tcell color for focused panels
func FocusBorderColor() tcell.Color {
	return GetTcellColor(Theme.FocusBorderColor)
}

// UnfocusBorderColor returns the tcell color for unfocused panels
func UnfocusBorderColor() tcell.Color {
	return GetTcellColor(Theme.UnfocusBorderColor)
}
