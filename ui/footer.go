package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// FooterItem represents a single keyboard shortcut in the footer
type FooterItem struct {
	Key    string // e.g., "Tab", "ESC", "←/→"
	Action string // e.g., "next", "quit", "pan"
}

// Footer creates and manages the navigation footer. It shows the keyboard
// shortcuts of the focused panel and a status line.
type Footer struct {
	root    *tview.Flex     // Bordered container
	view    *tview.TextView // Shortcut text
	status  *tview.TextView // Status text
	context FooterContext
}

// NewFooter creates a new footer component with border
func NewFooter() *Footer {
	f := &Footer{
		root:   tview.NewFlex(),
		view:   tview.NewTextView(),
		status: tview.NewTextView(),
	}
	f.view.SetDynamicColors(true)
	f.view.SetTextAlign(tview.AlignCenter)
	f.status.SetDynamicColors(true)
	f.status.SetTextAlign(tview.AlignLeft)

	f.root.SetBorder(true)
	f.root.AddItem(f.status, 0, 1, false)
	f.root.AddItem(f.view, 0, 2, false)

	return f
}

// GetView returns the underlying tview primitive (bordered container)
func (f *Footer) GetView() tview.Primitive {
	return f.root
}

// SetContext updates the footer with new context and re-renders
func (f *Footer) SetContext(ctx FooterContext) {
	f.context = ctx
	f.render()
}

// SetStatus replaces the status text.
func (f *Footer) SetStatus(status string) {
	f.status.SetText(status)
}

// Status returns the status text without color tags.
func (f *Footer) Status() string {
	return f.status.GetText(true)
}

// Text returns the rendered shortcut text.
func (f *Footer) Text() string {
	return f.view.GetText(false)
}

// render updates the footer text based on current context
func (f *Footer) render() {
	if f.context == nil {
		f.view.SetText("")
		return
	}

	items := f.context.GetItems()
	var parts []string
	for _, item := range items {
		// Escape the key to prevent tview from interpreting brackets as color tags
		escapedKey := tview.Escape(item.Key)
		parts = append(parts, FormatShortcut(escapedKey, item.Action))
	}
	f.view.SetText(strings.Join(parts, " • "))
}

// FormatShortcut formats a single shortcut for display
func FormatShortcut(key, action string) string {
	return fmt.Sprintf("[yellow]%s[-] [white]%s[-]", key, action)
}
