package ui

// FooterContext defines the interface for footer content providers
type FooterContext interface {
	GetItems() []FooterItem
}

// PlotContext provides footer items while the plot has focus.
type PlotContext struct{}

// GetItems returns the zoom and pan shortcuts.
func (PlotContext) GetItems() []FooterItem {
	return []FooterItem{
		{Key: "[+/-]", Action: "zoom"},
		{Key: "[←/→]", Action: "pan"},
		{Key: "[r]", Action: "reset"},
		{Key: "[Tab]", Action: "elements"},
		{Key: "[ESC | Ctrl+C]", Action: "quit"},
	}
}

// ElementsContext provides footer items while the element panel has focus.
type ElementsContext struct {
	Editing bool // true while a form field has focus
}

// GetItems returns shortcuts based on whether a field is being edited.
func (c ElementsContext) GetItems() []FooterItem {
	if c.Editing {
		return []FooterItem{
			{Key: "[Enter]", Action: "next field"},
			{Key: "[Tab]", Action: "next"},
			{Key: "[ESC]", Action: "plot"},
		}
	}
	return []FooterItem{
		{Key: "[↑/↓ | Tab]", Action: "navigate"},
		{Key: "[Space | Enter]", Action: "toggle"},
		{Key: "[ESC]", Action: "plot"},
		{Key: "[Ctrl+C]", Action: "quit"},
	}
}
