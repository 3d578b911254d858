package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme contains the color constants of the viewer UI.
var Theme = struct {
	// Header colors
	HeaderBackground string
	HeaderForeground string
	TitleColor       string
	SubtitleColor    string

	// Border colors
	FocusBorderColor   string
	UnfocusBorderColor string

	// Plot colors
	AxisColor      string
	TickColor      string
	SignalColor    string
	GuideColor     string
	LegendColor    string
	StatusColor    string
	PlotBackground string

	// Form colors
	FieldBackground  string
	ButtonBackground string
	ButtonForeground string
}{
	HeaderBackground: "darkgreen",
	HeaderForeground: "white",
	TitleColor:       "yellow",
	SubtitleColor:    "cyan",

	FocusBorderColor:   "yellow",
	UnfocusBorderColor: "white",

	AxisColor:      "gray",
	TickColor:      "white",
	SignalColor:    "olivedrab",
	GuideColor:     "gray",
	LegendColor:    "white",
	StatusColor:    "cyan",
	PlotBackground: "black",

	FieldBackground:  "blue",
	ButtonBackground: "olivedrab",
	ButtonForeground: "white",
}

// FormatTag returns a tview color tag for the given colors, e.g. "[yellow:blue]".
func FormatTag(foreground, background string) string {
	if background == "" {
		return "[" + foreground + "]"
	}
	return "[" + foreground + ":" + background + "]"
}

// GetTcellColor converts a theme color string to tcell.Color. Besides the
// theme names it accepts any name or "#rrggbb" value tcell knows.
func GetTcellColor(color string) tcell.Color {
	switch color {
	case "green":
		return tcell.ColorGreen
	case "olivedrab":
		return tcell.ColorOliveDrab
	case "red":
		return tcell.ColorRed
	case "yellow":
		return tcell.ColorYellow
	case "cyan":
		return tcell.ColorDarkCyan
	case "gray":
		return tcell.ColorGray
	case "white":
		return tcell.ColorWhite
	}
	if c := tcell.GetColor(strings.ToLower(color)); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorYellow
}
