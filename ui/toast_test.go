package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/registry"
)

func TestNewToast(t *testing.T) {
	tests := []struct {
		name    string
		message string
		level   ToastLevel
	}{
		{name: "Info toast", message: "Loaded elements.yaml", level: ToastInfo},
		{name: "Success toast", message: "Element added", level: ToastSuccess},
		{name: "Warning toast", message: "No signal loaded", level: ToastWarning},
		{name: "Error toast", message: "Invalid mass", level: ToastError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if toast := NewToast(tt.message, tt.level); toast == nil {
				t.Fatal("NewToast returned nil")
			}
		})
	}
}

func TestGetIconAndColor(t *testing.T) {
	tests := []struct {
		level         ToastLevel
		expectedIcon  string
		expectedColor tcell.Color
	}{
		{ToastInfo, "ℹ", tcell.ColorDarkBlue},
		{ToastSuccess, "✓", tcell.ColorDarkGreen},
		{ToastWarning, "⚠", tcell.ColorDarkOrange},
		{ToastError, "✗", tcell.ColorDarkRed},
	}

	for _, tt := range tests {
		t.Run(tt.expectedIcon, func(t *testing.T) {
			icon, color := getIconAndColor(tt.level)
			if icon != tt.expectedIcon {
				t.Errorf("Expected icon %q, got %q", tt.expectedIcon, icon)
			}
			if color != tt.expectedColor {
				t.Errorf("Expected color %v, got %v", tt.expectedColor, color)
			}
		})
	}
}

func TestToastWithButtons_Escape(t *testing.T) {
	var got []string
	toast := NewToastWithButtons("Remove all?", ToastWarning, []string{"Yes", "No"}, func(label string) {
		got = append(got, label)
	})

	toast.InputHandler()(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), func(p tview.Primitive) {})

	if len(got) != 1 || got[0] != "" {
		t.Errorf("Expected one callback with empty label, got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	xe := element.New("Xe", "Xe", 131, 54)
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error",
			err:      &registry.ValidationError{Code: registry.CodeDuplicateCustom, Message: "Element already included as a custom element", Element: xe},
			expected: "Element already included as a custom element",
		},
		{
			name:     "wrapped validation error",
			err:      fmt.Errorf("add: %w", &registry.ValidationError{Code: registry.CodeInvalidChargeState, Message: "Element atomic number must not exceed atomic weight", Element: xe}),
			expected: "Element atomic number must not exceed atomic weight",
		},
		{
			name:     "other error",
			err:      errors.New("mass: invalid number"),
			expected: "mass: invalid number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewErrorToast_Dismiss(t *testing.T) {
	dismissed := 0
	toast := NewErrorToast(errors.New("bad input"), func() { dismissed++ })
	if toast == nil {
		t.Fatal("NewErrorToast returned nil")
	}

	toast.InputHandler()(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), func(p tview.Primitive) {})

	if dismissed != 1 {
		t.Errorf("Expected dismiss to run once, got %d", dismissed)
	}
}
