package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ToastLevel defines the severity level of a toast notification
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// ToastCallback is called when a button is pressed on the toast.
// buttonLabel is empty when the toast is dismissed with ESC.
type ToastCallback func(buttonLabel string)

// NewToast creates a styled tview.Modal for toast notifications (no buttons)
func NewToast(message string, level ToastLevel) *tview.Modal {
	icon, color := getIconAndColor(level)

	return tview.NewModal().
		SetText(fmt.Sprintf("%s %s", icon, message)).
		SetBackgroundColor(color)
}

// NewToastWithButtons creates a modal toast with buttons.
// The callback is called with the button label when any button is pressed;
// ESC calls it with an empty label.
func NewToastWithButtons(message string, level ToastLevel, buttons []string, callback ToastCallback) *tview.Modal {
	modal := NewToast(message, level).
		AddButtons(buttons).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if callback != nil {
				callback(buttonLabel)
			}
		})

	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			if callback != nil {
				callback("")
			}
			return nil
		}
		return event
	})

	return modal
}

// NewErrorToast creates the error popup shown when a custom element is
// rejected. The single "Ok" button calls dismiss.
func NewErrorToast(err error, dismiss func()) *tview.Modal {
	return NewToastWithButtons(
		fmt.Sprintf("Error with custom element input: %s", ErrorMessage(err)),
		ToastError,
		[]string{"Ok"},
		func(string) {
			if dismiss != nil {
				dismiss()
			}
		},
	)
}

func getIconAndColor(level ToastLevel) (string, tcell.Color) {
	switch level {
	case ToastSuccess:
		return Icons.Success, tcell.ColorDarkGreen
	case ToastError:
		return Icons.Error, tcell.ColorDarkRed
	case ToastWarning:
		return Icons.Warning, tcell.ColorDarkOrange
	default: // ToastInfo
		return Icons.Info, tcell.ColorDarkBlue
	}
}
