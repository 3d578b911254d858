package registry

import (
	"fmt"

	"github.com/vladimirvivien/csdview/element"
)

// Code is a machine-readable validation failure.
type Code string

const (
	// CodeDuplicateBuiltin: the species is already a persistent or variable element.
	CodeDuplicateBuiltin Code = "DUPLICATE_BUILTIN"
	// CodeDuplicateCustom: the species was already added as a custom element.
	CodeDuplicateCustom Code = "DUPLICATE_CUSTOM"
	// CodeInvalidChargeState: the atomic number exceeds the atomic weight.
	CodeInvalidChargeState Code = "INVALID_CHARGE_STATE"
	// CodeInvalidElement: the atomic weight or number is not a positive finite value.
	CodeInvalidElement Code = "INVALID_ELEMENT"
)

var messages = map[Code]string{
	CodeDuplicateBuiltin:   "Element already included in Persistent/Variable element list",
	CodeDuplicateCustom:    "Element already included as a custom element",
	CodeInvalidChargeState: "Element atomic number must not exceed atomic weight",
	CodeInvalidElement:     "Element atomic weight and atomic number must be positive finite numbers",
}

// ValidationError reports why a candidate custom element was rejected.
// Cause holds the failed element check for CodeInvalidElement.
type ValidationError struct {
	Code    Code
	Message string
	Element element.Element
	Cause   error
}

func newValidationError(code Code, e element.Element) *ValidationError {
	return &ValidationError{Code: code, Message: messages[code], Element: e}
}

// Unwrap returns Cause.
func (e *ValidationError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("custom element %s: %s", e.Element, e.Message)
}

// Is matches another *ValidationError by code.
func (e *ValidationError) Is(target error) bool {
	if t, ok := target.(*ValidationError); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrDuplicateBuiltin   = &ValidationError{Code: CodeDuplicateBuiltin}
	ErrDuplicateCustom    = &ValidationError{Code: CodeDuplicateCustom}
	ErrInvalidChargeState = &ValidationError{Code: CodeInvalidChargeState}
	ErrInvalidElement     = &ValidationError{Code: CodeInvalidElement}
)
