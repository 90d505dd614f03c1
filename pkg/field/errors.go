package field

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

var (
	// ErrCounter reports a counter outside 1–25 or with non-digit content.
	ErrCounter = &ValidationError{Field: "counter", Msg: "Лічильник: 1–25."}

	// ErrCoordinates reports an easting or northing that is not five digits.
	ErrCoordinates = &ValidationError{Field: "coordinates", Msg: "Координати: 2 групи по 5 цифр."}
)

// ValidationError is a form field problem shown next to the field. It blocks
// report generation and never leaves partial state behind.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
