package mathbox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a surface would have a zero, negative
	// or oversized dimension.
	ErrInvalidSize = errors.New("mathbox: invalid surface size")

	// ErrInvalidFontSize is returned when planning at a font size that is not
	// a positive finite number.
	ErrInvalidFontSize = errors.New("mathbox: font size must be positive and finite")

	// ErrNilNode is returned when the tree contains a nil node.
	ErrNilNode = errors.New("mathbox: nil node")
)

// MeasureError reports a leaf the TextMeasurer could not measure.
type MeasureError struct {
	Text string
	Size float64
	Err  error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("mathbox: measure %q at size %g: %v", e.Text, e.Size, e.Err)
}

// Unwrap returns the measurer's error.
func (e *MeasureError) Unwrap() error {
	return e.Err
}
