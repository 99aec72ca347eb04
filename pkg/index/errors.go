package index

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpression reports an index expression that violates the grammar.
	ErrInvalidExpression = errors.New("invalid index expression")
	// ErrInvalidIndex reports a selector that evaluates to the literal 0.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrIndexOutOfRange reports a selector outside the bounds of its axis.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Axis names one of the two dimensions of a table.
type Axis int

const (
	Rows Axis = iota
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "row"
	case Columns:
		return "column"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MarshalText encodes the axis by name.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an axis name written by MarshalText.
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row":
		*a = Rows
	case "column":
		*a = Columns
	default:
		return fmt.Errorf("unknown axis %q", text)
	}
	return nil
}

// ExpressionError describes where an expression stopped making sense.
type ExpressionError struct {
	Axis   Axis
	Col    int // 1-based column in the whole expression, 0 if unknown
	Text   string
	Reason string
}

func (e *ExpressionError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%s: %s axis, column %d: %s", ErrInvalidExpression, e.Axis, e.Col, e.Reason)
	}
	return fmt.Sprintf("%s: %s axis: %s", ErrInvalidExpression, e.Axis, e.Reason)
}

func (e *ExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

// IndexError reports a signed index that could not be turned into an offset.
type IndexError struct {
	Axis  Axis
	Index int
	Len   int
	Err   error // ErrInvalidIndex or ErrIndexOutOfRange
}

func (e *IndexError) Error() string {
	if errors.Is(e.Err, ErrInvalidIndex) {
		return fmt.Sprintf("%s: %s index 0 (indices start at 1, or -1 for the last %s)", e.Err, e.Axis, e.Axis)
	}
	return fmt.Sprintf("%s: %s index %d (valid: %s)", e.Err, e.Axis, e.Index, validRange(e.Len))
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// RangeError reports a range whose lower bound lies after its upper bound.
type RangeError struct {
	Axis     Axis
	Selector Selector
	Lo, Hi   int // resolved zero-based offsets
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s range %s is reversed (resolves to %d..%d)", ErrIndexOutOfRange, e.Axis, e.Selector, e.Lo+1, e.Hi+1)
}

func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

func validRange(n int) string {
	if n <= 0 {
		return "none, axis is empty"
	}
	return fmt.Sprintf("1..%d or -%d..-1", n, n)
}
