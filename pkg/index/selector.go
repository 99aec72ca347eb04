package index

import (
	"strconv"
	"strings"
)

// Limit is one edge of a range: a signed index or no bound at all.
type Limit struct {
	Bounded bool
	Index   int
}

// Bounded returns a limit at the signed index n.
func Bounded(n int) Limit {
	return Limit{Bounded: true, Index: n}
}

// Unbounded returns an open range edge.
func Unbounded() Limit {
	return Limit{}
}

func (l Limit) String() string {
	if !l.Bounded {
		return ""
	}
	return strconv.Itoa(l.Index)
}

// SelectorKind discriminates the variants of Selector.
type SelectorKind int

const (
	SingleSelector SelectorKind = iota
	RangeSelector
	WildcardSelector
)

// Selector picks elements of one axis: a single signed index, an inclusive
// range, or everything.
type Selector struct {
	Kind  SelectorKind
	Index int   // SingleSelector
	Lo    Limit // RangeSelector
	Hi    Limit // RangeSelector
}

func Single(n int) Selector {
	return Selector{Kind: SingleSelector, Index: n}
}

func Range(lo, hi Limit) Selector {
	return Selector{Kind: RangeSelector, Lo: lo, Hi: hi}
}

func Wildcard() Selector {
	return Selector{Kind: WildcardSelector}
}

// String renders the selector back in expression syntax.
func (s Selector) String() string {
	switch s.Kind {
	case SingleSelector:
		return strconv.Itoa(s.Index)
	case RangeSelector:
		return s.Lo.String() + "~" + s.Hi.String()
	default:
		return "_"
	}
}

// IsWildcard reports whether a resolved axis selects everything.
func IsWildcard(sels []Selector) bool {
	return len(sels) == 1 && sels[0].Kind == WildcardSelector
}

// FormatAxis renders a resolved axis in expression syntax.
func FormatAxis(sels []Selector) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// AxisSpec holds the resolved selectors of both axes.
type AxisSpec struct {
	Rows []Selector
	Cols []Selector
}

func (a AxisSpec) String() string {
	return FormatAxis(a.Rows) + ";" + FormatAxis(a.Cols)
}

// ParseExpression splits expr once on ';' and resolves each half.
func ParseExpression(expr string) (AxisSpec, error) {
	rowText, colText, err := splitExpression(expr)
	if err != nil {
		return AxisSpec{}, err
	}

	rows, err := parseAxis(Rows, rowText, 0)
	if err != nil {
		return AxisSpec{}, err
	}
	cols, err := parseAxis(Columns, colText, len(rowText)+1)
	if err != nil {
		return AxisSpec{}, err
	}
	return AxisSpec{Rows: rows, Cols: cols}, nil
}

// TokenizeExpression returns the primitive tokens of both axes, rows first.
// Spans are columns of the whole expression.
func TokenizeExpression(expr string) ([]*Token, error) {
	rowText, colText, err := splitExpression(expr)
	if err != nil {
		return nil, err
	}
	rows, err := newTokenizerAt(Rows, rowText, 0).Tokenize()
	if err != nil {
		return nil, err
	}
	cols, err := newTokenizerAt(Columns, colText, len(rowText)+1).Tokenize()
	if err != nil {
		return nil, err
	}
	return append(rows, cols...), nil
}

func splitExpression(expr string) (rowText, colText string, err error) {
	rowText, colText, found := strings.Cut(expr, ";")
	if !found {
		return "", "", &ExpressionError{
			Axis:   Columns,
			Text:   expr,
			Reason: "missing ';' between row and column selectors",
		}
	}
	return rowText, colText, nil
}

// ParseAxis tokenizes and resolves the text of a single axis.
func ParseAxis(axis Axis, text string) ([]Selector, error) {
	return parseAxis(axis, text, 0)
}

func parseAxis(axis Axis, text string, base int) ([]Selector, error) {
	tokens, err := newTokenizerAt(axis, text, base).Tokenize()
	if err != nil {
		return nil, err
	}
	return Resolve(axis, tokens)
}
