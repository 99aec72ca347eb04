package table

import (
	"fmt"
	"slices"

	"github.com/spicery/tproj/pkg/index"
)

// DefaultPlaceholder fills the cells of rows that are shorter than others.
const DefaultPlaceholder = "~"

// Options controls the selection engine.
type Options struct {
	Placeholder string
}

// Select applies the row selectors, transposes the chosen rows and applies
// the column selectors. The result is column-major: result[c][r] is the cell
// of output row r in output column c. Either axis failing aborts the whole
// selection.
func Select(grid Grid, spec index.AxisSpec, opts Options) (Grid, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyTable
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}

	rows, err := pick(grid, spec.Rows, index.Rows)
	if err != nil {
		return nil, fmt.Errorf("selecting rows: %w", err)
	}

	cols, err := pick(Transpose(rows, opts.Placeholder), spec.Cols, index.Columns)
	if err != nil {
		return nil, fmt.Errorf("selecting columns: %w", err)
	}

	// A column picked twice must not share storage with its twin.
	out := make(Grid, len(cols))
	for i, col := range cols {
		out[i] = slices.Clone(col)
	}
	return out, nil
}

// Transpose turns rows into columns. Column c holds field c of every row in
// order, or placeholder where a row has fewer than c+1 fields.
func Transpose(rows Grid, placeholder string) Grid {
	width := rows.Width()
	cols := make(Grid, width)
	for c := range cols {
		col := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				col[r] = row[c]
			} else {
				col[r] = placeholder
			}
		}
		cols[c] = col
	}
	return cols
}

// pick returns the elements named by sels, in selector order and with
// repeats.
func pick[T any](items []T, sels []index.Selector, axis index.Axis) ([]T, error) {
	if index.IsWildcard(sels) {
		return slices.Clone(items), nil
	}

	var out []T
	for _, sel := range sels {
		offs, err := sel.Offsets(axis, len(items))
		if err != nil {
			return nil, err
		}
		for _, off := range offs {
			out = append(out, items[off])
		}
	}
	return out, nil
}
