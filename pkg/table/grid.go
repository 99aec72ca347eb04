// Package table builds a grid of cells from whitespace-delimited text and
// projects rows and columns out of it.
package table

import (
	"errors"
	"strings"
)

// ErrEmptyTable reports input that produced no rows or an empty first row.
var ErrEmptyTable = errors.New("empty table")

// Grid is an ordered sequence of rows of cell strings. Rows may differ in
// length.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Width returns the largest field count of any row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}
	return width
}

// Build splits text into a Grid. A run of spaces separates fields and a
// newline ends a row; a final row without a newline is still kept.
func Build(text string) (Grid, error) {
	var (
		grid  Grid
		row   []string
		field strings.Builder
	)

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ':
			row = append(row, field.String())
			field.Reset()
			for i+1 < len(text) && text[i+1] == ' ' {
				i++
			}
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			field.WriteByte(c)
		case '\n':
			row = append(row, field.String())
			field.Reset()
			grid = append(grid, row)
			row = nil
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 {
		row = append(row, field.String())
	}
	if len(row) > 0 {
		grid = append(grid, row)
	}

	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyTable
	}
	return grid, nil
}
