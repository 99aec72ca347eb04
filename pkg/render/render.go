// Package render prints column-major cell data as an aligned grid.
package render

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// DefaultSeparator follows every cell, including the last one on a line.
const DefaultSeparator = " "

// Options controls the output layout.
type Options struct {
	Separator string
}

// Renderer writes aligned grids to an output stream.
type Renderer struct {
	out  io.Writer
	opts Options
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	return &Renderer{out: w, opts: opts}
}

// Widths returns the display width of the widest cell in each column.
func Widths(columns [][]string) []int {
	widths := make([]int, len(columns))
	for c, col := range columns {
		for _, cell := range col {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// Render writes one line per row. columns[c][r] is printed in column c of
// line r, left-aligned to the column's width and followed by the separator.
func (r *Renderer) Render(columns [][]string) error {
	if len(columns) == 0 {
		return nil
	}
	widths := Widths(columns)
	rows := len(columns[0])

	w := bufio.NewWriter(r.out)
	for row := 0; row < rows; row++ {
		for c, col := range columns {
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			if _, err := w.WriteString(runewidth.FillRight(cell, widths[c])); err != nil {
				return err
			}
			if _, err := w.WriteString(r.opts.Separator); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
