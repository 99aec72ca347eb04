// Package projector runs the whole pipeline: parse the index expression,
// build the table, select and render.
package projector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spicery/tproj/pkg/config"
	"github.com/spicery/tproj/pkg/index"
	"github.com/spicery/tproj/pkg/render"
	"github.com/spicery/tproj/pkg/table"
)

// Projector selects rows and columns out of text tables.
type Projector struct {
	settings *config.Settings
	logger   *slog.Logger
}

// New creates a projector. A nil logger discards all log output.
func New(settings *config.Settings, logger *slog.Logger) *Projector {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Projector{settings: settings, logger: logger}
}

// Project writes the projection of text selected by expr to w. Nothing is
// written unless every stage succeeds.
func (p *Projector) Project(w io.Writer, expr, text string) error {
	spec, err := index.ParseExpression(expr)
	if err != nil {
		return err
	}
	p.logger.Debug("Expression parsed.", "expr", expr, "rows", index.FormatAxis(spec.Rows), "cols", index.FormatAxis(spec.Cols))

	grid, err := table.Build(text)
	if err != nil {
		return err
	}
	p.logger.Debug("Table built.", "rows", grid.Rows(), "width", grid.Width())

	columns, err := table.Select(grid, spec, table.Options{Placeholder: p.settings.Placeholder})
	if err != nil {
		return err
	}
	if len(columns) > 0 {
		p.logger.Debug("Selection complete.", "rows", len(columns[0]), "cols", len(columns))
	}

	var buf bytes.Buffer
	if err := render.NewRenderer(&buf, render.Options{Separator: p.settings.Separator}).Render(columns); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// DumpTokens writes the primitive tokens of expr to w, one JSON object per
// line, without reading any table.
func (p *Projector) DumpTokens(w io.Writer, expr string) error {
	tokens, err := index.TokenizeExpression(expr)
	if err != nil {
		return err
	}
	p.logger.Debug("Expression tokenized.", "expr", expr, "tokens", len(tokens))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, tok := range tokens {
		if err := enc.Encode(tok); err != nil {
			return fmt.Errorf("JSON encoding error: %w", err)
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
