package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agbru/hexcalc/internal/convert"
	"github.com/agbru/hexcalc/internal/orchestration"
)

// RecordPresenter renders a complete, ordered record sequence. Different
// implementations provide different output formats (lines, JSON) without
// changing the conversion or orchestration logic.
type RecordPresenter interface {
	// PresentRecords renders the records to out.
	PresentRecords(records []convert.Record, out io.Writer) error
}

// LinePresenter renders records in the canonical one-per-line format, or
// hex-only lines in quiet mode.
type LinePresenter struct {
	// Quiet selects the hex-only format.
	Quiet bool
}

// Verify interface compliance.
var _ RecordPresenter = LinePresenter{}

// PresentRecords writes one line per record.
func (p LinePresenter) PresentRecords(records []convert.Record, out io.Writer) error {
	DisplayRecords(out, records, p.Quiet)
	return nil
}

// Sink returns an orchestration.RecordSink that renders batches to out as
// they are delivered, so streaming runs emit output incrementally.
func (p LinePresenter) Sink(out io.Writer) orchestration.RecordSink {
	return orchestration.RecordSinkFunc(func(records []convert.Record) error {
		DisplayRecords(out, records, p.Quiet)
		return nil
	})
}

// recordJSON is the wire shape of a record in JSON output.
type recordJSON struct {
	Input int64  `json:"input"`
	Value int64  `json:"value"`
	Hex   string `json:"hex"`
}

// JSONPresenter renders records as a JSON array.
type JSONPresenter struct{}

// Verify interface compliance.
var _ RecordPresenter = JSONPresenter{}

// PresentRecords writes the records as an indented JSON array.
func (JSONPresenter) PresentRecords(records []convert.Record, out io.Writer) error {
	payload := make([]recordJSON, len(records))
	for i, r := range records {
		payload[i] = recordJSON{Input: r.Input, Value: r.Value, Hex: r.Hex}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}
