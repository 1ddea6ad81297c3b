// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayRecords], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatRecordLine], [FormatQuietRecord].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteRecordsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/hexcalc/internal/config"
	"github.com/agbru/hexcalc/internal/convert"
	"github.com/agbru/hexcalc/internal/format"
	"github.com/agbru/hexcalc/internal/ui"
)

// OutputConfig holds configuration for record output.
type OutputConfig struct {
	// OutputFile is the path to save the records (empty for no file output).
	OutputFile string
	// Quiet prints hex values only.
	Quiet bool
	// Verbose adds banner and timing output around the records.
	Verbose bool
	// JSON renders records as a JSON array.
	JSON bool
}

// FormatRecordLine formats a record in the canonical line form,
// e.g. "27 → 0x1B".
func FormatRecordLine(r convert.Record) string {
	return r.String()
}

// FormatQuietRecord formats a record for quiet mode output: the hex value
// alone, suitable for scripting.
func FormatQuietRecord(r convert.Record) string {
	return r.Hex
}

// DisplayRecords writes one line per record to out, in order. Quiet mode
// prints the hex value only.
//
// Parameters:
//   - out: The output writer.
//   - records: The records to display, already in input order.
//   - quiet: Selects the quiet format.
func DisplayRecords(out io.Writer, records []convert.Record, quiet bool) {
	for _, r := range records {
		if quiet {
			fmt.Fprintln(out, FormatQuietRecord(r))
		} else {
			fmt.Fprintln(out, FormatRecordLine(r))
		}
	}
}

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the input source, value count, worker settings, and
// environment details. Only emitted in verbose mode.
//
// Parameters:
//   - cfg: The application configuration.
//   - count: The number of values to convert, or -1 when streaming.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, count int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	if count >= 0 {
		fmt.Fprintf(out, "Converting %s%d%s values from %s%s%s with a timeout of %s%s%s.\n",
			ui.ColorCyan(), count, ui.ColorReset(),
			ui.ColorBlue(), cfg.Source(), ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Streaming values from %s%s%s with %s%d%s workers and a timeout of %s%s%s.\n",
			ui.ColorBlue(), cfg.Source(), ui.ColorReset(),
			ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Records ---\n")
}

// PrintRunSummary displays the post-run timing line in verbose mode.
//
// Parameters:
//   - values: The number of values converted.
//   - duration: The wall-clock duration of the run.
//   - out: The writer for standard output.
func PrintRunSummary(values int64, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "\nConverted %s%d%s values in %s%s%s.\n",
		ui.ColorGreen(), values, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// WriteRecordsToFile writes the records to a file with a commented header.
//
// Parameters:
//   - records: The records to persist, in order.
//   - source: A description of the input source (for the header).
//   - path: The destination file path.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteRecordsToFile(records []convert.Record, source, path string) error {
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# hexcalc conversion\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Source: %s\n", source)
	fmt.Fprintf(file, "# Records: %d\n", len(records))
	fmt.Fprintf(file, "\n")

	for _, r := range records {
		fmt.Fprintln(file, FormatRecordLine(r))
	}

	return nil
}
