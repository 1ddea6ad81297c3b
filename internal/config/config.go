// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over environment variables, which
// take priority over built-in defaults. A .env file in the working directory
// is loaded into the environment before resolution.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/input"
)

// EnvPrefix is prepended to every environment variable key consumed by the
// application (e.g. HEXCALC_WORKERS).
const EnvPrefix = "HEXCALC_"

// DefaultTimeout bounds a conversion run. Generous for the built-in sequence;
// mostly relevant for large streamed inputs.
const DefaultTimeout = 1 * time.Minute

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Values is the injected input sequence from positional arguments.
	// Empty when the built-in sequence or --input is used.
	Values []int64
	// InputFile is the path of a value file to convert ("-" for stdin).
	InputFile string
	// OutputFile is the path to additionally save the records (empty for none).
	OutputFile string
	// Quiet prints hex values only, one per line.
	Quiet bool
	// Verbose adds an execution banner and timing summary around the records.
	Verbose bool
	// JSON renders the records as a JSON array instead of lines.
	JSON bool
	// TUI launches the interactive converter.
	TUI bool
	// NoColor disables ANSI colors in verbose output.
	NoColor bool
	// Workers is the worker count for streamed conversion (1 = sequential).
	Workers int
	// ChunkSize is the values-per-chunk size for streamed conversion.
	ChunkSize int
	// Timeout bounds the whole conversion run.
	Timeout time.Duration
	// MetricsAddr is the listen address for the Prometheus endpoint
	// (empty disables it).
	MetricsAddr string
}

// ParseConfig resolves the application configuration from command-line
// arguments and the environment.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag parsing errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a ConfigError or
//     ParseError for invalid input, or nil.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	// Optional .env support; a missing file is the normal case.
	_ = godotenv.Load()

	cfg := AppConfig{
		Workers:   1,
		ChunkSize: input.DefaultChunkSize,
		Timeout:   DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.InputFile, "input", "", "file of decimal integers to convert (\"-\" for stdin)")
	fs.StringVar(&cfg.InputFile, "i", "", "shorthand for --input")
	fs.StringVar(&cfg.OutputFile, "output", "", "also write the records to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for --output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print hex values only")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print execution banner and timing")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.JSON, "json", false, "render records as a JSON array")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive converter")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.IntVar(&cfg.Workers, "workers", 1, "conversion workers for --input streaming")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", input.DefaultChunkSize, "values per streamed chunk")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum duration of the run")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during streaming runs")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [value ...]\n\n", programName)
		fmt.Fprintf(errWriter, "Converts decimal integers to byte-normalized hexadecimal display records.\n")
		fmt.Fprintf(errWriter, "With no values and no --input, converts the built-in sequence.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	values, err := input.ParseArgs(fs.Args())
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Values = values

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations that cannot be executed.
func validate(cfg AppConfig) error {
	if len(cfg.Values) > 0 && cfg.InputFile != "" {
		return apperrors.NewConfigError("positional values and --input are mutually exclusive")
	}
	if cfg.Workers < 1 {
		return apperrors.NewConfigError("--workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.ChunkSize < 1 {
		return apperrors.NewConfigError("--chunk-size must be at least 1, got %d", cfg.ChunkSize)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.MetricsAddr != "" && cfg.InputFile == "" {
		return apperrors.NewConfigError("--metrics-addr requires --input (metrics are only served during streaming runs)")
	}
	if cfg.Quiet && cfg.JSON {
		return apperrors.NewConfigError("--quiet and --json are mutually exclusive")
	}
	return nil
}

// Source describes where the input sequence comes from, for banners and logs.
func (c AppConfig) Source() string {
	switch {
	case len(c.Values) > 0:
		return "args"
	case c.InputFile == input.StdinPath:
		return "stdin"
	case c.InputFile != "":
		return c.InputFile
	default:
		return "default"
	}
}
