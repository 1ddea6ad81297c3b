package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/hexcalc/internal/cli"
	"github.com/agbru/hexcalc/internal/convert"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/input"
	"github.com/agbru/hexcalc/internal/logging"
	"github.com/agbru/hexcalc/internal/orchestration"
	"github.com/agbru/hexcalc/internal/server"
)

// runConvert performs a one-shot conversion of the injected or default value
// sequence and renders the result.
func (a *Application) runConvert(out io.Writer) int {
	values := a.Config.Values
	if len(values) == 0 {
		values = convert.DefaultSequence()
	}

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, len(values), out)
	}

	start := time.Now()
	records := convert.Convert(values)
	duration := time.Since(start)

	var presenter cli.RecordPresenter
	if a.Config.JSON {
		presenter = cli.JSONPresenter{}
	} else {
		presenter = cli.LinePresenter{Quiet: a.Config.Quiet}
	}

	if err := presenter.PresentRecords(records, out); err != nil {
		a.Logger.Error("failed to render records", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if a.Config.Verbose {
		cli.PrintRunSummary(int64(len(records)), duration, out)
	}

	if err := cli.WriteRecordsToFile(records, a.Config.Source(), a.Config.OutputFile); err != nil {
		a.Logger.Error("failed to write output file", err, logging.String("path", a.Config.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	return apperrors.ExitSuccess
}

// runStream converts a value file (or stdin) through the concurrent pipeline,
// delivering records in input order as they become available.
func (a *Application) runStream(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	src, err := input.Open(a.Config.InputFile)
	if err != nil {
		a.Logger.Error("failed to open input", err, logging.String("path", a.Config.InputFile))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	defer src.Close()

	var metrics orchestration.MetricsObserver = orchestration.NopMetrics{}
	if a.Config.MetricsAddr != "" {
		m := server.NewMetrics()
		metrics = m
		go func() {
			if serveErr := m.Serve(ctx, a.Config.MetricsAddr); serveErr != nil {
				a.Logger.Warn("metrics server stopped", logging.Err(serveErr))
			}
		}()
	}

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, -1, out)
	}

	// JSON and file output need the full ordered sequence; plain line output
	// can be rendered incrementally as batches arrive.
	var collected []convert.Record
	var sink orchestration.RecordSink
	buffered := a.Config.JSON || a.Config.OutputFile != ""
	if buffered {
		sink = orchestration.RecordSinkFunc(func(records []convert.Record) error {
			collected = append(collected, records...)
			return nil
		})
	} else {
		sink = cli.LinePresenter{Quiet: a.Config.Quiet}.Sink(out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if a.Config.Verbose {
		reporter = cli.CLIProgressReporter{}
	}

	opts := orchestration.Options{Workers: a.Config.Workers, ChunkSize: a.Config.ChunkSize}
	summary, err := orchestration.ExecuteStream(ctx, src, sink, opts, reporter, a.ErrWriter, metrics)
	if err != nil {
		a.Logger.Error("streaming conversion failed", err,
			logging.Int64("values", summary.Values),
			logging.Int("chunks", summary.Chunks))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if buffered {
		var presenter cli.RecordPresenter
		if a.Config.JSON {
			presenter = cli.JSONPresenter{}
		} else {
			presenter = cli.LinePresenter{Quiet: a.Config.Quiet}
		}
		if err := presenter.PresentRecords(collected, out); err != nil {
			a.Logger.Error("failed to render records", err)
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFor(err)
		}
		if err := cli.WriteRecordsToFile(collected, a.Config.Source(), a.Config.OutputFile); err != nil {
			a.Logger.Error("failed to write output file", err, logging.String("path", a.Config.OutputFile))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFor(err)
		}
	}

	if a.Config.Verbose {
		cli.PrintRunSummary(summary.Values, summary.Duration, out)
	}

	return apperrors.ExitSuccess
}
