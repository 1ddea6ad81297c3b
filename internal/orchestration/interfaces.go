//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/hexcalc/internal/convert"
)

// ProgressUpdate reports the cumulative number of values converted so far in
// a streaming run.
type ProgressUpdate struct {
	// Processed is the total count of values delivered in order.
	Processed int64
}

// ProgressReporter defines the interface for displaying conversion progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, counter)
// while orchestration focuses on coordinating the pipeline.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the pipeline.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, out io.Writer) {
	f(wg, progressChan, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// RecordSink consumes ordered batches of display records as the pipeline
// produces them. Batches arrive in strict input order; a non-nil error aborts
// the run.
type RecordSink interface {
	// Consume receives the next in-order batch of records.
	Consume(records []convert.Record) error
}

// RecordSinkFunc is a function adapter that implements RecordSink.
type RecordSinkFunc func(records []convert.Record) error

// Consume calls the underlying function.
func (f RecordSinkFunc) Consume(records []convert.Record) error {
	return f(records)
}

// MetricsObserver receives pipeline events for instrumentation. The
// orchestration layer does not depend on a concrete metrics backend;
// the server package provides a Prometheus-backed implementation.
type MetricsObserver interface {
	// ObserveRecords is called once per converted batch, before ordered delivery.
	ObserveRecords(records []convert.Record)
	// WorkerStarted is called when a conversion worker begins.
	WorkerStarted()
	// WorkerStopped is called when a conversion worker exits.
	WorkerStopped()
}

// NopMetrics is a MetricsObserver that discards all events.
type NopMetrics struct{}

// ObserveRecords discards the batch.
func (NopMetrics) ObserveRecords([]convert.Record) {}

// WorkerStarted is a no-op.
func (NopMetrics) WorkerStarted() {}

// WorkerStopped is a no-op.
func (NopMetrics) WorkerStopped() {}
