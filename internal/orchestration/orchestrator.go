package orchestration

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/hexcalc/internal/convert"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/input"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking pipeline
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/agbru/hexcalc/internal/orchestration"

// Options configures a streaming conversion run.
type Options struct {
	// Workers is the number of concurrent conversion workers.
	// Values <= 0 select one worker per logical CPU.
	Workers int
	// ChunkSize is the number of values per parsed chunk.
	// Values <= 0 select input.DefaultChunkSize.
	ChunkSize int
}

// Summary describes a completed streaming run.
type Summary struct {
	// Values is the total number of values converted and delivered.
	Values int64
	// Chunks is the number of chunks processed.
	Chunks int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// convertedChunk pairs a chunk index with its converted records while it
// waits for ordered delivery.
type convertedChunk struct {
	index   int
	records []convert.Record
}

// ExecuteStream runs the streaming conversion pipeline: the reader is parsed
// into chunks, a worker pool converts the chunks concurrently, and converted
// batches are reassembled into strict input order before delivery to the
// sink. The observable output is identical to a sequential pass over the
// input.
//
// Parameters:
//   - ctx: Cancels the run; a deadline maps to the timeout exit path.
//   - r: The input source of decimal integer tokens.
//   - sink: Receives ordered record batches; a non-nil error aborts the run.
//   - opts: Worker and chunk sizing.
//   - reporter: Displays progress (use NullProgressReporter for quiet mode).
//   - progressOut: The writer for progress output.
//   - metrics: Receives instrumentation events (use NopMetrics to disable).
//
// Returns:
//   - Summary: Totals for the run, valid even on error for the delivered part.
//   - error: The first parse, sink, or context error, or nil.
func ExecuteStream(ctx context.Context, r io.Reader, sink RecordSink, opts Options, reporter ProgressReporter, progressOut io.Writer, metrics MetricsObserver) (Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ExecuteStream")
	span.SetAttributes(attribute.Int("workers", workers), attribute.Int("chunk_size", opts.ChunkSize))
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()

	chunks, parseErrs := input.StreamChunks(ctx, r, opts.ChunkSize)
	results := make(chan convertedChunk, workers*2)

	progressChan := make(chan ProgressUpdate, workers*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, progressOut)

	g, workerCtx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			metrics.WorkerStarted()
			defer metrics.WorkerStopped()
			for chunk := range chunks {
				records := convert.Convert(chunk.Values)
				metrics.ObserveRecords(records)
				select {
				case results <- convertedChunk{index: chunk.Index, records: records}:
				case <-workerCtx.Done():
					return workerCtx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		// Workers own the results channel; close it once they all exit so the
		// delivery loop below terminates.
		_ = g.Wait()
		close(results)
	}()

	summary, sinkErr := deliverOrdered(results, sink, cancel, progressChan)

	close(progressChan)
	displayWg.Wait()

	summary.Duration = time.Since(start)

	if err := firstError(sinkErr, <-parseErrs, g.Wait(), ctx); err != nil {
		span.RecordError(err)
		return summary, err
	}
	return summary, nil
}

// deliverOrdered reassembles converted chunks into input order and feeds them
// to the sink, emitting a progress update after each delivery. A sink error
// cancels the pipeline and drains the remaining results.
func deliverOrdered(results <-chan convertedChunk, sink RecordSink, cancel context.CancelFunc, progressChan chan<- ProgressUpdate) (Summary, error) {
	var summary Summary
	var sinkErr error

	pending := make(map[int][]convert.Record)
	next := 0

	for cc := range results {
		if sinkErr != nil {
			continue // draining after failure
		}
		pending[cc.index] = cc.records
		for {
			records, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := sink.Consume(records); err != nil {
				sinkErr = apperrors.WrapError(err, "delivering records")
				cancel()
				break
			}
			next++
			summary.Chunks++
			summary.Values += int64(len(records))

			select {
			case progressChan <- ProgressUpdate{Processed: summary.Values}:
			default:
				// Progress display lagging; skip rather than block delivery.
			}
		}
	}

	return summary, sinkErr
}

// firstError picks the most meaningful error from the pipeline's failure
// modes: sink failures win, then parse errors, then worker errors, then
// plain context termination.
func firstError(sinkErr, parseErr, workerErr error, ctx context.Context) error {
	if sinkErr != nil {
		return sinkErr
	}
	if parseErr != nil && !apperrors.IsContextError(parseErr) {
		return parseErr
	}
	if workerErr != nil {
		return workerErr
	}
	return ctx.Err()
}
