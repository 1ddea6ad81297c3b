// Package input handles injected value sequences: positional arguments,
// files, and stdin. Tokens are decimal integers separated by whitespace,
// commas, or both; token positions are tracked so parse errors point at the
// offending value.
package input

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/hexcalc/internal/errors"
)

// StdinPath is the conventional pseudo-path selecting stdin as the
// input source.
const StdinPath = "-"

// DefaultChunkSize is the number of values per streamed chunk. Small enough
// to keep progress updates frequent, large enough to amortize channel
// overhead.
const DefaultChunkSize = 1024

// Chunk is a contiguous run of parsed input values. Index is the zero-based
// position of the chunk in the stream and drives ordered reassembly after
// parallel conversion.
type Chunk struct {
	Index  int
	Values []int64
}

// parseToken parses a single decimal token, reporting its one-based position
// on failure.
func parseToken(token string, position int) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, apperrors.ParseError{Token: token, Position: position, Cause: err}
	}
	return v, nil
}

// ParseArgs parses positional command-line arguments as decimal integers.
//
// Parameters:
//   - args: The raw argument tokens, in order.
//
// Returns:
//   - []int64: The parsed values, in argument order.
//   - error: A ParseError identifying the first malformed token, or nil.
func ParseArgs(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for i, arg := range args {
		v, err := parseToken(strings.TrimSpace(arg), i+1)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// splitTokens reports whitespace and commas as token separators.
func splitTokens(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ReadValues slurps an entire reader and parses it as a sequence of decimal
// integers separated by whitespace and/or commas.
//
// Parameters:
//   - r: The input source.
//
// Returns:
//   - []int64: The parsed values, in input order.
//   - error: A ParseError for the first malformed token, or a read error.
func ReadValues(r io.Reader) ([]int64, error) {
	var values []int64
	position := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, token := range strings.FieldsFunc(scanner.Text(), splitTokens) {
			position++
			v, err := parseToken(token, position)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading input")
	}
	return values, nil
}

// StreamChunks parses the reader incrementally and sends fixed-size chunks of
// values on the returned channel. The channel is closed when the input is
// exhausted or an error occurs; the error (if any) is delivered on the error
// channel, which is buffered and never blocks.
//
// Parameters:
//   - ctx: Cancels the stream early.
//   - r: The input source.
//   - chunkSize: Values per chunk; DefaultChunkSize when <= 0.
//
// Returns:
//   - <-chan Chunk: Ordered chunks of parsed values.
//   - <-chan error: At most one terminal error.
func StreamChunks(ctx context.Context, r io.Reader, chunkSize int) (<-chan Chunk, <-chan error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	chunks := make(chan Chunk)
	errc := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errc)

		index := 0
		position := 0
		buf := make([]int64, 0, chunkSize)

		flush := func() bool {
			if len(buf) == 0 {
				return true
			}
			chunk := Chunk{Index: index, Values: buf}
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				errc <- ctx.Err()
				return false
			}
			index++
			buf = make([]int64, 0, chunkSize)
			return true
		}

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			for _, token := range strings.FieldsFunc(scanner.Text(), splitTokens) {
				position++
				v, err := parseToken(token, position)
				if err != nil {
					errc <- err
					return
				}
				buf = append(buf, v)
				if len(buf) == chunkSize {
					if !flush() {
						return
					}
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- apperrors.WrapError(err, "reading input")
			return
		}
		flush()
	}()

	return chunks, errc
}

// Open resolves an input path to a reader. The pseudo-path "-" selects
// stdin; the returned closer is a no-op in that case.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "opening input %s", path)
	}
	return f, nil
}
