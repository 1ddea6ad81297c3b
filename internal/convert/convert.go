// Package convert implements the byte-normalizing decimal-to-hexadecimal
// transform at the heart of hexcalc.
//
// Every input integer is reduced modulo 256 with floor semantics before
// rendering, so the normalized value is always in [0, 255] regardless of the
// input's sign or magnitude. The transform is pure: the same input sequence
// always yields the same record sequence, in the same order.
package convert

import "github.com/agbru/hexcalc/internal/format"

// Modulus is the normalization modulus. Every input is reduced modulo this
// value before formatting, which bounds the normalized value to a single byte.
const Modulus = 256

// Record is an immutable display record pairing an input integer with its
// normalized value and hexadecimal rendering.
type Record struct {
	// Input is the original value as supplied by the caller.
	Input int64
	// Value is Input reduced modulo 256 with floor semantics, always in [0, 255].
	Value int64
	// Hex is the uppercase hexadecimal rendering of Value, e.g. "0x1B".
	Hex string
}

// String returns the canonical one-line form of the record,
// e.g. "27 → 0x1B".
func (r Record) String() string {
	return format.DisplayRecord(r.Value)
}

// Normalize reduces v modulo 256 using floor semantics. Go's % operator
// truncates toward zero, so a negative remainder is shifted back into range.
//
// Parameters:
//   - v: The input value, any sign or magnitude.
//
// Returns:
//   - int64: The normalized value, always in [0, 255].
func Normalize(v int64) int64 {
	n := v % Modulus
	if n < 0 {
		n += Modulus
	}
	return n
}

// NewRecord builds the display record for a single input value.
func NewRecord(v int64) Record {
	n := Normalize(v)
	return Record{Input: v, Value: n, Hex: format.Hex(n)}
}

// Convert transforms an ordered sequence of integers into an ordered sequence
// of display records, one per input, preserving input order. It is a pure
// function: no side effects, no error return, identical output for identical
// input.
//
// Parameters:
//   - values: The input sequence. May be empty or nil.
//
// Returns:
//   - []Record: One record per input value, in input order.
func Convert(values []int64) []Record {
	records := make([]Record, len(values))
	for i, v := range values {
		records[i] = NewRecord(v)
	}
	return records
}

// defaultSequence is the built-in input list used when no sequence is
// injected via arguments or --input.
var defaultSequence = []int64{
	283, 285, 299, 301, 313, 319, 333, 351, 355, 357, 361, 369,
	375, 379, 391, 395, 397, 415, 419, 425, 433, 445, 451, 463, 471, 477,
	487, 499, 501, 505,
}

// DefaultSequence returns a copy of the built-in 30-value input sequence.
// Callers receive a fresh slice and may mutate it freely.
func DefaultSequence() []int64 {
	seq := make([]int64, len(defaultSequence))
	copy(seq, defaultSequence)
	return seq
}
