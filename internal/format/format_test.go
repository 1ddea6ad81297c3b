package format

import (
	"testing"
	"time"
)

func TestHex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero pads to two digits", 0, "0x00"},
		{"single digit pads", 5, "0x05"},
		{"two digits unpadded", 27, "0x1B"},
		{"upper boundary", 255, "0xFF"},
		{"beyond a byte keeps natural width", 280, "0x118"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Hex(tt.n); got != tt.want {
				t.Errorf("Hex(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestDisplayRecord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"five", 5, "5 → 0x05"},
		{"twenty seven", 27, "27 → 0x1B"},
		{"zero", 0, "0 → 0x00"},
		{"upper boundary", 255, "255 → 0xFF"},
		{"negative guard", -3, "-3 → ERROR: negative"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayRecord(tt.n); got != tt.want {
				t.Errorf("DisplayRecord(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds fall through to default", 3 * time.Second, "3s"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
