package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/hexcalc/internal/convert"
	apperrors "github.com/agbru/hexcalc/internal/errors"
)

// newTestApp builds an Application from the given command-line arguments,
// failing the test on a parse error.
func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"hexcalc"}, args...), &errBuf)
	if err != nil {
		t.Fatalf("New(%v) returned error: %v", args, err)
	}
	return a, &errBuf
}

func TestRun_DefaultSequence(t *testing.T) {
	t.Parallel()

	a, errBuf := newTestApp(t)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d, want %d (stderr: %q)", code, apperrors.ExitSuccess, errBuf.String())
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	wantLines := len(convert.DefaultSequence())
	if len(lines) != wantLines {
		t.Fatalf("default run produced %d lines, want %d", len(lines), wantLines)
	}
	if lines[0] != "27 → 0x1B" {
		t.Errorf("first line = %q, want %q", lines[0], "27 → 0x1B")
	}
	if lines[1] != "29 → 0x1D" {
		t.Errorf("second line = %q, want %q", lines[1], "29 → 0x1D")
	}
}

func TestRun_PositionalValues(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "283", "285", "0")
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	want := "27 → 0x1B\n29 → 0x1D\n0 → 0x00\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRun_QuietMode(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "-q", "283", "511")
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	want := "0x1B\n0xFF\n"
	if out.String() != want {
		t.Errorf("quiet output = %q, want %q", out.String(), want)
	}
}

func TestRun_JSONMode(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "--json", "283")
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	var payload []struct {
		Input int64  `json:"input"`
		Value int64  `json:"value"`
		Hex   string `json:"hex"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(payload) != 1 {
		t.Fatalf("JSON payload has %d records, want 1", len(payload))
	}
	if payload[0].Input != 283 || payload[0].Value != 27 || payload[0].Hex != "0x1B" {
		t.Errorf("record = %+v, want {283 27 0x1B}", payload[0])
	}
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.txt")
	a, _ := newTestApp(t, "-o", path, "283")
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# hexcalc conversion") {
		t.Errorf("output file missing header:\n%s", content)
	}
	if !strings.Contains(content, "27 → 0x1B") {
		t.Errorf("output file missing record line:\n%s", content)
	}
}

func TestRun_StreamFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("283 285\n-1 511\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, _ := newTestApp(t, "--input", path, "--workers", "4", "--chunk-size", "2")
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	want := "27 → 0x1B\n29 → 0x1D\n255 → 0xFF\n255 → 0xFF\n"
	if out.String() != want {
		t.Errorf("streamed output = %q, want %q", out.String(), want)
	}
}

func TestRun_StreamParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("283 banana\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, errBuf := newTestApp(t, "--input", path)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("Run returned exit code %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "banana") {
		t.Errorf("stderr does not name the offending token: %q", errBuf.String())
	}
}

func TestRun_StreamMissingFile(t *testing.T) {
	t.Parallel()

	a, errBuf := newTestApp(t, "--input", filepath.Join(t.TempDir(), "absent.txt"))
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	if code == apperrors.ExitSuccess {
		t.Fatal("Run succeeded on a missing input file")
	}
	if errBuf.Len() == 0 {
		t.Error("expected an error message on stderr")
	}
}

func TestNew_InvalidArgs(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer
	if _, err := New([]string{"hexcalc", "--workers", "0"}, &errBuf); err == nil {
		t.Error("New accepted --workers 0")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer
	_, err := New([]string{"hexcalc", "--help"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
	if !strings.Contains(errBuf.String(), "Usage") {
		t.Errorf("help output missing usage text: %q", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"double dash", []string{"--version"}, true},
		{"single dash", []string{"-version"}, true},
		{"absent", []string{"283", "285"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "hexcalc") {
		t.Errorf("version output = %q, want it to name the binary", out.String())
	}
}
