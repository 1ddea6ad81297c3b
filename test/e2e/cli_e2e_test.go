package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and verifies it end to end.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "hexcalc"
	if runtime.GOOS == "windows" {
		binName = "hexcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	rootDir := "../.."

	build := exec.Command("go", "build", "-o", binPath, "./cmd/hexcalc")
	build.Dir = rootDir
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build hexcalc: %v", err)
	}

	inputFile := filepath.Join(tmpDir, "values.txt")
	if err := os.WriteFile(inputFile, []byte("283 285\n-1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Default Sequence",
			args:     nil,
			wantOut:  "27 → 0x1B",
			wantCode: 0,
		},
		{
			name:     "Positional Values",
			args:     []string{"283", "285"},
			wantOut:  "29 → 0x1D",
			wantCode: 0,
		},
		{
			name:     "Negative Value",
			args:     []string{"--", "-1"},
			wantOut:  "255 → 0xFF",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"--quiet", "283"},
			wantOut:  "0x1B",
			wantCode: 0,
		},
		{
			name:     "JSON Mode",
			args:     []string{"--json", "283"},
			wantOut:  `"hex": "0x1B"`,
			wantCode: 0,
		},
		{
			name:     "Input File",
			args:     []string{"--input", inputFile},
			wantOut:  "255 → 0xFF",
			wantCode: 0,
		},
		{
			name:     "Verbose Banner",
			args:     []string{"-v", "283"},
			wantOut:  "Execution Configuration",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "hexcalc",
			wantCode: 0,
		},
		{
			name:     "Invalid Token",
			args:     []string{"283", "banana"},
			wantOut:  "banana",
			wantCode: 4,
		},
		{
			name:     "Invalid Worker Count",
			args:     []string{"--workers", "0", "--input", inputFile},
			wantOut:  "",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code mismatch: got %d, want %d\nOutput: %s",
							exitErr.ExitCode(), tt.wantCode, outStr)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
