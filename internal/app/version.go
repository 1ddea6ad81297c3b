package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version metadata, overridable at build time via -ldflags.
var (
	// Version is the application version string.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
)

// HasVersionFlag reports whether the argument list requests version output.
// Checked before full flag parsing so --version works regardless of other
// configuration state.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "hexcalc %s (commit %s, %s)\n", Version, Commit, runtime.Version())
}
