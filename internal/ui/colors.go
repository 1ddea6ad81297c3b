package ui

// ANSI accessor functions resolve against the active theme so that callers
// pick up theme changes (including --no-color) without re-reading state.

// ColorGreen returns the success color escape code of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color escape code of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color escape code of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color escape code of the active theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the info color escape code of the active theme.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the secondary color escape code of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
