package ui

// Color* functions expose the active theme's ANSI escape codes for direct
// use in fmt.Fprintf-style CLI output, where a lipgloss.Style would be
// more than is needed for a single inline accent.

func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorCyan() string      { return GetCurrentTheme().Info }
func ColorMagenta() string   { return GetCurrentTheme().Secondary }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }
