package ui

import (
	"github.com/fatih/color"
)

// Color functions - these respect NoColor setting automatically
var (
	cyan      = color.New(color.FgCyan)
	boldCyan  = color.New(color.FgCyan, color.Bold)
	green     = color.New(color.FgGreen)
	boldGreen = color.New(color.FgGreen, color.Bold)
	red       = color.New(color.FgRed)
	yellow    = color.New(color.FgYellow)
	dim       = color.New(color.Faint)
	banner    = color.New(color.BgCyan, color.FgBlack)
)

// Branch returns a branch name in cyan
func Branch(name string) string {
	return cyan.Sprint(name)
}

// Banner returns a highlighted heading line
func Banner(msg string) string {
	return banner.Sprint(msg)
}

// Info returns an informational message in cyan
func Info(msg string) string {
	return cyan.Sprint(msg)
}

// Notice returns an emphasized informational message
func Notice(msg string) string {
	return boldCyan.Sprint(msg)
}

// Success returns a bold green success message with checkmark
func Success(msg string) string {
	return boldGreen.Sprintf("✓ %s", msg)
}

// Warning returns a yellow warning message with warning sign
func Warning(msg string) string {
	return yellow.Sprintf("⚠ %s", msg)
}

// Error returns a red error message with X
func Error(msg string) string {
	return red.Sprintf("✗ %s", msg)
}

// ErrorDetail returns raw error text in yellow, without decoration
func ErrorDetail(msg string) string {
	return yellow.Sprint(msg)
}

// Dim returns dimmed/gray text
func Dim(s string) string {
	return dim.Sprint(s)
}

// Ordinal returns a menu number like "3)" in green
func Ordinal(n int) string {
	return green.Sprintf("%d)", n)
}

// SetNoColor sets whether color output is disabled
func SetNoColor(disabled bool) {
	color.NoColor = disabled
}
