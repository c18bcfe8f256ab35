package testutil

import (
	"io"

	"github.com/javoire/branchsweep/internal/spinner"
	"github.com/javoire/branchsweep/internal/ui"
)

// SetupTest initializes test environment (disable spinners and colors)
func SetupTest() {
	spinner.Enabled = false
	spinner.Output = io.Discard
	ui.SetNoColor(true)
}

// TeardownTest cleans up after tests
func TeardownTest() {
	ui.SetNoColor(false)
}
