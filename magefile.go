//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type (
	Test  mg.Namespace
	Build mg.Namespace
)

var Aliases = map[string]interface{}{
	"build": Build.Dev,
	"test":  Test.Unit,
}

func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration drives the built binary against scratch repositories. Needs git on PATH.
func (Test) Integration() error {
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-tags=integration", "-run", "TestScript", "-timeout=300s", ".")
}

// Coverage writes an HTML coverage report to coverage/coverage.html.
func (Test) Coverage() error {
	fmt.Println("Running unit tests with coverage...")
	if err := os.MkdirAll("coverage", 0o755); err != nil {
		return err
	}
	if err := sh.RunV("go", "test", "-short", "-coverprofile=coverage/coverage.out", "-coverpkg=./internal/...", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage/coverage.out", "-o=coverage/coverage.html")
}

// Dev builds the branchsweep binary for development.
func (Build) Dev() error {
	fmt.Println("Building branchsweep...")
	return sh.RunV("go", "build", "-o", "bin/branchsweep", ".")
}

// Release builds release binaries for common platforms.
func (Build) Release() error {
	fmt.Println("Building release binaries...")

	platforms := []struct {
		os   string
		arch string
	}{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
		{"windows", "amd64"},
	}

	for _, platform := range platforms {
		output := fmt.Sprintf("bin/branchsweep-%s-%s", platform.os, platform.arch)
		if platform.os == "windows" {
			output += ".exe"
		}
		env := map[string]string{"GOOS": platform.os, "GOARCH": platform.arch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", output, "."); err != nil {
			return err
		}
	}
	return nil
}
