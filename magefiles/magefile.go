// Build targets for the patterns repository. Run with mage.

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "patterns"
	binaryDir  = "bin"
	cmdDir     = "./cmd/patterns"
)

// Build compiles the patterns binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs the full test suite with race detection.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the benchmarks across all packages.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Demos builds the binary and runs every demonstration.
func Demos() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "all")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
