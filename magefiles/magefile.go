//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the gridplate command.
func Build() error {
	return sh.RunV("go", "build", "./cmd/gridplate")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

type Gen mg.Namespace

// Examples builds and runs every example program in its own directory.
func (Gen) Examples() error {
	dirs, err := filepath.Glob("examples/*")
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		fmt.Println("running", dir)
		cmd := exec.Command("go", "run", ".")
		cmd.Dir = dir
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Run(); err != nil {
			return err
		}
	}
	return nil
}

// Plate generates the default one by one baseplate STL.
func (Gen) Plate() error {
	mg.Deps(Build)
	return sh.RunV("./gridplate", "-gridx", "1", "-gridy", "1", "-o", "plate.stl")
}
