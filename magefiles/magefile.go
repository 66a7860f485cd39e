//go:build mage

// Package main contains Mage build targets for arxiv-cli developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "arxiv"
	cmdPkg     = "./cmd/arxiv"
	versionVar = "main.version"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X " + versionVar + "=" + gitVersion()
	// go-sqlite3 is a cgo package.
	env := map[string]string{"CGO_ENABLED": "1"}
	if err := sh.RunWithV(env, "go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install builds and copies the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	dest := filepath.Join(gopath, "bin", binName)
	if err := sh.Copy(dest, filepath.Join(binDir, binName)); err != nil {
		return fmt.Errorf("installing %s: %w", dest, err)
	}
	fmt.Printf("Installed %s\n", dest)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Vet and Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints non-blank Go lines per top-level package directory,
// split into production and test code.
func Stats() error {
	prod := map[string]int{}
	test := map[string]int{}
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if name := info.Name(); path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		key := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			test[key] += countLines(data)
		} else {
			prod[key] += countLines(data)
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(prod))
	for d := range prod {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var totalProd, totalTest int
	fmt.Printf("%-24s  %8s  %8s\n", "Package", "Code", "Tests")
	for _, d := range dirs {
		fmt.Printf("%-24s  %8d  %8d\n", d, prod[d], test[d])
		totalProd += prod[d]
		totalTest += test[d]
	}
	fmt.Printf("%-24s  %8d  %8d\n", "total", totalProd, totalTest)
	return nil
}

// countLines counts lines that hold something other than whitespace.
func countLines(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}
