// Package testutil provides common test helpers for the qrew-toolchain project.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// TempTree creates a temporary directory containing the given relative
// directories (slash-separated, intermediate directories included) and
// returns its path.
func TempTree(t *testing.T, dirs ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatalf("TempTree: mkdir %s failed: %v", d, err)
		}
	}
	return root
}

// TempFile writes content to dir/name and returns the file path.
func TempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("TempFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempFile: write failed: %v", err)
	}
	return path
}

// TempExecutable writes an empty executable file at dir/name.
func TempExecutable(t *testing.T, dir, name string) string {
	t.Helper()

	path := TempFile(t, dir, name, "#!/bin/sh\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("TempExecutable: chmod failed: %v", err)
	}
	return path
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	return TempFile(t, t.TempDir(), "config.toml", content)
}

// SetupToolchain creates a toolchain root with an llvm-build tree
// (bin, lib, lib/cmake/llvm, lib/cmake/mlir) and returns the root path.
func SetupToolchain(t *testing.T) string {
	t.Helper()

	return TempTree(t,
		"llvm-build/bin",
		"llvm-build/lib/cmake/llvm",
		"llvm-build/lib/cmake/mlir",
	)
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
