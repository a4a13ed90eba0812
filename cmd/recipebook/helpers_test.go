package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// newTestEnv returns an Environment over in-memory streams.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    time.Now,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// run invokes runMain with the program name prepended.
func run(env *Environment, args ...string) int {
	return runMain(append([]string{"recipebook"}, args...), env)
}

// fakeConverter writes an executable shell script standing in for
// ebook-convert. Skips on Windows.
func fakeConverter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake converter is a shell script")
	}
	path := filepath.Join(t.TempDir(), "ebook-convert")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700); err != nil { // #nosec G306 -- test executable
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// dirNames lists the entry names of dir.
func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// writeLogConfig writes a config file that only sets log.level.
func writeLogConfig(t *testing.T, level string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipebook.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: "+level+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
