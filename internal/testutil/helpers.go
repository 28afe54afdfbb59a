// Package testutil holds helpers shared by the package tests
package testutil

import (
	"bytes"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes terminal escape sequences so rendered output can be compared as text
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits rendered output into its plain-text lines
func Lines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// CaptureOutput captures stdout during the execution of the provided function
func CaptureOutput(fn func()) string {
	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		return ""
	}
	os.Stdout = w

	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outCh <- buf.String()
	}()

	fn()

	os.Stdout = oldStdout
	w.Close()

	return <-outCh
}

// TempConfigDir points XDG_CONFIG_HOME at a fresh directory for the duration
// of the test and returns it. Config env overrides are cleared.
func TempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("LAUNCHDECK_CODE", "")
	t.Setenv("LAUNCHDECK_THEME", "")
	return dir
}

// TempFile writes content to name inside a test temp dir and returns its path
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SeededRand returns a deterministic random source
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
