package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var cliEnv = []string{
	"ATNA_SYSTEM_NAME", "ATNA_HOSTNAME", "ATNA_FORMAT", "ATNA_INDENT",
	"ATNA_XML_DECLARATION", "ATNA_WORKERS", "LOG_LEVEL", "LOG_FORMAT", "ATNA_METRICS_FILE",
}

// isolate clears the environment Load reads and points HOME at a temp dir
// so neither the host env nor a real config file can interfere.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range cliEnv {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	home := t.TempDir()
	t.Setenv("HOME", home)

	orig := struct {
		output  string
		profile string
	}{flagOutput, flagProfile}
	t.Cleanup(func() {
		flagOutput = orig.output
		flagProfile = orig.profile
		appCfg = nil
		svc = nil
	})
	return home
}

// writeConfigFile writes ~/.atna/config.yaml under home.
func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".atna")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

// run executes the CLI with args and returns stdout and the command error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)

	var err error
	out := captureStdout(t, func() {
		_, err = root.ExecuteC()
	})
	return out, err
}
