package handoff

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to create executable: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	foo := writeExecutable(t, dir, "foo")
	t.Setenv("PATH", dir)

	cmd, err := Resolve([]string{"foo", "bar", "baz"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cmd.Path != foo {
		t.Errorf("Path = %q, want %q", cmd.Path, foo)
	}
	want := []string{"foo", "bar", "baz"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestResolveErrors(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no args", nil, ErrNoCommand},
		{"empty name", []string{""}, ErrNoCommand},
		{"not found", []string{"lomiri-camera-app-does-not-exist"}, exec.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestExecHelper is run as a subprocess by TestExecReplacesProcess.
func TestExecHelper(t *testing.T) {
	if os.Getenv("HANDOFF_WANT_HELPER") != "1" {
		return
	}
	cmd, err := Resolve([]string{"echo", "bar", "baz"})
	if err != nil {
		os.Exit(3)
	}
	_ = Exec(cmd)
	os.Exit(4)
}

func TestExecReplacesProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process image replacement is not available on windows")
	}
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not found")
	}

	c := exec.Command(os.Args[0], "-test.run=^TestExecHelper$")
	c.Env = append(os.Environ(), "HANDOFF_WANT_HELPER=1")
	out, err := c.Output()
	if err != nil {
		t.Fatalf("helper failed: %v (output %q)", err, out)
	}
	// Nothing from the test binary follows the successor's output
	if got := string(out); got != "bar baz\n" {
		t.Errorf("output = %q, want %q", got, "bar baz\n")
	}
}
