// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: command/command_test.go
// Summary: Exercises bash execution and cd handling against real processes.

package command_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrollsh/command"
)

func TestRunCapturesStdout(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "echo hello")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindOutput || len(res.Lines) != 1 || res.Lines[0] != "hello" {
		t.Fatalf("expected Output [hello], got %+v", res)
	}
}

func TestRunSplitsMultilineOutput(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "printf 'a\\n\\nb\\n'")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	want := []string{"a", "", "b"}
	if res.Kind != command.KindOutput || len(res.Lines) != len(want) {
		t.Fatalf("expected %v, got %+v", want, res)
	}
	for i, l := range want {
		if res.Lines[i] != l {
			t.Fatalf("line %d: expected %q, got %q", i, l, res.Lines[i])
		}
	}
}

func TestRunUsesExplicitWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := command.NewBashRunner()
	res, err := r.Run(dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindOutput || len(res.Lines) != 1 {
		t.Fatalf("expected single output line, got %+v", res)
	}
	// macOS tempdirs sit behind /private symlinks; compare resolved paths.
	got, _ := filepath.EvalSymlinks(res.Lines[0])
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Fatalf("expected pwd %q, got %q", want, got)
	}
}

func TestRunQuietSuccessIsEmpty(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "true")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindEmpty {
		t.Fatalf("expected Empty, got %+v", res)
	}
}

func TestRunFailureCarriesStderr(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindError || len(res.Lines) != 1 || res.Lines[0] != "oops" {
		t.Fatalf("expected Error [oops], got %+v", res)
	}
}

func TestRunFailureWithoutStderrReportsStatus(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "exit 7")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindError || len(res.Lines) != 1 {
		t.Fatalf("expected one error line, got %+v", res)
	}
	if !strings.Contains(res.Lines[0], "exit status 7") {
		t.Fatalf("expected exit status in error line, got %q", res.Lines[0])
	}
}

func TestRunMissingInterpreterIsInvocationFailure(t *testing.T) {
	r := command.NewBashRunner()
	r.Shell = "/nonexistent/bash"
	if _, err := r.Run(t.TempDir(), "echo hi"); err == nil {
		t.Fatal("expected invocation failure for missing interpreter")
	}
}

func TestCdRelativeResolvesAgainstTrackedDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	r := command.NewBashRunner()
	res, err := r.Run(dir, "cd sub")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindDirChanged || res.Dir != sub {
		t.Fatalf("expected DirChanged to %q, got %+v", sub, res)
	}
}

func TestCdNonexistentIsErrorNotFailure(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "cd /nonexistent-path-for-test")
	if err != nil {
		t.Fatalf("cd errors must be results, not invocation failures: %v", err)
	}
	if res.Kind != command.KindError || len(res.Lines) != 1 {
		t.Fatalf("expected one error line, got %+v", res)
	}
	if !strings.HasPrefix(res.Lines[0], "Failed to change directory") {
		t.Fatalf("unexpected error line %q", res.Lines[0])
	}
}

func TestCdToFileIsError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := command.NewBashRunner()
	res, err := r.Run(dir, "cd plain")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindError {
		t.Fatalf("expected Error for cd to file, got %+v", res)
	}
}

func TestCdDashTogglesPreviousDirectory(t *testing.T) {
	r := command.NewBashRunner()

	res, err := r.Run(t.TempDir(), "cd -")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindError || res.Lines[0] != "No previous directory" {
		t.Fatalf("expected no-previous-directory error, got %+v", res)
	}

	a := t.TempDir()
	b := t.TempDir()
	if res, _ = r.Run(a, "cd "+b); res.Kind != command.KindDirChanged {
		t.Fatalf("expected DirChanged, got %+v", res)
	}
	res, err = r.Run(b, "cd -")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindDirChanged || res.Dir != a {
		t.Fatalf("expected return to %q, got %+v", a, res)
	}
}

func TestCdBareGoesHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "cd")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindDirChanged || res.Dir != filepath.Clean(home) {
		t.Fatalf("expected DirChanged to home %q, got %+v", home, res)
	}
}

func TestBlankLineIsEmpty(t *testing.T) {
	r := command.NewBashRunner()
	res, err := r.Run(t.TempDir(), "   ")
	if err != nil {
		t.Fatalf("unexpected invocation failure: %v", err)
	}
	if res.Kind != command.KindEmpty {
		t.Fatalf("expected Empty for blank line, got %+v", res)
	}
}
