// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: command/command.go
// Summary: Bash command execution and result classification.

// Package command runs submitted lines in bash and classifies the
// outcome for the session: plain output, error output, nothing, or a
// directory change.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Kind classifies an executed command's outcome.
type Kind int

const (
	// KindEmpty means the command ran fine and produced no output.
	KindEmpty Kind = iota
	// KindOutput carries stdout lines to append verbatim.
	KindOutput
	// KindError carries diagnostic lines to append with an error marker.
	KindError
	// KindDirChanged moves the session's working directory to Dir.
	KindDirChanged
)

// Result is the classified outcome of one command line.
type Result struct {
	Kind  Kind
	Lines []string
	Dir   string
}

// Runner executes one command line against an explicit working
// directory. A non-nil error means the interpreter could not be invoked
// at all; a command that ran and failed is a KindError result instead.
type Runner interface {
	Run(dir, commandLine string) (Result, error)
}

// BashRunner executes command lines with `bash -c`. cd is intercepted in
// process: a child shell cannot move its parent, so the new directory is
// validated here and handed back for the session to track. No global
// process state (working directory, environment) is touched.
type BashRunner struct {
	// Shell is the interpreter binary, "bash" by default.
	Shell string

	prevDir string
}

// NewBashRunner returns a runner using bash from PATH.
func NewBashRunner() *BashRunner {
	return &BashRunner{Shell: "bash"}
}

// Run implements Runner.
func (r *BashRunner) Run(dir, commandLine string) (Result, error) {
	line := strings.TrimSpace(commandLine)
	if line == "" {
		return Result{Kind: KindEmpty}, nil
	}
	if line == "cd" || strings.HasPrefix(line, "cd ") {
		return r.changeDir(dir, line), nil
	}

	cmd := exec.Command(r.Shell, "-c", line)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// bash itself could not be started.
			return Result{}, err
		}
		lines := splitLines(stderr.String())
		if len(lines) == 0 {
			lines = []string{exitErr.Error()}
		}
		return Result{Kind: KindError, Lines: lines}, nil
	}
	lines := splitLines(stdout.String())
	if len(lines) == 0 {
		return Result{Kind: KindEmpty}, nil
	}
	return Result{Kind: KindOutput, Lines: lines}, nil
}

// changeDir resolves the cd target relative to the tracked directory.
func (r *BashRunner) changeDir(dir, line string) Result {
	target := strings.TrimSpace(strings.TrimPrefix(line, "cd"))
	switch target {
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return errorResult("Home directory not found")
		}
		return r.moveTo(dir, home)
	case "-":
		if r.prevDir == "" {
			return errorResult("No previous directory")
		}
		return r.moveTo(dir, r.prevDir)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return r.moveTo(dir, target)
}

func (r *BashRunner) moveTo(from, to string) Result {
	to = filepath.Clean(to)
	info, err := os.Stat(to)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to change directory: %v", err))
	}
	if !info.IsDir() {
		return errorResult(fmt.Sprintf("Failed to change directory: %s is not a directory", to))
	}
	r.prevDir = from
	return Result{Kind: KindDirChanged, Dir: to}
}

func errorResult(msg string) Result {
	return Result{Kind: KindError, Lines: []string{msg}}
}

// splitLines turns command output into scrollback lines: the trailing
// newline is dropped, interior blank lines are kept.
func splitLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
