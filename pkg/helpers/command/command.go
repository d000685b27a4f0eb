// Gameshelf
// Copyright (c) 2026 The Gameshelf Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Gameshelf.
//
// Gameshelf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gameshelf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gameshelf.  If not, see <http://www.gnu.org/licenses/>.

// Package command wraps os/exec behind an interface so mount tools, game
// launches and URL openers can be exercised in tests without spawning
// real processes.
package command

import (
	"context"
	"os/exec"
)

// StartOptions configures how a detached process is started.
type StartOptions struct {
	// HideWindow suppresses the console window (Windows only).
	HideWindow bool
	// Dir sets the working directory of the new process.
	Dir string
}

// Executor runs external programs.
type Executor interface {
	// Run executes a command and waits for it to complete.
	Run(ctx context.Context, name string, args ...string) error

	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// CombinedOutput runs a command and returns stdout and stderr together.
	// Mount tools report their diagnostics this way.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start starts a command without waiting for it to exit.
	Start(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor runs commands with os/exec.
type RealExecutor struct{}

var _ Executor = (*RealExecutor)(nil)

//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Start launches the command and returns once it is running. The process
// is killed if ctx is cancelled, so callers starting long-lived programs
// should pass a context that outlives them.
//
//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) Start(ctx context.Context, opts StartOptions, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	applyStartOptions(cmd, opts)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		// reap the child so it does not linger as a zombie
		_ = cmd.Wait()
	}()
	return nil
}
