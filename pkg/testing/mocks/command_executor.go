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

package mocks

import (
	"context"

	"github.com/gameshelf/gameshelf/pkg/helpers/command"
	"github.com/stretchr/testify/mock"
)

// MockExecutor is a testify mock for command.Executor. Variadic arguments
// are recorded as a single []string.
//
//	exec := &MockExecutor{}
//	exec.On("CombinedOutput", mock.Anything, "hdiutil", []string{"detach", "/Volumes/X"}).Return([]byte{}, nil)
type MockExecutor struct {
	mock.Mock
}

var _ command.Executor = (*MockExecutor)(nil)

func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) error {
	called := m.Called(ctx, name, args)
	//nolint:wrapcheck // mock returns are passed through
	return called.Error(0)
}

func (m *MockExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	called := m.Called(ctx, name, args)
	out, _ := called.Get(0).([]byte)
	//nolint:wrapcheck // mock returns are passed through
	return out, called.Error(1)
}

func (m *MockExecutor) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	called := m.Called(ctx, name, args)
	out, _ := called.Get(0).([]byte)
	//nolint:wrapcheck // mock returns are passed through
	return out, called.Error(1)
}

func (m *MockExecutor) Start(ctx context.Context, opts command.StartOptions, name string, args ...string) error {
	called := m.Called(ctx, opts, name, args)
	//nolint:wrapcheck // mock returns are passed through
	return called.Error(0)
}
