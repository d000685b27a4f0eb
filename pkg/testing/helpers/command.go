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

package helpers

import (
	"github.com/gameshelf/gameshelf/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockExecutor returns a MockExecutor where every call succeeds unless
// a test overrides it. Clear ExpectedCalls first to assert exact commands:
//
//	exec := helpers.NewMockExecutor()
//	exec.ExpectedCalls = nil
//	exec.On("Start", mock.Anything, mock.Anything, "xdg-open", []string{"steam://rungameid/400"}).Return(nil)
func NewMockExecutor() *mocks.MockExecutor {
	m := &mocks.MockExecutor{}
	m.On("Run", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	m.On("Output", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return([]byte{}, nil).Maybe()
	m.On("CombinedOutput", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return([]byte{}, nil).Maybe()
	m.On("Start", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	return m
}
