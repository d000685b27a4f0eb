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

// Package mount attaches disc images before a game launches and detaches
// them afterwards. At most one image is tracked at a time.
package mount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/gameshelf/gameshelf/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

var (
	ErrImageNotFound  = errors.New("disc image not found")
	ErrAlreadyMounted = errors.New("a disc image is already mounted")
)

// ToolError is returned when the platform mount utility fails. Output holds
// whatever the tool printed.
type ToolError struct {
	Err    error
	Tool   string
	Output string
}

func (e *ToolError) Error() string {
	msg := e.Tool + " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	switch s {
	case Mounted:
		return "mounted"
	default:
		return "unmounted"
	}
}

// Volume describes an attached image. Token is what the user sees (a drive
// letter or mount point); Device is the tool's handle for detaching.
type Volume struct {
	Image  string
	Token  string
	Device string
}

// Tool drives a platform mount utility.
type Tool interface {
	Mount(ctx context.Context, image string) (Volume, error)
	Dismount(ctx context.Context, vol Volume) error
}

// Service is the mount state machine: Unmounted until Mount succeeds,
// Mounted until Dismount succeeds.
type Service struct {
	tool    Tool
	current *Volume
	mu      syncutil.Mutex
}

func NewService(tool Tool) *Service {
	return &Service{tool: tool}
}

// Mount attaches image and returns its token. It fails with
// ErrAlreadyMounted if an image is already attached; the caller decides
// whether to dismount first. A tool failure leaves the service Unmounted.
func (s *Service) Mount(ctx context.Context, image string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return "", fmt.Errorf("%w: %s at %s", ErrAlreadyMounted, s.current.Image, s.current.Token)
	}
	if !helpers.FileExists(image) {
		return "", fmt.Errorf("%w: %s", ErrImageNotFound, image)
	}

	vol, err := s.tool.Mount(ctx, image)
	if err != nil {
		log.Error().Err(err).Str("image", image).Msg("failed to mount disc image")
		return "", err
	}
	vol.Image = image
	s.current = &vol

	log.Info().Str("image", image).Str("token", vol.Token).Msg("mounted disc image")
	return vol.Token, nil
}

// Dismount detaches the current image. It reports false with no error when
// nothing is mounted. On failure the image stays tracked so the caller can
// retry.
func (s *Service) Dismount(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		log.Debug().Msg("no disc image mounted, nothing to dismount")
		return false, nil
	}

	if err := s.tool.Dismount(ctx, *s.current); err != nil {
		log.Error().Err(err).Str("token", s.current.Token).Msg("failed to dismount disc image")
		return false, err
	}

	log.Info().Str("image", s.current.Image).Str("token", s.current.Token).Msg("dismounted disc image")
	s.current = nil
	return true, nil
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Unmounted
	}
	return Mounted
}

// Token returns the mount token of the attached image.
func (s *Service) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Token, true
}

// Image returns the path of the attached image.
func (s *Service) Image() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Image, true
}
