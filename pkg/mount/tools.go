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

package mount

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers/command"
)

// DefaultTool returns the mount utility for the running OS.
func DefaultTool(exec command.Executor) Tool {
	return ToolFor(runtime.GOOS, exec)
}

// ToolFor returns the mount utility used on goos.
func ToolFor(goos string, exec command.Executor) Tool {
	switch goos {
	case "windows":
		return &PowerShellTool{exec: exec}
	case "darwin":
		return &HdiutilTool{exec: exec}
	default:
		return &UdisksTool{exec: exec}
	}
}

func toolError(tool string, out []byte, err error) *ToolError {
	return &ToolError{Tool: tool, Output: string(out), Err: err}
}

// PowerShellTool mounts images with the Storage module cmdlets on Windows.
type PowerShellTool struct {
	exec command.Executor
}

const powershell = "powershell.exe"

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func psArgs(script string) []string {
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

func (t *PowerShellTool) Mount(ctx context.Context, image string) (Volume, error) {
	script := fmt.Sprintf(
		"(Mount-DiskImage -ImagePath %s -PassThru | Get-Volume).DriveLetter",
		psQuote(image),
	)
	out, err := t.exec.CombinedOutput(ctx, powershell, psArgs(script)...)
	if err != nil {
		return Volume{}, toolError("Mount-DiskImage", out, err)
	}

	letter := strings.TrimSpace(string(out))
	if len(letter) != 1 {
		// the image is attached even without a single letter
		_ = t.Dismount(ctx, Volume{Device: image})
		return Volume{}, toolError("Mount-DiskImage", out, errors.New("no single drive letter assigned"))
	}
	return Volume{Token: strings.ToUpper(letter) + ":", Device: image}, nil
}

func (t *PowerShellTool) Dismount(ctx context.Context, vol Volume) error {
	script := "Dismount-DiskImage -ImagePath " + psQuote(vol.Device)
	out, err := t.exec.CombinedOutput(ctx, powershell, psArgs(script)...)
	if err != nil {
		return toolError("Dismount-DiskImage", out, err)
	}
	return nil
}

// UdisksTool attaches images as loop devices through udisks2, which works
// without root on desktop Linux.
type UdisksTool struct {
	exec command.Executor
}

const udisksctl = "udisksctl"

var (
	udisksLoopRe  = regexp.MustCompile(`as (/dev/\S+?)\.?\s*$`)
	udisksMountRe = regexp.MustCompile(`Mounted \S+ at (.+?)\.?\s*$`)
)

func (t *UdisksTool) Mount(ctx context.Context, image string) (Volume, error) {
	out, err := t.exec.CombinedOutput(ctx, udisksctl,
		"loop-setup", "--read-only", "--no-user-interaction", "-f", image)
	if err != nil {
		return Volume{}, toolError("udisksctl loop-setup", out, err)
	}
	m := udisksLoopRe.FindStringSubmatch(strings.TrimSpace(string(out)))
	if m == nil {
		return Volume{}, toolError("udisksctl loop-setup", out, errors.New("no loop device in output"))
	}
	device := m[1]

	out, err = t.exec.CombinedOutput(ctx, udisksctl, "mount", "--no-user-interaction", "-b", device)
	if err != nil {
		t.deleteLoop(ctx, device)
		return Volume{}, toolError("udisksctl mount", out, err)
	}
	m = udisksMountRe.FindStringSubmatch(strings.TrimSpace(string(out)))
	if m == nil {
		t.deleteLoop(ctx, device)
		return Volume{}, toolError("udisksctl mount", out, errors.New("no mount point in output"))
	}

	return Volume{Token: m[1], Device: device}, nil
}

func (t *UdisksTool) Dismount(ctx context.Context, vol Volume) error {
	out, err := t.exec.CombinedOutput(ctx, udisksctl, "unmount", "--no-user-interaction", "-b", vol.Device)
	if err != nil {
		return toolError("udisksctl unmount", out, err)
	}
	out, err = t.exec.CombinedOutput(ctx, udisksctl, "loop-delete", "--no-user-interaction", "-b", vol.Device)
	if err != nil {
		return toolError("udisksctl loop-delete", out, err)
	}
	return nil
}

func (t *UdisksTool) deleteLoop(ctx context.Context, device string) {
	_, _ = t.exec.CombinedOutput(ctx, udisksctl, "loop-delete", "--no-user-interaction", "-b", device)
}

// HdiutilTool attaches images on macOS.
type HdiutilTool struct {
	exec command.Executor
}

const hdiutil = "hdiutil"

func (t *HdiutilTool) Mount(ctx context.Context, image string) (Volume, error) {
	out, err := t.exec.CombinedOutput(ctx, hdiutil, "attach", "-nobrowse", image)
	if err != nil {
		return Volume{}, toolError("hdiutil attach", out, err)
	}

	// each line is "<device>\t<content hint>\t<mount point>". The first
	// line is the whole disk, which is what detach wants.
	var disk string
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		if disk == "" {
			disk = fields[0]
		}
		if idx := strings.Index(line, "/Volumes/"); idx >= 0 {
			return Volume{Token: strings.TrimSpace(line[idx:]), Device: disk}, nil
		}
	}
	if disk != "" {
		_ = t.Dismount(ctx, Volume{Device: disk})
	}
	return Volume{}, toolError("hdiutil attach", out, errors.New("no mount point in output"))
}

func (t *HdiutilTool) Dismount(ctx context.Context, vol Volume) error {
	out, err := t.exec.CombinedOutput(ctx, hdiutil, "detach", vol.Device)
	if err != nil {
		return toolError("hdiutil detach", out, err)
	}
	return nil
}
