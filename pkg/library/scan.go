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

package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/gameshelf/gameshelf/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

// skippedDirs are directory names that never hold games. They are matched
// case-insensitively against each directory below a scan root, so a root
// that itself lives under AppData is still scanned.
var skippedDirs = map[string]struct{}{
	"windows":          {},
	"programdata":      {},
	"appdata":          {},
	"temp":             {},
	"tmp":              {},
	"system32":         {},
	"syswow64":         {},
	"drivers":          {},
	"driverstore":      {},
	"winsxs":           {},
	"logs":             {},
	"cache":            {},
	"downloads":        {},
	"common files":     {},
	"microsoft office": {},
	"google":           {},
	"all users":        {},
	"$recycle.bin":     {},
	"node_modules":     {},
}

// skippedExecutables are well-known programs that are not games.
var skippedExecutables = map[string]struct{}{
	"chrome.exe":              {},
	"firefox.exe":             {},
	"msedge.exe":              {},
	"powerpnt.exe":            {},
	"winword.exe":             {},
	"excel.exe":               {},
	"notepad.exe":             {},
	"calc.exe":                {},
	"explorer.exe":            {},
	"cmd.exe":                 {},
	"python.exe":              {},
	"py.exe":                  {},
	"code.exe":                {},
	"steam.exe":               {},
	"epicgameslauncher.exe":   {},
	"goggalaxy.exe":           {},
	"origin.exe":              {},
	"uplay.exe":               {},
	"battle.net.exe":          {},
	"riotclientservices.exe":  {},
	"install.exe":             {},
	"setup.exe":               {},
	"update.exe":              {},
	"unins000.exe":            {},
	"uninstall.exe":           {},
	"crashreporter.exe":       {},
	"unitycrashhandler64.exe": {},
	"vc_redist.x64.exe":       {},
	"vc_redist.x86.exe":       {},
	"dxsetup.exe":             {},
	"ue4prereqsetup_x64.exe":  {},
	"easyanticheat_setup.exe": {},
}

// ScanOptions tunes ScanExecutables. The zero value scans for .exe files
// with one worker per CPU.
type ScanOptions struct {
	// Extensions are matched case-insensitively, including the dot.
	Extensions []string
	Workers    int
}

func (o ScanOptions) extensions() []string {
	if len(o.Extensions) == 0 {
		return []string{".exe"}
	}
	exts := make([]string, len(o.Extensions))
	for i, e := range o.Extensions {
		exts[i] = strings.ToLower(e)
	}
	return exts
}

// ScanProgress is reported after every directory visited.
type ScanProgress struct {
	Current string
	Dirs    int64
	Found   int64
	Elapsed time.Duration
}

// ScanExecutables walks roots looking for game executables. Roots that do
// not exist are skipped. The scan stops at the next directory once ctx is
// cancelled and returns what it found so far along with ctx's error.
// progress, if set, is never called concurrently.
func (l *Library) ScanExecutables(
	ctx context.Context,
	roots []string,
	opts ScanOptions,
	progress func(ScanProgress),
) ([]string, error) {
	exts := opts.extensions()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := l.clock.Now()
	var (
		dirs    atomic.Int64
		found   atomic.Int64
		mu      syncutil.Mutex
		results []string
	)

	report := func(current string) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(ScanProgress{
			Current: current,
			Dirs:    dirs.Load(),
			Found:   found.Load(),
			Elapsed: l.clock.Since(start),
		})
	}

	conf := fastwalk.Config{Follow: false, NumWorkers: workers}

	var scanErr error
	for _, root := range collapseRoots(roots) {
		if err := ctx.Err(); err != nil {
			scanErr = err
			break
		}
		if !helpers.DirExists(root) {
			log.Debug().Str("root", root).Msg("scan root does not exist, skipping")
			continue
		}

		err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrPermission) {
					return nil
				}
				log.Debug().Err(err).Str("path", path).Msg("scan error, skipping")
				return nil
			}

			if d.IsDir() {
				if err := ctx.Err(); err != nil {
					return err //nolint:wrapcheck // returned to the caller as is
				}
				if path != root && isSkippedDir(d.Name()) {
					return fs.SkipDir
				}
				dirs.Inc()
				report(path)
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}
			if isCandidate(d.Name(), exts) {
				found.Inc()
				mu.Lock()
				results = append(results, path)
				mu.Unlock()
			}
			return nil
		})
		if err != nil {
			scanErr = err
			break
		}
	}

	mu.Lock()
	out := results
	mu.Unlock()
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}

	log.Info().
		Int("found", len(out)).
		Int64("dirs", dirs.Load()).
		Dur("elapsed", l.clock.Since(start)).
		Msg("executable scan finished")

	if scanErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(scanErr, ctxErr) {
			return out, ctxErr
		}
		return out, fmt.Errorf("scan failed: %w", scanErr)
	}
	return out, nil
}

// collapseRoots cleans roots and drops duplicates and roots nested inside
// another root. A nested root is kept when the walk of its parent would
// skip it.
func collapseRoots(roots []string) []string {
	cleaned := make([]string, 0, len(roots))
	seen := make(map[string]struct{}, len(roots))
	for _, r := range roots {
		if r == "" {
			continue
		}
		r = filepath.Clean(r)
		key := helpers.NormalizePathForComparison(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, r)
	}

	out := make([]string, 0, len(cleaned))
	for i, r := range cleaned {
		nested := false
		for j, parent := range cleaned {
			if i == j || !helpers.PathHasPrefix(r, parent) {
				continue
			}
			if !crossesSkippedDir(parent, r) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, r)
		}
	}
	return out
}

func crossesSkippedDir(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if isSkippedDir(part) {
			return true
		}
	}
	return false
}

func isSkippedDir(name string) bool {
	_, ok := skippedDirs[strings.ToLower(name)]
	return ok
}

func isCandidate(name string, exts []string) bool {
	lower := strings.ToLower(name)
	if _, skip := skippedExecutables[lower]; skip {
		return false
	}
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// DefaultScanRoots returns the usual install locations for this platform.
func DefaultScanRoots() []string {
	if runtime.GOOS == "windows" {
		return windowsScanRoots(os.Getenv)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return []string{}
	}
	return []string{
		filepath.Join(home, "Games"),
		filepath.Join(home, ".local", "share", "applications"),
	}
}

func windowsScanRoots(getenv func(string) string) []string {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}
	roots := []string{
		env("ProgramFiles", `C:\Program Files`),
		env("ProgramFiles(x86)", `C:\Program Files (x86)`),
	}
	if appData := getenv("APPDATA"); appData != "" {
		roots = append(roots, filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"))
	}
	if local := getenv("LOCALAPPDATA"); local != "" {
		roots = append(roots, filepath.Join(local, "Programs"))
	}
	return roots
}

// AddExecutables adds one record per path, titled after the file name.
// Paths already in the catalog are skipped. The catalog is saved once.
func (l *Library) AddExecutables(paths []string) (int, error) {
	added := 0
	for _, p := range paths {
		if _, exists := l.store.FindByExecutable(p); exists {
			log.Debug().Str("path", p).Msg("executable already in catalog, skipping")
			continue
		}
		base := filepath.Base(p)
		r := catalog.GameRecord{
			Title:          strings.TrimSuffix(base, filepath.Ext(base)),
			Platform:       PlatformPC,
			Genre:          UnknownGenre,
			ExecutablePath: p,
		}
		if _, err := l.store.Add(r); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("skipping executable")
			continue
		}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := l.store.Save(); err != nil {
		return added, err
	}
	return added, nil
}
