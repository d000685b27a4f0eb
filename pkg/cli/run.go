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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/gameshelf/gameshelf/pkg/library"
	"github.com/gameshelf/gameshelf/pkg/steam"
	"github.com/gameshelf/gameshelf/pkg/steam/steamweb"
)

const (
	workshopPageSize = 20
	maxSuggestions   = 3
)

var ErrNoAction = errors.New("no action given, see -help")

// App is what the flag actions operate on.
type App struct {
	Out     io.Writer
	Err     io.Writer
	Cfg     *config.Instance
	Lib     *library.Library
	Web     *steamweb.Client
	Locator *steam.Locator
}

// Post runs every action flag that was passed, settings first. Nothing
// passed at all is ErrNoAction.
//
//nolint:gocyclo // one branch per flag
func (f *Flags) Post(ctx context.Context, app *App) error {
	acted, err := f.applySettings(app)
	if err != nil {
		return err
	}

	switch {
	case *f.AddTitle != "":
		err = f.add(app)
	case f.isFlagPassed("delete"):
		err = f.delete(app)
	case *f.ImportSteam:
		err = importSteam(ctx, app)
	case *f.ImportShortcuts:
		err = importShortcuts(ctx, app)
	case *f.Scan != "":
		err = f.scan(ctx, app)
	case f.isFlagPassed("launch"):
		err = app.Lib.Launch(ctx, *f.Launch)
		if err == nil {
			_, _ = fmt.Fprintln(app.Out, "Launched.")
		}
	case f.isFlagPassed("status"):
		err = f.status(ctx, app)
	case *f.Search != "" || f.isFlagPassed("search"):
		err = f.search(app)
	case *f.Friends:
		err = friends(ctx, app)
	case *f.Workshop != "":
		err = f.workshop(ctx, app)
	case *f.ExportCSV != "":
		err = f.exportCSV(app)
	case *f.List:
		printGames(app.Out, indexed(app.Lib.Games()))
	default:
		if !acted {
			return ErrNoAction
		}
	}
	return err
}

func (f *Flags) applySettings(app *App) (bool, error) {
	changed := false
	if *f.SetTheme != "" {
		if err := app.Cfg.SetThemePreference(*f.SetTheme); err != nil {
			return false, err
		}
		changed = true
	}
	if *f.SetArtwork != "" {
		if err := app.Cfg.SetArtworkDisplayPreference(*f.SetArtwork); err != nil {
			return false, err
		}
		changed = true
	}
	if f.isFlagPassed("set-api-key") {
		app.Cfg.SetSteamWebAPIKey(strings.TrimSpace(*f.SetAPIKey))
		changed = true
	}
	if f.isFlagPassed("set-steam-dir") {
		app.Cfg.SetSteamInstallDir(strings.TrimSpace(*f.SetSteamDir))
		changed = true
	}
	if f.isFlagPassed("set-user-id") {
		id := strings.TrimSpace(*f.SetUserID)
		if id != "" && !steam.IsSteamID64(id) {
			return false, fmt.Errorf("%w: %q is not a SteamID64", config.ErrInvalidOption, id)
		}
		app.Cfg.SetSteamUserID(id)
		changed = true
	}
	if f.isFlagPassed("set-catalog-dir") {
		app.Cfg.SetConfigFileLocation(strings.TrimSpace(*f.SetCatalogDir))
		changed = true
	}
	if !changed {
		return false, nil
	}
	if err := app.Cfg.Save(); err != nil {
		return false, fmt.Errorf("failed to save config: %w", err)
	}
	_, _ = fmt.Fprintln(app.Out, "Settings saved.")
	return true, nil
}

func (f *Flags) add(app *App) error {
	r := catalog.GameRecord{
		Title:           *f.AddTitle,
		Platform:        *f.AddPlatform,
		Genre:           *f.AddGenre,
		ExecutablePath:  *f.AddExe,
		LaunchArguments: *f.AddArgs,
		ISOPaths:        splitList(*f.AddISO),
	}
	idx, err := app.Lib.Add(r)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.Out, "Added %q at index %d.\n", r.Title, idx)
	return nil
}

func (f *Flags) delete(app *App) error {
	removed, err := app.Lib.Delete(*f.Delete)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.Out, "Deleted %q.\n", removed.Title)
	return nil
}

func importSteam(ctx context.Context, app *App) error {
	records, err := app.Lib.DiscoverSteamGames(ctx)
	if err != nil {
		return err
	}
	added, err := app.Lib.ImportSteamGames(records)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.Out, "Found %d Steam games, imported %d new.\n", len(records), added)
	return nil
}

func importShortcuts(ctx context.Context, app *App) error {
	records, err := app.Lib.DiscoverShortcutGames(ctx)
	if err != nil {
		return err
	}
	added, err := app.Lib.ImportShortcutGames(records)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.Out, "Found %d shortcuts, imported %d new.\n", len(records), added)
	return nil
}

func (f *Flags) scan(ctx context.Context, app *App) error {
	roots := splitList(*f.Scan)
	if len(roots) == 1 && strings.EqualFold(roots[0], "default") {
		roots = library.DefaultScanRoots()
	}

	found, err := app.Lib.ScanExecutables(ctx, roots, library.ScanOptions{},
		func(p library.ScanProgress) {
			_, _ = fmt.Fprintf(app.Err, "\rScanned %d directories, %d candidates (%s)",
				p.Dirs, p.Found, p.Elapsed.Round(100*time.Millisecond))
		})
	_, _ = fmt.Fprintln(app.Err)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(app.Err, "Scan cancelled, showing partial results.")
	}

	for _, p := range found {
		_, _ = fmt.Fprintln(app.Out, p)
	}
	if !*f.AddFound {
		return nil
	}
	added, err := app.Lib.AddExecutables(found)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.Out, "Added %d games.\n", added)
	return nil
}

func (f *Flags) status(ctx context.Context, app *App) error {
	st, err := app.Lib.Status(ctx, *f.Status)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(app.Out, st)
	return nil
}

func (f *Flags) search(app *App) error {
	field, err := catalog.ParseField(*f.Field)
	if err != nil {
		return err
	}
	matches, err := app.Lib.Search(*f.Search, field)
	if err != nil {
		return err
	}
	if len(matches) > 0 || *f.Search == "" {
		printGames(app.Out, matches)
		return nil
	}

	suggestions, err := app.Lib.Suggest(*f.Search, field, maxSuggestions)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		_, _ = fmt.Fprintf(app.Out, "No games match %q.\n", *f.Search)
		return nil
	}
	_, _ = fmt.Fprintf(app.Out, "No games match %q. Did you mean:\n", *f.Search)
	near := make([]catalog.Match, 0, len(suggestions))
	for _, sg := range suggestions {
		near = append(near, sg.Match)
	}
	printGames(app.Out, near)
	return nil
}

func friends(ctx context.Context, app *App) error {
	if !app.Web.HasCredential() {
		_, _ = fmt.Fprintln(app.Err, "No Steam Web API key configured, see -set-api-key.")
		return nil
	}

	userID := app.Cfg.SteamUserID()
	if userID == "" {
		if install, err := app.Locator.FindInstallPath(); err == nil {
			if userdata, ok := steam.FindUserdataPath(install); ok {
				userID, _ = steam.CurrentUserID(userdata)
			}
		}
	}
	if userID == "" {
		_, _ = fmt.Fprintln(app.Err, "No Steam user id known, see -set-user-id.")
		return nil
	}

	w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tPLAYING")
	for _, p := range app.Web.FriendsWithPresence(ctx, userID) {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Status, p.CurrentGame)
	}
	return w.Flush() //nolint:wrapcheck // terminal output
}

func (f *Flags) workshop(ctx context.Context, app *App) error {
	if !app.Web.HasCredential() {
		_, _ = fmt.Fprintln(app.Err, "No Steam Web API key configured, see -set-api-key.")
		return nil
	}

	page := app.Web.SearchWorkshopItems(ctx, *f.Workshop, *f.Query, *f.Page, workshopPageSize)
	w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tSUBSCRIPTIONS\tTAGS")
	for _, it := range page.Items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.ID, it.Title, it.Subscriptions, strings.Join(it.Tags, ", "))
	}
	if err := w.Flush(); err != nil {
		return err //nolint:wrapcheck // terminal output
	}
	_, _ = fmt.Fprintf(app.Out, "Page %d, %d items total.\n", *f.Page, page.Total)
	return nil
}

func (f *Flags) exportCSV(app *App) error {
	path := *f.ExportCSV
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	//nolint:gosec // G304: path comes from the user
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	games := app.Lib.Games()
	if err := catalog.ExportCSV(file, games); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	_, _ = fmt.Fprintf(app.Out, "Exported %d games to %s.\n", len(games), path)
	return nil
}

func indexed(games []catalog.GameRecord) []catalog.Match {
	out := make([]catalog.Match, len(games))
	for i := range games {
		out[i] = catalog.Match{Index: i, Record: games[i]}
	}
	return out
}

func printGames(out io.Writer, matches []catalog.Match) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tTITLE\tPLATFORM\tGENRE")
	for _, m := range matches {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.Index, m.Record.Title, m.Record.Platform, m.Record.Genre)
	}
	_ = w.Flush()
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
