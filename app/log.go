package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/calmclock/internal/models"
	"github.com/ayoisaiah/calmclock/internal/timeutil"
	"github.com/ayoisaiah/calmclock/internal/ui"
)

const (
	noSessionsMsg  = "No sessions found for the specified time range"
	tableTimeFmt   = "Jan 02, 2006 03:04 PM"
	tableHeaderNum = "#"
)

// filterSince keeps the entries that started at or after since. A zero since
// keeps everything.
func filterSince(entries []models.Entry, since time.Time) []models.Entry {
	if since.IsZero() {
		return entries
	}

	filtered := make([]models.Entry, 0, len(entries))

	for i := range entries {
		if !entries[i].StartTime().Before(since) {
			filtered = append(filtered, entries[i])
		}
	}

	return filtered
}

func logTableRows(entries []models.Entry, loc *time.Location) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{
		tableHeaderNum, "TYPE", "START", "END", "DURATION", "NOTE",
	})

	for i := range entries {
		e := &entries[i]

		typ := ui.Green(e.Type.Label())
		if e.Type != models.Focus {
			typ = ui.Cyan(e.Type.Label())
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			typ,
			e.StartTime().In(loc).Format(tableTimeFmt),
			e.EndTime().In(loc).Format(tableTimeFmt),
			timeutil.HumanDuration(e.DurationSec),
			e.Note,
		})
	}

	return rows
}

// printLog writes entries to w as a table or as indented JSON.
func printLog(w io.Writer, entries []models.Entry, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(entries) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	ui.PrintTable(logTableRows(entries, time.Local), w)

	return nil
}

// logAction handles the log command which lists completed sessions, newest
// first.
func logAction(ctx *cli.Context) error {
	var since time.Time

	if s := ctx.String("since"); s != "" {
		t, err := timeutil.FromStr(s)
		if err != nil {
			return errParseDate.Fmt("since").Wrap(err)
		}

		since = t
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	entries := filterSince(e.newTimer().Logs(), since)

	return printLog(os.Stdout, entries, ctx.Bool("json"))
}
