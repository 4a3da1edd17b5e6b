package timer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/calmclock/internal/models"
)

// Notices shown when a journal action has nothing to act on.
const (
	NoticeNoSession     = "No session to attach a note to."
	NoticeNoteExists    = "This session already has a note."
	NoticeNoteSaved     = "Note saved."
	NoticeNoLogs        = "No logs to export yet."
	NoticeAlreadyEmpty  = "Log is already empty."
	NoticeLogsCleared   = "All logs deleted."
	exportFilePrefix    = "calmclock-logs-"
	exportFileExtension = ".json"
)

// Logs returns the session log, newest first.
func (t *Timer) Logs() []models.Entry {
	entries := t.repo.Logs()
	slices.Reverse(entries)

	return entries
}

// LastLoggedID is the ID of the entry logged by the last completion, if any.
func (t *Timer) LastLoggedID() string {
	return t.lastLoggedID
}

// AttachNote sets the note of the most recently completed entry. The entry
// logged by this timer is preferred; otherwise the last entry in the log is
// used. A note can only be set once.
func (t *Timer) AttachNote(text string, p Prompt) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	entries := t.repo.Logs()
	if len(entries) == 0 {
		p.Notice(NoticeNoSession)
		return nil
	}

	i := slices.IndexFunc(entries, func(e models.Entry) bool {
		return t.lastLoggedID != "" && e.ID == t.lastLoggedID
	})
	if i == -1 {
		i = len(entries) - 1
	}

	if entries[i].Note != "" {
		p.Notice(NoticeNoteExists)
		return nil
	}

	entries[i].Note = text

	if err := t.repo.SaveLogs(entries); err != nil {
		return errSaveLogs.Wrap(err)
	}

	p.Notice(NoticeNoteSaved)

	return nil
}

// Export writes the session log as indented JSON to a new file in dir and
// returns its path. Nothing is written if the log is empty.
func (t *Timer) Export(dir string, p Prompt) (string, error) {
	entries := t.repo.Logs()
	if len(entries) == 0 {
		p.Notice(NoticeNoLogs)
		return "", nil
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", errEncodeLogs.Wrap(err)
	}

	name := fmt.Sprintf(
		"%s%d%s",
		exportFilePrefix,
		t.now().UnixMilli(),
		exportFileExtension,
	)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return "", errWriteExport.Fmt(path).Wrap(err)
	}

	return path, nil
}

// Clear deletes every entry in the session log once the user confirms.
func (t *Timer) Clear(p Prompt) error {
	if len(t.repo.Logs()) == 0 {
		p.Notice(NoticeAlreadyEmpty)
		return nil
	}

	if !p.Confirm(ClearLogsQuestion) {
		return nil
	}

	if err := t.repo.SaveLogs([]models.Entry{}); err != nil {
		return errSaveLogs.Wrap(err)
	}

	t.lastLoggedID = ""
	t.refreshStats()

	p.Notice(NoticeLogsCleared)

	return nil
}
