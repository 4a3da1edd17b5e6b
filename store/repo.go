package store

import (
	"encoding/json"
	"log/slog"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/models"
)

// Keys of the persisted records.
const (
	SettingsKey = "calmclock_settings"
	LogsKey     = "calmclock_logs"
)

// Repo reads and writes the settings and session log records. Reads fail
// soft: an absent or corrupt record yields the defaults rather than an error.
type Repo struct {
	kv KV
}

// NewRepo returns a Repo backed by kv.
func NewRepo(kv KV) *Repo {
	return &Repo{kv: kv}
}

// Settings returns the stored settings merged over the defaults.
func (r *Repo) Settings() config.Settings {
	s := config.DefaultSettings()

	b, err := r.kv.Get(SettingsKey)
	if err != nil {
		slog.Warn("unable to read settings, using defaults", slog.Any("error", err))
		return s
	}

	if len(b) == 0 {
		return s
	}

	// fields missing from the record keep their default values
	merged := s
	if err := json.Unmarshal(b, &merged); err != nil {
		slog.Warn("corrupt settings record, using defaults", slog.Any("error", err))
		return s
	}

	return merged.Normalize()
}

// SaveSettings persists s.
func (r *Repo) SaveSettings(s config.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return r.kv.Set(SettingsKey, b)
}

// Logs returns the session log in chronological order.
func (r *Repo) Logs() []models.Entry {
	b, err := r.kv.Get(LogsKey)
	if err != nil {
		slog.Warn("unable to read session log", slog.Any("error", err))
		return []models.Entry{}
	}

	if len(b) == 0 {
		return []models.Entry{}
	}

	var entries []models.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		slog.Warn("corrupt session log, starting empty", slog.Any("error", err))
		return []models.Entry{}
	}

	if entries == nil {
		entries = []models.Entry{}
	}

	return entries
}

// SaveLogs replaces the session log with entries.
func (r *Repo) SaveLogs(entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return r.kv.Set(LogsKey, b)
}
