package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/models"
)

func openStores(t *testing.T) map[string]KV {
	t.Helper()

	dir := t.TempDir()

	bolt, err := Open(config.DriverBolt, filepath.Join(dir, "calmclock.db"))
	require.NoError(t, err)

	sqlite, err := Open(config.DriverSQLite, filepath.Join(dir, "calmclock.sqlite"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = bolt.Close()
		_ = sqlite.Close()
	})

	return map[string]KV{
		"bolt":   bolt,
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, kv := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := kv.Get("missing")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, kv.Set("k", []byte("one")))
			require.NoError(t, kv.Set("k", []byte("two")))

			v, err = kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), v)

			require.NoError(t, kv.Delete("k"))

			v, err = kv.Get("k")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltSecondInstanceIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calmclock.db")

	first, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = first.Close() })

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errAlreadyRunning)
}

func TestRepoSettings(t *testing.T) {
	cases := []struct {
		Name   string
		Stored string
		Want   config.Settings
	}{
		{
			Name: "missing record uses defaults",
			Want: config.DefaultSettings(),
		},
		{
			Name:   "corrupt record uses defaults",
			Stored: `{"focusLen": 50,`,
			Want:   config.DefaultSettings(),
		},
		{
			Name:   "wrong shape uses defaults",
			Stored: `[1, 2, 3]`,
			Want:   config.DefaultSettings(),
		},
		{
			Name:   "partial record is merged over defaults",
			Stored: `{"focusLen": 50, "autoNext": true}`,
			Want: config.Settings{
				FocusLen:       50,
				ShortBreakLen:  5,
				LongBreakLen:   15,
				LongBreakEvery: 4,
				SoundEnabled:   true,
				AutoNext:       true,
			},
		},
		{
			Name:   "out of range values are clamped",
			Stored: `{"focusLen": 500, "longBreakEvery": 0}`,
			Want: config.Settings{
				FocusLen:       180,
				ShortBreakLen:  5,
				LongBreakLen:   15,
				LongBreakEvery: 4,
				SoundEnabled:   true,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			kv := NewMemory()

			if tc.Stored != "" {
				require.NoError(t, kv.Set(SettingsKey, []byte(tc.Stored)))
			}

			got := NewRepo(kv).Settings()

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepoSaveSettings(t *testing.T) {
	repo := NewRepo(NewMemory())

	s := config.Settings{
		FocusLen:       45,
		ShortBreakLen:  10,
		LongBreakLen:   20,
		LongBreakEvery: 3,
		SoundEnabled:   false,
		AutoNext:       true,
	}

	require.NoError(t, repo.SaveSettings(s))
	assert.Equal(t, s, repo.Settings())
}

func TestRepoLogs(t *testing.T) {
	kv := NewMemory()
	repo := NewRepo(kv)

	assert.Empty(t, repo.Logs())

	require.NoError(t, kv.Set(LogsKey, []byte("not json")))
	assert.NotNil(t, repo.Logs())
	assert.Empty(t, repo.Logs())

	require.NoError(t, kv.Set(LogsKey, []byte("null")))
	assert.NotNil(t, repo.Logs())

	entries := []models.Entry{
		{
			ID:          "a",
			Type:        models.Focus,
			Start:       1704100000000,
			End:         1704101500000,
			DurationSec: 1500,
		},
		{
			ID:          "b",
			Type:        models.ShortBreak,
			Start:       1704101500000,
			End:         1704101800000,
			DurationSec: 300,
			Note:        "stretched",
		},
	}

	require.NoError(t, repo.SaveLogs(entries))

	if diff := cmp.Diff(entries, repo.Logs()); diff != "" {
		t.Errorf("Logs() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, repo.SaveLogs(nil))

	raw, err := kv.Get(LogsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
