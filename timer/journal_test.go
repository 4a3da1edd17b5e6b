package timer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/models"
	"github.com/ayoisaiah/calmclock/internal/testutil"
	"github.com/ayoisaiah/calmclock/store"
)

type exportTest struct {
	name   string
	output []byte
}

func (e exportTest) Output() ([]byte, string) {
	return e.output, e.name
}

func fixedEntries() []models.Entry {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	return []models.Entry{
		{
			ID:          "8d3c2f9e-1f0a-4a57-9b55-0f5f3c1d2e01",
			Type:        models.Focus,
			Note:        "wrote the parser",
			Start:       start.UnixMilli(),
			End:         start.Add(25 * time.Minute).UnixMilli(),
			DurationSec: 1500,
		},
		{
			ID:          "8d3c2f9e-1f0a-4a57-9b55-0f5f3c1d2e02",
			Type:        models.ShortBreak,
			Start:       start.Add(25 * time.Minute).UnixMilli(),
			End:         start.Add(30 * time.Minute).UnixMilli(),
			DurationSec: 300,
		},
	}
}

func TestAttachNoteTargetsMostRecentEntry(t *testing.T) {
	h := newHarness(t, shortSettings())
	p := &fakePrompt{}

	h.finish()
	h.finish()

	// interaction that does not log anything
	h.timer.Start()
	h.run(3)
	h.timer.Pause()
	h.timer.Reset()
	h.timer.SetType(models.LongBreak)

	require.NoError(t, h.timer.AttachNote("  reviewed PRs  ", p))

	logs := h.repo.Logs()
	require.Len(t, logs, 2)
	assert.Empty(t, logs[0].Note)
	assert.Equal(t, "reviewed PRs", logs[1].Note)
	assert.Equal(t, []string{NoticeNoteSaved}, p.notices)
}

func TestAttachNoteOnlyOnce(t *testing.T) {
	h := newHarness(t, shortSettings())
	p := &fakePrompt{}

	h.finish()

	require.NoError(t, h.timer.AttachNote("first", p))
	require.NoError(t, h.timer.AttachNote("second", p))

	logs := h.repo.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "first", logs[0].Note)
	assert.Equal(t, []string{NoticeNoteSaved, NoticeNoteExists}, p.notices)
}

func TestAttachNoteFallsBackToLastEntry(t *testing.T) {
	repo := store.NewRepo(store.NewMemory())
	require.NoError(t, repo.SaveSettings(config.DefaultSettings()))

	entries := fixedEntries()
	entries[0].Note = ""
	require.NoError(t, repo.SaveLogs(entries))

	h := newHarnessWithRepo(repo)
	require.Empty(t, h.timer.LastLoggedID())

	require.NoError(t, h.timer.AttachNote("stretch", &fakePrompt{}))

	logs := repo.Logs()
	assert.Empty(t, logs[0].Note)
	assert.Equal(t, "stretch", logs[1].Note)
}

func TestAttachNoteNoop(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		h := newHarness(t, shortSettings())
		p := &fakePrompt{}

		h.finish()

		require.NoError(t, h.timer.AttachNote(" \t\n", p))
		assert.Empty(t, p.notices)
		assert.Empty(t, h.repo.Logs()[0].Note)
	})

	t.Run("empty log", func(t *testing.T) {
		h := newHarness(t, shortSettings())
		p := &fakePrompt{}

		require.NoError(t, h.timer.AttachNote("orphan", p))
		assert.Equal(t, []string{NoticeNoSession}, p.notices)
		assert.Empty(t, h.repo.Logs())
	})
}

func TestExport(t *testing.T) {
	h := newHarness(t, config.DefaultSettings())
	require.NoError(t, h.repo.SaveLogs(fixedEntries()))

	dir := t.TempDir()

	path, err := h.timer.Export(dir, &fakePrompt{})
	require.NoError(t, err)

	assert.Equal(
		t,
		filepath.Join(dir, "calmclock-logs-1704099600000.json"),
		path,
	)

	testutil.CompareGoldenFile(t, exportTest{
		name:   "export",
		output: testutil.ReadFile(t, path),
	})
}

func TestExportEmptyLog(t *testing.T) {
	h := newHarness(t, config.DefaultSettings())
	p := &fakePrompt{}

	dir := t.TempDir()

	path, err := h.timer.Export(dir, p)
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, []string{NoticeNoLogs}, p.notices)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExportUnwritableDir(t *testing.T) {
	h := newHarness(t, config.DefaultSettings())
	require.NoError(t, h.repo.SaveLogs(fixedEntries()))

	_, err := h.timer.Export(filepath.Join(t.TempDir(), "missing"), &fakePrompt{})

	assert.ErrorIs(t, err, errWriteExport)
}

func TestClear(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		h := newHarness(t, shortSettings())
		p := &fakePrompt{answer: true}

		require.NoError(t, h.timer.Clear(p))

		assert.Empty(t, p.asked)
		assert.Equal(t, []string{NoticeAlreadyEmpty}, p.notices)
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, shortSettings())
		p := &fakePrompt{answer: false}

		h.finish()
		id := h.timer.LastLoggedID()

		require.NoError(t, h.timer.Clear(p))

		assert.Equal(t, []string{ClearLogsQuestion}, p.asked)
		assert.Len(t, h.repo.Logs(), 1)
		assert.Equal(t, id, h.timer.LastLoggedID())
		assert.Equal(t, 1, h.timer.Stats().TodaySessions)
	})

	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t, shortSettings())
		p := &fakePrompt{answer: true}

		h.finish()

		require.NoError(t, h.timer.Clear(p))

		assert.Empty(t, h.repo.Logs())
		assert.Empty(t, h.timer.LastLoggedID())
		assert.Zero(t, h.timer.Stats().TodaySessions)
		assert.Equal(t, []string{NoticeLogsCleared}, p.notices)
	})
}

func TestLogsNewestFirst(t *testing.T) {
	h := newHarness(t, config.DefaultSettings())
	require.NoError(t, h.repo.SaveLogs(fixedEntries()))

	logs := h.timer.Logs()

	require.Len(t, logs, 2)
	assert.Equal(t, models.ShortBreak, logs[0].Type)
	assert.Equal(t, models.Focus, logs[1].Type)

	assert.Equal(t, models.Focus, h.repo.Logs()[0].Type, "stored order is unchanged")
	assert.Equal(t, logs, h.timer.Snapshot().Logs)
}
