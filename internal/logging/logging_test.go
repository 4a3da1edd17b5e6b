package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "log", "calmclock.log")

	closer := Setup(path, slog.LevelInfo)

	slog.Debug("hidden")
	slog.Info("session completed", "type", "focus")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, `"msg":"session completed"`)
	assert.Contains(t, out, `"type":"focus"`)
	assert.False(t, strings.Contains(out, "hidden"))
}
