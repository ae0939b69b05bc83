package runner

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachsnow/laserfingers/internal/history"
	"github.com/zachsnow/laserfingers/internal/migrate"
	"github.com/zachsnow/laserfingers/internal/parser"
)

const legacyFile = `{
  "lasers": [
    {
      "id": "sweep-1",
      "kind": {
        "type": "sweeper",
        "sweeper": {
          "start": {"x": 0, "y": 0},
          "end": {"x": 10, "y": 0},
          "sweepSeconds": 3
        }
      }
    }
  ]
}
`

const brokenFile = `{
  "lasers": [
    {"id": "bad", "kind": {"type": "beam"}}
  ]
}
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRunner(hist history.Backend) *Runner {
	steps := migrate.Chain(parser.NewParser(testLogger()), true)
	return New(testLogger(), steps, hist)
}

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunner_MissingDirectoryIsFatal(t *testing.T) {
	_, err := testRunner(nil).Run(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels directory not found")
}

func TestRunner_EmptyCorpusIsFatal(t *testing.T) {
	_, err := testRunner(nil).Run(t.TempDir())
	require.ErrorIs(t, err, ErrNoLevels)
}

func TestRunner_MigratesAndAggregates(t *testing.T) {
	dir := t.TempDir()
	legacy := writeLevel(t, dir, "level-1.json", legacyFile)
	writeLevel(t, dir, "level-2.json", brokenFile)
	writeLevel(t, dir, "notes.txt", "not a level")

	summary, err := testRunner(nil).Run(dir)
	require.NoError(t, err, "per-file failures must not abort the batch")

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Migrated)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 2)

	assert.Equal(t, OutcomeMigrated, summary.Results[0].Outcome)
	assert.Contains(t, summary.Results[0].ChangedSteps, migrate.StepUnifyKinds)
	assert.Equal(t, OutcomeFailed, summary.Results[1].Outcome)
	require.Error(t, summary.Results[1].Err)
	assert.ErrorIs(t, summary.Results[1].Err, parser.ErrUnknownKind)

	migrated, err := os.ReadFile(legacy)
	require.NoError(t, err)
	assert.NotContains(t, string(migrated), `"kind"`)
	assert.Contains(t, string(migrated), `"endpoints"`)
}

func TestRunner_FailedFileIsLeftUntouched(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "ok.json", legacyFile)
	broken := writeLevel(t, dir, "zz-broken.json", brokenFile)

	summary, err := testRunner(nil).Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)

	after, err := os.ReadFile(broken)
	require.NoError(t, err)
	assert.Equal(t, brokenFile, string(after))
}

func TestRunner_AlreadyMigratedIsNotRewritten(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "level.json", legacyFile)

	_, err := testRunner(nil).Run(dir)
	require.NoError(t, err)
	first, err := os.Stat(path)
	require.NoError(t, err)

	summary, err := testRunner(nil).Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Migrated)

	second, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, first.ModTime(), second.ModTime(), "skipped files must not be rewritten")
}

func TestRunner_WalksNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "world-2")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeLevel(t, dir, "a.json", legacyFile)
	writeLevel(t, sub, "b.JSON", legacyFile)

	summary, err := testRunner(nil).Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Migrated)
}

func TestRunner_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "ok.json", legacyFile)
	writeLevel(t, dir, "zz-broken.json", brokenFile)

	hist := history.NewMemoryBackend()
	summary, err := testRunner(hist).Run(dir)
	require.NoError(t, err)

	require.Len(t, hist.Runs, 1)
	run := hist.Runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Contains(t, run.Steps, migrate.StepUnifyKinds)
	assert.Equal(t, summary.Migrated, run.Migrated)
	assert.Equal(t, summary.Failed, run.Failed)

	require.Len(t, hist.Results, 2)
	assert.Equal(t, run.ID, hist.Results[0].RunID)
	assert.Equal(t, string(OutcomeMigrated), hist.Results[0].Outcome)
	assert.Equal(t, string(OutcomeFailed), hist.Results[1].Outcome)
	assert.Contains(t, string(hist.Results[1].Detail), "beam")
}
