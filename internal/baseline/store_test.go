package baseline

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewFileStore(filepath.Join(t.TempDir(), "baseline.json"), logger)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	b := store.Load()
	require.NotNil(t, b)
	assert.Empty(t, b.Statuses)
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewFileStore(path, logger)

	b := store.Load()
	require.NotNil(t, b)
	assert.Empty(t, b.Statuses)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	statuses := map[string]domain.StatusLabel{
		"1001": domain.StatusFrozenInactive,
		"2002": domain.StatusActive,
		"9999": domain.StatusUnknown,
	}
	require.NoError(t, store.Save(statuses))

	b := store.Load()
	assert.Equal(t, statuses, b.Statuses)
	assert.False(t, b.Timestamp.IsZero())
}

func TestSave_OverwritesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(map[string]domain.StatusLabel{
		"1001": domain.StatusActive,
		"2002": domain.StatusActive,
	}))
	require.NoError(t, store.Save(map[string]domain.StatusLabel{
		"1001": domain.StatusFrozenPaused,
	}))

	b := store.Load()
	assert.Equal(t, map[string]domain.StatusLabel{
		"1001": domain.StatusFrozenPaused,
	}, b.Statuses)
}

func TestNewlyFrozen(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(map[string]domain.StatusLabel{
		"1001": domain.StatusActive,
		"2002": domain.StatusActive,
		"3003": domain.StatusFrozenInactive,
	}))

	current := map[string]domain.StatusLabel{
		"1001": domain.StatusFrozenDepleted, // transitioned
		"2002": domain.StatusActive,         // unchanged
		"3003": domain.StatusFrozenInactive, // already frozen before
		"4004": domain.StatusFrozenPaused,   // not in baseline
	}

	assert.Equal(t, []string{"1001"}, store.Load().NewlyFrozen(current))
}
