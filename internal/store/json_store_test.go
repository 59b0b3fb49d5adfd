package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majkprpik/kina/internal/board"
)

func sampleBoard(t *testing.T) *board.Board {
	t.Helper()
	b := board.New(3, 2)
	_, err := b.TryInsert(board.Cell{X: 0, Y: 0}, board.Cell{X: 0, Y: 1})
	require.NoError(t, err)
	_, err = b.TryInsert(board.Cell{X: 2, Y: 0}, board.Cell{X: 1, Y: 0})
	require.NoError(t, err)
	return b
}

func TestSaveAndRestore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	s := NewJSONStore(dir, WithNow(func() time.Time { return now }))

	src := sampleBoard(t)
	path, err := s.Save(FromBoard(src))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20260301T123000Z_3x2.json"), path)

	snap, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, now.Equal(snap.SavedAt))
	assert.Equal(t, 4, snap.Covered())

	dst := board.New(1, 1)
	require.NoError(t, snap.Restore(dst))
	assert.Equal(t, src.String(), dst.String())
	assert.True(t, dst.IsValid())

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, path, latest)
}

func TestRestoreRejectsOverlap(t *testing.T) {
	snap := Snapshot{
		Width:  2,
		Height: 2,
		Dominoes: []board.Domino{
			{ID: 1, A: board.Cell{X: 0, Y: 0}, B: board.Cell{X: 1, Y: 0}},
			{ID: 2, A: board.Cell{X: 0, Y: 0}, B: board.Cell{X: 0, Y: 1}},
		},
	}
	b := sampleBoard(t)
	before := b.String()

	var events []board.Event
	b.Subscribe(func(e board.Event) { events = append(events, e) })

	err := snap.Restore(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrOccupied)
	assert.True(t, IsKind(err, KindInvalid))

	assert.Equal(t, before, b.String())
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Empty(t, events)
}

func TestRestoreRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"negative", -1, 2},
		{"overflowing area", 1 << 32, 1 << 32},
		{"huge strip", 1 << 40, 1},
		{"over cap", board.MaxArea, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard(t)
			before := b.String()

			err := Snapshot{Width: tt.width, Height: tt.height}.Restore(b)
			require.Error(t, err)
			assert.ErrorIs(t, err, board.ErrBadDimensions)
			assert.True(t, IsKind(err, KindInvalid))
			assert.Equal(t, before, b.String())
			assert.Equal(t, 6, b.Area())
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.json"))
	assert.True(t, IsKind(err, KindNotFound))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = ReadFile(bad)
	assert.True(t, IsKind(err, KindInvalid))
	assert.Contains(t, err.Error(), bad)
}

func TestListEmptyDir(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "none"))
	paths, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, paths)

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Empty(t, latest)
}
