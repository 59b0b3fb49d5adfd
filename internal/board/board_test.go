package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRemoveScenario(t *testing.T) {
	b := New(2, 1)
	a, c := Cell{0, 0}, Cell{1, 0}

	d, err := b.TryInsert(a, c)
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)
	assert.Equal(t, Full, b.State())

	_, err = b.TryInsert(a, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlacementRejected)
	assert.ErrorIs(t, err, ErrOccupied)

	removed, err := b.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, d, removed)
	for _, cell := range []Cell{a, c} {
		occ, err := b.IsOccupied(cell)
		require.NoError(t, err)
		assert.False(t, occ)
	}
	assert.Equal(t, Empty, b.State())

	again, err := b.TryInsert(a, c)
	require.NoError(t, err)
	assert.NotEqual(t, 1, again.ID)
	assert.True(t, b.IsValid())
}

func TestTryInsertRejections(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Cell
		reason error
	}{
		{"west of board", Cell{-1, 0}, Cell{0, 0}, ErrOutOfBounds},
		{"south of board", Cell{0, 2}, Cell{0, 3}, ErrOutOfBounds},
		{"same cell", Cell{1, 1}, Cell{1, 1}, ErrNotAdjacent},
		{"diagonal", Cell{0, 0}, Cell{1, 1}, ErrNotAdjacent},
		{"two apart", Cell{0, 0}, Cell{2, 0}, ErrNotAdjacent},
		{"occupied", Cell{0, 1}, Cell{1, 1}, ErrOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(3, 3)
			_, err := b.TryInsert(Cell{1, 1}, Cell{2, 1})
			require.NoError(t, err)
			before := b.String()

			_, err = b.TryInsert(tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPlacementRejected)
			assert.ErrorIs(t, err, tt.reason)
			assert.False(t, b.CanPlace(tt.a, tt.b))
			assert.Equal(t, before, b.String())
			assert.Equal(t, 1, b.Len())
		})
	}
}

func TestTryInsertCanonicalisesOrder(t *testing.T) {
	b := New(3, 3)

	h, err := b.TryInsert(Cell{2, 0}, Cell{1, 0})
	require.NoError(t, err)
	assert.Equal(t, Cell{1, 0}, h.A)
	assert.Equal(t, Cell{2, 0}, h.B)
	assert.Equal(t, Horizontal, h.Orientation())

	v, err := b.TryInsert(Cell{0, 2}, Cell{0, 1})
	require.NoError(t, err)
	assert.Equal(t, Cell{0, 1}, v.A)
	assert.Equal(t, Cell{0, 2}, v.B)
	assert.Equal(t, Vertical, v.Orientation())
}

func TestRemoveUnknown(t *testing.T) {
	b := New(2, 2)
	_, err := b.TryInsert(Cell{0, 0}, Cell{0, 1})
	require.NoError(t, err)

	_, err = b.Remove(42)
	assert.True(t, errors.Is(err, ErrUnknownDomino))
	assert.Equal(t, 2, b.OccupiedCount())
	assert.True(t, b.IsValid())

	_, err = b.Remove(1)
	require.NoError(t, err)
	_, err = b.Remove(1)
	assert.ErrorIs(t, err, ErrUnknownDomino)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	b := New(4, 4)
	_, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)
	_, err = b.TryInsert(Cell{3, 2}, Cell{3, 3})
	require.NoError(t, err)
	before := b.String()
	count := b.OccupiedCount()

	d, err := b.TryInsert(Cell{1, 2}, Cell{2, 2})
	require.NoError(t, err)
	_, err = b.Remove(d.ID)
	require.NoError(t, err)

	assert.Equal(t, before, b.String())
	assert.Equal(t, count, b.OccupiedCount())
	assert.True(t, b.IsValid())
}

func TestIsOccupiedOutOfBounds(t *testing.T) {
	b := New(2, 2)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := b.IsOccupied(c)
		assert.ErrorIs(t, err, ErrOutOfBounds, "cell %s", c)
	}
}

func TestCanPlaceNegativeCell(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		b := New(dims[0], dims[1])
		assert.False(t, b.CanPlace(Cell{-1, 0}, Cell{0, 0}))
	}
}

func TestCanPlaceDoesNotCommit(t *testing.T) {
	b := New(2, 1)
	assert.True(t, b.CanPlace(Cell{0, 0}, Cell{1, 0}))
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, Empty, b.State())
}

func TestFullBoardRejectsInsert(t *testing.T) {
	b := New(2, 2)
	_, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)
	_, err = b.TryInsert(Cell{0, 1}, Cell{1, 1})
	require.NoError(t, err)
	require.Equal(t, Full, b.State())

	for y := range 2 {
		for x := range 2 {
			for _, n := range []Cell{{x + 1, y}, {x, y + 1}} {
				assert.False(t, b.CanPlace(Cell{x, y}, n))
			}
		}
	}

	_, err = b.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, Partial, b.State())
}

func TestResetKeepsIDsUnique(t *testing.T) {
	b := New(2, 1)
	first, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)

	b.Reset(2, 1)
	assert.Equal(t, Empty, b.State())
	assert.Empty(t, b.Dominoes())

	second, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestResetResizes(t *testing.T) {
	b := New(2, 2)
	_, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)

	b.Reset(5, 3)
	assert.Equal(t, 5, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 15, b.Area())
	assert.Equal(t, New(5, 3).String(), b.String())

	b.Reset(-1, 4)
	assert.Equal(t, 0, b.Area())
	assert.Equal(t, Empty, b.State())
}

func TestDominoLookups(t *testing.T) {
	b := New(3, 2)
	d1, err := b.TryInsert(Cell{0, 0}, Cell{0, 1})
	require.NoError(t, err)
	d2, err := b.TryInsert(Cell{1, 0}, Cell{2, 0})
	require.NoError(t, err)

	got, ok := b.DominoAt(Cell{0, 1})
	require.True(t, ok)
	assert.Equal(t, d1, got)

	_, ok = b.DominoAt(Cell{2, 1})
	assert.False(t, ok)
	_, ok = b.DominoAt(Cell{9, 9})
	assert.False(t, ok)

	got, ok = b.Domino(d2.ID)
	require.True(t, ok)
	assert.True(t, got.Covers(Cell{2, 0}))

	assert.Equal(t, []Domino{d1, d2}, b.Dominoes())
}

func TestStringAndFormat(t *testing.T) {
	b := New(3, 2)
	_, err := b.TryInsert(Cell{0, 0}, Cell{0, 1})
	require.NoError(t, err)
	_, err = b.TryInsert(Cell{1, 0}, Cell{2, 0})
	require.NoError(t, err)

	assert.Equal(t, "|--\n|..", b.String())

	want := "" +
		"+---+---+---+\n" +
		"| # | #   # |\n" +
		"+   +---+---+\n" +
		"| # | . | . |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, b.Format())
	assert.Empty(t, New(0, 3).Format())
}

func TestSubscribe(t *testing.T) {
	b := New(2, 2)
	var events []Event
	unsubscribe := b.Subscribe(func(ev Event) {
		// the board must already reflect the mutation
		assert.True(t, b.IsValid())
		events = append(events, ev)
	})

	d, err := b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)
	_, err = b.TryInsert(Cell{0, 0}, Cell{0, 1})
	require.Error(t, err)
	_, err = b.Remove(d.ID)
	require.NoError(t, err)
	b.Reset(2, 2)

	require.Len(t, events, 3)
	assert.Equal(t, Event{Kind: EventInserted, Domino: d}, events[0])
	assert.Equal(t, Event{Kind: EventRemoved, Domino: d}, events[1])
	assert.Equal(t, EventReset, events[2].Kind)

	unsubscribe()
	_, err = b.TryInsert(Cell{0, 0}, Cell{1, 0})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		ok            bool
	}{
		{"zero", 0, 0, true},
		{"zero width huge height", 0, 1 << 40, true},
		{"square", 8, 8, true},
		{"at cap", MaxArea, 1, true},
		{"negative", -1, 2, false},
		{"over cap", MaxArea + 1, 1, false},
		{"overflowing product", 1 << 32, 1 << 32, false},
		{"huge strip", 1 << 40, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDimensions(tt.width, tt.height)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadDimensions)
			}
		})
	}
}
