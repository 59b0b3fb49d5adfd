package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/majkprpik/kina/internal/board"
)

// Snapshot is the persisted form of a board.
type Snapshot struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Seed     int64          `json:"seed,omitempty"`
	SavedAt  time.Time      `json:"saved_at"`
	Dominoes []board.Domino `json:"dominoes"`
}

// FromBoard captures the board's dimensions and dominoes.
func FromBoard(b *board.Board) Snapshot {
	return Snapshot{
		Width:    b.Width(),
		Height:   b.Height(),
		Dominoes: b.Dominoes(),
	}
}

// Covered returns the number of cells the snapshot covers.
func (s Snapshot) Covered() int {
	return 2 * len(s.Dominoes)
}

// Restore replays the snapshot onto b. Dominoes are inserted in id order and
// receive fresh ids. The snapshot is first replayed onto a scratch board, so
// when its dimensions or any domino would break the board invariants the
// error is returned and b is left untouched.
func (s Snapshot) Restore(b *board.Board) error {
	if err := board.CheckDimensions(s.Width, s.Height); err != nil {
		return &OpError{Op: "snapshot.restore", Kind: KindInvalid, Err: err}
	}

	ordered := slices.Clone(s.Dominoes)
	slices.SortFunc(ordered, func(x, y board.Domino) int { return x.ID - y.ID })

	scratch := board.New(s.Width, s.Height)
	for _, d := range ordered {
		if _, err := scratch.TryInsert(d.A, d.B); err != nil {
			return &OpError{Op: "snapshot.restore", Kind: KindInvalid, Err: fmt.Errorf("domino %d: %w", d.ID, err)}
		}
	}

	b.Reset(s.Width, s.Height)
	for _, d := range scratch.Dominoes() {
		if _, err := b.TryInsert(d.A, d.B); err != nil {
			return &OpError{Op: "snapshot.restore", Kind: KindInvalid, Err: fmt.Errorf("domino %d: %w", d.ID, err)}
		}
	}
	return nil
}
