package board

import (
	"errors"
	"fmt"
)

var (
	ErrPlacementRejected = errors.New("placement rejected")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrOccupied          = errors.New("cell already occupied")
	ErrUnknownDomino     = errors.New("unknown domino")
	ErrBadDimensions     = errors.New("invalid board dimensions")
)

// MaxArea bounds the number of cells a board may be restored or configured
// with.
const MaxArea = 1 << 20

// CheckDimensions rejects negative sizes and areas above MaxArea. The area
// is compared by division so width*height never overflows.
func CheckDimensions(width, height int) error {
	switch {
	case width < 0 || height < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrBadDimensions, width, height)
	case width != 0 && height > MaxArea/width:
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, width, height, MaxArea)
	}
	return nil
}

// placementError keeps both the generic rejection and the specific reason
// visible to errors.Is.
type placementError struct {
	reason error
	detail string
}

func (e *placementError) Error() string {
	return fmt.Sprintf("%v: %v: %s", ErrPlacementRejected, e.reason, e.detail)
}

func (e *placementError) Is(target error) bool {
	return target == ErrPlacementRejected || target == e.reason
}

func (e *placementError) Unwrap() error {
	return e.reason
}

func reject(reason error, format string, args ...any) error {
	return &placementError{reason: reason, detail: fmt.Sprintf(format, args...)}
}

// InBounds reports whether c lies inside the board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// validateCell checks if a cell is within board bounds.
func (b *Board) validateCell(c Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s must be in [0,%d)x[0,%d)", ErrOutOfBounds, c, b.width, b.height)
	}
	return nil
}

// validatePlacement runs the three insert preconditions in order:
// bounds, adjacency, emptiness.
func (b *Board) validatePlacement(c1, c2 Cell) error {
	for _, c := range [2]Cell{c1, c2} {
		if !b.InBounds(c) {
			return reject(ErrOutOfBounds, "%s outside %dx%d board", c, b.width, b.height)
		}
	}
	if !c1.Adjacent(c2) {
		return reject(ErrNotAdjacent, "%s and %s", c1, c2)
	}
	for _, c := range [2]Cell{c1, c2} {
		if id := b.cells[b.index(c)]; id != empty {
			return reject(ErrOccupied, "%s held by domino %d", c, id)
		}
	}
	return nil
}

// IsValid reports whether the grid and registry agree: every registered domino
// is in bounds, adjacent, canonical and owns exactly its two cells, and no
// other cell is marked.
func (b *Board) IsValid() bool {
	marked := 0
	for id, d := range b.registry {
		if d.ID != id || !b.InBounds(d.A) || !b.InBounds(d.B) {
			return false
		}
		if !d.A.Adjacent(d.B) || d.B.Less(d.A) {
			return false
		}
		if b.cells[b.index(d.A)] != id || b.cells[b.index(d.B)] != id {
			return false
		}
		marked += 2
	}

	occupied := 0
	for _, id := range b.cells {
		if id != empty {
			occupied++
		}
	}
	return occupied == marked && occupied == b.occupied
}
