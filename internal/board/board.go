package board

import (
	"slices"
	"strings"
)

const empty = 0

// State classifies a board by how many of its cells are covered.
type State int

const (
	Empty State = iota
	Partial
	Full
)

func (s State) String() string {
	switch s {
	case Partial:
		return "partial"
	case Full:
		return "full"
	default:
		return "empty"
	}
}

// Board is the authoritative occupancy grid of a domino tiling.
type Board struct {
	width, height int

	// cells holds the id of the covering domino at y*width+x, or 0.
	cells []int

	// registry maps domino id to the domino. It must always agree with cells;
	// both are touched only inside TryInsert, Remove and Reset.
	registry map[int]Domino

	// occupied counts covered cells for quick state checks.
	occupied int

	// nextID is never rewound, so ids stay unique across Reset.
	nextID int

	observers []*observer
}

// New creates an empty width x height board. Negative dimensions become 0.
func New(width, height int) *Board {
	b := &Board{nextID: 1}
	b.Reset(width, height)
	return b
}

// Reset clears every cell and the registry. The grid is reallocated only when
// the dimensions change.
func (b *Board) Reset(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height && b.cells != nil {
		clear(b.cells)
	} else {
		b.width, b.height = width, height
		b.cells = make([]int, width*height)
	}
	b.registry = make(map[int]Domino)
	b.occupied = 0
	b.notify(Event{Kind: EventReset})
}

// TryInsert places a domino on a and b. The cells must be in bounds, adjacent
// and empty; otherwise an error wrapping ErrPlacementRejected is returned and
// the board is left untouched.
func (b *Board) TryInsert(c1, c2 Cell) (Domino, error) {
	if err := b.validatePlacement(c1, c2); err != nil {
		return Domino{}, err
	}

	c1, c2 = Canonical(c1, c2)
	d := Domino{ID: b.nextID, A: c1, B: c2}
	b.nextID++

	b.cells[b.index(c1)] = d.ID
	b.cells[b.index(c2)] = d.ID
	b.registry[d.ID] = d
	b.occupied += 2

	b.notify(Event{Kind: EventInserted, Domino: d})
	return d, nil
}

// Remove frees both cells of the domino with the given id.
// Returns ErrUnknownDomino, and changes nothing, if no such domino is placed.
func (b *Board) Remove(id int) (Domino, error) {
	d, ok := b.registry[id]
	if !ok {
		return Domino{}, ErrUnknownDomino
	}

	b.cells[b.index(d.A)] = empty
	b.cells[b.index(d.B)] = empty
	delete(b.registry, id)
	b.occupied -= 2

	b.notify(Event{Kind: EventRemoved, Domino: d})
	return d, nil
}

// IsOccupied reports whether c is covered by a domino.
func (b *Board) IsOccupied(c Cell) (bool, error) {
	if err := b.validateCell(c); err != nil {
		return false, err
	}
	return b.cells[b.index(c)] != empty, nil
}

// CanPlace reports whether TryInsert(c1, c2) would succeed, without
// committing anything.
func (b *Board) CanPlace(c1, c2 Cell) bool {
	return b.validatePlacement(c1, c2) == nil
}

// DominoAt returns the domino covering c, if any.
func (b *Board) DominoAt(c Cell) (Domino, bool) {
	if !b.InBounds(c) {
		return Domino{}, false
	}
	id := b.cells[b.index(c)]
	if id == empty {
		return Domino{}, false
	}
	return b.registry[id], true
}

// Domino looks a domino up by id.
func (b *Board) Domino(id int) (Domino, bool) {
	d, ok := b.registry[id]
	return d, ok
}

// Dominoes returns the placed dominoes ordered by id.
func (b *Board) Dominoes() []Domino {
	out := make([]Domino, 0, len(b.registry))
	for _, d := range b.registry {
		out = append(out, d)
	}
	slices.SortFunc(out, func(x, y Domino) int { return x.ID - y.ID })
	return out
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Area() int   { return b.width * b.height }

// Len returns the number of placed dominoes.
func (b *Board) Len() int {
	return len(b.registry)
}

// OccupiedCount returns the number of covered cells.
func (b *Board) OccupiedCount() int {
	return b.occupied
}

// State reports whether the board is empty, partially or fully covered.
// A zero-area board is always Empty.
func (b *Board) State() State {
	switch {
	case b.occupied == 0:
		return Empty
	case b.occupied == b.Area():
		return Full
	default:
		return Partial
	}
}

// String returns the grid row by row: '.' for empty cells, '-' for cells of
// horizontal dominoes and '|' for cells of vertical ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Area() + b.height)

	for y := range b.height {
		for x := range b.width {
			d, ok := b.DominoAt(Cell{X: x, Y: y})
			switch {
			case !ok:
				sb.WriteByte('.')
			case d.Orientation() == Horizontal:
				sb.WriteByte('-')
			default:
				sb.WriteByte('|')
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Format returns a human-readable rendering with domino outlines. Walls are
// drawn between cells that do not belong to the same domino.
func (b *Board) Format() string {
	if b.Area() == 0 {
		return ""
	}

	var sb strings.Builder
	same := func(c1, c2 Cell) bool {
		if !b.InBounds(c1) || !b.InBounds(c2) {
			return false
		}
		id := b.cells[b.index(c1)]
		return id != empty && id == b.cells[b.index(c2)]
	}

	for y := 0; y <= b.height; y++ {
		// horizontal wall line above row y
		sb.WriteByte('+')
		for x := range b.width {
			if y > 0 && y < b.height && same(Cell{x, y - 1}, Cell{x, y}) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')
		if y == b.height {
			break
		}

		sb.WriteByte('|')
		for x := range b.width {
			c := Cell{x, y}
			if _, ok := b.DominoAt(c); ok {
				sb.WriteString(" # ")
			} else {
				sb.WriteString(" . ")
			}
			if x < b.width-1 && same(c, Cell{x + 1, y}) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (b *Board) index(c Cell) int {
	return c.Y*b.width + c.X
}
