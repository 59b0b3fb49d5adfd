package board

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate. X grows east, Y grows south.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Less reports whether c comes before o in (y, x) order, i.e. north/west first.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Adjacent reports whether c and o share an edge.
func (c Cell) Adjacent(o Cell) bool {
	return abs(c.X-o.X)+abs(c.Y-o.Y) == 1
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Canonical returns a and b with the north/west cell first.
func Canonical(a, b Cell) (Cell, Cell) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// Orientation of a placed domino.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v", case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// Domino is a placed tile. A is always the north/west cell.
type Domino struct {
	ID int  `json:"id"`
	A  Cell `json:"a"`
	B  Cell `json:"b"`
}

// Orientation is derived from the cell pair.
func (d Domino) Orientation() Orientation {
	if d.A.Y == d.B.Y {
		return Horizontal
	}
	return Vertical
}

// Covers reports whether c is one of the domino's cells.
func (d Domino) Covers(c Cell) bool {
	return d.A == c || d.B == c
}

func (d Domino) String() string {
	return fmt.Sprintf("#%d %s-%s", d.ID, d.A, d.B)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
