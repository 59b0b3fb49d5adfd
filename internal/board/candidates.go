package board

// Candidates lists the placements tried when snapping a preview at c, in
// priority order. Horizontal tries c and its east neighbour, then its west
// neighbour and c. Vertical does the same with south and north.
func Candidates(c Cell, o Orientation) [2][2]Cell {
	step := Cell{X: 1}
	if o == Vertical {
		step = Cell{Y: 1}
	}
	back := Cell{X: -step.X, Y: -step.Y}
	return [2][2]Cell{
		{c, c.Add(step)},
		{c.Add(back), c},
	}
}

// Snap returns the first candidate placement at c that CanPlace accepts.
// It has no side effects, so it can be called on every pointer move.
func (b *Board) Snap(c Cell, o Orientation) (Cell, Cell, bool) {
	for _, pair := range Candidates(c, o) {
		if b.CanPlace(pair[0], pair[1]) {
			return pair[0], pair[1], true
		}
	}
	return Cell{}, Cell{}, false
}
