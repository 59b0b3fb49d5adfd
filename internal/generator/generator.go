package generator

import (
	"math/rand"
	"time"

	"github.com/majkprpik/kina/internal/board"
)

const (
	DefaultMaxAttempts = 10000

	// AttemptsPerCell and MaxScaledAttempts bound the budget when
	// Options.ScaleBudget is set.
	AttemptsPerCell   = 50
	MaxScaledAttempts = 200000
)

// directions in the order neighbours are offered: east, south, west, north.
var directions = [4]board.Cell{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Tiling is a flat list of cells, two per placed domino, in placement order.
// Each pair is canonical: the north/west cell comes first.
type Tiling []board.Cell

// Len returns the number of dominoes.
func (t Tiling) Len() int { return len(t) / 2 }

// Covered returns the number of covered cells.
func (t Tiling) Covered() int { return len(t) }

// Pairs splits the tiling into its domino cell pairs.
func (t Tiling) Pairs() [][2]board.Cell {
	out := make([][2]board.Cell, 0, t.Len())
	for i := 0; i+1 < len(t); i += 2 {
		out = append(out, [2]board.Cell{t[i], t[i+1]})
	}
	return out
}

// Result is the outcome of a Search.
type Result struct {
	Tiling   Tiling
	Attempts int  // attempts actually run
	Complete bool // every cell covered
}

// Generator creates randomized domino tilings.
type Generator struct {
	options *Options
	rng     *rand.Rand
	seed    int64
}

// New creates a tiling generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	rng := options.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Generator{
		options: options,
		rng:     rng,
		seed:    seed,
	}
}

// Seed returns the seed the random source was built from, including the
// time-derived one picked when Options.Seed is 0. With a caller-supplied
// Options.Rand it is just Options.Seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Budget returns the number of attempts Search will make for the given size.
func (g *Generator) Budget(width, height int) int {
	budget := g.options.MaxAttempts
	if budget <= 0 {
		budget = DefaultMaxAttempts
	}
	if g.options.ScaleBudget {
		area := max(width, 0) * max(height, 0)
		budget = max(budget, min(area*AttemptsPerCell, MaxScaledAttempts))
	}
	return budget
}

// Search runs up to Budget attempts and keeps the one covering the most
// cells; on a tie the earlier attempt wins. It returns as soon as an attempt
// covers the whole board, which can only happen for an even area.
func (g *Generator) Search(width, height int) Result {
	area := max(width, 0) * max(height, 0)
	budget := g.Budget(width, height)

	var res Result
	for res.Attempts < budget {
		t := g.Attempt(width, height)
		res.Attempts++

		if res.Tiling == nil || t.Covered() > res.Tiling.Covered() {
			res.Tiling = t
		}
		if t.Covered() == area {
			res.Complete = true
			break
		}
	}
	return res
}

// Attempt runs one randomized greedy pass over the board. Cells are visited in
// freshly shuffled order; each free cell is paired with a uniformly chosen free
// neighbour, or left uncovered when it has none.
func (g *Generator) Attempt(width, height int) Tiling {
	width, height = max(width, 0), max(height, 0)
	taken := make([]bool, width*height)

	cells := make([]board.Cell, 0, width*height)
	for y := range height {
		for x := range width {
			cells = append(cells, board.Cell{X: x, Y: y})
		}
	}
	Shuffle(g.rng, cells)

	inBounds := func(c board.Cell) bool {
		return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
	}

	result := make(Tiling, 0, len(cells))
	var free [4]board.Cell
	for _, c := range cells {
		if taken[c.Y*width+c.X] {
			continue
		}

		n := 0
		for _, d := range directions {
			nb := c.Add(d)
			if inBounds(nb) && !taken[nb.Y*width+nb.X] {
				free[n] = nb
				n++
			}
		}
		if n == 0 {
			continue
		}

		nb := free[g.rng.Intn(n)]
		taken[c.Y*width+c.X] = true
		taken[nb.Y*width+nb.X] = true

		a, b := board.Canonical(c, nb)
		result = append(result, a, b)
	}

	return result
}

// Shuffle permutes cells uniformly in place: each index i up to the
// second-to-last swaps with a uniformly chosen index in [i, n-1].
func Shuffle(rng *rand.Rand, cells []board.Cell) {
	n := len(cells)
	for i := 0; i < n-1; i++ {
		j := i + rng.Intn(n-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
