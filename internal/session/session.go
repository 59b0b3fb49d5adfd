// Package session owns the single board of a running kina process and the
// generator that fills it. UI layers talk to the board only through a Session.
package session

import (
	"log/slog"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/config"
	"github.com/majkprpik/kina/internal/generator"
	"github.com/majkprpik/kina/internal/logger"
	"github.com/majkprpik/kina/internal/store"
)

// Preview is the answer to a ghost-placement query. A and B are set only
// when OK is true.
type Preview struct {
	OK          bool
	A, B        board.Cell
	Orientation board.Orientation
}

type Session struct {
	board *board.Board
	gen   *generator.Generator
	log   *slog.Logger

	// seed is recorded in snapshots: the generator's effective seed, or the
	// seed of the last restored snapshot.
	seed int64
}

type Option func(*Session)

// WithGenerator replaces the generator built from the config.
func WithGenerator(g *generator.Generator) Option {
	return func(s *Session) { s.gen = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New creates a session with an empty board of the configured size.
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		board: board.New(cfg.Board.Width, cfg.Board.Height),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = generator.New(cfg.GeneratorOptions())
	}
	if s.log == nil {
		s.log = logger.L()
	}
	s.seed = s.gen.Seed()
	return s
}

// Board gives read access to the board. Callers must not mutate it directly.
func (s *Session) Board() *board.Board {
	return s.board
}

// Subscribe forwards board events to fn.
func (s *Session) Subscribe(fn func(board.Event)) func() {
	return s.board.Subscribe(fn)
}

// Regenerate clears the board, searches for a tiling and inserts it. The
// placed dominoes are returned in placement order.
func (s *Session) Regenerate() ([]board.Domino, generator.Result) {
	w, h := s.board.Width(), s.board.Height()
	s.board.Reset(w, h)

	res := s.gen.Search(w, h)
	placed := make([]board.Domino, 0, res.Tiling.Len())
	for _, p := range res.Tiling.Pairs() {
		d, err := s.board.TryInsert(p[0], p[1])
		if err != nil {
			// the generator only emits valid, disjoint pairs
			s.log.Error("session.regenerate.insert_failed", "a", p[0].String(), "b", p[1].String(), "err", err)
			continue
		}
		placed = append(placed, d)
	}

	s.log.Info("session.regenerated",
		"width", w,
		"height", h,
		"dominoes", len(placed),
		"covered", s.board.OccupiedCount(),
		"attempts", res.Attempts,
		"complete", res.Complete,
	)
	return placed, res
}

// Clear removes every domino and keeps the dimensions.
func (s *Session) Clear() {
	s.board.Reset(s.board.Width(), s.board.Height())
	s.log.Info("session.cleared")
}

// Resize clears the board and changes its dimensions.
func (s *Session) Resize(width, height int) {
	s.board.Reset(width, height)
	s.log.Info("session.resized", "width", s.board.Width(), "height", s.board.Height())
}

// Insert commits a user placement. A rejected placement is a no-op and
// returns false.
func (s *Session) Insert(a, b board.Cell) (board.Domino, bool) {
	d, err := s.board.TryInsert(a, b)
	if err != nil {
		s.log.Debug("session.insert.rejected", "a", a.String(), "b", b.String(), "err", err)
		return board.Domino{}, false
	}
	s.log.Debug("session.insert", "id", d.ID, "a", d.A.String(), "b", d.B.String())
	return d, true
}

// Remove deletes the domino with the given id. An unknown id is a no-op and
// returns false.
func (s *Session) Remove(id int) bool {
	d, err := s.board.Remove(id)
	if err != nil {
		s.log.Debug("session.remove.unknown", "id", id)
		return false
	}
	s.log.Debug("session.remove", "id", d.ID)
	return true
}

// RemoveAt deletes the domino covering c, if any.
func (s *Session) RemoveAt(c board.Cell) (board.Domino, bool) {
	d, ok := s.board.DominoAt(c)
	if !ok {
		return board.Domino{}, false
	}
	return d, s.Remove(d.ID)
}

// Preview snaps a ghost placement at the cursor cell.
func (s *Session) Preview(c board.Cell, o board.Orientation) Preview {
	a, b, ok := s.board.Snap(c, o)
	if !ok {
		return Preview{Orientation: o}
	}
	return Preview{OK: true, A: a, B: b, Orientation: o}
}

// Commit inserts the placement Preview would show at c.
func (s *Session) Commit(c board.Cell, o board.Orientation) (board.Domino, bool) {
	p := s.Preview(c, o)
	if !p.OK {
		return board.Domino{}, false
	}
	return s.Insert(p.A, p.B)
}

// Snapshot captures the board for storage.
func (s *Session) Snapshot() store.Snapshot {
	snap := store.FromBoard(s.board)
	snap.Seed = s.seed
	return snap
}

// Restore replaces the board contents with snap and adopts its seed. A
// snapshot that fails validation leaves the board and seed unchanged.
func (s *Session) Restore(snap store.Snapshot) error {
	if err := snap.Restore(s.board); err != nil {
		s.log.Warn("session.restore.failed", "err", err)
		return err
	}
	s.seed = snap.Seed
	s.log.Info("session.restored",
		"width", snap.Width,
		"height", snap.Height,
		"dominoes", len(snap.Dominoes),
		"seed", snap.Seed,
	)
	return nil
}
