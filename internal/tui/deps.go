package tui

import (
	"log/slog"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/session"
	"github.com/majkprpik/kina/internal/store"
)

type Deps struct {
	Session *session.Session
	Store   *store.JSONStore

	// Orientation of the ghost domino at start; the zero value is Horizontal.
	Orientation board.Orientation

	Logger *slog.Logger
}
