package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/session"
	"github.com/majkprpik/kina/internal/store"
)

type model struct {
	theme Theme
	keys  keyMap
	help  help.Model
	log   *slog.Logger

	sess  *session.Session
	store *store.JSONStore

	cursor board.Cell
	orient board.Orientation

	status   string
	failed   bool
	quitting bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return model{
		theme:  DefaultTheme(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    log,
		sess:   deps.Session,
		store:  deps.Store,
		orient: deps.Orientation,
		status: "Press r to generate a tiling.",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.log.Error("tui.save.failed", "err", msg.err)
			return m.setError(fmt.Sprintf("Save failed: %v", msg.err)), nil
		}
		return m.setStatus("Saved " + msg.path), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.sess.Board()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)

	case key.Matches(msg, m.keys.Rotate):
		m.orient = m.orient.Toggle()
		return m.setStatus("Orientation: " + m.orient.String()), nil

	case key.Matches(msg, m.keys.Place):
		d, ok := m.sess.Commit(m.cursor, m.orient)
		if !ok {
			return m.setError("No room for a " + m.orient.String() + " domino here."), nil
		}
		return m.setStatus(fmt.Sprintf("Placed domino %d.", d.ID)), nil

	case key.Matches(msg, m.keys.Remove):
		d, ok := m.sess.RemoveAt(m.cursor)
		if !ok {
			return m.setError("Nothing to remove here."), nil
		}
		return m.setStatus(fmt.Sprintf("Removed domino %d.", d.ID)), nil

	case key.Matches(msg, m.keys.Regenerate):
		placed, res := m.sess.Regenerate()
		status := fmt.Sprintf("Generated %d dominoes in %d attempts, %d/%d cells covered.",
			len(placed), res.Attempts, b.OccupiedCount(), b.Area())
		return m.setStatus(status), nil

	case key.Matches(msg, m.keys.Clear):
		m.sess.Clear()
		return m.setStatus("Board cleared."), nil

	case key.Matches(msg, m.keys.Save):
		if m.store == nil {
			return m.setError("No snapshot directory configured."), nil
		}
		return m, cmdSave(m.store, m.sess.Snapshot())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// move shifts the cursor, clamped to the board.
func (m *model) move(dx, dy int) {
	b := m.sess.Board()
	m.cursor.X = min(max(m.cursor.X+dx, 0), max(b.Width()-1, 0))
	m.cursor.Y = min(max(m.cursor.Y+dy, 0), max(b.Height()-1, 0))
}

func (m model) setStatus(s string) model {
	m.status, m.failed = s, false
	return m
}

func (m model) setError(s string) model {
	m.status, m.failed = s, true
	return m
}

func cmdSave(s *store.JSONStore, snap store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		path, err := s.Save(snap)
		return savedMsg{path: path, err: err}
	}
}
