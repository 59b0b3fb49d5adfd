package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/session"
)

// glyphs for the two halves of a domino, by orientation.
var glyphs = map[board.Orientation][2]string{
	board.Horizontal: {"[=", "=]"},
	board.Vertical:   {"/\\", "\\/"},
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	b := m.sess.Board()
	header := m.theme.Title.Render("kina") + "  " +
		m.theme.Status.Render(fmt.Sprintf("%dx%d • %s • %d/%d cells • %s",
			b.Width(), b.Height(), b.State(), b.OccupiedCount(), b.Area(), m.orient))

	status := m.theme.Status.Render(m.status)
	if m.failed {
		status = m.theme.Error.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		header + "\n\n" +
			m.theme.Card.Render(m.renderGrid()) + "\n" +
			status + "\n" +
			m.help.View(m.keys),
	)
}

// renderGrid draws every cell as two characters. The ghost preview is
// recomputed from the board on every render.
func (m model) renderGrid() string {
	b := m.sess.Board()
	if b.Area() == 0 {
		return m.theme.Empty.Render("(empty board)")
	}

	p := m.sess.Preview(m.cursor, m.orient)
	var sb strings.Builder
	for y := range b.Height() {
		for x := range b.Width() {
			c := board.Cell{X: x, Y: y}
			sb.WriteString(m.renderCell(c, p))
		}
		if y < b.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m model) renderCell(c board.Cell, p session.Preview) string {
	b := m.sess.Board()
	text := ". "
	style := m.theme.Empty

	if d, ok := b.DominoAt(c); ok {
		half := 0
		if d.B == c {
			half = 1
		}
		text = glyphs[d.Orientation()][half]
		style = m.theme.Tiles[d.ID%len(m.theme.Tiles)]
	}

	switch {
	case p.OK && c == p.A:
		text, style = glyphs[p.Orientation][0], m.theme.Ghost
	case p.OK && c == p.B:
		text, style = glyphs[p.Orientation][1], m.theme.Ghost
	case !p.OK && c == m.cursor:
		style = m.theme.Blocked
	}
	if c == m.cursor {
		style = style.Reverse(true)
	}
	return style.Render(text)
}
