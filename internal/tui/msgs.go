package tui

type savedMsg struct {
	path string
	err  error
}
