package ui

import (
	"tracetutor/internal/catalog"
	"tracetutor/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// eventMsg carries a session event through the Bubble Tea loop. Completion
// results and keybind actions arrive this way.
type eventMsg struct {
	Event session.Event
}

// focusMsg moves key focus, e.g. "/" to the search input.
type focusMsg struct {
	ID string
}

// cycleFilterMsg advances the level filter to its next value.
type cycleFilterMsg struct{}

// copyReplyMsg copies the newest tutor reply to the clipboard (SPC y).
type copyReplyMsg struct{}

// statusMsg replaces the status line text.
type statusMsg string

// dispatchCmd returns a command that delivers ev to the AppModel.
func dispatchCmd(ev session.Event) tea.Cmd {
	return func() tea.Msg { return eventMsg{Event: ev} }
}

func focusCmd(id string) tea.Cmd {
	return func() tea.Msg { return focusMsg{ID: id} }
}

// startProjectCmd is the ProjectCard callback used by every card list.
func startProjectCmd(p catalog.Project) tea.Cmd {
	return dispatchCmd(session.StartProject{Project: p})
}
