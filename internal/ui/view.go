package ui

import (
	"tracetutor/internal/catalog"
	"tracetutor/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View renders one tab from the host's current state.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Host is the part of the AppModel a View may use. Views never hold session
// state themselves; they read it and dispatch events.
type Host interface {
	State() session.State
	Catalog() *catalog.Catalog
	Theme() Theme
	// BodySize is the area left for the active tab below the header.
	BodySize() (width, height int)
	// Dispatch applies ev synchronously and returns the command for any
	// completion request it produced.
	Dispatch(ev session.Event) tea.Cmd
	SetFocus(id string) tea.Cmd
	RenderMarkdown(content string, width int) string
}

// helpProvider is implemented by views that add their own key hints.
type helpProvider interface {
	Help() []key.Binding
}
