package ui

import (
	"tracetutor/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// newHelpModel returns a bubbles/help model styled for theme.
func newHelpModel(theme Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.Key
	h.Styles.ShortDesc = theme.KeyDesc
	h.Styles.ShortSeparator = theme.KeyDesc
	return h
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays the next-level leader bindings available on tab in a compact bar.
func RenderKeybindHelp(keyHandler *KeyHandler, tab session.Tab, theme Theme) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, tab).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := "SPC"
	if seq := keyHandler.CurrentSeq(); seq != "" {
		prefix = seq
	}
	content := theme.KeyDesc.Render(prefix) + " " + newHelpModel(theme).ShortHelpView(bindings)
	return theme.KeyBox.Render(content)
}

// RenderFooter renders the always-visible hint line: global keys followed
// by those of the active view.
func RenderFooter(theme Theme, focus string, extra []key.Binding) string {
	var bindings []key.Binding
	switch focus {
	case FocusSearch:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "get learning path")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	case FocusChat:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	default:
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("1", "8"), key.WithHelp("1-8", "tabs")),
			key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "level")),
		)
		bindings = append(bindings, extra...)
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		)
	}
	return newHelpModel(theme).ShortHelpView(bindings)
}
