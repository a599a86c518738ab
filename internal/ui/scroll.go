package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// listKeys are the cursor bindings shared by the card lists.
var listKeys = struct {
	Up, Down, Top, Bottom, Activate key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
}

// listCursor is a selection index over a list whose length may change between
// renders, e.g. when the search narrows the project list.
type listCursor struct {
	index int
}

// move applies a navigation key and reports whether it was one.
func (c *listCursor) move(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, listKeys.Up):
		c.index--
	case key.Matches(msg, listKeys.Down):
		c.index++
	case key.Matches(msg, listKeys.Top):
		c.index = 0
	case key.Matches(msg, listKeys.Bottom):
		c.index = n - 1
	default:
		return false
	}
	c.index = c.clamp(n)
	return true
}

// clamp returns the index limited to [0, n). It is 0 for an empty list.
func (c *listCursor) clamp(n int) int {
	if c.index >= n {
		c.index = n - 1
	}
	if c.index < 0 {
		c.index = 0
	}
	return c.index
}

// scrollBody clips a tab's content to the body area and keeps a marked
// range of lines visible.
type scrollBody struct {
	vp viewport.Model
}

func newScrollBody() scrollBody {
	return scrollBody{vp: viewport.New(0, 0)}
}

// render fits content into width x height. A zero height (size not known
// yet) returns the content unclipped.
func (b *scrollBody) render(content string, width, height int) string {
	if height <= 0 {
		return content
	}
	b.vp.Width = width
	b.vp.Height = height
	b.vp.SetContent(content)
	return b.vp.View()
}

// renderAt is render that also scrolls lines [start, end) into view,
// preferring start when the range is taller than the body.
func (b *scrollBody) renderAt(content string, width, height, start, end int) string {
	if height <= 0 {
		return content
	}
	b.vp.Width = width
	b.vp.Height = height
	b.vp.SetContent(content)
	if end-start > height {
		end = start + height
	}
	switch {
	case start < b.vp.YOffset:
		b.vp.SetYOffset(start)
	case end > b.vp.YOffset+height:
		b.vp.SetYOffset(end - height)
	}
	return b.vp.View()
}

// scroll passes navigation keys to the viewport for views without a cursor.
func (b *scrollBody) scroll(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Top):
		b.vp.GotoTop()
		return nil
	case key.Matches(msg, listKeys.Bottom):
		b.vp.GotoBottom()
		return nil
	}
	var cmd tea.Cmd
	b.vp, cmd = b.vp.Update(msg)
	return cmd
}
