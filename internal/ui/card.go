package ui

import (
	"strings"

	"tracetutor/internal/catalog"
	"tracetutor/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCardWidth is used when the terminal size is not known yet.
const DefaultCardWidth = 60

// minCardWidth keeps the header and footer on one line each.
const minCardWidth = 30

// ProjectCard renders one project. Its output depends only on its fields;
// OnStart turns the card's "Start Project" action into a command.
type ProjectCard struct {
	Project  catalog.Project
	Theme    Theme
	Selected bool
	Width    int // outer width including the border
	OnStart  func(catalog.Project) tea.Cmd
}

// Start runs the card's action. Nil when no callback is set.
func (c ProjectCard) Start() tea.Cmd {
	if c.OnStart == nil {
		return nil
	}
	return c.OnStart(c.Project)
}

// View renders the card.
func (c ProjectCard) View() string {
	width := c.Width
	if width <= 0 {
		width = DefaultCardWidth
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	style := c.Theme.CardStyle(c.Selected)
	inner := width - style.GetHorizontalFrameSize()

	badge := c.Theme.Badge(string(c.Project.Difficulty))
	titleWidth := inner - lipgloss.Width(badge) - 1
	titleStyle := c.Theme.Heading
	if c.Selected {
		titleStyle = c.Theme.Selected
	}
	title := titleStyle.Render(textutil.Truncate(c.Project.Title, titleWidth))

	desc := c.Theme.Normal.Width(inner).Render(c.Project.Description)

	chips := make([]string, len(c.Project.Skills))
	for i, s := range c.Project.Skills {
		chips[i] = c.Theme.Chip.Render("#" + strings.ReplaceAll(s, " ", "-"))
	}

	button := c.Theme.Button.Render("▶ Start Project")
	if c.Selected {
		button = c.Theme.ButtonPrimary.Render("▶ Start Project")
	}
	duration := c.Theme.Muted.Render("⏱ " + c.Project.Duration)

	body := lipgloss.JoinVertical(lipgloss.Left,
		textutil.SpaceBetween(title, badge, inner),
		desc,
		textutil.Chips(chips, inner),
		"",
		textutil.SpaceBetween(duration, button, inner),
	)
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}
