package ui

import (
	"strings"

	"tracetutor/internal/session"
	"tracetutor/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const gettingStarted = "This project will guide you through the complete PCB design process. " +
	"You'll start with understanding the requirements, move through schematic design, " +
	"component placement, routing, and finally preparing for manufacturing."

var browseProjectsKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "browse projects"))

// ProjectView shows the selected project, or a prompt to pick one.
type ProjectView struct {
	host Host
	body scrollBody
}

var _ View = (*ProjectView)(nil)

// NewProjectView creates the "Current Project" tab.
func NewProjectView(h Host) *ProjectView {
	return &ProjectView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *ProjectView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ProjectView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if _, ok := v.host.State().Project.Get(); !ok {
		if key.Matches(km, browseProjectsKey) {
			return v, dispatchCmd(session.SelectTab{Tab: session.TabProjects})
		}
		return v, nil
	}
	return v, v.body.scroll(km)
}

// Help implements helpProvider.
func (v *ProjectView) Help() []key.Binding {
	if _, ok := v.host.State().Project.Get(); !ok {
		return []key.Binding{browseProjectsKey}
	}
	return nil
}

// View implements View.
func (v *ProjectView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	p, ok := v.host.State().Project.Get()
	if !ok {
		return v.body.render(renderFallback(t,
			"No Project Selected",
			"Choose a project from the Projects tab to get started.",
			"Browse Projects", width), width, height)
	}

	inner := width - t.Card.GetHorizontalFrameSize()
	chips := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		chips[i] = t.Chip.Render(s)
	}

	details := t.Card.Width(inner + t.Card.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Heading.Render("Project Overview"),
		t.Muted.Render("Difficulty: ")+t.Badge(string(p.Difficulty)),
		t.Muted.Render("Duration: ")+t.Normal.Render(p.Duration),
		t.Muted.Render("Skills You'll Learn:"),
		textutil.Chips(chips, inner),
		"",
		t.Heading.Render("Getting Started"),
		t.Normal.Width(inner).Render(gettingStarted),
		"",
		t.ButtonPrimary.Render("▶ Start Project")+"  "+t.Button.Render("Download Files"),
	))

	var b strings.Builder
	b.WriteString(renderIntro(t, p.Title, p.Description, width) + "\n")
	b.WriteString(details)
	return v.body.render(b.String(), width, height)
}
