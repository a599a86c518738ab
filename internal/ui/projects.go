package ui

import (
	"strings"

	"tracetutor/internal/catalog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ProjectsView lists the projects that pass the search and level filter.
type ProjectsView struct {
	host   Host
	body   scrollBody
	cursor listCursor
}

var _ View = (*ProjectsView)(nil)

// NewProjectsView creates the projects tab.
func NewProjectsView(h Host) *ProjectsView {
	return &ProjectsView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *ProjectsView) Init() tea.Cmd { return nil }

func (v *ProjectsView) visible() []catalog.Project {
	return v.host.State().Visible(v.host.Catalog().Projects)
}

// Selected returns the project under the cursor, if the list is not empty.
func (v *ProjectsView) Selected() (catalog.Project, bool) {
	vis := v.visible()
	if len(vis) == 0 {
		return catalog.Project{}, false
	}
	return vis[v.cursor.clamp(len(vis))], true
}

// Update implements View.
func (v *ProjectsView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if v.cursor.move(km, len(v.visible())) {
		return v, nil
	}
	if key.Matches(km, listKeys.Activate) {
		if p, ok := v.Selected(); ok {
			return v, v.card(p, true).Start()
		}
	}
	return v, nil
}

// Help implements helpProvider.
func (v *ProjectsView) Help() []key.Binding {
	return []key.Binding{listKeys.Down, listKeys.Up, listKeys.Activate}
}

func (v *ProjectsView) card(p catalog.Project, selected bool) ProjectCard {
	return ProjectCard{
		Project:  p,
		Theme:    v.host.Theme(),
		Selected: selected,
		Width:    contentWidth(v.host),
		OnStart:  startProjectCmd,
	}
}

// View implements View.
func (v *ProjectsView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	intro := renderIntro(t, "Hands-On Projects",
		"Learn by building real PCB projects with step-by-step guidance and immediate feedback.", width)

	vis := v.visible()
	if len(vis) == 0 {
		return v.body.render(intro+"\n"+t.Empty.Render("No projects match the current search and level."), width, height)
	}

	sel := v.cursor.clamp(len(vis))
	var b strings.Builder
	b.WriteString(intro)
	line := lineCount(intro)
	var selStart, selEnd int
	for i, p := range vis {
		card := v.card(p, i == sel).View()
		if i == sel {
			selStart, selEnd = line, line+lineCount(card)
		}
		b.WriteString("\n" + card)
		line += lineCount(card)
	}
	return v.body.renderAt(b.String(), width, height, selStart, selEnd)
}
