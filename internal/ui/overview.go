package ui

import (
	"strings"

	"tracetutor/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	heroTitle = "Learn PCB Design Like a Pro"
	heroLead  = "TraceTutor is your interactive guide to mastering printed circuit board design. " +
		"From schematics to manufacturing, learn with real projects and AI-powered feedback."
)

var watchDemoKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "watch demo"))

// OverviewView is the landing tab: hero text and the feature grid.
type OverviewView struct {
	host Host
	body scrollBody
}

var _ View = (*OverviewView)(nil)

// NewOverviewView creates the overview tab.
func NewOverviewView(h Host) *OverviewView {
	return &OverviewView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *OverviewView) Init() tea.Cmd { return nil }

// Update implements View. Enter is the "Watch Demo" button.
func (v *OverviewView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, watchDemoKey) {
			return v, dispatchCmd(session.ShowLearningPaths{})
		}
		return v, v.body.scroll(msg)
	}
	return v, nil
}

// Help implements helpProvider.
func (v *OverviewView) Help() []key.Binding {
	return []key.Binding{watchDemoKey}
}

// View implements View.
func (v *OverviewView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	hero := t.Box.Width(width - 2).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(heroTitle),
		"",
		t.Subtitle.Render(heroLead),
		"",
		t.Button.Render("▶ Start Learning")+"  "+t.ButtonPrimary.Render("Watch Demo"),
	))

	features := v.host.Catalog().Features
	cols := columnsFor(width, 36, 3)
	cw := columnWidth(width, cols)
	cells := make([]string, len(features))
	for i, f := range features {
		cells[i] = t.Card.Width(cw - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			t.Heading.Render(f.Title),
			t.Normal.Render(f.Description),
		))
	}

	var b strings.Builder
	b.WriteString(hero + "\n\n")
	b.WriteString(t.Title.Width(width).Align(lipgloss.Center).Render("Why Choose TraceTutor?") + "\n\n")
	b.WriteString(renderColumns(cells, cols))
	return v.body.render(b.String(), width, height)
}
