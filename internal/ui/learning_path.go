package ui

import (
	"fmt"
	"strings"

	"tracetutor/internal/catalog"
	"tracetutor/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pathProgress is the fixed completion shown for every started path.
const pathProgress = 0.15

var browsePathsKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "browse learning paths"))

// LearningPathView shows the selected learning path, or a prompt to pick one.
type LearningPathView struct {
	host   Host
	body   scrollBody
	cursor listCursor // over the recommended projects
	bar    progress.Model
}

var _ View = (*LearningPathView)(nil)

// NewLearningPathView creates the "My Learning Path" tab.
func NewLearningPathView(h Host) *LearningPathView {
	return &LearningPathView{
		host: h,
		body: newScrollBody(),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements View.
func (v *LearningPathView) Init() tea.Cmd { return nil }

// Update implements View. Enter starts the recommended project under the
// cursor; "Locked" projects start too.
func (v *LearningPathView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	lp, ok := v.host.State().Path.Get()
	if !ok {
		if key.Matches(km, browsePathsKey) {
			return v, dispatchCmd(session.SelectTab{Tab: session.TabLearningPaths})
		}
		return v, nil
	}
	projects := v.host.Catalog().PathProjects(lp)
	if v.cursor.move(km, len(projects)) {
		return v, nil
	}
	if key.Matches(km, listKeys.Activate) && len(projects) > 0 {
		return v, startProjectCmd(projects[v.cursor.clamp(len(projects))])
	}
	return v, nil
}

// Help implements helpProvider.
func (v *LearningPathView) Help() []key.Binding {
	if _, ok := v.host.State().Path.Get(); !ok {
		return []key.Binding{browsePathsKey}
	}
	return []key.Binding{listKeys.Down, listKeys.Up,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start project"))}
}

// View implements View.
func (v *LearningPathView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	lp, ok := v.host.State().Path.Get()
	if !ok {
		return v.body.render(renderFallback(t,
			"No Learning Path Selected",
			"Choose a learning path to start your structured PCB design journey.",
			"Browse Learning Paths", width), width, height)
	}

	intro := renderIntro(t, lp.Title, lp.Description, width)
	progressPanel := v.renderProgress(t, lp, width)
	projects := v.host.Catalog().PathProjects(lp)
	sel := v.cursor.clamp(len(projects))

	var b strings.Builder
	b.WriteString(intro + "\n" + progressPanel + "\n\n")
	b.WriteString(t.Heading.Render("Recommended Projects"))
	line := lineCount(intro) + lineCount(progressPanel) + 2
	var selStart, selEnd int
	for i, p := range projects {
		row := renderPathProject(t, p, i, i == sel, width)
		if i == sel {
			selStart, selEnd = line, line+lineCount(row)
		}
		b.WriteString("\n" + row)
		line += lineCount(row)
	}
	return v.body.renderAt(b.String(), width, height, selStart, selEnd)
}

func (v *LearningPathView) renderProgress(t Theme, lp catalog.LearningPath, width int) string {
	v.bar.Width = max(10, width-2)
	milestones := make([]string, len(lp.Milestones))
	for i, m := range lp.Milestones {
		if i == 0 {
			milestones[i] = t.Check.Render("✓ ") + t.Normal.Render(m)
		} else {
			milestones[i] = t.Muted.Render("○ " + m)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Heading.Render("Your Progress"),
		fmt.Sprintf("%s %s", t.Normal.Render("Overall Progress"), t.Status.Render(fmt.Sprintf("%.0f%%", pathProgress*100))),
		v.bar.ViewAs(pathProgress),
		"",
		t.Heading.Render("Milestones"),
		strings.Join(milestones, "\n"),
	)
}

// renderPathProject is one row of the recommended list. Only the first
// project is open; the rest are marked locked.
func renderPathProject(t Theme, p catalog.Project, index int, selected bool, width int) string {
	style := t.CardStyle(selected)
	inner := width - style.GetHorizontalFrameSize()

	button := t.ButtonLocked.Render("Locked")
	if index == 0 {
		button = t.ButtonPrimary.Render("Start")
	}
	name := t.Heading.Render(p.Title)
	if selected {
		name = t.Selected.Render(p.Title)
	}
	left := lipgloss.JoinVertical(lipgloss.Left, name, t.Muted.Render(p.Duration))
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(button))
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), button)
	return style.Width(inner + style.GetHorizontalPadding()).Render(row)
}
