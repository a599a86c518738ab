package ui

import (
	"fmt"
	"strings"

	"tracetutor/internal/catalog"
	"tracetutor/internal/session"
	"tracetutor/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Path cards preview the first few milestones and skills.
const (
	previewMilestones = 2
	previewSkills     = 3
)

// LearningPathsView lists every learning path.
type LearningPathsView struct {
	host   Host
	body   scrollBody
	cursor listCursor
}

var _ View = (*LearningPathsView)(nil)

// NewLearningPathsView creates the learning paths tab.
func NewLearningPathsView(h Host) *LearningPathsView {
	return &LearningPathsView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *LearningPathsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *LearningPathsView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	paths := v.host.Catalog().Paths
	if v.cursor.move(km, len(paths)) {
		return v, nil
	}
	if key.Matches(km, listKeys.Activate) && len(paths) > 0 {
		lp := paths[v.cursor.clamp(len(paths))]
		return v, dispatchCmd(session.StartLearningPath{Path: lp})
	}
	return v, nil
}

// Help implements helpProvider.
func (v *LearningPathsView) Help() []key.Binding {
	return []key.Binding{listKeys.Down, listKeys.Up,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start path"))}
}

// View implements View.
func (v *LearningPathsView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	intro := renderIntro(t, "Choose Your Learning Path",
		"Select a structured learning journey designed to take you from where you are to where you want to be in PCB design.",
		width)

	paths := v.host.Catalog().Paths
	sel := v.cursor.clamp(len(paths))
	var b strings.Builder
	b.WriteString(intro)
	line := lineCount(intro)
	var selStart, selEnd int
	for i, lp := range paths {
		card := renderPathCard(t, lp, i == sel, width)
		if i == sel {
			selStart, selEnd = line, line+lineCount(card)
		}
		b.WriteString("\n" + card)
		line += lineCount(card)
	}
	return v.body.renderAt(b.String(), width, height, selStart, selEnd)
}

// renderPathCard shows a path summary with a preview of its milestones and skills.
func renderPathCard(t Theme, lp catalog.LearningPath, selected bool, width int) string {
	style := t.CardStyle(selected)
	inner := width - style.GetHorizontalFrameSize()

	badge := t.Badge(lp.Difficulty)
	titleStyle := t.Heading
	if selected {
		titleStyle = t.Selected
	}
	title := titleStyle.Render(textutil.Truncate(lp.Title, inner-lipgloss.Width(badge)-1))

	var milestones []string
	for _, m := range lp.Milestones[:min(previewMilestones, len(lp.Milestones))] {
		milestones = append(milestones, t.Check.Render("✓ ")+t.Normal.Render(m))
	}
	if extra := len(lp.Milestones) - previewMilestones; extra > 0 {
		milestones = append(milestones, t.Status.Render(fmt.Sprintf("+%d more milestones", extra)))
	}

	var skills []string
	for _, s := range lp.Skills[:min(previewSkills, len(lp.Skills))] {
		skills = append(skills, t.Chip.Render(s))
	}
	if extra := len(lp.Skills) - previewSkills; extra > 0 {
		skills = append(skills, t.Muted.Render(fmt.Sprintf("+%d more", extra)))
	}

	button := t.Button.Render("▶ Start Learning Path")
	if selected {
		button = t.ButtonPrimary.Render("▶ Start Learning Path")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		textutil.SpaceBetween(title, badge, inner),
		t.Normal.Width(inner).Render(lp.Description),
		"",
		t.Heading.Render("Duration"),
		t.Muted.Render(lp.Duration),
		t.Heading.Render("Key Milestones"),
		strings.Join(milestones, "\n"),
		t.Heading.Render("Skills You'll Master"),
		textutil.Chips(skills, inner),
		"",
		button,
	)
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}
