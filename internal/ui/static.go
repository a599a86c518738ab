package ui

import (
	"strings"

	"tracetutor/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QuizzesView is the quizzes teaser.
type QuizzesView struct {
	host Host
	body scrollBody
}

var _ View = (*QuizzesView)(nil)

// NewQuizzesView creates the quizzes tab.
func NewQuizzesView(h Host) *QuizzesView {
	return &QuizzesView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *QuizzesView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *QuizzesView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		return v, v.body.scroll(km)
	}
	return v, nil
}

// View implements View.
func (v *QuizzesView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	intro := renderIntro(t, "Test Your Knowledge",
		"Challenge yourself with interactive quizzes to reinforce your learning and climb the leaderboard.", width)
	panel := t.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Heading.Render("Coming Soon: Gamified Quizzes and Leaderboards"),
		"",
		t.Normal.Render("Earn points, unlock badges, and see how you rank against other learners. "+
			"Quizzes will cover schematic design, layout strategies, component knowledge, and more."),
	))
	return v.body.render(intro+"\n"+panel, width, height)
}

// PricingView shows the plans side by side, or stacked on narrow terminals.
type PricingView struct {
	host Host
	body scrollBody
}

var _ View = (*PricingView)(nil)

// NewPricingView creates the pricing tab.
func NewPricingView(h Host) *PricingView {
	return &PricingView{host: h, body: newScrollBody()}
}

// Init implements View.
func (v *PricingView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *PricingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		return v, v.body.scroll(km)
	}
	return v, nil
}

// View implements View.
func (v *PricingView) View() string {
	t := v.host.Theme()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	plans := v.host.Catalog().Plans
	cols := columnsFor(width, 30, len(plans))
	cw := columnWidth(width, cols)
	cells := make([]string, len(plans))
	for i, p := range plans {
		cells[i] = renderPlan(t, p, cw)
	}

	intro := renderIntro(t, "Choose Your Plan",
		"Start learning for free or unlock advanced features with our premium plans.", width)
	return v.body.render(intro+"\n"+renderColumns(cells, cols), width, height)
}

func renderPlan(t Theme, p catalog.Plan, width int) string {
	style := t.CardStyle(p.Highlight)
	inner := width - style.GetHorizontalFrameSize()

	features := make([]string, len(p.Features))
	for i, f := range p.Features {
		features[i] = t.Check.Render("✓ ") + t.Normal.Render(f)
	}
	button := t.Button.Render(p.CallToAction)
	if p.Highlight {
		button = t.ButtonPrimary.Render(p.CallToAction)
	}

	lines := []string{}
	if p.Highlight {
		lines = append(lines, t.Selected.Render("Most Popular"))
	}
	lines = append(lines,
		t.Title.Render(p.Name),
		t.Heading.Render(p.Price)+t.Muted.Render(p.Period),
		"",
		strings.Join(features, "\n"),
		"",
		button,
	)
	return style.Width(inner + style.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
