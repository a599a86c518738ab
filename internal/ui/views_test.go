package ui

import (
	"fmt"
	"strings"
	"testing"

	"tracetutor/internal/catalog"
	"tracetutor/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewView(t *testing.T) {
	app := newTestApp(t)
	out := app.Views[session.TabOverview].View()

	assert.Contains(t, out, "Learn PCB Design Like a Pro")
	assert.Contains(t, out, "▶ Start Learning")
	assert.Contains(t, out, "Watch Demo")
	assert.Contains(t, out, "Why Choose TraceTutor?")
	for _, f := range app.Catalog().Features {
		assert.Contains(t, out, f.Title)
	}
}

func TestLearningPathsView_Preview(t *testing.T) {
	app := newTestApp(t)
	out := app.Views[session.TabLearningPaths].View()

	for _, lp := range app.Catalog().Paths {
		assert.Contains(t, out, lp.Title)
		assert.Contains(t, out, lp.Milestones[0])
		if extra := len(lp.Milestones) - previewMilestones; extra > 0 {
			assert.Contains(t, out, fmt.Sprintf("+%d more milestones", extra))
		}
	}
	assert.Contains(t, out, "▶ Start Learning Path")
}

func TestLearningPathsView_CursorClamps(t *testing.T) {
	app := newTestApp(t)
	v := app.Views[session.TabLearningPaths]
	paths := app.Catalog().Paths

	v.Update(keyMsg("G"))
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, eventMsg{Event: session.StartLearningPath{Path: paths[len(paths)-1]}}, cmd())

	v.Update(keyMsg("j"))
	_, cmd = v.Update(keyMsg("enter"))
	assert.Equal(t, eventMsg{Event: session.StartLearningPath{Path: paths[len(paths)-1]}}, cmd(),
		"cursor stops at the last path")

	v.Update(keyMsg("g"))
	_, cmd = v.Update(keyMsg("enter"))
	assert.Equal(t, eventMsg{Event: session.StartLearningPath{Path: paths[0]}}, cmd())
}

func TestLearningPathView_Selected(t *testing.T) {
	app := newTestApp(t)
	lp := app.Catalog().Paths[0]
	app.Dispatch(session.StartLearningPath{Path: lp})

	out := app.Views[session.TabLearningPath].View()
	assert.Contains(t, out, lp.Title)
	assert.Contains(t, out, "Overall Progress 15%")
	assert.Contains(t, out, "✓ "+lp.Milestones[0])
	assert.Contains(t, out, "○ "+lp.Milestones[1])
	assert.Contains(t, out, "Recommended Projects")
	assert.Contains(t, out, "Start")
	assert.Contains(t, out, "Locked")
	for _, p := range app.Catalog().PathProjects(lp) {
		assert.Contains(t, out, p.Title)
	}
}

func TestProjectView_Selected(t *testing.T) {
	app := newTestApp(t)
	app.send(t, tea.WindowSizeMsg{Width: 80})
	p := app.Catalog().Projects[2]
	app.Dispatch(session.StartProject{Project: p})

	out := app.Views[session.TabProject].View()
	assertFitsWidth(t, out, 80)
	assert.Contains(t, out, p.Title)
	assert.Contains(t, out, "Difficulty:")
	assert.Contains(t, out, string(p.Difficulty))
	assert.Contains(t, out, "Skills You'll Learn:")
	assert.Contains(t, out, "Getting Started")
	assert.Contains(t, out, "Download Files")

	// The buttons on this page are inert.
	_, cmd := app.Views[session.TabProject].Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}

func TestQuizzesView(t *testing.T) {
	app := newTestApp(t)
	app.send(t, tea.WindowSizeMsg{Width: 80})
	out := app.Views[session.TabQuizzes].View()
	assertFitsWidth(t, out, 80)
	assert.Contains(t, out, "Test Your Knowledge")
	assert.Contains(t, out, "Coming Soon: Gamified Quizzes and Leaderboards")
}

func TestPricingView(t *testing.T) {
	app := newTestApp(t)
	plans := app.Catalog().Plans
	require.NotEmpty(t, plans)

	for _, width := range []int{60, 120} {
		app.send(t, tea.WindowSizeMsg{Width: width})
		out := app.Views[session.TabPricing].View()
		for _, p := range plans {
			assert.Contains(t, out, p.Name)
			assert.Contains(t, out, p.CallToAction)
		}
		assert.Equal(t, 1, strings.Count(out, "Most Popular"))
		assertFitsWidth(t, out, width)
	}
}

func TestProjectsView_Selected(t *testing.T) {
	app := newTestApp(t)
	v, ok := app.Views[session.TabProjects].(*ProjectsView)
	require.True(t, ok)

	p, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, app.Catalog().Projects[0].ID, p.ID)

	app.Dispatch(session.SetFilter{Level: catalog.LevelAdvanced})
	p, ok = v.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Advanced, p.Difficulty)

	app.Dispatch(session.SetSearchQuery{Text: "nothing matches this"})
	_, ok = v.Selected()
	assert.False(t, ok)
	_, cmd := v.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}

func TestTutorView_Help(t *testing.T) {
	app := newTestApp(t)
	app.press(t, "4")
	assert.Contains(t, app.view(), "i ask")
	assert.Contains(t, app.view(), "Send →")
	assert.Contains(t, app.view(), "Ask about PCB design")
}

// assertFitsWidth fails if any rendered line is wider than width.
func assertFitsWidth(t *testing.T, out string, width int) {
	t.Helper()
	for i, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), width, "line %d: %q", i, line)
	}
}
