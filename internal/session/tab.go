package session

import "fmt"

// Tab names one of the application's views.
type Tab string

const (
	TabOverview      Tab = "overview"
	TabLearningPaths Tab = "learning-paths"
	TabProjects      Tab = "projects"
	TabTutor         Tab = "tutor"
	TabQuizzes       Tab = "quizzes"
	TabProject       Tab = "project"       // requires a selected project
	TabLearningPath  Tab = "learning-path" // requires a selected learning path
	TabPricing       Tab = "pricing"
)

// Tabs lists every tab in navigation order.
var Tabs = []Tab{
	TabOverview,
	TabLearningPaths,
	TabProjects,
	TabTutor,
	TabQuizzes,
	TabProject,
	TabLearningPath,
	TabPricing,
}

// ParseTab converts an identifier such as "learning-paths" into a Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Label is the button text for the tab.
func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabLearningPaths:
		return "Learning Paths"
	case TabProjects:
		return "Projects"
	case TabTutor:
		return "AI Tutor"
	case TabQuizzes:
		return "Quizzes"
	case TabProject:
		return "Current Project"
	case TabLearningPath:
		return "My Learning Path"
	case TabPricing:
		return "Pricing"
	default:
		return string(t)
	}
}

// NeedsSelection reports whether the tab displays a selected entity and
// falls back to a "nothing selected" view without one.
func (t Tab) NeedsSelection() bool {
	return t == TabProject || t == TabLearningPath
}
