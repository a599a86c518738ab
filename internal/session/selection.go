package session

import "tracetutor/internal/catalog"

// ProjectSelection is either a chosen project or nothing.
// The zero value is "no selection".
type ProjectSelection struct {
	project catalog.Project
	ok      bool
}

// NoProject is the empty selection.
func NoProject() ProjectSelection { return ProjectSelection{} }

// SelectedProject wraps p as a selection.
func SelectedProject(p catalog.Project) ProjectSelection {
	return ProjectSelection{project: p, ok: true}
}

// Get returns the project and whether one is selected.
func (s ProjectSelection) Get() (catalog.Project, bool) { return s.project, s.ok }

// PathSelection is either a chosen learning path or nothing.
// The zero value is "no selection".
type PathSelection struct {
	path catalog.LearningPath
	ok   bool
}

// NoPath is the empty selection.
func NoPath() PathSelection { return PathSelection{} }

// SelectedPath wraps lp as a selection.
func SelectedPath(lp catalog.LearningPath) PathSelection {
	return PathSelection{path: lp, ok: true}
}

// Get returns the learning path and whether one is selected.
func (s PathSelection) Get() (catalog.LearningPath, bool) { return s.path, s.ok }
