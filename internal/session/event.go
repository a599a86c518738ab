package session

import (
	"tracetutor/internal/catalog"
	"tracetutor/internal/tutor"
)

// Event is a discrete user action or completion outcome.
type Event interface {
	isEvent()
}

type (
	// SelectTab switches views unconditionally.
	SelectTab struct{ Tab Tab }
	// StartProject selects a project and shows it.
	StartProject struct{ Project catalog.Project }
	// StartLearningPath selects a learning path and shows it.
	StartLearningPath struct{ Path catalog.LearningPath }
	// ShowLearningPaths is the overview's "Watch Demo" shortcut.
	ShowLearningPaths struct{}

	// SetSearchQuery replaces the search text.
	SetSearchQuery struct{ Text string }
	// SetFilter replaces the level filter.
	SetFilter struct{ Level catalog.Level }
	// SubmitSearch asks the tutor for a learning path based on the query.
	SubmitSearch struct{}
	// SearchReplied carries the outcome of a SubmitSearch request.
	SearchReplied struct {
		Query   string
		Content string
		Err     error
	}

	// SetInput replaces the chat input text.
	SetInput struct{ Text string }
	// SubmitChat sends the chat input to the tutor.
	SubmitChat struct{}
	// ChatReplied carries the outcome of a SubmitChat request.
	ChatReplied struct {
		Content string
		Err     error
	}

	// ToggleDarkMode flips the theme.
	ToggleDarkMode struct{}
)

func (SelectTab) isEvent()         {}
func (StartProject) isEvent()      {}
func (StartLearningPath) isEvent() {}
func (ShowLearningPaths) isEvent() {}
func (SetSearchQuery) isEvent()    {}
func (SetFilter) isEvent()         {}
func (SubmitSearch) isEvent()      {}
func (SearchReplied) isEvent()     {}
func (SetInput) isEvent()          {}
func (SubmitChat) isEvent()        {}
func (ChatReplied) isEvent()       {}
func (ToggleDarkMode) isEvent()    {}

// Request asks the host to call the completion collaborator.
type Request struct {
	Kind   tutor.PromptKind
	Prompt string
	Query  string // search text, set for KindSearch
}
