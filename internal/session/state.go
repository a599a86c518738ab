// Package session models TraceTutor's view state as a value and the user's
// actions as events applied by a pure reducer.
//
// Nothing here performs I/O. When an event needs the completion collaborator,
// Reduce returns a Request describing the call; the host runs it and feeds
// the outcome back as ChatReplied or SearchReplied.
package session

import (
	"fmt"

	"tracetutor/internal/catalog"
)

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role
	Content string
	// Plain content echoes user text and is shown verbatim, not as markdown.
	Plain bool
}

// Greeting opens every fresh transcript.
const Greeting = "Hello! I'm your PCB design tutor. What would you like to learn about today?"

// State is the complete UI state for one run of the program.
type State struct {
	ActiveTab   Tab
	Project     ProjectSelection
	Path        PathSelection
	SearchQuery string
	Filter      catalog.Level
	Messages    []Message
	Input       string // chat input box
	Loading     bool   // a chat completion is outstanding
	DarkMode    bool
}

// New returns the initial state.
func New(darkMode bool) State {
	return State{
		ActiveTab: TabOverview,
		Filter:    catalog.LevelAll,
		Messages:  []Message{{Role: RoleAssistant, Content: Greeting}},
		DarkMode:  darkMode,
	}
}

// Visible applies the search query and level filter to projects.
func (s State) Visible(projects []catalog.Project) []catalog.Project {
	return catalog.FilterProjects(projects, s.SearchQuery, s.Filter)
}

// CanSend reports whether the chat send affordance is enabled.
func (s State) CanSend() bool {
	return !s.Loading && !isBlank(s.Input)
}

// LastReply returns the newest assistant message, if any.
func (s State) LastReply() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// SearchSummary is the status line under the search box. It is empty when
// there is no query.
func SearchSummary(query string, matches int) string {
	if query == "" {
		return ""
	}
	if matches == 0 {
		return fmt.Sprintf(`No projects found for "%s". Try searching for different terms or check the AI Tutor for guidance.`, query)
	}
	plural := "s"
	if matches == 1 {
		plural = ""
	}
	return fmt.Sprintf(`Found %d project%s matching "%s"`, matches, plural, query)
}
