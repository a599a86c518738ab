package session

import (
	"strings"

	"tracetutor/internal/tutor"
)

// Reduce applies ev to s and returns the new state. The returned Request is
// non-nil when the host must call the completion collaborator.
//
// s is never modified; the transcript is copied before it changes.
func Reduce(s State, ev Event) (State, *Request) {
	switch ev := ev.(type) {
	case SelectTab:
		s.ActiveTab = ev.Tab
	case StartProject:
		s.Project = SelectedProject(ev.Project)
		s.ActiveTab = TabProject
	case StartLearningPath:
		s.Path = SelectedPath(ev.Path)
		s.ActiveTab = TabLearningPath
	case ShowLearningPaths:
		s.ActiveTab = TabLearningPaths

	case SetSearchQuery:
		s.SearchQuery = ev.Text
	case SetFilter:
		s.Filter = ev.Level
	case SubmitSearch:
		if isBlank(s.SearchQuery) {
			return s, nil
		}
		return s, &Request{
			Kind:   tutor.KindSearch,
			Prompt: tutor.SearchPrompt(s.SearchQuery),
			Query:  s.SearchQuery,
		}
	case SearchReplied:
		if ev.Err != nil {
			// The host logs the failure; the learner sees no change.
			return s, nil
		}
		s.Messages = []Message{
			{Role: RoleAssistant, Content: tutor.SearchIntro(ev.Query), Plain: true},
			{Role: RoleAssistant, Content: ev.Content},
		}
		s.ActiveTab = TabTutor

	case SetInput:
		s.Input = ev.Text
	case SubmitChat:
		if isBlank(s.Input) || s.Loading {
			return s, nil
		}
		text := s.Input
		s.Messages = appendMessage(s.Messages, Message{Role: RoleUser, Content: text})
		s.Input = ""
		s.Loading = true
		return s, &Request{Kind: tutor.KindChat, Prompt: tutor.ChatPrompt(text)}
	case ChatReplied:
		content := ev.Content
		if ev.Err != nil {
			content = tutor.ApologyMessage
		}
		s.Messages = appendMessage(s.Messages, Message{Role: RoleAssistant, Content: content})
		s.Loading = false

	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	}
	return s, nil
}

// appendMessage returns a new slice so earlier states keep their transcript.
func appendMessage(msgs []Message, m Message) []Message {
	out := make([]Message, len(msgs), len(msgs)+1)
	copy(out, msgs)
	return append(out, m)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
