package tutor

import "fmt"

// PromptKind identifies which template produced a prompt.
type PromptKind string

const (
	KindChat   PromptKind = "chat"
	KindSearch PromptKind = "search"
)

// ApologyMessage replaces the reply when a chat completion fails.
const ApologyMessage = "I apologize, but I encountered an error. Please try asking your question again."

// ChatPrompt wraps a learner's question. text is embedded as typed.
func ChatPrompt(text string) string {
	return fmt.Sprintf(`
You are an expert PCB design tutor. The user asked: "%s"

Provide a helpful, educational response about PCB design. Be encouraging and specific.
If they ask about specific components, routing, or design principles, give practical advice.
Keep responses concise but informative.

Respond with just the educational content, no extra formatting.
`, text)
}

// SearchPrompt asks for a personalized learning path derived from a search query.
func SearchPrompt(query string) string {
	return fmt.Sprintf(`
A student is searching for PCB design learning content with the query: "%s"

Based on this search, suggest a personalized learning path. Consider:
- What skill level this suggests (beginner, intermediate, advanced)
- What specific topics they should focus on
- What order to learn things in
- Any prerequisites they might need

Keep the response concise and actionable, focusing on PCB design education.
`, query)
}

// SearchIntro is the first assistant message shown after a search-driven suggestion.
func SearchIntro(query string) string {
	return fmt.Sprintf(`Based on your search for "%s", here's a personalized learning path:`, query)
}
