package ui

import (
	"strings"

	"tracetutor/internal/session"
	"tracetutor/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const chatPlaceholder = "Ask about PCB design, routing, components..."

var askKey = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ask"))

// TutorView is the chat transcript with its input box.
type TutorView struct {
	host       Host
	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model
	rendered   int // transcript length at the last render, to follow new replies
}

var _ View = (*TutorView)(nil)

// NewTutorView creates the tutor tab.
func NewTutorView(h Host) *TutorView {
	ti := textinput.New()
	ti.Placeholder = chatPlaceholder
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &TutorView{
		host:       h,
		input:      ti,
		transcript: viewport.New(0, 0),
		spinner:    s,
	}
}

// Init implements View.
func (v *TutorView) Init() tea.Cmd { return nil }

// Focus gives the chat input the cursor.
func (v *TutorView) Focus() tea.Cmd {
	v.input.SetValue(v.host.State().Input)
	v.input.CursorEnd()
	return v.input.Focus()
}

// Blur removes the cursor from the chat input.
func (v *TutorView) Blur() {
	v.input.Blur()
}

// StartSpinner begins the typing indicator.
func (v *TutorView) StartSpinner() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *TutorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.host.State().Loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if v.input.Focused() {
			return v, v.handleInputKey(msg)
		}
		return v, v.scroll(msg)
	}
	return v, nil
}

func (v *TutorView) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return v.host.SetFocus(FocusNav)
	case tea.KeyEnter:
		cmd := v.host.Dispatch(session.SubmitChat{})
		v.input.SetValue(v.host.State().Input)
		return cmd
	}
	// The input is disabled while a reply is pending.
	if v.host.State().Loading {
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if text := v.input.Value(); text != v.host.State().Input {
		return tea.Batch(cmd, v.host.Dispatch(session.SetInput{Text: text}))
	}
	return cmd
}

func (v *TutorView) scroll(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Top):
		v.transcript.GotoTop()
		return nil
	case key.Matches(msg, listKeys.Bottom):
		v.transcript.GotoBottom()
		return nil
	}
	var cmd tea.Cmd
	v.transcript, cmd = v.transcript.Update(msg)
	return cmd
}

// Help implements helpProvider.
func (v *TutorView) Help() []key.Binding {
	return []key.Binding{askKey,
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll"))}
}

// View implements View.
func (v *TutorView) View() string {
	t := v.host.Theme()
	st := v.host.State()
	width := contentWidth(v.host)
	_, height := v.host.BodySize()

	intro := renderIntro(t, "AI PCB Design Tutor",
		"Get personalized help and guidance from our AI tutor. Ask questions about PCB design, "+
			"get feedback on your work, or request learning recommendations.", width)
	header := t.Heading.Render("💬 Chat with Your Tutor")

	// Box frame, prompt, cursor cell and the send button.
	v.input.Width = max(10, width-17)
	if !v.input.Focused() && v.input.Value() != st.Input {
		v.input.SetValue(st.Input)
	}
	send := t.ButtonLocked.Render("Send →")
	if st.CanSend() {
		send = t.ButtonPrimary.Render("Send →")
	}
	inputBox := t.Box.Width(width - 2).Render(textutil.SpaceBetween(v.input.View(), send, width-4))

	log := v.renderTranscript(t, st, width)
	if height > 0 {
		avail := height - lineCount(intro) - lineCount(header) - lineCount(inputBox) - 1
		v.transcript.Width = width
		v.transcript.Height = max(3, avail)
		v.transcript.SetContent(log)
		if len(st.Messages) != v.rendered || st.Loading {
			v.transcript.GotoBottom()
		}
		log = v.transcript.View()
	}
	v.rendered = len(st.Messages)

	return lipgloss.JoinVertical(lipgloss.Left, intro, header, log, "", inputBox)
}

func (v *TutorView) renderTranscript(t Theme, st session.State, width int) string {
	bubble := width * 3 / 4
	var lines []string
	for _, m := range st.Messages {
		switch m.Role {
		case session.RoleUser:
			msg := t.UserBubble.Width(min(lipgloss.Width(m.Content)+2, bubble)).Render(m.Content)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, msg))
		default:
			inner := bubble - t.AssistantBubble.GetHorizontalFrameSize()
			content := t.Normal.Width(inner).Render(m.Content)
			if !m.Plain {
				content = v.host.RenderMarkdown(m.Content, inner)
			}
			lines = append(lines, t.AssistantBubble.Render(content))
		}
	}
	if st.Loading {
		lines = append(lines, t.AssistantBubble.Render(v.spinner.View()+t.Muted.Render(" thinking")))
	}
	return strings.Join(lines, "\n")
}
