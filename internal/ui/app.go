package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tracetutor/internal/catalog"
	"tracetutor/internal/session"
	"tracetutor/internal/tutor"
	"tracetutor/internal/ui/textutil"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const searchPlaceholder = "Search for topics like 'power supply', 'microcontroller', 'analog circuits'..."

// Options configures NewAppModel. Catalog and Completer are required.
type Options struct {
	Catalog   *catalog.Catalog
	Completer tutor.Completer
	Logger    *zap.Logger        // nil logs nothing
	Markdown  *MarkdownRenderer  // nil shows replies as plain text
	Clipboard func(string) error // nil uses the system clipboard
	DarkMode  bool
	// Context bounds completion calls; cancel it to abandon them on exit.
	Context context.Context
}

// AppModel is the root model. It owns the session state, applies events
// through session.Reduce and runs the completion requests the reducer asks for.
type AppModel struct {
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Views      map[session.Tab]View
	Status     string // transient status line, e.g. clipboard results

	state     session.State
	catalog   *catalog.Catalog
	completer tutor.Completer
	logger    *zap.Logger
	markdown  *MarkdownRenderer
	clipboard func(string) error
	ctx       context.Context
	theme     Theme
	search    textinput.Model
	tutor     *TutorView

	width, height int
	bodyHeight    int
}

// Ensure AppModel can be used as tea.Model via adapter, and by views as Host.
var (
	_ tea.Model = (*appModelAdapter)(nil)
	_ Host      = (*AppModel)(nil)
)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	si := textinput.New()
	si.Placeholder = searchPlaceholder
	si.Prompt = "🔍 "
	si.Cursor.SetMode(cursor.CursorStatic)
	si.Width = searchInputWidth(DefaultCardWidth)

	m := &AppModel{
		Focus:     NewFocusManager(),
		state:     session.New(opts.DarkMode),
		catalog:   opts.Catalog,
		completer: opts.Completer,
		logger:    logger,
		markdown:  opts.Markdown,
		clipboard: clip,
		ctx:       ctx,
		theme:     NewTheme(opts.DarkMode),
		search:    si,
	}
	m.Focus.OnChange = func(from, to string) {
		m.logger.Debug("focus changed", zap.String("from", from), zap.String("to", to))
	}
	m.tutor = NewTutorView(m)
	m.Views = map[session.Tab]View{
		session.TabOverview:      NewOverviewView(m),
		session.TabLearningPaths: NewLearningPathsView(m),
		session.TabProjects:      NewProjectsView(m),
		session.TabTutor:         m.tutor,
		session.TabQuizzes:       NewQuizzesView(m),
		session.TabProject:       NewProjectView(m),
		session.TabLearningPath:  NewLearningPathView(m),
		session.TabPricing:       NewPricingView(m),
	}
	m.KeyHandler = NewKeyHandler(newRegistry())
	return m
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	for i, tab := range session.Tabs {
		reg.BindWithDesc(strconv.Itoa(i+1), dispatchCmd(session.SelectTab{Tab: tab}), tab.Label())
	}
	reg.BindWithDesc("/", focusCmd(FocusSearch), "Search")
	reg.BindWithDesc("f", func() tea.Msg { return cycleFilterMsg{} }, "Next level filter")
	reg.BindForTabs("i", focusCmd(FocusChat), "Ask the tutor", []session.Tab{session.TabTutor})
	reg.BindWithDesc("SPC d", dispatchCmd(session.ToggleDarkMode{}), "Toggle dark mode")
	reg.BindWithDesc("SPC s", dispatchCmd(session.SubmitSearch{}), "Get learning path")
	reg.BindForTabs("SPC y", func() tea.Msg { return copyReplyMsg{} }, "Copy last reply", []session.Tab{session.TabTutor})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// State implements Host.
func (m *AppModel) State() session.State { return m.state }

// Catalog implements Host.
func (m *AppModel) Catalog() *catalog.Catalog { return m.catalog }

// Theme implements Host.
func (m *AppModel) Theme() Theme { return m.theme }

// BodySize implements Host.
func (m *AppModel) BodySize() (int, int) { return m.width, m.bodyHeight }

// RenderMarkdown implements Host.
func (m *AppModel) RenderMarkdown(content string, width int) string {
	if m.markdown == nil {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	return m.markdown.Render(content, width, m.state.DarkMode)
}

// Dispatch implements Host. It applies ev and, when the reducer asks for a
// completion, returns the command that performs it.
func (m *AppModel) Dispatch(ev session.Event) tea.Cmd {
	switch ev := ev.(type) {
	case session.SearchReplied:
		if ev.Err != nil {
			m.logger.Warn("learning path search failed", zap.String("query", ev.Query), zap.Error(ev.Err))
		}
	case session.ChatReplied:
		if ev.Err != nil {
			m.logger.Warn("tutor reply failed", zap.Error(ev.Err))
		}
	}

	prev := m.state
	next, req := session.Reduce(m.state, ev)
	m.state = next
	if next.DarkMode != prev.DarkMode {
		m.theme = NewTheme(next.DarkMode)
	}
	if next.ActiveTab != prev.ActiveTab {
		m.logger.Debug("tab selected", zap.String("tab", string(next.ActiveTab)))
		if m.Focus.Current == FocusChat && next.ActiveTab != session.TabTutor {
			m.SetFocus(FocusNav)
		}
	}
	if m.search.Value() != next.SearchQuery {
		m.search.SetValue(next.SearchQuery)
	}
	if req == nil {
		return nil
	}

	cmd := m.complete(*req)
	if req.Kind == tutor.KindChat {
		return tea.Batch(cmd, m.tutor.StartSpinner())
	}
	return cmd
}

// complete runs req against the completer off the event loop and reports
// the outcome as the matching reply event.
func (m *AppModel) complete(req session.Request) tea.Cmd {
	ctx := tutor.WithKind(m.ctx, req.Kind)
	completer := m.completer
	logger := m.logger
	logger.Debug("completion requested", zap.String("kind", string(req.Kind)), zap.Int("prompt_len", len(req.Prompt)))
	return func() tea.Msg {
		start := time.Now()
		reply, err := completer.Complete(ctx, req.Prompt)
		logger.Debug("completion finished",
			zap.String("kind", string(req.Kind)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		if req.Kind == tutor.KindSearch {
			return eventMsg{Event: session.SearchReplied{Query: req.Query, Content: reply, Err: err}}
		}
		return eventMsg{Event: session.ChatReplied{Content: reply, Err: err}}
	}
}

// SetFocus implements Host. Chat focus is only available on the tutor tab.
func (m *AppModel) SetFocus(id string) tea.Cmd {
	if id == FocusChat && m.state.ActiveTab != session.TabTutor {
		return nil
	}
	if !m.Focus.SetFocus(id) {
		return nil
	}
	m.search.Blur()
	m.tutor.Blur()
	switch id {
	case FocusSearch:
		return m.search.Focus()
	case FocusChat:
		return m.tutor.Focus()
	}
	return nil
}

// copyLastReply writes the newest tutor reply to the clipboard off the event loop.
func (m *AppModel) copyLastReply() tea.Cmd {
	reply, ok := m.state.LastReply()
	if !ok {
		m.Status = "No tutor reply to copy"
		return nil
	}
	write := m.clipboard
	logger := m.logger
	return func() tea.Msg {
		if err := write(reply); err != nil {
			logger.Warn("clipboard write failed", zap.Error(err))
			return statusMsg("Clipboard unavailable")
		}
		return statusMsg("Copied last tutor reply")
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.logger.Info("session started",
		zap.Int("projects", len(a.catalog.Projects)),
		zap.Int("paths", len(a.catalog.Paths)),
		zap.Bool("dark_mode", a.state.DarkMode))
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.search.Width = searchInputWidth(msg.Width)
		return a, nil
	case eventMsg:
		return a, a.Dispatch(msg.Event)
	case focusMsg:
		return a, a.SetFocus(msg.ID)
	case cycleFilterMsg:
		return a, a.Dispatch(session.SetFilter{Level: a.state.Filter.Next()})
	case copyReplyMsg:
		return a, a.copyLastReply()
	case statusMsg:
		a.Status = string(msg)
		return a, nil
	case spinner.TickMsg:
		// The indicator keeps running while another tab is shown.
		_, cmd := a.tutor.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.updateActive(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	a.Status = ""
	if a.Focus.Typing() {
		if a.Focus.Current == FocusSearch {
			return a.handleSearchKey(msg)
		}
		return a.updateActive(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.state.ActiveTab); consumed {
			return cmd
		}
	}
	return a.updateActive(msg)
}

// handleSearchKey edits the search box. Every edit filters the project list
// immediately; enter asks the tutor for a learning path.
func (a *appModelAdapter) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return a.SetFocus(FocusNav)
	case tea.KeyEnter:
		return a.Dispatch(session.SubmitSearch{})
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if q := a.search.Value(); q != a.state.SearchQuery {
		return tea.Batch(cmd, a.Dispatch(session.SetSearchQuery{Text: q}))
	}
	return cmd
}

func (a *appModelAdapter) updateActive(msg tea.Msg) tea.Cmd {
	v, ok := a.Views[a.state.ActiveTab]
	if !ok {
		return nil
	}
	next, cmd := v.Update(msg)
	a.Views[a.state.ActiveTab] = next
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	chrome := a.renderChrome()
	footer := a.renderFooter()
	if a.height > 0 {
		a.bodyHeight = max(1, a.height-lineCount(chrome)-lineCount(footer))
	}

	body := ""
	if v, ok := a.Views[a.state.ActiveTab]; ok {
		body = v.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, chrome, body, footer)
}

func (a *appModelAdapter) renderChrome() string {
	t := a.theme
	width := a.width
	if width <= 0 {
		width = DefaultCardWidth
	}

	mode := "☀ light"
	if a.state.DarkMode {
		mode = "☾ dark"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Brand.Render("⚡ TraceTutor"),
		"  ",
		t.Muted.Render(mode),
	)

	tabs := make([]string, len(session.Tabs))
	for i, tab := range session.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == a.state.ActiveTab {
			tabs[i] = t.TabActive.Render(label)
		} else {
			tabs[i] = t.TabInactive.Render(label)
		}
	}
	tabBar := textutil.Chips(tabs, width)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, a.renderSearch(width))
}

// searchInputWidth sizes the search field for a terminal width. The box
// frame, prompt and level chip share its row.
func searchInputWidth(width int) int {
	return max(10, width-28)
}

// renderSearch is the "What do you want to learn today?" panel shown on
// every tab, with the level filter and the match summary.
func (a *appModelAdapter) renderSearch(width int) string {
	t := a.theme
	inner := width - t.Box.GetHorizontalFrameSize()
	filter := t.Selected.Render("[" + a.state.Filter.Label() + " ▾]")
	lines := []string{
		t.Heading.Render("What do you want to learn today?"),
		a.search.View() + "  " + filter,
	}
	visible := len(a.state.Visible(a.catalog.Projects))
	if summary := session.SearchSummary(a.state.SearchQuery, visible); summary != "" {
		lines = append(lines, t.Status.Width(inner).Render(summary))
	}
	return t.Box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (a *appModelAdapter) renderFooter() string {
	t := a.theme
	var parts []string
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		parts = append(parts, RenderKeybindHelp(a.KeyHandler, a.state.ActiveTab, t))
	}
	if a.Status != "" {
		parts = append(parts, t.Status.Render(a.Status))
	}
	var extra []key.Binding
	if hp, ok := a.Views[a.state.ActiveTab].(helpProvider); ok {
		extra = hp.Help()
	}
	parts = append(parts, RenderFooter(t, a.Focus.Current, extra))
	return strings.Join(parts, "\n")
}
