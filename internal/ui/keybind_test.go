package ui

import (
	"testing"

	"tracetutor/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", session.TabOverview) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q", session.TabOverview) == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q", session.TabOverview) == nil {
		t.Error("expected space to normalize to SPC")
	}
	if reg.Lookup("unknown", session.TabOverview) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_TabFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForTabs("SPC y", tea.Quit, "Copy last reply", []session.Tab{session.TabTutor})
	reg.BindWithDesc("SPC d", tea.Quit, "Toggle dark mode")

	assert.NotNil(t, reg.Lookup("SPC y", session.TabTutor))
	assert.Nil(t, reg.Lookup("SPC y", session.TabProjects))
	assert.NotNil(t, reg.Lookup("SPC d", session.TabProjects))

	assert.Equal(t, map[string]string{"d": "Toggle dark mode", "y": "Copy last reply"},
		reg.LeaderHints("", session.TabTutor))
	assert.Equal(t, map[string]string{"d": "Toggle dark mode"},
		reg.LeaderHints("", session.TabProjects))
}

func TestKeybindRegistry_NestedHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t p", tea.Quit, "Projects")
	reg.BindWithDesc("SPC t l", tea.Quit, "Learning paths")

	assert.Equal(t, map[string]string{"t": "t…"}, reg.LeaderHints("", session.TabOverview))
	assert.Equal(t, map[string]string{"p": "Projects", "l": "Learning paths"},
		reg.LeaderHints("SPC t", session.TabOverview))
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), session.TabOverview)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}
	if h.CurrentSeq() != "SPC" {
		t.Errorf("CurrentSeq = %q", h.CurrentSeq())
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"), session.TabOverview)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	require.NotNil(t, cmd)
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_LeaderRespectsTab(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForTabs("SPC y", tea.Quit, "", []session.Tab{session.TabTutor})
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), session.TabProjects)
	consumed, cmd := h.Handle(keyMsg("y"), session.TabProjects)
	assert.True(t, consumed, "keys typed in leader mode never reach the view")
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	h.Handle(keyMsg(" "), session.TabTutor)
	_, cmd = h.Handle(keyMsg("y"), session.TabTutor)
	assert.NotNil(t, cmd)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), session.TabOverview)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), session.TabOverview)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	consumed, _ = h.Handle(keyMsg("esc"), session.TabOverview)
	if consumed {
		t.Error("esc outside leader mode belongs to the view")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), session.TabOverview)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.BindForTabs("i", tea.Quit, "", []session.Tab{session.TabTutor})
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), session.TabOverview)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
	consumed, _ = h.Handle(keyMsg("i"), session.TabProjects)
	if consumed {
		t.Error("i is only bound on the tutor tab")
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC d", tea.Quit, "Toggle dark mode")
	km := NewKeyMap(NewKeyHandler(reg), session.TabOverview)

	var keys []string
	for _, b := range km.ShortHelp() {
		keys = append(keys, b.Help().Key)
	}
	assert.Equal(t, []string{"d", "q", "esc"}, keys)
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
