package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/ui"
	"github.com/zhubert/ragchat/internal/ui/modals"
)

func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return cmd
}

func TestClickSidebarRowOpens(t *testing.T) {
	m := testModel(t, threeConversations())

	// First row sits under the header and the panel border
	runCmd(t, m, click(m, 3, ui.HeaderHeight+1))

	if m.store.ActiveConversationID() != "3" {
		t.Errorf("active = %q, want 3", m.store.ActiveConversationID())
	}
	if m.Focus() != FocusChat {
		t.Error("opening by click should focus the composer")
	}
}

func TestClickSidebarDeleteGlyphAsks(t *testing.T) {
	m := testModel(t, threeConversations())

	glyphX := m.sidebar.Width() - 3
	click(m, glyphX, ui.HeaderHeight+2)

	state, ok := m.modal.State.(*modals.ConfirmDeleteState)
	if !ok || state.ConversationID != "2" {
		t.Fatalf("expected delete confirmation for 2, got %#v", m.modal.State)
	}
	if m.store.IsOpen("2") {
		t.Error("delete glyph should not open the conversation")
	}
}

func TestClickIgnoredUnderModal(t *testing.T) {
	m := testModel(t, threeConversations())
	m.showAlert("boom")

	if cmd := click(m, 3, ui.HeaderHeight+1); cmd != nil {
		t.Error("clicks should be ignored while a modal is up")
	}
	if m.store.ActiveConversationID() != "" {
		t.Error("nothing should open under a modal")
	}
}

func TestClickTabBar(t *testing.T) {
	m := testModel(t, threeConversations())
	runCmd(t, m, m.openConversation("1"))
	runCmd(t, m, m.openConversation("2"))

	// The first tab starts right after the sidebar
	click(m, m.sidebar.Width()+2, ui.HeaderHeight)
	if m.store.ActiveConversationID() != "1" {
		t.Errorf("active = %q, want 1", m.store.ActiveConversationID())
	}
}

func TestClickTabCloseFocusesRemainingTab(t *testing.T) {
	m := testModel(t, threeConversations())
	runCmd(t, m, m.openConversation("1"))
	runCmd(t, m, m.openConversation("2"))
	press(m, keys.Tab)
	if m.Focus() != FocusSidebar {
		t.Fatal("Tab should move focus to the sidebar")
	}

	// " First × " is nine cells; the glyph of " Second × " sits eight in
	closeX := m.sidebar.Width() + 9 + 8
	click(m, closeX, ui.HeaderHeight)

	if m.store.IsOpen("2") {
		t.Fatal("close glyph should close tab 2")
	}
	if m.store.ActiveConversationID() != "1" {
		t.Errorf("active = %q, want 1", m.store.ActiveConversationID())
	}
	if m.Focus() != FocusChat {
		t.Error("composer of the remaining tab should have focus")
	}
}

func TestClickClosingLastTabKeepsFocus(t *testing.T) {
	m := testModel(t, threeConversations())
	runCmd(t, m, m.openConversation("1"))
	press(m, keys.Tab)

	// " First × ": glyph at column seven
	click(m, m.sidebar.Width()+7, ui.HeaderHeight)

	if m.store.IsOpen("1") {
		t.Fatal("close glyph should close tab 1")
	}
	if m.Focus() != FocusSidebar {
		t.Error("focus should stay on the sidebar with no tabs left")
	}
}
