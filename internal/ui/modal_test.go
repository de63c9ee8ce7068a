package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/ragchat/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("new modal should be hidden")
	}

	m.Show(modals.NewAlertState("boom"))
	m.SetError("inline")
	if !m.IsVisible() || m.GetError() != "inline" {
		t.Error("modal should be visible with its error")
	}

	m.Show(modals.NewAlertState("again"))
	if m.GetError() != "" {
		t.Error("Show should clear the previous error")
	}

	m.Hide()
	if m.IsVisible() {
		t.Error("Hide should clear the state")
	}
}

func TestModal_ViewOverlaysBase(t *testing.T) {
	m := NewModal()
	base := strings.Repeat(strings.Repeat("x", 100)+"\n", 29) + strings.Repeat("x", 100)

	if got := m.View(base, 100, 30); got != base {
		t.Error("hidden modal should return the base unchanged")
	}

	m.Show(modals.NewAlertState("Failed to send message. Please try again."))
	out := ansi.Strip(m.View(base, 100, 30))

	if !strings.Contains(out, "Failed to send message") {
		t.Error("overlay should contain the modal text")
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "xxxx") {
		t.Errorf("base should show around the modal, got %q", lines[0])
	}
}

func TestModal_UpdateDelegates(t *testing.T) {
	m := NewModal()
	state := modals.NewConfirmDeleteState("1", "Trip")
	m.Show(state)

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !state.Confirmed() {
		t.Error("key should reach the modal state")
	}
}
