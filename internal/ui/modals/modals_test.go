package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestConfirmDeleteState_DefaultsToCancel(t *testing.T) {
	s := NewConfirmDeleteState("42", "Trip planning")

	if s.Confirmed() {
		t.Error("new confirm dialog should start on Cancel")
	}
	if s.ConversationID != "42" {
		t.Errorf("ConversationID = %q, want 42", s.ConversationID)
	}
}

func TestConfirmDeleteState_Navigation(t *testing.T) {
	s := NewConfirmDeleteState("1", "x")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !s.Confirmed() {
		t.Error("down should select Delete")
	}

	// Clamped at the last option
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.SelectedIndex != 1 {
		t.Errorf("SelectedIndex = %d, want 1", s.SelectedIndex)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0", s.SelectedIndex)
	}
}

func TestConfirmDeleteState_Render(t *testing.T) {
	s := NewConfirmDeleteState("1", "Trip planning")
	out := s.Render()

	for _, want := range []string{"Delete Conversation?", "Trip planning", "Cancel", "Delete"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestAlertState(t *testing.T) {
	s := NewAlertState("Failed to send message. Please try again.")

	if !strings.Contains(s.Render(), "Failed to send message") {
		t.Error("alert should render its message")
	}
	next, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if next != s || cmd != nil {
		t.Error("alert Update should be inert")
	}
}

func TestNewConversationState_Title(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"  Budget review ", "Budget review"},
	}

	for _, tt := range tests {
		s := NewNewConversationState()
		s.title = tt.input
		if got := s.ConversationTitle(); got != tt.want {
			t.Errorf("ConversationTitle() with %q = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewConversationState_EnterNotForwarded(t *testing.T) {
	s := NewNewConversationState()
	form := s.form

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("Enter should be left to the app layer")
	}
	if s.form != form {
		t.Error("form should be unchanged on Enter")
	}
}

func TestModalStatesImplementInterface(t *testing.T) {
	var _ ModalState = NewConfirmDeleteState("1", "x")
	var _ ModalState = NewAlertState("x")
	var _ ModalState = NewNewConversationState()
}
