package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/api"
)

// ConfirmDeleteState asks before a conversation is deleted on the server.
type ConfirmDeleteState struct {
	ConversationID    api.ConversationID
	ConversationTitle string
	Options           []string
	SelectedIndex     int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Conversation?" }

func (s *ConfirmDeleteState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	name := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.ConversationTitle)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render("The conversation and all of its messages will be removed.")

	var optionList string
	for i, opt := range s.Options {
		style := OptionStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = OptionSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, name, message, optionList, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed reports whether "Delete" is the highlighted option.
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.SelectedIndex == 1
}

// NewConfirmDeleteState starts on "Cancel" so a stray Enter is harmless.
func NewConfirmDeleteState(id api.ConversationID, title string) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		ConversationID:    id,
		ConversationTitle: title,
		Options:           []string{"Cancel", "Delete"},
		SelectedIndex:     0,
	}
}
