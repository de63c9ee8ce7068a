package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// DefaultConversationTitle is what the server names an untitled conversation.
const DefaultConversationTitle = "New Conversation"

// NewConversationState collects the title for a conversation about to be
// created on the server.
type NewConversationState struct {
	title string
	form  *huh.Form
}

func (*NewConversationState) modalState() {}

func (s *NewConversationState) Title() string { return "New Conversation" }

func (s *NewConversationState) Help() string {
	return "Enter: create  Esc: cancel"
}

func (s *NewConversationState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *NewConversationState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// ConversationTitle returns the trimmed input. Blank input returns "" so the
// server applies its default.
func (s *NewConversationState) ConversationTitle() string {
	return strings.TrimSpace(s.title)
}

func NewNewConversationState() *NewConversationState {
	s := &NewConversationState{}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Leave blank for \"" + DefaultConversationTitle + "\"").
				Placeholder(DefaultConversationTitle).
				CharLimit(ModalInputCharLimit).
				Value(&s.title),
		),
	).
		WithTheme(formTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	s.form.Init()
	return s
}
