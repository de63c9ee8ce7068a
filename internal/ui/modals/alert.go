package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// AlertState is a blocking notice that the user dismisses with Enter or Esc.
// Failed create, send and delete operations surface through it.
type AlertState struct {
	Message string
}

func (*AlertState) modalState() {}

func (s *AlertState) Title() string { return "Something went wrong" }

func (s *AlertState) Help() string { return "Enter or Esc to dismiss" }

func (s *AlertState) Render() string {
	title := ModalTitleStyle.Foreground(ColorError).Render(s.Title())
	body := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalWidth - 6).
		Render(s.Message)
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *AlertState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

func NewAlertState(message string) *AlertState {
	return &AlertState{Message: message}
}
