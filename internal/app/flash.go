package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// handleFlashTick clears an expired flash; a newer flash schedules its own tick.
func (m *Model) handleFlashTick() tea.Cmd {
	m.footer.ClearIfExpired()
	return nil
}
