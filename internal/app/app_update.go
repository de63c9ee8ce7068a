package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/clipboard"
	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/ui"
	"github.com/zhubert/ragchat/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true

	case tea.BlurMsg:
		m.windowFocused = false

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ConversationsLoadedMsg:
		return m.handleConversationsLoaded(msg)

	case ConversationCreatedMsg:
		return m.handleConversationCreated(msg)

	case MessagesLoadedMsg:
		return m.handleMessagesLoaded(msg)

	case MessageSentMsg:
		return m.handleMessageSent(msg)

	case ConversationDeletedMsg:
		return m.handleConversationDeleted(msg)
	}

	// Anything else (cursor blink and friends) goes to the modal or the visible window
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	if w := m.tabs.Active(); w != nil {
		_, cmd := w.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case keys.CtrlN:
		m.modal.Show(modals.NewNewConversationState())
		return m, nil
	case keys.Tab, keys.ShiftTab:
		m.toggleFocus()
		return m, nil
	case keys.CtrlW:
		if id := m.store.ActiveConversationID(); id != "" {
			m.closeTab(id)
		}
		return m, nil
	case keys.CtrlLeft:
		m.tabs.Cycle(-1)
		return m, nil
	case keys.CtrlRight:
		m.tabs.Cycle(1)
		return m, nil
	case keys.CtrlY:
		return m, m.copyLastReply()
	case keys.CtrlR:
		return m, m.loadConversations()
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		if conv, ok := m.sidebar.Selected(); ok {
			return m, m.openConversation(conv.ID)
		}
		return m, nil
	case "d", keys.Delete:
		if conv, ok := m.sidebar.Selected(); ok {
			m.confirmDelete(conv.ID)
		}
		return m, nil
	case keys.PgUp, keys.PgDown:
		// Scroll the visible conversation without leaving the sidebar
		if w := m.tabs.Active(); w != nil {
			w.Page(msg.String() == keys.PgDown)
		}
		return m, nil
	}

	sidebar, cmd := m.sidebar.Update(msg)
	m.sidebar = sidebar
	return m, cmd
}

func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	w := m.tabs.Active()
	if w == nil {
		return m, nil
	}

	switch msg.String() {
	case keys.Enter:
		return m, m.submit()
	case keys.ShiftEnter, keys.AltEnter:
		w.InsertNewline()
		return m, nil
	}

	_, cmd := w.Update(msg)
	return m, cmd
}

// handleModalKey owns Enter and Esc for every modal; other keys go to the
// modal state.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.submitModal()
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) submitModal() (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *modals.NewConversationState:
		m.modal.Hide()
		return m, m.createConversation(state.ConversationTitle())

	case *modals.ConfirmDeleteState:
		m.modal.Hide()
		if !state.Confirmed() {
			return m, nil
		}
		logger.WithConversation(string(state.ConversationID)).Info("Deleting conversation")
		return m, m.deleteConversation(state.ConversationID)

	default:
		m.modal.Hide()
		return m, nil
	}
}

// copyLastReply puts the newest assistant message of the active
// conversation on the clipboard.
func (m *Model) copyLastReply() tea.Cmd {
	w := m.tabs.Active()
	if w == nil {
		return nil
	}
	reply, ok := w.LastReply()
	if !ok {
		return m.ShowFlashInfo("No reply to copy yet")
	}
	if err := clipboard.WriteText(reply); err != nil {
		logger.WithComponent("clipboard").Warn("Copy failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied reply")
}
