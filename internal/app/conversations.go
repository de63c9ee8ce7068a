package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/zhubert/ragchat/internal/api"
	perrors "github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/notification"
	"github.com/zhubert/ragchat/internal/ui"
	"github.com/zhubert/ragchat/internal/ui/modals"
)

// User-facing alert texts
const (
	alertCreateFailed = "Failed to create a new conversation. Please try again."
	alertSendFailed   = "Failed to send message. Please try again."
	alertDeleteFailed = "Failed to delete conversation. Please try again."
)

func (m *Model) loadConversations() tea.Cmd {
	client, ctx := m.api, m.ctx
	return func() tea.Msg {
		convs, err := client.ListConversations(ctx, api.ListConversationsParams{})
		return ConversationsLoadedMsg{Conversations: convs, Err: err}
	}
}

func (m *Model) fetchMessages(id api.ConversationID) tea.Cmd {
	m.fetching[id] = true
	client, ctx := m.api, m.ctx
	return func() tea.Msg {
		msgs, err := client.ListMessages(ctx, id)
		return MessagesLoadedMsg{ID: id, Messages: msgs, Err: err}
	}
}

func (m *Model) createConversation(title string) tea.Cmd {
	client, ctx := m.api, m.ctx
	return func() tea.Msg {
		conv, err := client.CreateConversation(ctx, title)
		return ConversationCreatedMsg{Conversation: conv, Err: err}
	}
}

func (m *Model) deleteConversation(id api.ConversationID) tea.Cmd {
	client, ctx := m.api, m.ctx
	return func() tea.Msg {
		return ConversationDeletedMsg{ID: id, Err: client.DeleteConversation(ctx, id)}
	}
}

func (m *Model) sendMessage(id api.ConversationID, p pendingSend) tea.Cmd {
	client, ctx := m.api, m.ctx
	return func() tea.Msg {
		reply, err := client.SendMessage(ctx, id, p.content)
		if err != nil {
			return MessageSentMsg{ID: id, Token: p.token, Outcome: Failed{Err: err}}
		}
		return MessageSentMsg{ID: id, Token: p.token, Outcome: Sent{Reply: reply}}
	}
}

func (m *Model) showAlert(text string) {
	m.modal.Show(modals.NewAlertState(text))
}

func (m *Model) handleConversationsLoaded(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithComponent("app").Error("Failed to load conversations", "error", msg.Err)
		return m, m.ShowFlashError("Could not reach the server")
	}
	// The server list is authoritative: anything it no longer has goes,
	// open tabs included.
	fetched := make(map[api.ConversationID]bool, len(msg.Conversations))
	for _, c := range msg.Conversations {
		fetched[c.ID] = true
	}
	for _, c := range m.store.Conversations() {
		if !fetched[c.ID] {
			logger.WithConversation(string(c.ID)).Info("Conversation gone from server")
			m.removeConversation(c.ID)
		}
	}
	for _, c := range msg.Conversations {
		m.store.AddConversation(c)
	}
	m.refreshSidebar()
	logger.WithComponent("app").Info("Conversations loaded", "count", len(msg.Conversations))
	return m, nil
}

// openConversation opens id and moves focus to its composer.
func (m *Model) openConversation(id api.ConversationID) tea.Cmd {
	cmd := m.tabs.Open(id)
	if m.store.ActiveConversationID() == id {
		m.setFocus(FocusChat)
	}
	return cmd
}

func (m *Model) handleMessagesLoaded(msg MessagesLoadedMsg) (tea.Model, tea.Cmd) {
	log := logger.WithConversation(string(msg.ID))
	delete(m.fetching, msg.ID)
	if msg.Err != nil {
		delete(m.stale, msg.ID)
		log.Error("Failed to load messages", "error", msg.Err)
		return m, nil
	}
	w, ok := m.windows.Get(msg.ID)
	if !ok {
		log.Warn("Messages arrived for a closed conversation")
		return m, nil
	}
	if m.stale[msg.ID] {
		// A reply landed after this history was read; it would wipe it.
		delete(m.stale, msg.ID)
		log.Debug("Discarding stale history")
		return m, m.fetchMessages(msg.ID)
	}

	msgs := slices.Clone(msg.Messages)
	slices.SortStableFunc(msgs, func(a, b api.Message) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	w.SetMessages(msgs)
	m.replayPending(msg.ID, w, msgs)
	return m, nil
}

// replayPending puts back the bubbles of sends made before the history
// arrived. The server stores the user message before answering, so a running
// send may already be the last history entry, or its whole exchange may be.
func (m *Model) replayPending(id api.ConversationID, w *ui.Window, history []api.Message) {
	running, ok, waiting := m.sends.Snapshot(id)
	if !ok {
		return
	}
	last := len(history) - 1
	switch {
	case last >= 1 && !history[last].IsUser && isUserText(history[last-1], running.content):
		m.sends.MarkLanded(id)
	case last >= 0 && isUserText(history[last], running.content):
		w.AddPlaceholder(running.token)
	default:
		w.AppendMessage(running.content, true)
		w.AddPlaceholder(running.token)
	}
	for _, p := range waiting {
		w.AppendMessage(p.content, true)
	}
	logger.WithConversation(string(id)).Debug("Replayed pending sends", "pending", m.sends.Pending(id))
}

func isUserText(msg api.Message, content string) bool {
	return msg.IsUser && msg.Content == content
}

func (m *Model) handleConversationCreated(msg ConversationCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithComponent("app").Error("Failed to create conversation", "error", msg.Err)
		m.showAlert(alertCreateFailed)
		return m, nil
	}
	conv := msg.Conversation
	m.store.AddConversation(conv)
	m.refreshSidebar()
	logger.WithConversation(string(conv.ID)).Info("Conversation created", "title", conv.Title)
	return m, m.openConversation(conv.ID)
}

// confirmDelete asks before deleting id.
func (m *Model) confirmDelete(id api.ConversationID) {
	conv, ok := m.store.Conversation(id)
	if !ok {
		logger.WithConversation(string(id)).Warn("Delete requested for unknown conversation")
		return
	}
	m.modal.Show(modals.NewConfirmDeleteState(id, conv.Title))
}

func (m *Model) handleConversationDeleted(msg ConversationDeletedMsg) (tea.Model, tea.Cmd) {
	log := logger.WithConversation(string(msg.ID))
	if msg.Err != nil {
		log.Error("Failed to delete conversation", "error", msg.Err)
		m.showAlert(alertDeleteFailed)
		return m, nil
	}

	m.removeConversation(msg.ID)
	log.Info("Conversation deleted")
	return m, m.ShowFlashSuccess("Conversation deleted")
}

// removeConversation is the local side of a delete: close the tab if open,
// then forget the conversation.
func (m *Model) removeConversation(id api.ConversationID) {
	if m.store.IsOpen(id) {
		m.closeConversation(id)
	}
	m.store.RemoveConversation(id)
	m.refreshSidebar()
	if m.store.Len() == 0 && m.focus == FocusChat {
		m.setFocus(FocusSidebar)
	}
}

// closeTab is the user-driven close: focus follows to the composer of the
// tab that becomes active.
func (m *Model) closeTab(id api.ConversationID) {
	m.closeConversation(id)
	if m.tabs.Active() != nil {
		m.setFocus(FocusChat)
	}
}

// closeConversation closes a tab and drops its pending sends.
func (m *Model) closeConversation(id api.ConversationID) {
	m.sends.Drop(id)
	delete(m.fetching, id)
	delete(m.stale, id)
	m.tabs.Close(id)
	m.setFocus(m.focus)
}

// submit sends the active window's draft. The user bubble appears at once;
// the request waits if an earlier send to the same conversation is running.
func (m *Model) submit() tea.Cmd {
	w := m.tabs.Active()
	if w == nil {
		logger.WithComponent("app").Warn("Submit with no active conversation")
		return nil
	}
	text := w.TakeDraft()
	if text == "" {
		return nil
	}

	id := w.ID()
	p := pendingSend{token: uuid.NewString(), content: text}
	w.AppendMessage(text, true)

	if !m.sends.Enqueue(id, p) {
		logger.WithConversation(string(id)).Debug("Send queued", "pending", m.sends.Pending(id))
		return nil
	}
	w.AddPlaceholder(p.token)
	return m.sendMessage(id, p)
}

func (m *Model) handleMessageSent(msg MessageSentMsg) (tea.Model, tea.Cmd) {
	log := logger.WithConversation(string(msg.ID))
	if !m.sends.IsCurrent(msg.ID, msg.Token) {
		log.Warn("Dropping reply for a closed conversation")
		return m, nil
	}

	var cmds []tea.Cmd
	w, ok := m.windows.Get(msg.ID)
	if !ok {
		log.Error("Window missing for send result")
		m.sends.Drop(msg.ID)
		return m, nil
	}
	w.RemovePlaceholder(msg.Token)
	if m.fetching[msg.ID] {
		m.stale[msg.ID] = true
	}

	switch out := msg.Outcome.(type) {
	case Sent:
		if m.sends.Landed(msg.ID, msg.Token) {
			log.Debug("Reply already shown from history")
			break
		}
		w.AppendMessage(out.Reply.Content, false)
		cmds = append(cmds, m.notifyReply(msg.ID))
	case Failed:
		log.Error("Failed to send message", "error", out.Err, "status", perrors.StatusCode(out.Err))
		m.showAlert(alertSendFailed)
	}

	if next, ok := m.sends.Done(msg.ID); ok {
		w.AddPlaceholder(next.token)
		cmds = append(cmds, m.sendMessage(msg.ID, next))
	}
	return m, tea.Batch(cmds...)
}

// notifyReply raises a desktop notification when a reply lands somewhere the
// user is not looking.
func (m *Model) notifyReply(id api.ConversationID) tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	if m.windowFocused && m.store.ActiveConversationID() == id {
		return nil
	}
	conv, _ := m.store.Conversation(id)
	title := conv.Title
	return func() tea.Msg {
		if err := notification.ReplyReceived(title); err != nil {
			logger.WithComponent("notification").Warn("Notification failed", "error", err)
		}
		return nil
	}
}
