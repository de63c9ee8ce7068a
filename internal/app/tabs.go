package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/api"
	perrors "github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/store"
	"github.com/zhubert/ragchat/internal/ui"
)

// TabManager moves conversations between closed, open and active. It keeps
// the store, the tab bar, the windows and the sidebar highlight in step.
type TabManager struct {
	store   *store.Store
	tabBar  *ui.TabBar
	windows *ui.Windows
	sidebar *ui.Sidebar
	header  *ui.Header

	// fetch builds the command that loads a conversation's history.
	fetch func(id api.ConversationID) tea.Cmd
}

func NewTabManager(s *store.Store, tabBar *ui.TabBar, windows *ui.Windows, sidebar *ui.Sidebar, header *ui.Header, fetch func(api.ConversationID) tea.Cmd) *TabManager {
	return &TabManager{
		store:   s,
		tabBar:  tabBar,
		windows: windows,
		sidebar: sidebar,
		header:  header,
		fetch:   fetch,
	}
}

// Open shows a conversation, creating its tab and window the first time.
// The returned command fetches the history for a newly opened conversation.
func (t *TabManager) Open(id api.ConversationID) tea.Cmd {
	if t.store.IsOpen(id) {
		t.Activate(id)
		return nil
	}

	conv, ok := t.store.Conversation(id)
	if !ok {
		logger.WithConversation(string(id)).Error("Cannot open conversation", "error", perrors.ConversationNotFound(string(id)))
		return nil
	}

	t.tabBar.Add(id, conv.Title)
	t.windows.Create(id)
	t.store.AddOpenTab(id)
	t.Activate(id)

	logger.WithComponent("tabs").Debug("Conversation opened", "conversationID", string(id), "openTabs", len(t.store.OpenTabs()))

	if t.fetch == nil {
		return nil
	}
	return t.fetch(id)
}

// Activate makes an open conversation the visible one. The window inherits
// the current chat focus; callers that want the composer focused follow up
// with Model.setFocus(FocusChat).
func (t *TabManager) Activate(id api.ConversationID) bool {
	if _, ok := t.windows.Get(id); !ok {
		logger.WithConversation(string(id)).Error("Cannot activate conversation", "error", perrors.WindowNotFound(string(id)))
		return false
	}
	if !t.store.SetActiveConversation(id) {
		logger.WithConversation(string(id)).Error("Cannot activate a conversation that is not open")
		return false
	}

	t.windows.Show(id)
	t.tabBar.SetActive(id)
	t.sidebar.SetActive(id)
	t.sidebar.Select(id)

	conv, _ := t.store.Conversation(id)
	t.header.SetConversationTitle(conv.Title)
	return true
}

// Close removes a conversation's tab and window. Closing the active tab
// activates the first remaining one; closing the last tab leaves the empty
// state.
func (t *TabManager) Close(id api.ConversationID) {
	if !t.store.IsOpen(id) {
		return
	}
	wasActive := t.store.ActiveConversationID() == id

	t.tabBar.Remove(id)
	t.windows.Remove(id)
	t.store.RemoveOpenTab(id)

	logger.WithComponent("tabs").Debug("Conversation closed", "conversationID", string(id), "wasActive", wasActive)

	if !wasActive {
		return
	}
	if remaining := t.store.OpenTabs(); len(remaining) > 0 {
		t.Activate(remaining[0])
		return
	}
	t.store.ClearActive()
	t.windows.HideAll()
	t.tabBar.SetActive("")
	t.sidebar.SetActive("")
	t.header.SetConversationTitle("")
}

// Cycle activates the tab delta positions from the active one.
func (t *TabManager) Cycle(delta int) bool {
	next, ok := t.tabBar.Neighbor(t.store.ActiveConversationID(), delta)
	if !ok {
		return false
	}
	return t.Activate(next)
}

// Active returns the active conversation's window, or nil.
func (t *TabManager) Active() *ui.Window {
	id := t.store.ActiveConversationID()
	if id == "" {
		return nil
	}
	w, ok := t.windows.Get(id)
	if !ok {
		return nil
	}
	return w
}
