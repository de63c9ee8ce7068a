package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/api"
	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/store"
	"github.com/zhubert/ragchat/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	api     API
	ctx     context.Context

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	tabBar  *ui.TabBar
	windows *ui.Windows
	modal   *ui.Modal

	store *store.Store
	tabs  *TabManager
	sends *sendQueue

	// fetching holds conversations with a history request outstanding;
	// stale marks those whose history changed while it was in flight.
	fetching map[api.ConversationID]bool
	stale    map[api.ConversationID]bool

	width         int
	height        int
	focus         Focus
	windowFocused bool
}

// New creates a new app model talking to the collaborator through client.
func New(cfg *config.Config, client API, version string) *Model {
	m := &Model{
		config:        cfg,
		version:       version,
		api:           client,
		ctx:           context.Background(),
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		sidebar:       ui.NewSidebar(),
		tabBar:        ui.NewTabBar(),
		windows:       ui.NewWindows(),
		modal:         ui.NewModal(),
		store:         store.New(),
		sends:         newSendQueue(),
		fetching:      make(map[api.ConversationID]bool),
		stale:         make(map[api.ConversationID]bool),
		focus:         FocusSidebar,
		windowFocused: true,
	}
	m.tabs = NewTabManager(m.store, m.tabBar, m.windows, m.sidebar, m.header, m.fetchMessages)
	m.header.SetServerURL(cfg.GetServerURL())
	m.sidebar.SetFocused(true)
	return m
}

// Init loads the conversation list.
func (m *Model) Init() tea.Cmd {
	logger.WithComponent("app").Info("Starting", "version", m.version, "server", m.config.GetServerURL())
	return m.loadConversations()
}

// Store exposes the conversation state.
func (m *Model) Store() *store.Store {
	return m.store
}

// Focus reports which panel has keyboard focus.
func (m *Model) Focus() Focus {
	return m.focus
}

// setFocus moves keyboard focus. Chat focus lands on the visible window's
// composer, if there is one.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.windows.SetFocused(f == FocusChat)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.setFocus(FocusChat)
	} else {
		m.setFocus(FocusSidebar)
	}
}

// refreshSidebar redraws the list from the store.
func (m *Model) refreshSidebar() {
	m.sidebar.SetConversations(m.store.Conversations())
}
