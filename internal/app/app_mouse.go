package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/ui"
)

// handleMouseClick maps a left click to the sidebar, the tab bar or the
// conversation window. Clicks are ignored while a modal is up.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if m.modal.IsVisible() || msg.Button != tea.MouseLeft {
		return nil
	}

	sidebarWidth := m.sidebar.Width()
	y := msg.Y - ui.HeaderHeight
	if y < 0 {
		return nil
	}

	if msg.X < sidebarWidth {
		return m.clickSidebar(msg.X, y)
	}

	x := msg.X - sidebarWidth
	if y < ui.TabBarHeight {
		return m.clickTabBar(x)
	}

	// Clicking into the conversation area focuses the composer
	if m.tabs.Active() != nil {
		m.setFocus(FocusChat)
	}
	return nil
}

func (m *Model) clickSidebar(x, y int) tea.Cmd {
	hit, ok := m.sidebar.HitTest(x, y)
	if !ok {
		m.setFocus(FocusSidebar)
		return nil
	}
	m.sidebar.Select(hit.ID)
	if hit.Delete {
		m.setFocus(FocusSidebar)
		m.confirmDelete(hit.ID)
		return nil
	}
	return m.openConversation(hit.ID)
}

func (m *Model) clickTabBar(x int) tea.Cmd {
	hit, ok := m.tabBar.HitTest(x)
	if !ok {
		return nil
	}
	if hit.Close {
		m.closeTab(hit.ID)
		return nil
	}
	m.tabs.Activate(hit.ID)
	m.setFocus(FocusChat)
	return nil
}

// handleMouseWheel scrolls the conversation under the pointer.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() || msg.X < m.sidebar.Width() {
		return nil
	}
	w := m.tabs.Active()
	if w == nil {
		return nil
	}
	_, cmd := w.Update(msg)
	return cmd
}
