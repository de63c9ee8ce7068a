package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.tabBar.View(),
		m.windows.View(),
	)
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		right,
	)
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)

	if m.modal.IsVisible() {
		ctx := ui.GetViewContext()
		return m.modal.View(view, ctx.TerminalWidth, ctx.TerminalHeight)
	}
	return view
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.focus == FocusSidebar, m.tabs.Active() != nil)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.tabBar.SetWidth(ctx.ChatWidth)
	m.windows.SetSize(ctx.ChatWidth, ctx.WindowHeight())
}
