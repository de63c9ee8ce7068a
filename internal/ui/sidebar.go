package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/ragchat/internal/api"
	"github.com/zhubert/ragchat/internal/keys"
)

// SidebarHit describes what a click in the sidebar landed on.
type SidebarHit struct {
	ID     api.ConversationID
	Delete bool
}

// Sidebar lists every known conversation, newest first, one row each.
type Sidebar struct {
	items        []api.Conversation
	selectedIdx  int
	active       api.ConversationID
	width        int
	height       int
	focused      bool
	scrollOffset int
}

func NewSidebar() *Sidebar {
	return &Sidebar{}
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.ensureVisible()
}

func (s *Sidebar) Width() int {
	return s.width
}

func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetConversations replaces the rows. The caller passes them already
// ordered; the selection follows the previously selected id when it survives.
func (s *Sidebar) SetConversations(convs []api.Conversation) {
	var selected api.ConversationID
	if c, ok := s.Selected(); ok {
		selected = c.ID
	}

	s.items = make([]api.Conversation, len(convs))
	copy(s.items, convs)

	s.selectedIdx = 0
	for i, c := range s.items {
		if c.ID == selected {
			s.selectedIdx = i
			break
		}
	}
	s.ensureVisible()
}

// Conversations returns the rows in display order.
func (s *Sidebar) Conversations() []api.Conversation {
	out := make([]api.Conversation, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sidebar) Len() int {
	return len(s.items)
}

// Selected returns the highlighted row.
func (s *Sidebar) Selected() (api.Conversation, bool) {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.items) {
		return api.Conversation{}, false
	}
	return s.items[s.selectedIdx], true
}

// Select moves the highlight to id if it is listed.
func (s *Sidebar) Select(id api.ConversationID) bool {
	for i, c := range s.items {
		if c.ID == id {
			s.selectedIdx = i
			s.ensureVisible()
			return true
		}
	}
	return false
}

// SetActive marks the conversation shown in the chat area.
func (s *Sidebar) SetActive(id api.ConversationID) {
	s.active = id
}

func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.items)-1 {
			s.selectedIdx++
		}
	case keys.Home:
		s.selectedIdx = 0
	case keys.End:
		s.selectedIdx = max(len(s.items)-1, 0)
	}
	s.ensureVisible()
	return s, nil
}

func (s *Sidebar) visibleRows() int {
	return max(GetViewContext().InnerHeight(s.height), 1)
}

func (s *Sidebar) ensureVisible() {
	rows := s.visibleRows()
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	}
	if s.selectedIdx >= s.scrollOffset+rows {
		s.scrollOffset = s.selectedIdx - rows + 1
	}
	s.scrollOffset = max(min(s.scrollOffset, len(s.items)-rows), 0)
}

// contentWidth is the space inside the border and the row padding.
func (s *Sidebar) contentWidth() int {
	return max(GetViewContext().InnerWidth(s.width)-2, 1)
}

// renderRow lays out "title  date ✕" in the given width. The date is dropped
// when the title would have too little room.
func renderRow(c api.Conversation, width int) string {
	var right string
	date := c.CreatedAt.Local().Format(SidebarDateFormat)
	if c.CreatedAt.IsZero() {
		date = ""
	}
	if date != "" && width-runewidth.StringWidth(date+" "+DeleteGlyph)-1 >= 8 {
		right = SidebarDateStyle.Render(date) + " " + SidebarDeleteStyle.Render(DeleteGlyph)
	} else {
		right = SidebarDeleteStyle.Render(DeleteGlyph)
	}

	titleWidth := max(width-lipgloss.Width(right)-1, 1)
	title := runewidth.Truncate(sanitizeText(strings.ReplaceAll(c.Title, "\n", " ")), titleWidth, "…")
	title = runewidth.FillRight(title, titleWidth)
	return title + " " + right
}

// HitTest maps a click at (x, y), relative to the sidebar's top-left corner,
// to a row and whether its delete control was hit.
func (s *Sidebar) HitTest(x, y int) (SidebarHit, bool) {
	row := y - 1 + s.scrollOffset
	if y < 1 || y > s.visibleRows() || row < 0 || row >= len(s.items) {
		return SidebarHit{}, false
	}
	// border + padding + content; the glyph is the content's last cell
	glyphX := 2 + s.contentWidth() - 1
	return SidebarHit{
		ID:     s.items[row].ID,
		Delete: x >= glyphX-1 && x <= glyphX+1,
	}, true
}

func (s *Sidebar) View() string {
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	if len(s.items) == 0 {
		empty := EmptyStateStyle.Render(SidebarEmptyText)
		return style.Width(s.width).Height(s.height).Render(empty)
	}

	innerWidth := GetViewContext().InnerWidth(s.width)
	end := min(s.scrollOffset+s.visibleRows(), len(s.items))
	lines := make([]string, 0, end-s.scrollOffset)
	for i := s.scrollOffset; i < end; i++ {
		c := s.items[i]
		itemStyle := SidebarItemStyle
		switch {
		case i == s.selectedIdx && s.focused:
			itemStyle = SidebarSelectedStyle
		case c.ID == s.active:
			itemStyle = SidebarActiveStyle
		}
		lines = append(lines, itemStyle.Width(innerWidth).Render(renderRow(c, s.contentWidth())))
	}

	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}
