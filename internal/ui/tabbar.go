package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zhubert/ragchat/internal/api"
)

// TruncateTitle shortens a title to MaxTabTitleLength characters followed by
// "...". Characters are grapheme clusters, so emoji and combining marks are
// never split.
func TruncateTitle(title string) string {
	if uniseg.GraphemeClusterCount(title) <= MaxTabTitleLength {
		return title
	}
	var sb strings.Builder
	g := uniseg.NewGraphemes(title)
	for n := 0; n < MaxTabTitleLength && g.Next(); n++ {
		sb.WriteString(g.Str())
	}
	return sb.String() + TabEllipsis
}

// Tab is one entry in the tab bar.
type Tab struct {
	ID    api.ConversationID
	Title string
}

// TabHit describes what a click on the tab bar landed on.
type TabHit struct {
	ID    api.ConversationID
	Close bool
}

// TabBar draws the open conversations in the order they were opened.
type TabBar struct {
	tabs   []Tab
	active api.ConversationID
	width  int
}

func NewTabBar() *TabBar {
	return &TabBar{}
}

func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// Add appends a tab. It reports false if id already has one.
func (t *TabBar) Add(id api.ConversationID, title string) bool {
	if t.Has(id) {
		return false
	}
	t.tabs = append(t.tabs, Tab{ID: id, Title: title})
	return true
}

// Remove drops the tab for id; the active marker is cleared if it pointed there.
func (t *TabBar) Remove(id api.ConversationID) {
	for i, tab := range t.tabs {
		if tab.ID == id {
			t.tabs = append(t.tabs[:i], t.tabs[i+1:]...)
			break
		}
	}
	if t.active == id {
		t.active = ""
	}
}

func (t *TabBar) Has(id api.ConversationID) bool {
	for _, tab := range t.tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

func (t *TabBar) Len() int {
	return len(t.tabs)
}

// Tabs returns a copy of the tabs in display order.
func (t *TabBar) Tabs() []Tab {
	out := make([]Tab, len(t.tabs))
	copy(out, t.tabs)
	return out
}

// SetActive highlights id; an unknown id clears the highlight.
func (t *TabBar) SetActive(id api.ConversationID) {
	if !t.Has(id) {
		t.active = ""
		return
	}
	t.active = id
}

func (t *TabBar) Active() api.ConversationID {
	return t.active
}

// Neighbor returns the tab delta positions away from id, wrapping around.
func (t *TabBar) Neighbor(id api.ConversationID, delta int) (api.ConversationID, bool) {
	if len(t.tabs) == 0 {
		return "", false
	}
	idx := 0
	for i, tab := range t.tabs {
		if tab.ID == id {
			idx = i
			break
		}
	}
	n := len(t.tabs)
	return t.tabs[((idx+delta)%n+n)%n].ID, true
}

// label is the unstyled text of a tab; its display width drives hit testing.
func (t *TabBar) label(tab Tab) (title string, closeAt int, width int) {
	title = TruncateTitle(tab.Title)
	// Styles pad one cell on each side: " title × "
	closeAt = 1 + runewidth.StringWidth(title) + 1
	width = closeAt + runewidth.StringWidth(CloseGlyph) + 1
	return title, closeAt, width
}

// HitTest maps a column on the tab bar to a tab and whether its close
// control was hit.
func (t *TabBar) HitTest(x int) (TabHit, bool) {
	if x < 0 {
		return TabHit{}, false
	}
	start := 0
	for _, tab := range t.tabs {
		_, closeAt, width := t.label(tab)
		if x < start+width {
			rel := x - start
			closeWidth := runewidth.StringWidth(CloseGlyph)
			return TabHit{ID: tab.ID, Close: rel >= closeAt && rel < closeAt+closeWidth}, true
		}
		start += width
	}
	return TabHit{}, false
}

func (t *TabBar) View() string {
	var sb strings.Builder
	for _, tab := range t.tabs {
		title, _, _ := t.label(tab)
		style := TabStyle
		if tab.ID == t.active {
			style = TabActiveStyle
		}
		sb.WriteString(style.Render(title + " " + TabCloseStyle.Render(CloseGlyph)))
	}
	line := sb.String()
	if t.width > 0 {
		return fitWidth(line, t.width)
	}
	return line
}

// fitWidth cuts or pads a styled line to exactly width cells.
func fitWidth(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	return line + strings.Repeat(" ", max(width-ansi.StringWidth(line), 0))
}
