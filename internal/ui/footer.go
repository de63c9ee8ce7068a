package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays in the footer
const FlashDuration = 4 * time.Second

// FlashTickMsg is delivered when a flash message may have expired
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

type flash struct {
	text    string
	kind    FlashType
	expires time.Time
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	sidebarFocused  bool
	hasConversation bool
	flash           *flash
	now             func() time.Time
}

func NewFooter() *Footer {
	return &Footer{now: time.Now}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused, hasConversation bool) {
	f.sidebarFocused = sidebarFocused
	f.hasConversation = hasConversation
}

func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash replaces any current flash message.
func (f *Footer) SetFlash(text string, kind FlashType) {
	f.flash = &flash{text: text, kind: kind, expires: f.now().Add(FlashDuration)}
}

// ClearIfExpired drops the flash message once its time is up. It reports
// whether a message is still showing.
func (f *Footer) ClearIfExpired() bool {
	if f.flash == nil {
		return false
	}
	if !f.now().Before(f.flash.expires) {
		f.flash = nil
		return false
	}
	return true
}

func (f *Footer) HasFlash() bool {
	return f.flash != nil
}

// Bindings returns the shortcuts for the current focus.
func (f *Footer) Bindings() []KeyBinding {
	if f.sidebarFocused {
		bindings := []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "d", Desc: "delete"},
			{Key: "ctrl+n", Desc: "new"},
		}
		if f.hasConversation {
			bindings = append(bindings, KeyBinding{Key: "tab", Desc: "switch pane"})
		}
		return append(bindings, KeyBinding{Key: "ctrl+c", Desc: "quit"})
	}
	if !f.hasConversation {
		return []KeyBinding{
			{Key: "ctrl+n", Desc: "new conversation"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	return []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "shift+enter", Desc: "newline"},
		{Key: "ctrl+←/→", Desc: "tabs"},
		{Key: "ctrl+w", Desc: "close tab"},
		{Key: "ctrl+y", Desc: "copy reply"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "tab", Desc: "switch pane"},
	}
}

func (f *Footer) View() string {
	if f.flash != nil {
		return FooterStyle.Width(f.width).Render(flashStyle(f.flash.kind).Render(f.flash.text))
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}

func flashStyle(kind FlashType) lipgloss.Style {
	switch kind {
	case FlashError:
		return FlashErrorStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashSuccess:
		return FlashSuccessStyle
	default:
		return FlashInfoStyle
	}
}
