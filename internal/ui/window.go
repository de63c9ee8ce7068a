package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/api"
	"github.com/zhubert/ragchat/internal/ui/modals"
)

// Window is the message area and composer for one open conversation.
// Only the visible window is drawn; hidden windows keep their bubbles and
// any unsent draft.
type Window struct {
	id       api.ConversationID
	viewport viewport.Model
	composer textarea.Model
	bubbles  []Bubble

	width   int
	height  int
	visible bool
	focused bool
}

// NewWindow creates an empty, hidden window. Call SetMessages to populate it.
func NewWindow(id api.ConversationID) *Window {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.CharLimit = 0
	ta.SetHeight(TextareaHeight)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	modals.ApplyTextareaStyles(&ta)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	w := &Window{
		id:       id,
		viewport: vp,
		composer: ta,
	}
	w.SetSize(DefaultWrapWidth, MinTerminalHeight)
	return w
}

func (w *Window) ID() api.ConversationID {
	return w.id
}

// SetSize sets the window dimensions (message panel plus composer).
func (w *Window) SetSize(width, height int) {
	w.width = width
	w.height = height

	ctx := GetViewContext()
	viewportHeight := max(ctx.InnerHeight(height-InputTotalHeight), 1)

	w.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	w.viewport.SetHeight(viewportHeight)
	w.composer.SetWidth(max(ctx.InnerWidth(width)-InputPaddingWidth, 1))
	w.refresh()
}

// SetMessages replaces the window's bubbles with a conversation's history.
// An empty history shows the greeting.
func (w *Window) SetMessages(msgs []api.Message) {
	w.bubbles = w.bubbles[:0]
	if len(msgs) == 0 {
		w.bubbles = append(w.bubbles, greetingBubble())
	}
	for _, m := range msgs {
		w.bubbles = append(w.bubbles, NewBubble(m.Content, m.IsUser))
	}
	w.refresh()
}

// AppendMessage adds a user or assistant bubble at the bottom.
func (w *Window) AppendMessage(content string, isUser bool) {
	w.bubbles = append(w.bubbles, NewBubble(content, isUser))
	w.refresh()
}

// AddPlaceholder shows "Thinking..." for the send identified by token.
func (w *Window) AddPlaceholder(token string) {
	w.bubbles = append(w.bubbles, placeholderBubble(token))
	w.refresh()
}

// RemovePlaceholder drops the placeholder created for token. It reports
// whether one was found.
func (w *Window) RemovePlaceholder(token string) bool {
	for i, b := range w.bubbles {
		if b.Kind == BubblePlaceholder && b.Token == token {
			w.bubbles = append(w.bubbles[:i], w.bubbles[i+1:]...)
			w.refresh()
			return true
		}
	}
	return false
}

// Bubbles returns a copy of the bubbles in display order.
func (w *Window) Bubbles() []Bubble {
	out := make([]Bubble, len(w.bubbles))
	copy(out, w.bubbles)
	return out
}

func (w *Window) BubbleCount() int {
	return len(w.bubbles)
}

// HasPlaceholder reports whether any reply is still pending.
func (w *Window) HasPlaceholder() bool {
	for _, b := range w.bubbles {
		if b.Kind == BubblePlaceholder {
			return true
		}
	}
	return false
}

// LastReply returns the newest assistant message, skipping the greeting.
func (w *Window) LastReply() (string, bool) {
	for i := len(w.bubbles) - 1; i >= 0; i-- {
		if w.bubbles[i].Kind == BubbleAssistant {
			return w.bubbles[i].Content, true
		}
	}
	return "", false
}

func (w *Window) Show() {
	w.visible = true
}

// Hide also drops focus so a hidden composer never takes keys.
func (w *Window) Hide() {
	w.visible = false
	w.SetFocused(false)
}

func (w *Window) IsVisible() bool {
	return w.visible
}

// SetFocused routes keyboard input to the composer.
func (w *Window) SetFocused(focused bool) {
	w.focused = focused
	if focused {
		w.composer.Focus()
	} else {
		w.composer.Blur()
	}
}

func (w *Window) IsFocused() bool {
	return w.focused
}

// Draft returns the composer text.
func (w *Window) Draft() string {
	return w.composer.Value()
}

// SetDraft replaces the composer text.
func (w *Window) SetDraft(s string) {
	w.composer.SetValue(s)
}

// TakeDraft returns the trimmed composer text and clears the composer. Blank
// input yields "" and leaves the composer as it was.
func (w *Window) TakeDraft() string {
	text := strings.TrimSpace(w.composer.Value())
	if text == "" {
		return ""
	}
	w.composer.Reset()
	return text
}

// InsertNewline adds a line break at the cursor.
func (w *Window) InsertNewline() {
	w.composer.InsertString("\n")
}

// Page scrolls the history one page down, or up.
func (w *Window) Page(down bool) {
	if down {
		w.viewport.PageDown()
	} else {
		w.viewport.PageUp()
	}
}

// ScrollToBottom jumps to the newest bubble.
func (w *Window) ScrollToBottom() {
	w.viewport.GotoBottom()
}

func (w *Window) refresh() {
	width := w.viewport.Width()
	var sb strings.Builder
	for i, b := range w.bubbles {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(b.Render(width))
	}
	w.viewport.SetContent(sb.String())
	w.viewport.GotoBottom()
}

// Update routes scroll keys to the viewport and everything else to the
// composer while focused.
func (w *Window) Update(msg tea.Msg) (*Window, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey && w.focused {
		switch keyMsg.String() {
		case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
			var cmd tea.Cmd
			w.viewport, cmd = w.viewport.Update(msg)
			return w, cmd
		}

		var cmd tea.Cmd
		w.composer, cmd = w.composer.Update(msg)
		return w, cmd
	}

	// Non-key events (mouse wheel) scroll the history
	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return w, tea.Batch(cmds...)
}

// View renders the message panel with the composer below it.
func (w *Window) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if w.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	chatPanel := panelStyle.Width(w.width).Height(w.height - InputTotalHeight).Render(w.viewport.View())
	inputArea := inputStyle.Width(w.width).Render(w.composer.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}

// Windows owns every conversation window and guarantees at most one is
// visible at a time.
type Windows struct {
	byID    map[api.ConversationID]*Window
	width   int
	height  int
	focused bool
}

func NewWindows() *Windows {
	return &Windows{byID: make(map[api.ConversationID]*Window)}
}

// Create returns the window for id, creating it hidden if needed.
func (ws *Windows) Create(id api.ConversationID) *Window {
	if w, ok := ws.byID[id]; ok {
		return w
	}
	w := NewWindow(id)
	if ws.width > 0 {
		w.SetSize(ws.width, ws.height)
	}
	ws.byID[id] = w
	return w
}

func (ws *Windows) Get(id api.ConversationID) (*Window, bool) {
	w, ok := ws.byID[id]
	return w, ok
}

func (ws *Windows) Remove(id api.ConversationID) {
	delete(ws.byID, id)
}

func (ws *Windows) Len() int {
	return len(ws.byID)
}

// Show makes the window for id the only visible one. It reports false, and
// hides everything, when no such window exists.
func (ws *Windows) Show(id api.ConversationID) bool {
	target, ok := ws.byID[id]
	for _, w := range ws.byID {
		if w != target {
			w.Hide()
		}
	}
	if !ok {
		return false
	}
	target.Show()
	target.SetFocused(ws.focused)
	return true
}

// HideAll leaves no window visible.
func (ws *Windows) HideAll() {
	for _, w := range ws.byID {
		w.Hide()
	}
}

// Visible returns the visible window, or nil.
func (ws *Windows) Visible() *Window {
	for _, w := range ws.byID {
		if w.visible {
			return w
		}
	}
	return nil
}

func (ws *Windows) VisibleCount() int {
	n := 0
	for _, w := range ws.byID {
		if w.visible {
			n++
		}
	}
	return n
}

func (ws *Windows) SetSize(width, height int) {
	ws.width = width
	ws.height = height
	for _, w := range ws.byID {
		w.SetSize(width, height)
	}
}

// SetFocused moves keyboard focus to or from the visible window.
func (ws *Windows) SetFocused(focused bool) {
	ws.focused = focused
	if w := ws.Visible(); w != nil {
		w.SetFocused(focused)
	}
}

func (ws *Windows) IsFocused() bool {
	return ws.focused
}

// View draws the visible window, or the empty state when none is open.
func (ws *Windows) View() string {
	if w := ws.Visible(); w != nil {
		return w.View()
	}
	panelStyle := PanelStyle
	if ws.focused {
		panelStyle = PanelFocusedStyle
	}
	return panelStyle.Width(ws.width).Height(ws.height).Render(renderEmptyState())
}
