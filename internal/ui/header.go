package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header is the top bar: app name on the left, the active conversation and
// server on the right.
type Header struct {
	width     int
	title     string
	serverURL string
}

func NewHeader() *Header {
	return &Header{}
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversationTitle sets the title of the active conversation; empty
// clears it.
func (h *Header) SetConversationTitle(title string) {
	h.title = title
}

func (h *Header) SetServerURL(u string) {
	h.serverURL = u
}

func (h *Header) View() string {
	titleText := " ragchat"
	var rightText string
	if h.title != "" {
		rightText = h.title
	}
	if h.serverURL != "" {
		if rightText != "" {
			rightText += " "
		}
		rightText += "@ " + h.serverURL
	}
	if rightText != "" {
		rightText += " "
	}

	room := h.width - runewidth.StringWidth(titleText)
	if runewidth.StringWidth(rightText) > room {
		rightText = runewidth.Truncate(rightText, max(room, 0), "… ")
	}
	paddingLen := max(room-runewidth.StringWidth(rightText), 0)

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(titleText))+paddingLen+len([]rune(h.title)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient fades the background from the primary color to the app
// background. Runes at or after mutedFrom are drawn muted.
func (h *Header) renderGradient(content string, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(hexPrimary)
	endR, endG, endB := parseHexColor(hexBg)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < 8)

		if h.serverURL != "" && i >= mutedFrom {
			style = style.Foreground(ColorTextMuted)
		} else {
			style = style.Foreground(ColorText)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
