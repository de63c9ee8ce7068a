package modals

import (
	"image/color"

	"charm.land/bubbles/v2/textarea"
	"charm.land/lipgloss/v2"
)

// Palette is the part of the ui theme the dialogs draw with. The ui package
// hands it over once at start-up through SetPalette.
type Palette struct {
	Title          lipgloss.Style
	Help           lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style

	Accent color.Color
	Subtle color.Color
	Text   color.Color
	Muted  color.Color
	Danger color.Color

	Width          int // outer dialog width
	InputWidth     int
	InputCharLimit int
}

var (
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	OptionStyle         lipgloss.Style
	OptionSelectedStyle lipgloss.Style

	ColorPrimary   color.Color
	ColorSecondary color.Color
	ColorText      color.Color
	ColorTextMuted color.Color
	ColorError     color.Color

	ModalWidth          int
	ModalInputWidth     int
	ModalInputCharLimit int
)

// SetPalette installs p. It must run before any dialog renders.
func SetPalette(p Palette) {
	ModalTitleStyle = p.Title
	ModalHelpStyle = p.Help
	OptionStyle = p.Option
	OptionSelectedStyle = p.OptionSelected

	ColorPrimary = p.Accent
	ColorSecondary = p.Subtle
	ColorText = p.Text
	ColorTextMuted = p.Muted
	ColorError = p.Danger

	ModalWidth = p.Width
	ModalInputWidth = p.InputWidth
	ModalInputCharLimit = p.InputCharLimit
}

// ApplyTextareaStyles strips backgrounds from a textarea so it sits on the
// terminal's own background. The chat composer uses it.
func ApplyTextareaStyles(ta *textarea.Model) {
	text := lipgloss.NewStyle().Foreground(ColorText)
	placeholder := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles := ta.Styles()
	styles.Focused.Base = lipgloss.NewStyle()
	styles.Focused.Text = text
	styles.Focused.Placeholder = placeholder
	styles.Focused.CursorLine = text
	styles.Focused.Prompt = text
	styles.Blurred = styles.Focused
	ta.SetStyles(styles)
}
