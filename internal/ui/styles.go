package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/ui/modals"
)

// Hex values are kept separately because the header gradient interpolates them
const (
	hexPrimary = "#7C3AED"
	hexBg      = "#1F2937"
)

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color(hexPrimary) // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4")  // Cyan
	ColorMuted       = lipgloss.Color("#6B7280")  // Gray
	ColorBorder      = lipgloss.Color("#374151")  // Dark gray
	ColorBorderFocus = lipgloss.Color(hexPrimary) // Purple when focused
	ColorBg          = lipgloss.Color(hexBg)      // Dark background
	ColorBgSelected  = lipgloss.Color("#312E81")  // Indigo selection
	ColorText        = lipgloss.Color("#F9FAFB")  // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4")  // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937")  // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#A78BFA")  // Light purple for user bubbles
	ColorAssistant   = lipgloss.Color("#22D3EE")  // Bright cyan for assistant bubbles
	ColorWarning     = lipgloss.Color("#F59E0B")  // Amber
	ColorError       = lipgloss.Color("#EF4444")  // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981")  // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(ColorBgSelected).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				Padding(0, 1)

	SidebarDateStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	SidebarDeleteStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)

// Tab styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabCloseStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Message bubble styles. User bubbles are filled and right aligned,
// assistant bubbles are bordered and left aligned.
var (
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorUser).
			Padding(0, 1)

	AssistantBubbleStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAssistant).
				Foreground(ColorText).
				Padding(0, 1)

	PlaceholderBubbleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true).
				Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Composer styles
var (
	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Markdown styles for assistant content
var (
	MarkdownH1Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	MarkdownH2Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MarkdownH3Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MarkdownBoldStyle = lipgloss.NewStyle().
				Bold(true)

	MarkdownItalicStyle = lipgloss.NewStyle().
				Italic(true)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	MarkdownLinkStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Underline(true)

	MarkdownListBulletStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				PaddingLeft(2)

	MarkdownHRStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Flash message styles
var (
	FlashErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashInfoStyle    = lipgloss.NewStyle().Foreground(ColorSecondary)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
)

func init() {
	modals.SetPalette(modals.Palette{
		Title:          ModalTitleStyle,
		Help:           ModalHelpStyle,
		Option:         SidebarItemStyle,
		OptionSelected: SidebarSelectedStyle,
		Accent:         ColorPrimary,
		Subtle:         ColorSecondary,
		Text:           ColorText,
		Muted:          ColorTextMuted,
		Danger:         ColorError,
		Width:          ModalWidth,
		InputWidth:     ModalInputWidth,
		InputCharLimit: ModalInputCharLimit,
	})
}
