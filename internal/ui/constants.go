// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// TabBarHeight is the single line of conversation tabs above the window
	TabBarHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps dates readable on narrow terminals
	MinSidebarWidth = 24

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the composer (Padding(0, 1))
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the composer (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 60
	MinTerminalHeight = 12
)

// Conversation display
const (
	// MaxTabTitleLength is how many characters of a title a tab shows before "..."
	MaxTabTitleLength = 15

	// TabEllipsis is appended to truncated tab titles
	TabEllipsis = "..."

	// GreetingText is the synthetic first bubble of an empty conversation
	GreetingText = "Hi there! How can I assist you today?"

	// PlaceholderText is shown while waiting for the assistant's reply
	PlaceholderText = "Thinking..."

	// SidebarEmptyText is shown when there are no conversations
	SidebarEmptyText = "No conversations yet"

	// SidebarDateFormat is the local date shown on sidebar rows
	SidebarDateFormat = "Jan 2, 2006"

	// CloseGlyph and DeleteGlyph are the clickable controls on tabs and rows
	CloseGlyph  = "×"
	DeleteGlyph = "✕"
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
