package ui

import (
	"charm.land/lipgloss/v2"
)

// BubbleKind distinguishes real messages from the synthetic bubbles a window
// shows while it waits or when it is empty.
type BubbleKind int

const (
	BubbleUser BubbleKind = iota
	BubbleAssistant
	BubbleGreeting
	BubblePlaceholder
)

// Bubble is one rendered entry in a conversation window.
type Bubble struct {
	Kind    BubbleKind
	Content string
	// Token ties a placeholder to the send that created it.
	Token string
}

// NewBubble returns a user or assistant bubble for a message.
func NewBubble(content string, isUser bool) Bubble {
	if isUser {
		return Bubble{Kind: BubbleUser, Content: content}
	}
	return Bubble{Kind: BubbleAssistant, Content: content}
}

func greetingBubble() Bubble {
	return Bubble{Kind: BubbleGreeting, Content: GreetingText}
}

func placeholderBubble(token string) Bubble {
	return Bubble{Kind: BubblePlaceholder, Content: PlaceholderText, Token: token}
}

func (b Bubble) IsUser() bool {
	return b.Kind == BubbleUser
}

// Render lays the bubble out for a content area of the given width. User
// text is shown literally and right aligned; assistant text is rendered as
// markdown inside a bordered box on the left.
func (b Bubble) Render(width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	// Bubbles leave a gutter so the two sides stay distinguishable
	maxWidth := max(width*4/5, 10)

	switch b.Kind {
	case BubbleUser:
		text := wrapText(sanitizeText(b.Content), maxWidth-2)
		box := UserBubbleStyle.Render(text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
	case BubblePlaceholder:
		return PlaceholderBubbleStyle.Render(b.Content)
	default:
		body := renderMarkdown(b.Content, maxWidth-4)
		return AssistantBubbleStyle.Render(body)
	}
}
