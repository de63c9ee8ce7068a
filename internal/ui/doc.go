// Package ui provides the visual components of the ragchat terminal client.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │ Tab bar (1 line)                  │
//	│   Sidebar       ├───────────────────────────────────┤
//	│   (1/4 width)   │ Conversation window               │
//	│                 │   messages + composer             │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: singleton holding the layout math for the current terminal size.
//
// Sidebar: every known conversation, newest first, with its creation date and
// a delete control.
//
// TabBar: the open conversations in opening order. Titles longer than
// MaxTabTitleLength characters are cut and end in "...".
//
// Window / Windows: one window per open conversation. Windows guarantees at
// most one window is visible; the others keep their history and draft.
//
// Bubble: a single message. User text is shown literally on the right,
// assistant text is rendered as markdown with chroma-highlighted code blocks.
//
// Modal: blocking dialogs (new conversation, confirm delete, alert) drawn
// over a dimmed copy of the screen.
//
// Footer: context-aware key bindings, replaced briefly by flash messages.
package ui
