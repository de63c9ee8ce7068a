package app

import (
	"context"

	"github.com/zhubert/ragchat/internal/api"
)

// API is the collaborator surface the model needs. *client.Client
// satisfies it; tests substitute a fake.
type API interface {
	ListConversations(ctx context.Context, params api.ListConversationsParams) ([]api.Conversation, error)
	CreateConversation(ctx context.Context, title string) (api.Conversation, error)
	ListMessages(ctx context.Context, id api.ConversationID) ([]api.Message, error)
	SendMessage(ctx context.Context, id api.ConversationID, content string) (api.Message, error)
	DeleteConversation(ctx context.Context, id api.ConversationID) error
}

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusChat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// ConversationsLoadedMsg carries the startup conversation list.
type ConversationsLoadedMsg struct {
	Conversations []api.Conversation
	Err           error
}

// ConversationCreatedMsg is sent when a create request finishes.
type ConversationCreatedMsg struct {
	Conversation api.Conversation
	Err          error
}

// MessagesLoadedMsg carries a conversation's history.
type MessagesLoadedMsg struct {
	ID       api.ConversationID
	Messages []api.Message
	Err      error
}

// ConversationDeletedMsg is sent when a delete request finishes.
type ConversationDeletedMsg struct {
	ID  api.ConversationID
	Err error
}

// SendOutcome is the result of one send: Sent or Failed.
type SendOutcome interface {
	sendOutcome()
}

// Sent carries the assistant's reply.
type Sent struct {
	Reply api.Message
}

// Failed carries the error that stopped the send.
type Failed struct {
	Err error
}

func (Sent) sendOutcome()   {}
func (Failed) sendOutcome() {}

// MessageSentMsg reports a send back to the event loop. Token matches the
// placeholder the send created.
type MessageSentMsg struct {
	ID      api.ConversationID
	Token   string
	Outcome SendOutcome
}
