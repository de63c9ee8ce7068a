// Package api holds the JSON shapes exchanged between the chat client and
// the collaborator server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ConversationID identifies a conversation. It is always compared as a
// string; numeric ids from the server are normalized on decode.
type ConversationID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ConversationID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ConversationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("conversation id must be a string or number: %w", err)
	}
	*id = ConversationID(n.String())
	return nil
}

// IDFromUint formats a database primary key as a ConversationID.
func IDFromUint(n uint) ConversationID {
	return ConversationID(strconv.FormatUint(uint64(n), 10))
}

// Uint parses the id back into a database key.
func (id ConversationID) Uint() (uint, error) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid conversation id %q", string(id))
	}
	return uint(n), nil
}

type Conversation struct {
	ID        ConversationID `json:"id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
}

type Message struct {
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type DeleteConversationResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ListConversationsParams are the optional query parameters of
// GET /api/conversations.
type ListConversationsParams struct {
	Limit  int `schema:"limit,omitempty"`
	Offset int `schema:"offset,omitempty"`
}
