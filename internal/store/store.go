// Package store holds the client's in-memory view of conversations: every
// known conversation, which ones are open as tabs, and which tab is active.
//
// A Store is owned by the Bubble Tea event loop and is not safe for
// concurrent use.
package store

import (
	"slices"
	"sort"

	"github.com/zhubert/ragchat/internal/api"
)

// Store is the conversation state for one client run.
type Store struct {
	conversations map[api.ConversationID]api.Conversation
	openTabs      []api.ConversationID // insertion ordered
	open          map[api.ConversationID]bool
	active        api.ConversationID
}

func New() *Store {
	return &Store{
		conversations: make(map[api.ConversationID]api.Conversation),
		open:          make(map[api.ConversationID]bool),
	}
}

// AddConversation inserts or replaces a conversation record.
func (s *Store) AddConversation(c api.Conversation) {
	s.conversations[c.ID] = c
}

// RemoveConversation forgets a conversation. If it was open its tab is
// dropped too so the active id never points at a missing record.
func (s *Store) RemoveConversation(id api.ConversationID) {
	s.RemoveOpenTab(id)
	delete(s.conversations, id)
}

func (s *Store) Conversation(id api.ConversationID) (api.Conversation, bool) {
	c, ok := s.conversations[id]
	return c, ok
}

// Conversations returns every known conversation, newest first.
func (s *Store) Conversations() []api.Conversation {
	out := make([]api.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) Len() int {
	return len(s.conversations)
}

// AddOpenTab marks id as open. Returns false if it was already open.
func (s *Store) AddOpenTab(id api.ConversationID) bool {
	if s.open[id] {
		return false
	}
	s.open[id] = true
	s.openTabs = append(s.openTabs, id)
	return true
}

// RemoveOpenTab marks id as closed, clearing the active id if it matched.
func (s *Store) RemoveOpenTab(id api.ConversationID) {
	if !s.open[id] {
		return
	}
	delete(s.open, id)
	if i := slices.Index(s.openTabs, id); i >= 0 {
		s.openTabs = slices.Delete(s.openTabs, i, i+1)
	}
	if s.active == id {
		s.active = ""
	}
}

func (s *Store) IsOpen(id api.ConversationID) bool {
	return s.open[id]
}

// OpenTabs returns the open ids in the order they were opened.
func (s *Store) OpenTabs() []api.ConversationID {
	return slices.Clone(s.openTabs)
}

// SetActiveConversation makes id active. It refuses ids that are not open.
func (s *Store) SetActiveConversation(id api.ConversationID) bool {
	if !s.open[id] {
		return false
	}
	s.active = id
	return true
}

func (s *Store) ClearActive() {
	s.active = ""
}

// ActiveConversationID returns the active id, or "" when nothing is active.
func (s *Store) ActiveConversationID() api.ConversationID {
	return s.active
}
