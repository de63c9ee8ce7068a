package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	perrors "github.com/zhubert/ragchat/internal/errors"
)

// DefaultTitle is used when a conversation is created without one.
const DefaultTitle = "New Conversation"

// Repo wraps the queries the server needs. Writes are serialised because
// sqlite allows a single writer.
type Repo struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Page limits a listing. Zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

// ListConversations returns userID's conversations, newest first.
func (r *Repo) ListConversations(ctx context.Context, userID string, page Page) ([]Conversation, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}

	convs := []Conversation{}
	if err := q.Find(&convs).Error; err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (r *Repo) CreateConversation(ctx context.Context, userID, title string) (Conversation, error) {
	if title == "" {
		title = DefaultTitle
	}
	conv := Conversation{UserID: userID, Title: title}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation loads a conversation regardless of owner. A missing row
// is reported with errors.KindNotFound.
func (r *Repo) GetConversation(ctx context.Context, id uint) (Conversation, error) {
	var conv Conversation
	err := r.db.WithContext(ctx).First(&conv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Conversation{}, perrors.ConversationNotFound(fmt.Sprint(id))
	}
	if err != nil {
		return Conversation{}, fmt.Errorf("get conversation %d: %w", id, err)
	}
	return conv, nil
}

// ListMessages returns a conversation's messages, oldest first.
func (r *Repo) ListMessages(ctx context.Context, conversationID uint) ([]Message, error) {
	msgs := []Message{}
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("list messages for %d: %w", conversationID, err)
	}
	return msgs, nil
}

func (r *Repo) AddMessage(ctx context.Context, conversationID uint, content string, isUser bool) (Message, error) {
	msg := Message{ConversationID: conversationID, Content: content, IsUser: isUser}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return Message{}, fmt.Errorf("add message to %d: %w", conversationID, err)
	}
	return msg, nil
}

// DeleteConversation removes a conversation and its messages atomically.
func (r *Repo) DeleteConversation(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if err := txn.Where("conversation_id = ?", id).Delete(&Message{}).Error; err != nil {
			return fmt.Errorf("delete messages of %d: %w", id, err)
		}
		res := txn.Delete(&Conversation{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete conversation %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return perrors.ConversationNotFound(fmt.Sprint(id))
		}
		return nil
	})
}
