package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhubert/ragchat/internal/api"
	"github.com/zhubert/ragchat/internal/database"
)

// Asker produces the assistant reply for a user message.
type Asker interface {
	Ask(ctx context.Context, message, conversationID, userID string) (string, error)
}

type ChatService struct {
	repo *database.Repo
	rag  Asker
	log  *slog.Logger
}

func NewChatService(repo *database.Repo, rag Asker, log *slog.Logger) *ChatService {
	return &ChatService{repo: repo, rag: rag, log: log}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Route("/api/conversations", func(r chi.Router) {
		r.Get("/", restHandler(s.log, s.ListConversations))
		r.Post("/", restHandler(s.log, s.CreateConversation))
		r.Delete("/{id}", restHandler(s.log, s.DeleteConversation))
		r.Get("/{id}/messages", restHandler(s.log, s.ListMessages))
		r.Post("/{id}/messages", restHandler(s.log, s.SendMessage))
	})
}

func toConversation(c database.Conversation) api.Conversation {
	return api.Conversation{ID: api.IDFromUint(c.ID), Title: c.Title, CreatedAt: c.CreatedAt}
}

func toMessage(m database.Message) api.Message {
	return api.Message{Content: m.Content, IsUser: m.IsUser, CreatedAt: m.CreatedAt}
}

func (s *ChatService) ListConversations(r *http.Request) (any, error) {
	params, err := parseQuery[api.ListConversationsParams](r)
	if err != nil {
		return nil, err
	}
	if params.Limit < 0 || params.Offset < 0 {
		return nil, CodedErrorf(http.StatusBadRequest, "limit and offset must not be negative")
	}

	convs, err := s.repo.ListConversations(r.Context(), UserID(r.Context()),
		database.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		return nil, err
	}

	out := make([]api.Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, toConversation(c))
	}
	return out, nil
}

func (s *ChatService) CreateConversation(r *http.Request) (any, error) {
	req, err := parseRequest[api.CreateConversationRequest](r)
	if err != nil {
		return nil, err
	}

	conv, err := s.repo.CreateConversation(r.Context(), UserID(r.Context()), strings.TrimSpace(req.Title))
	if err != nil {
		return nil, err
	}
	s.log.Info("conversation created", "id", conv.ID, "user", conv.UserID)
	return toConversation(conv), nil
}

// ownedConversation loads the {id} conversation and checks it belongs to
// the caller.
func (s *ChatService) ownedConversation(r *http.Request) (database.Conversation, error) {
	id, err := api.ConversationID(chi.URLParam(r, "id")).Uint()
	if err != nil {
		return database.Conversation{}, CodedError(http.StatusBadRequest, err)
	}
	conv, err := s.repo.GetConversation(r.Context(), id)
	if err != nil {
		return database.Conversation{}, err
	}
	if conv.UserID != UserID(r.Context()) {
		return database.Conversation{}, CodedErrorf(http.StatusForbidden, "Unauthorized access to conversation")
	}
	return conv, nil
}

func (s *ChatService) ListMessages(r *http.Request) (any, error) {
	conv, err := s.ownedConversation(r)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListMessages(r.Context(), conv.ID)
	if err != nil {
		return nil, err
	}
	out := make([]api.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessage(m))
	}
	return out, nil
}

// SendMessage stores the user message, asks the webhook and stores the
// reply. A webhook failure leaves the user message in place.
func (s *ChatService) SendMessage(r *http.Request) (any, error) {
	conv, err := s.ownedConversation(r)
	if err != nil {
		return nil, err
	}
	req, err := parseRequest[api.SendMessageRequest](r)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "message content is required")
	}

	if _, err := s.repo.AddMessage(r.Context(), conv.ID, req.Content, true); err != nil {
		return nil, err
	}

	answer, err := s.rag.Ask(r.Context(), req.Content, string(api.IDFromUint(conv.ID)), conv.UserID)
	if err != nil {
		s.log.Error("webhook failed", "conversation", conv.ID, "error", err)
		return nil, CodedErrorf(http.StatusBadGateway, "Failed to process message")
	}

	reply, err := s.repo.AddMessage(r.Context(), conv.ID, answer, false)
	if err != nil {
		return nil, err
	}
	return toMessage(reply), nil
}

func (s *ChatService) DeleteConversation(r *http.Request) (any, error) {
	conv, err := s.ownedConversation(r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteConversation(r.Context(), conv.ID); err != nil {
		return nil, err
	}
	s.log.Info("conversation deleted", "id", conv.ID, "user", conv.UserID)
	return api.DeleteConversationResponse{Success: true}, nil
}
