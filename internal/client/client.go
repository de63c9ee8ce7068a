// Package client talks to the collaborator HTTP API. It performs no retries;
// every failure is returned as a structured error so callers can tell a
// transport problem from a non-2xx response.
package client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/zhubert/ragchat/internal/api"
	perrors "github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
)

// DefaultUserHeader matches the server's default trusted identity header.
const DefaultUserHeader = "X-User-ID"

type Options struct {
	BaseURL    string
	UserID     string // empty means the server falls back to guest identity
	UserHeader string
	Timeout    time.Duration
}

type Client struct {
	http    *resty.Client
	encoder *schema.Encoder
}

func New(opts Options) *Client {
	header := opts.UserHeader
	if header == "" {
		header = DefaultUserHeader
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("User-Agent", "ragchat-tui/1.0").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.UserID != "" {
		httpClient.SetHeader(header, opts.UserID)
	}

	return &Client{http: httpClient, encoder: schema.NewEncoder()}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
}

func check(op perrors.Op, res *resty.Response, err error) error {
	if err != nil {
		logger.WithComponent("client").Error("request failed", "op", string(op), "error", err)
		return perrors.RequestFailed(op, err)
	}
	if !res.IsSuccess() {
		logger.WithComponent("client").Warn("unexpected status",
			"op", string(op), "status", res.StatusCode(), "body", res.String())
		return perrors.UnexpectedStatus(op, res.StatusCode(), strings.TrimSpace(res.String()))
	}
	return nil
}

// ListConversations returns the caller's conversations, newest first.
func (c *Client) ListConversations(ctx context.Context, params api.ListConversationsParams) ([]api.Conversation, error) {
	const op = perrors.Op("client.ListConversations")

	query := url.Values{}
	if err := c.encoder.Encode(params, query); err != nil {
		return nil, perrors.E(op, perrors.KindInvalid, err)
	}

	var out []api.Conversation
	res, err := c.request(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&out).
		Get("/api/conversations")
	if err := check(op, res, err); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConversation creates a conversation. An empty title lets the server
// pick its default.
func (c *Client) CreateConversation(ctx context.Context, title string) (api.Conversation, error) {
	const op = perrors.Op("client.CreateConversation")

	var out api.Conversation
	res, err := c.request(ctx).
		SetBody(api.CreateConversationRequest{Title: title}).
		SetResult(&out).
		Post("/api/conversations")
	if err := check(op, res, err); err != nil {
		return api.Conversation{}, err
	}
	return out, nil
}

// ListMessages returns the conversation history in ascending time order.
func (c *Client) ListMessages(ctx context.Context, id api.ConversationID) ([]api.Message, error) {
	const op = perrors.Op("client.ListMessages")

	var out []api.Message
	res, err := c.request(ctx).
		SetPathParam("id", string(id)).
		SetResult(&out).
		Get("/api/conversations/{id}/messages")
	if err := check(op, res, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage stores the user's message and returns the assistant's reply.
func (c *Client) SendMessage(ctx context.Context, id api.ConversationID, content string) (api.Message, error) {
	const op = perrors.Op("client.SendMessage")

	var out api.Message
	res, err := c.request(ctx).
		SetPathParam("id", string(id)).
		SetBody(api.SendMessageRequest{Content: content}).
		SetResult(&out).
		Post("/api/conversations/{id}/messages")
	if err := check(op, res, err); err != nil {
		return api.Message{}, err
	}
	return out, nil
}

func (c *Client) DeleteConversation(ctx context.Context, id api.ConversationID) error {
	const op = perrors.Op("client.DeleteConversation")

	res, err := c.request(ctx).
		SetPathParam("id", string(id)).
		Delete("/api/conversations/{id}")
	return check(op, res, err)
}
