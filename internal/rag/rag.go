// Package rag calls the retrieval-augmented generation webhook that produces
// assistant replies.
package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	perrors "github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
)

type askRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
}

type askResponse struct {
	Response string `json:"response"`
}

var errEmptyResponse = errors.New("webhook returned no response text")

type Client struct {
	http *resty.Client
	url  string
}

func New(webhookURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", "ragchat-server/1.0").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{http: httpClient, url: webhookURL}
}

// Ask forwards message to the webhook and returns its answer.
func (c *Client) Ask(ctx context.Context, message, conversationID, userID string) (string, error) {
	log := logger.WithConversation(conversationID)
	start := time.Now()

	var result askResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(askRequest{Message: message, ConversationID: conversationID, UserID: userID}).
		SetResult(&result).
		Post(c.url)
	if err != nil {
		log.Error("webhook request failed", "error", err)
		return "", perrors.WebhookFailed(conversationID, err)
	}
	if !res.IsSuccess() {
		log.Warn("webhook returned an error", "status", res.StatusCode(), "body", res.String())
		return "", perrors.WebhookFailed(conversationID,
			fmt.Errorf("status %d: %s", res.StatusCode(), strings.TrimSpace(res.String())))
	}
	if result.Response == "" {
		log.Warn("webhook returned an empty answer")
		return "", perrors.WebhookFailed(conversationID, errEmptyResponse)
	}

	log.Debug("webhook answered", "elapsed", time.Since(start))
	return result.Response, nil
}
