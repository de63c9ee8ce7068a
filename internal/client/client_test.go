package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/ragchat/internal/api"
	perrors "github.com/zhubert/ragchat/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, UserID: "alice", Timeout: 5 * time.Second})
}

func TestListConversations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/conversations", r.URL.Path)
		assert.Equal(t, "alice", r.Header.Get("X-User-ID"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"title":"b","created_at":"2024-01-02T00:00:00Z"},{"id":"1","title":"a","created_at":"2024-01-01T00:00:00Z"}]`))
	})

	convs, err := c.ListConversations(context.Background(), api.ListConversationsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, api.ConversationID("2"), convs[0].ID)
	assert.Equal(t, api.ConversationID("1"), convs[1].ID)
	assert.Equal(t, "b", convs[0].Title)
}

func TestCreateConversation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req api.CreateConversationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Budget", req.Title)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":9,"title":"Budget","created_at":"2024-01-01T00:00:00Z"}`))
	})

	conv, err := c.CreateConversation(context.Background(), "Budget")
	require.NoError(t, err)
	assert.Equal(t, api.ConversationID("9"), conv.ID)
	assert.Equal(t, "Budget", conv.Title)
}

func TestListMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversations/42/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"content":"hi","is_user":true},{"content":"hello","is_user":false}]`))
	})

	msgs, err := c.ListMessages(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser)
	assert.Equal(t, "hello", msgs[1].Content)
}

func TestSendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/conversations/42/messages", r.URL.Path)
		var req api.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Hi! How can I help?","is_user":false}`))
	})

	reply, err := c.SendMessage(context.Background(), "42", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi! How can I help?", reply.Content)
	assert.False(t, reply.IsUser)
}

func TestDeleteConversation(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/conversations/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, c.DeleteConversation(context.Background(), "7"))
	assert.True(t, called)
}

func TestNon2xxIsRemoteError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"Failed to get response from assistant"}`))
	})

	_, err := c.SendMessage(context.Background(), "42", "hello")
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.KindRemote))
	assert.Equal(t, http.StatusBadGateway, perrors.StatusCode(err))

	err = c.DeleteConversation(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.KindRemote))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url, Timeout: time.Second})
	_, err := c.ListConversations(context.Background(), api.ListConversationsParams{})
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.KindNetwork))
}

func TestNoUserHeaderWhenAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-User-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	convs, err := c.ListConversations(context.Background(), api.ListConversationsParams{})
	require.NoError(t, err)
	assert.Empty(t, convs)
}
