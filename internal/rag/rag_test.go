package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func TestAsk(t *testing.T) {
	var got askRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"It is 42."}`))
	}))
	defer srv.Close()

	answer, err := New(srv.URL, time.Second).Ask(context.Background(), "what is it?", "7", "guest-1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "It is 42.", answer)
	assert.Equal(t, askRequest{Message: "what is it?", ConversationID: "7", UserID: "guest-1.2.3.4"}, got)
}

func TestAsk_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "workflow crashed", http.StatusInternalServerError)
			},
		},
		{
			name: "empty answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"response":""}`))
			},
		},
		{
			name: "missing field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"answer":"wrong shape"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL, time.Second).Ask(context.Background(), "q", "1", "u")
			require.Error(t, err)
			assert.True(t, perrors.Is(err, perrors.KindRemote))
		})
	}
}

func TestAsk_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Ask(context.Background(), "q", "1", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook failed for conversation 1")
}
