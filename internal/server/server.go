// Package server is the collaborator HTTP API the TUI talks to. It stores
// conversations in a database and asks a RAG webhook for replies.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/database"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg  config.ServerConfig
	chat *ChatService
	log  *slog.Logger
}

func New(cfg config.ServerConfig, repo *database.Repo, rag Asker, log *slog.Logger) *Server {
	return &Server{
		cfg:  cfg,
		chat: NewChatService(repo, rag, log),
		log:  log,
	}
}

// Router builds the full handler stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	allowedHeaders := []string{"Accept", "Content-Type", "X-Request-ID"}
	if s.cfg.UserHeader != "" {
		allowedHeaders = append(allowedHeaders, s.cfg.UserHeader)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: allowedHeaders,
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(identity(s.cfg.UserHeader, s.cfg.AllowIPAuth))
		s.chat.AddRoutes(r)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
