package server

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/zhubert/ragchat/internal/api"
)

type userKey struct{}

// UserID returns the caller identity set by the identity middleware.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}

func withUser(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// clientIP is the first X-Forwarded-For entry, else the remote host.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// identity resolves who is calling. A trusted header wins; otherwise callers
// are guests keyed by IP when allowIP is set, and rejected when it is not.
func identity(header string, allowIP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user string
			if header != "" {
				user = strings.TrimSpace(r.Header.Get(header))
			}
			if user == "" && allowIP {
				user = "guest-" + clientIP(r)
			}
			if user == "" {
				writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Authentication required"})
				return
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}
