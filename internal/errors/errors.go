// Package errors provides structured error types for ragchat.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// HTTPStatus carries the status code of a collaborator response into E.
type HTTPStatus int

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindNetwork
	KindConfig
	KindRemote
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindRemote:
		return "remote error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for ragchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Status  int    // HTTP status for KindRemote, zero otherwise
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - HTTPStatus: the response status code
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case HTTPStatus:
			e.Status = int(a)
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status recorded on err, or zero.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Collaborator errors
func RequestFailed(op Op, err error) error {
	return E(op, KindNetwork, "request failed", err)
}

func UnexpectedStatus(op Op, status int, body string) error {
	return E(op, KindRemote, HTTPStatus(status), fmt.Sprintf("unexpected status %d: %s", status, body))
}

// Conversation errors
func ConversationNotFound(id string) error {
	return E(Op("store.Conversation"), KindNotFound, fmt.Sprintf("conversation %s not found", id))
}

func WindowNotFound(id string) error {
	return E(Op("ui.Window"), KindNotFound, fmt.Sprintf("no window for conversation %s", id))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Webhook errors
func WebhookFailed(conversationID string, err error) error {
	return E(Op("rag.Ask"), KindRemote, fmt.Sprintf("webhook failed for conversation %s", conversationID), err)
}
