package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/zhubert/ragchat/internal/api"
	perrors "github.com/zhubert/ragchat/internal/errors"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func parseRequest[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		slog.Debug("error parsing request body", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	return data, nil
}

func parseQuery[T any](r *http.Request) (T, error) {
	var data T
	if err := queryDecoder.Decode(&data, r.URL.Query()); err != nil {
		slog.Debug("error decoding query params", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request query params")
	}
	return data, nil
}

// statusOf maps an error to the HTTP status it is reported with.
func statusOf(err error) int {
	var cerr *codedError
	if errors.As(err, &cerr) {
		return cerr.code
	}
	if perrors.Is(err, perrors.KindNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// restHandler adapts handler to http.HandlerFunc, encoding the result or
// the error as JSON.
func restHandler(log *slog.Logger, handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			code := statusOf(err)
			msg := err.Error()
			if code == http.StatusInternalServerError {
				log.Error("internal server error", "path", r.URL.Path, "error", err)
				msg = http.StatusText(code)
			}
			writeJSON(w, code, api.ErrorResponse{Error: msg})
			return
		}

		if res == nil {
			res = struct{}{}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error serializing response body", "error", err)
	}
}
