// Package clipboard copies text to and from the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/ragchat/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// writeFn and readFn are swapped out in tests; a headless CI box has no
	// clipboard to talk to.
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFn  = func() []byte { return clipboard.Read(clipboard.FmtText) }
	initFn  = clipboard.Init
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(readFn()), nil
}

// SetBackend replaces the system clipboard, for tests in other packages.
func SetBackend(init func() error, write func([]byte), read func() []byte) {
	mu.Lock()
	defer mu.Unlock()
	initFn, writeFn, readFn = init, write, read
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(clipboard.Init,
		func(b []byte) { clipboard.Write(clipboard.FmtText, b) },
		func() []byte { return clipboard.Read(clipboard.FmtText) })
}
