// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/ragchat/internal/logger"
)

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q message=%q", title, message)
	// Empty icon lets beeep pick the platform default
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// ReplyReceived announces an assistant reply in a conversation the user is
// not currently looking at.
func ReplyReceived(conversationTitle string) error {
	return Send("ragchat", "New reply in "+conversationTitle)
}
