package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestFooter_BindingsByFocus(t *testing.T) {
	f := NewFooter()
	f.SetWidth(200)

	f.SetContext(true, false)
	view := ansi.Strip(f.View())
	if !strings.Contains(view, "delete") || strings.Contains(view, "switch pane") {
		t.Errorf("sidebar without conversation: %q", view)
	}

	f.SetContext(false, true)
	view = ansi.Strip(f.View())
	if !strings.Contains(view, "send") || !strings.Contains(view, "close tab") {
		t.Errorf("chat bindings missing: %q", view)
	}
}

func TestFooter_FlashExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFooter()
	f.now = func() time.Time { return now }
	f.SetWidth(80)

	f.SetFlash("Copied reply", FlashSuccess)
	if !strings.Contains(ansi.Strip(f.View()), "Copied reply") {
		t.Fatal("flash should replace the bindings")
	}
	if !f.ClearIfExpired() {
		t.Error("flash should still be showing")
	}

	now = now.Add(FlashDuration)
	if f.ClearIfExpired() {
		t.Error("flash should expire after FlashDuration")
	}
	if f.HasFlash() {
		t.Error("expired flash should be cleared")
	}
}
