package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"short", "Trip", "Trip"},
		{"exactly fifteen", "abcdefghijklmno", "abcdefghijklmno"},
		{"sixteen", "abcdefghijklmnop", "abcdefghijklmno..."},
		{"long", "Quarterly budget review notes", "Quarterly budge..."},
		{"empty", "", ""},
		{"emoji counted as one", strings.Repeat("👍🏽", 16), strings.Repeat("👍🏽", 15) + "..."},
		{"combining marks", strings.Repeat("e\u0301", 16), strings.Repeat("e\u0301", 15) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTitle(tt.title); got != tt.want {
				t.Errorf("TruncateTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestTabBar_AddRemove(t *testing.T) {
	tb := NewTabBar()

	if !tb.Add("1", "First") {
		t.Fatal("first Add should succeed")
	}
	if tb.Add("1", "Again") {
		t.Error("duplicate Add should be refused")
	}
	tb.Add("2", "Second")
	tb.SetActive("2")

	tb.Remove("2")
	if tb.Has("2") || tb.Len() != 1 {
		t.Errorf("tab 2 should be gone, tabs = %v", tb.Tabs())
	}
	if tb.Active() != "" {
		t.Errorf("active should clear when its tab is removed, got %q", tb.Active())
	}
}

func TestTabBar_SetActiveUnknown(t *testing.T) {
	tb := NewTabBar()
	tb.Add("1", "First")
	tb.SetActive("1")
	tb.SetActive("9")

	if tb.Active() != "" {
		t.Errorf("unknown id should clear active, got %q", tb.Active())
	}
}

func TestTabBar_Neighbor(t *testing.T) {
	tb := NewTabBar()
	for _, id := range []string{"a", "b", "c"} {
		tb.Add(cid(id), id)
	}

	tests := []struct {
		from  string
		delta int
		want  string
	}{
		{"a", 1, "b"},
		{"c", 1, "a"},
		{"a", -1, "c"},
		{"b", -1, "a"},
	}
	for _, tt := range tests {
		got, ok := tb.Neighbor(cid(tt.from), tt.delta)
		if !ok || string(got) != tt.want {
			t.Errorf("Neighbor(%s, %d) = %s, want %s", tt.from, tt.delta, got, tt.want)
		}
	}

	if _, ok := NewTabBar().Neighbor("a", 1); ok {
		t.Error("empty tab bar has no neighbors")
	}
}

func TestTabBar_HitTest(t *testing.T) {
	tb := NewTabBar()
	tb.Add("1", "One")
	tb.Add("2", "Two")

	// " One × " occupies columns 0..6, the glyph sits at column 5
	tests := []struct {
		x         int
		wantOK    bool
		wantID    string
		wantClose bool
	}{
		{1, true, "1", false},
		{5, true, "1", true},
		{6, true, "1", false},
		{8, true, "2", false},
		{12, true, "2", true},
		{40, false, "", false},
		{-1, false, "", false},
	}

	for _, tt := range tests {
		hit, ok := tb.HitTest(tt.x)
		if ok != tt.wantOK {
			t.Errorf("HitTest(%d) ok = %v, want %v", tt.x, ok, tt.wantOK)
			continue
		}
		if ok && (string(hit.ID) != tt.wantID || hit.Close != tt.wantClose) {
			t.Errorf("HitTest(%d) = %+v, want id=%s close=%v", tt.x, hit, tt.wantID, tt.wantClose)
		}
	}
}

func TestTabBar_ViewTruncates(t *testing.T) {
	tb := NewTabBar()
	tb.Add("1", "A very long conversation title")
	tb.SetWidth(80)

	view := ansi.Strip(tb.View())
	if !strings.Contains(view, "A very long con...") {
		t.Errorf("tab should show the truncated title, got %q", view)
	}
	if ansi.StringWidth(tb.View()) != 80 {
		t.Errorf("tab bar width = %d, want 80", ansi.StringWidth(tb.View()))
	}
}
