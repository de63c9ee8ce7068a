package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		log       func(string, ...interface{})
		msg       string
		wantFound bool
	}{
		{"debug hidden by default", false, Debug, "debug-hidden-marker", false},
		{"debug shown when enabled", true, Debug, "debug-shown-marker", true},
		{"info", false, Info, "info-marker", true},
		{"warn", false, Warn, "warn-marker", true},
		{"error", false, Error, "error-marker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupTestLogger(t)
			SetDebug(tt.debug)

			tt.log("%s %d", tt.msg, 1)

			if got := strings.Contains(readLog(t, path), tt.msg+" 1"); got != tt.wantFound {
				t.Errorf("message found = %v, want %v", got, tt.wantFound)
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	path := setupTestLogger(t)

	WithComponent("tabs").Info("tab opened", "conversationID", "42")

	content := readLog(t, path)
	if !strings.Contains(content, "component=tabs") {
		t.Errorf("log should carry component attribute, got %q", content)
	}
	if !strings.Contains(content, "conversationID=42") {
		t.Errorf("log should carry conversationID attribute, got %q", content)
	}
}

func TestWithConversation(t *testing.T) {
	path := setupTestLogger(t)

	WithConversation("7").Warn("window missing")

	if !strings.Contains(readLog(t, path), "conversationID=7") {
		t.Error("log should carry conversationID attribute")
	}
}

func TestInit_Idempotent(t *testing.T) {
	path := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	Info("after second init")

	if !strings.Contains(readLog(t, path), "after second init") {
		t.Error("second Init should keep the first log file")
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("second Init should not create a new file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("Init() should fail for a path in a missing directory")
	}
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	logPath2 := filepath.Join(tmpDir, "log2.log")

	Reset()
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")
	defer Reset()

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 content unexpected: %q", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 content unexpected: %q", content2)
	}
}

func TestLog_Concurrent(t *testing.T) {
	setupTestLogger(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestNewServerLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewServerLogger(&buf, false)

	log.Debug("hidden")
	log.Info("request handled", "status", 200)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("server log should be JSON: %v", err)
	}
	if entry["msg"] != "request handled" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

func TestInitServer_RoutesComponentLoggers(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitServer(&buf, false)
	WithComponent("database").Info("migrated")
	WithComponent("database").Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "database" || entry["msg"] != "migrated" {
		t.Errorf("unexpected entry %v", entry)
	}
}
