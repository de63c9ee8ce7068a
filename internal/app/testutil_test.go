package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/api"
	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the default debug log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// fakeAPI is an in-memory collaborator.
type fakeAPI struct {
	mu            sync.Mutex
	conversations []api.Conversation
	messages      map[api.ConversationID][]api.Message
	nextID        int

	listErr, createErr, sendErr, deleteErr error

	sent []string
}

func newFakeAPI(convs ...api.Conversation) *fakeAPI {
	return &fakeAPI{
		conversations: convs,
		messages:      make(map[api.ConversationID][]api.Message),
		nextID:        100,
	}
}

func (f *fakeAPI) ListConversations(_ context.Context, _ api.ListConversationsParams) ([]api.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]api.Conversation(nil), f.conversations...), nil
}

func (f *fakeAPI) CreateConversation(_ context.Context, title string) (api.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return api.Conversation{}, f.createErr
	}
	if title == "" {
		title = "New Conversation"
	}
	f.nextID++
	c := api.Conversation{ID: api.ConversationID(fmt.Sprint(f.nextID)), Title: title, CreatedAt: time.Now()}
	f.conversations = append(f.conversations, c)
	return c, nil
}

func (f *fakeAPI) ListMessages(_ context.Context, id api.ConversationID) ([]api.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Message(nil), f.messages[id]...), nil
}

func (f *fakeAPI) SendMessage(_ context.Context, id api.ConversationID, content string) (api.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, content)
	if f.sendErr != nil {
		return api.Message{}, f.sendErr
	}
	reply := api.Message{Content: "echo: " + content}
	f.messages[id] = append(f.messages[id], api.Message{Content: content, IsUser: true}, reply)
	return reply, nil
}

func (f *fakeAPI) DeleteConversation(_ context.Context, id api.ConversationID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteErr
}

func testConfig() *config.Config {
	return &config.Config{ServerURL: "http://localhost:2003", TimeoutSeconds: 5}
}

// testModel builds a sized model whose store already holds convs.
func testModel(t *testing.T, fake *fakeAPI) *Model {
	t.Helper()
	m := New(testConfig(), fake, "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	runCmd(t, m, m.Init())
	return m
}

func conv(id, title string, created time.Time) api.Conversation {
	return api.Conversation{ID: api.ConversationID(id), Title: title, CreatedAt: created}
}

// runCmd executes cmd and feeds every resulting message back into the
// model until nothing is left. Only call it for commands that do not tick.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := m.Update(msg)
			if isAppMsg(msg) {
				queue = append(queue, next)
			}
		}
	}
}

// isAppMsg limits runCmd to follow-ups of network results, which never tick.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case MessagesLoadedMsg, MessageSentMsg, ConversationCreatedMsg:
		return true
	}
	return false
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlN:
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case keys.CtrlW:
		return tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// typeText sends one key press per rune.
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// press sends a key and returns the resulting command.
func press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}
