package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// PrivateMessage is a message recorded by MockConsole.Message.
type PrivateMessage struct {
	CID  int
	Text string
}

// MockConsole is an in-memory console.Console for unit tests.
// Records every command instead of sending it to a server.
type MockConsole struct {
	mu       sync.Mutex
	now      time.Time
	commands []string
	cvars    map[string]string
	says     []string
	messages []PrivateMessage
}

var _ console.Console = (*MockConsole)(nil)

// NewMockConsole creates a console whose clock starts at now.
func NewMockConsole(now time.Time) *MockConsole {
	return &MockConsole{now: now, cvars: make(map[string]string)}
}

func (m *MockConsole) Write(cmd string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = append(m.commands, cmd)
}

func (m *MockConsole) SetCvar(name string, value any) {
	m.mu.Lock()
	m.cvars[name] = fmt.Sprint(value)
	m.mu.Unlock()
	m.Write(console.SetCvarCommand(name, value))
}

func (m *MockConsole) Say(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.says = append(m.says, msg)
}

func (m *MockConsole) Message(c *model.Client, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, PrivateMessage{CID: c.CID(), Text: msg})
}

func (m *MockConsole) Time() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockConsole) FormatTime(t time.Time) string {
	return t.UTC().Format(console.TimeFormat)
}

// Advance moves the clock forward by d.
func (m *MockConsole) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Commands returns a copy of the raw commands written so far.
func (m *MockConsole) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.commands...)
}

// Cvar returns the last value written to a cvar.
func (m *MockConsole) Cvar(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.cvars[name]
	return v, ok
}

func (m *MockConsole) Says() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.says...)
}

func (m *MockConsole) Messages() []PrivateMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PrivateMessage(nil), m.messages...)
}

// MessagesTo returns the private messages sent to one client.
func (m *MockConsole) MessagesTo(cid int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, pm := range m.messages {
		if pm.CID == cid {
			out = append(out, pm.Text)
		}
	}
	return out
}

// Reset clears everything recorded, keeping the clock.
func (m *MockConsole) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = nil
	m.cvars = make(map[string]string)
	m.says = nil
	m.messages = nil
}
