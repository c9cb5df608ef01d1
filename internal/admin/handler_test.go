package admin

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/testutil"
)

// mockCmd is a test command.
type mockCmd struct {
	names   []string
	level   LevelRange
	err     error
	calls   int
	lastInv *Invocation
}

func (c *mockCmd) Names() []string           { return c.names }
func (c *mockCmd) RequiredLevel() LevelRange { return c.level }
func (c *mockCmd) Help() string              { return "<arg> - does things" }
func (c *mockCmd) Handle(inv *Invocation) error {
	c.calls++
	c.lastInv = inv
	if c.err != nil {
		return c.err
	}
	inv.Reply("ok: " + inv.Name)
	return nil
}

func newTestHandler(t *testing.T) (*Handler, *testutil.MockConsole) {
	t.Helper()
	cons := testutil.NewMockConsole(testutil.Epoch)
	return NewHandler(cons), cons
}

func TestHandler_RegisterAndCount(t *testing.T) {
	h, _ := newTestHandler(t)
	assert.Equal(t, 0, h.CommandCount())

	h.Register(&mockCmd{names: []string{"pakill", "kill"}, level: AtLeast(60)})
	assert.Equal(t, 2, h.CommandCount(), "primary name plus alias")

	_, ok := h.Lookup("KILL")
	assert.True(t, ok, "lookup is case-insensitive")
}

func TestHandler_AliasDoesNotOverride(t *testing.T) {
	h, _ := newTestHandler(t)
	owner := &mockCmd{names: []string{"kill"}, level: AtLeast(0)}
	h.Register(owner)
	h.Register(&mockCmd{names: []string{"pakill", "kill"}, level: AtLeast(0)})

	cmd, ok := h.Lookup("kill")
	require.True(t, ok)
	assert.Same(t, owner, cmd)
	assert.Equal(t, 2, h.CommandCount())
}

func TestHandler_PrimaryReplaces(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Register(&mockCmd{names: []string{"pakill"}, level: AtLeast(0)})
	second := &mockCmd{names: []string{"pakill"}, level: AtLeast(0)}
	h.Register(second)

	cmd, _ := h.Lookup("pakill")
	assert.Same(t, second, cmd)
}

func TestHandler_HandleChat_Private(t *testing.T) {
	h, cons := newTestHandler(t)
	cmd := &mockCmd{names: []string{"paskins", "skins"}, level: AtLeast(40)}
	h.Register(cmd)
	caller := testutil.NewClient(t, 2, "Admin", 60)

	ok := h.HandleChat(caller, "  !Skins   on ")
	require.True(t, ok)
	assert.Equal(t, 1, cmd.calls)
	assert.Equal(t, "skins", cmd.lastInv.Name)
	assert.Equal(t, "on", cmd.lastInv.Data)
	assert.False(t, cmd.lastInv.Loud)
	assert.Equal(t, []string{"ok: skins"}, cons.MessagesTo(2))
	assert.Empty(t, cons.Says())
}

func TestHandler_HandleChat_Loud(t *testing.T) {
	h, cons := newTestHandler(t)
	cmd := &mockCmd{names: []string{"paident"}, level: AtLeast(0)}
	h.Register(cmd)
	caller := testutil.NewClient(t, 2, "Admin", 60)

	require.True(t, h.HandleChat(caller, "@paident bob"))
	assert.True(t, cmd.lastInv.Loud)
	assert.Equal(t, []string{"ok: paident"}, cons.Says())
	assert.Empty(t, cons.Messages())
}

func TestHandler_HandleChat_NotACommand(t *testing.T) {
	h, cons := newTestHandler(t)
	caller := testutil.NewClient(t, 2, "Admin", 60)

	for _, text := range []string{"", "hello", "!", "@ ", "  "} {
		assert.False(t, h.HandleChat(caller, text), "text %q", text)
	}
	assert.Empty(t, cons.Messages())
}

func TestHandler_HandleChat_Unknown(t *testing.T) {
	h, cons := newTestHandler(t)
	caller := testutil.NewClient(t, 2, "Admin", 60)

	assert.False(t, h.HandleChat(caller, "!nosuchcmd"))
	assert.Equal(t, []string{"^7Unrecognized command nosuchcmd"}, cons.MessagesTo(2))
}

func TestHandler_HandleChat_InsufficientLevel(t *testing.T) {
	h, cons := newTestHandler(t)
	cmd := &mockCmd{names: []string{"pakill"}, level: AtLeast(60)}
	h.Register(cmd)
	caller := testutil.NewClient(t, 4, "Mod", 20)

	logs := testutil.CaptureLogs(t, slog.LevelWarn)

	assert.False(t, h.HandleChat(caller, "!pakill bob"))
	assert.Equal(t, 0, cmd.calls)
	assert.Len(t, cons.MessagesTo(4), 1)
	assert.Contains(t, logs.String(), "command access denied")
	assert.Contains(t, logs.String(), "group=Moderator")
}

func TestHandler_HandleChat_AboveMaxLevel(t *testing.T) {
	h, _ := newTestHandler(t)
	cmd := &mockCmd{names: []string{"register"}, level: LevelRange{Min: 0, Max: 0}}
	h.Register(cmd)
	caller := testutil.NewClient(t, 4, "Mod", 20)

	assert.False(t, h.HandleChat(caller, "!register"))
	assert.Equal(t, 0, cmd.calls)
}

func TestHandler_HandleChat_UsageError(t *testing.T) {
	h, cons := newTestHandler(t)
	h.Register(&mockCmd{names: []string{"pagoto"}, level: AtLeast(0), err: NewUsageError("pagoto")})
	caller := testutil.NewClient(t, 1, "Admin", 100)

	assert.True(t, h.HandleChat(caller, "@pagoto maybe"))
	assert.Equal(t, []string{"^7Invalid or missing data, try !help pagoto"}, cons.MessagesTo(1))
	assert.Empty(t, cons.Says(), "usage errors are always private")
}

func TestHandler_HandleChat_HandlerError(t *testing.T) {
	h, cons := newTestHandler(t)
	h.Register(&mockCmd{names: []string{"broken"}, level: AtLeast(0), err: errors.New("boom")})
	caller := testutil.NewClient(t, 1, "Admin", 100)

	assert.True(t, h.HandleChat(caller, "!broken"))
	assert.Equal(t, []string{"^7Command error: boom"}, cons.MessagesTo(1))
}

func TestHelp(t *testing.T) {
	h, cons := newTestHandler(t)
	h.Register(NewHelp(h))
	h.Register(&mockCmd{names: []string{"pakill", "kill"}, level: AtLeast(60)})
	h.Register(&mockCmd{names: []string{"paident", "ident"}, level: AtLeast(20)})

	mod := testutil.NewClient(t, 3, "Mod", 20)
	admin := testutil.NewClient(t, 4, "Admin", 100)

	h.HandleChat(mod, "!help")
	h.HandleChat(admin, "!help")
	h.HandleChat(admin, "!help kill")
	h.HandleChat(mod, "!help pakill")
	h.HandleChat(mod, "!h !paident")

	assert.Equal(t, []string{
		"^7Available commands: help, paident",
		"^7Command not found pakill",
		"^2!paident ^7<arg> - does things",
	}, cons.MessagesTo(3))
	assert.Equal(t, []string{
		"^7Available commands: help, paident, pakill",
		"^2!kill ^7<arg> - does things",
	}, cons.MessagesTo(4))
}

func TestHelp_NoCommands(t *testing.T) {
	h, cons := newTestHandler(t)
	help := NewHelp(h)
	inv := NewInvocation(cons, testutil.NewClient(t, 0, "Guest", 0), "help", "", false)

	require.NoError(t, help.Handle(inv))
	assert.Equal(t, []string{"^7You have no available commands"}, cons.MessagesTo(0))
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("!help"))
	assert.True(t, IsCommand(" @paident"))
	assert.False(t, IsCommand("!"))
	assert.False(t, IsCommand("hello !help"))
}
