package admin

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// Chat prefixes that invoke a command.
const (
	PrefixPrivate = '!' // reply goes to the caller only
	PrefixLoud    = '@' // reply is broadcast
)

// Command is the interface for chat commands.
type Command interface {
	// Handle executes the command.
	Handle(inv *Invocation) error
	// Names returns the primary name followed by aliases (without prefix).
	// Aliases are only registered when no other command owns them.
	Names() []string
	// RequiredLevel returns the levels allowed to use this command.
	RequiredLevel() LevelRange
	// Help returns a one-line usage text.
	Help() string
}

// UsageError reports bad command input. The router sends its message to
// the caller as is.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// NewUsageError returns the standard "try !help" error for a command.
func NewUsageError(command string) *UsageError {
	return &UsageError{Message: "^7Invalid or missing data, try !help " + command}
}

// Invocation is one call of a command from chat.
type Invocation struct {
	Caller *model.Client
	// Name is the command name as typed (primary name or alias), lowercased.
	Name string
	// Data is the free text after the command name, trimmed.
	Data string
	// Loud is set when the command was invoked with the @ prefix.
	Loud bool

	console console.Console
}

// NewInvocation builds an invocation outside the chat router, e.g. when a
// plugin runs a command on behalf of a player.
func NewInvocation(cons console.Console, caller *model.Client, name, data string, loud bool) *Invocation {
	return &Invocation{Caller: caller, Name: name, Data: data, Loud: loud, console: cons}
}

// Reply answers publicly for @ invocations and privately otherwise.
func (inv *Invocation) Reply(msg string) {
	if inv.Loud {
		inv.console.Say(msg)
		return
	}
	inv.Tell(msg)
}

// Tell always answers privately. A nil caller (console invocation) is
// silently skipped.
func (inv *Invocation) Tell(msg string) {
	if inv.Caller == nil {
		return
	}
	inv.console.Message(inv.Caller, msg)
}

// Handler dispatches chat commands.
// Thread-safe: commands are registered once at startup, then read-only.
type Handler struct {
	console console.Console

	mu       sync.RWMutex
	commands map[string]Command // name or alias → Command (lowercase)
	primary  map[string]Command // primary name → Command
}

// NewHandler creates a new command handler.
func NewHandler(cons console.Console) *Handler {
	return &Handler{
		console:  cons,
		commands: make(map[string]Command, 32),
		primary:  make(map[string]Command, 16),
	}
}

// Register registers a command under its primary name and every alias that
// is still free. All names are lowercased for case-insensitive lookup.
func (h *Handler) Register(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, name := range cmd.Names() {
		name = strings.ToLower(name)
		if i == 0 {
			if _, exists := h.primary[name]; exists {
				slog.Warn("command already registered, replacing", "command", name)
			}
			h.primary[name] = cmd
			h.commands[name] = cmd
			continue
		}
		if _, taken := h.commands[name]; taken {
			slog.Debug("alias already taken, skipping", "alias", name, "command", cmd.Names()[0])
			continue
		}
		h.commands[name] = cmd
	}
}

// Lookup returns the command registered under name or alias.
func (h *Handler) Lookup(name string) (Command, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cmd, ok := h.commands[strings.ToLower(name)]
	return cmd, ok
}

// Available returns the primary names of commands the level may use, sorted.
func (h *Handler) Available(level int) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.primary))
	for name, cmd := range h.primary {
		if cmd.RequiredLevel().Allows(level) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// CommandCount returns the number of registered names including aliases.
func (h *Handler) CommandCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.commands)
}

// IsCommand reports whether a chat line starts with a command prefix.
func IsCommand(text string) bool {
	text = strings.TrimSpace(text)
	return len(text) > 1 && (text[0] == PrefixPrivate || text[0] == PrefixLoud)
}

// HandleChat processes a chat line said by caller.
// Returns true if a command was found and executed.
func (h *Handler) HandleChat(caller *model.Client, text string) bool {
	text = strings.TrimSpace(text)
	if !IsCommand(text) {
		return false
	}

	loud := text[0] == PrefixLoud
	body := strings.TrimSpace(text[1:])
	if body == "" {
		return false
	}

	name, data, _ := strings.Cut(body, " ")
	name = strings.ToLower(name)
	data = strings.TrimSpace(data)

	cmd, ok := h.Lookup(name)
	if !ok {
		h.console.Message(caller, fmt.Sprintf("^7Unrecognized command %s", name))
		return false
	}

	level := caller.MaxLevel()
	if !cmd.RequiredLevel().Allows(level) {
		h.console.Message(caller, fmt.Sprintf("^7You do not have sufficient access to use %c%s", PrefixPrivate, name))
		slog.Warn("command access denied",
			"client", caller.String(),
			"command", name,
			"required", cmd.RequiredLevel().String(),
			"actual", level,
			"group", GroupName(level))
		return false
	}

	slog.Info("command",
		"client", caller.String(),
		"command", name,
		"data", data)

	inv := &Invocation{Caller: caller, Name: name, Data: data, Loud: loud, console: h.console}
	if err := cmd.Handle(inv); err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			inv.Tell(usage.Message)
			return true
		}
		inv.Tell(fmt.Sprintf("^7Command error: %s", err))
		slog.Error("command failed",
			"client", caller.String(),
			"command", name,
			"error", err)
	}

	return true
}
