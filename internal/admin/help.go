package admin

import (
	"fmt"
	"strings"
)

// Help handles !help [command]: lists the caller's commands or shows the
// usage of one.
type Help struct {
	h *Handler
}

// NewHelp creates the help command bound to a handler.
func NewHelp(h *Handler) *Help {
	return &Help{h: h}
}

func (c *Help) Names() []string           { return []string{"help", "h"} }
func (c *Help) RequiredLevel() LevelRange { return AtLeast(0) }
func (c *Help) Help() string              { return "[<command>] - list commands or show help for one" }

func (c *Help) Handle(inv *Invocation) error {
	level := 0
	if inv.Caller != nil {
		level = inv.Caller.MaxLevel()
	}

	if inv.Data == "" {
		names := c.h.Available(level)
		if len(names) == 0 {
			inv.Reply("^7You have no available commands")
			return nil
		}
		inv.Reply("^7Available commands: " + strings.Join(names, ", "))
		return nil
	}

	name := strings.ToLower(strings.TrimLeft(inv.Data, "!@"))
	cmd, ok := c.h.Lookup(name)
	if !ok || !cmd.RequiredLevel().Allows(level) {
		inv.Reply(fmt.Sprintf("^7Command not found %s", name))
		return nil
	}
	inv.Reply(fmt.Sprintf("^2%c%s ^7%s", PrefixPrivate, name, cmd.Help()))
	return nil
}
