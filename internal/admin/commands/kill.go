package commands

import (
	"fmt"
	"log/slog"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
)

// Kill handles !pakill <player>: smites a player.
type Kill struct {
	console console.Console
	clients ClientFinder
	level   admin.LevelRange
}

// NewKill creates the kill command handler.
func NewKill(cons console.Console, clients ClientFinder, level admin.LevelRange) *Kill {
	return &Kill{console: cons, clients: clients, level: level}
}

func (c *Kill) Names() []string                 { return []string{"pakill", "kill"} }
func (c *Kill) RequiredLevel() admin.LevelRange { return c.level }
func (c *Kill) Help() string                    { return "<player> - kill a player" }

func (c *Kill) Handle(inv *admin.Invocation) error {
	if inv.Data == "" {
		return &admin.UsageError{Message: "^7Invalid data, try !help pakill"}
	}

	target := c.clients.FindClientPrompt(inv.Data, inv.Caller)
	if target == nil {
		// the finder already told the caller about the candidates
		return nil
	}

	c.console.Write(fmt.Sprintf("smite %d", target.CID()))
	slog.Info("player smitten", "target", target.String())
	return nil
}
