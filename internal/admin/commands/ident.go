package commands

import (
	"fmt"
	"strings"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
)

// Ident handles !paident [player]: shows the identity of a player.
// Callers at or above the full ident level also see IP, GUID and the
// first-seen time.
type Ident struct {
	console        console.Console
	clients        ClientFinder
	level          admin.LevelRange
	fullIdentLevel int
}

// NewIdent creates the ident command handler.
func NewIdent(cons console.Console, clients ClientFinder, level admin.LevelRange, fullIdentLevel int) *Ident {
	return &Ident{console: cons, clients: clients, level: level, fullIdentLevel: fullIdentLevel}
}

func (c *Ident) Names() []string                 { return []string{"paident", "ident"} }
func (c *Ident) RequiredLevel() admin.LevelRange { return c.level }
func (c *Ident) Help() string                    { return "<name> - show the ip and guid of a player" }

func (c *Ident) Handle(inv *admin.Invocation) error {
	fields := strings.Fields(inv.Data)
	if len(fields) == 0 {
		if inv.Caller == nil {
			return admin.NewUsageError("paident")
		}
		inv.Reply(fmt.Sprintf("Your id is ^2@%d", inv.Caller.CID()))
		return nil
	}

	target := c.clients.FindClientPrompt(fields[0], inv.Caller)
	if target == nil {
		return nil
	}

	now := c.console.FormatTime(c.console.Time())
	if inv.Caller != nil && inv.Caller.MaxLevel() < c.fullIdentLevel {
		inv.Reply(fmt.Sprintf("%s ^4@%d ^2%s", now, target.CID(), target.ExactName()))
		return nil
	}

	inv.Reply(fmt.Sprintf("%s ^4@%d ^2%s ^2%s ^7[^2%s^7] since ^2%s",
		now, target.CID(), target.ExactName(), target.IP(), target.GUID(),
		c.console.FormatTime(target.TimeAdd())))
	return nil
}
