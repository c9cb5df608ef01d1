package plugin

import (
	"log/slog"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin/commands"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
)

// urt41Commands are available on every supported game revision.
var urt41Commands = []string{"palms", "paident"}

// Urt41 is the Urban Terror 4.1 variant.
type Urt41 struct {
	deps Deps
	game string
}

func newUrt41(deps Deps) *Urt41 {
	return &Urt41{deps: deps, game: GameUrt41}
}

func (p *Urt41) Name() string { return "poweradminurt" }
func (p *Urt41) Game() string { return p.game }

func (p *Urt41) Events() []event.Type { return nil }

func (p *Urt41) OnEvent(ev event.Event) {
	slog.Debug("unhandled event", "plugin", p.Name(), "type", ev.Type.String())
}

func (p *Urt41) RegisterCommands(h *admin.Handler) error {
	return commands.Register(h, commandOptions(p.deps), urt41Commands...)
}
