package plugin

import (
	"log/slog"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin/commands"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/config"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/radiospam"
)

// urt42Commands extend the 4.1 set with commands for cvars and console
// commands that only exist in 4.2.
var urt42Commands = []string{"pakill", "pajump", "paskins", "pafunstuff", "pagoto", "pastamina"}

// Urt42 is the Urban Terror 4.2 variant: the 4.1 commands plus the 4.2
// ones and radio spam protection.
type Urt42 struct {
	*Urt41
	scorer *radiospam.Scorer
}

func newUrt42(deps Deps) *Urt42 {
	store := deps.Store
	if store == nil {
		store = radiospam.NewMemoryStore()
	}

	cfg := RadioSpamConfig(deps.Config.RadioSpamProtection)
	slog.Debug("radio spam protection",
		"enable", cfg.Enabled,
		"muteDuration", cfg.MuteDuration)

	base := newUrt41(deps)
	base.game = GameUrt42
	return &Urt42{
		Urt41:  base,
		scorer: radiospam.NewScorer(cfg, store, deps.Console),
	}
}

// RadioSpamConfig converts the loaded config section into scorer settings.
func RadioSpamConfig(rsp config.RadioSpamProtection) radiospam.Config {
	cfg := radiospam.DefaultConfig()
	cfg.Enabled = rsp.Enable
	cfg.MuteDuration = time.Duration(rsp.MuteDuration) * time.Second
	return cfg
}

func (p *Urt42) Events() []event.Type {
	return append(p.Urt41.Events(), event.ClientRadio, event.ClientDisconnect)
}

func (p *Urt42) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.ClientRadio:
		p.onRadio(ev)
	case event.ClientDisconnect:
		if ev.Client != nil {
			p.scorer.Forget(ev.Client.CID())
		}
	default:
		p.Urt41.OnEvent(ev)
	}
}

func (p *Urt42) onRadio(ev event.Event) {
	radio, ok := ev.Data.(event.Radio)
	if !ok || ev.Client == nil {
		slog.Warn("malformed radio event", "data", ev.Data)
		return
	}

	now := ev.Time
	if now.IsZero() {
		now = p.deps.Console.Time()
	}
	p.scorer.RecordRadioEvent(ev.Client, radio, now)
}

func (p *Urt42) RegisterCommands(h *admin.Handler) error {
	if err := p.Urt41.RegisterCommands(h); err != nil {
		return err
	}
	return commands.Register(h, commandOptions(p.deps), urt42Commands...)
}

// Scorer exposes the radio spam scorer, mainly for inspection by the host.
func (p *Urt42) Scorer() *radiospam.Scorer {
	return p.scorer
}
