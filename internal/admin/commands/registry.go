package commands

import (
	"fmt"
	"log/slog"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
)

// Options carries what the command handlers need from the plugin.
type Options struct {
	Console console.Console
	Clients ClientFinder
	// Levels maps a primary command name to its level spec ("60", "mod-admin").
	Levels         map[string]string
	FullIdentLevel int
	ConfigModes    map[string]string
}

// Level returns the level range configured for a command. Missing or
// invalid specs restrict the command to super admins.
func (o Options) Level(name string) admin.LevelRange {
	spec, ok := o.Levels[name]
	if !ok {
		slog.Warn("no level configured for command, restricting to super admins", "command", name)
		return admin.AtLeast(admin.MaxLevel)
	}
	r, err := admin.ParseLevelRange(spec)
	if err != nil {
		slog.Error("invalid level for command, restricting to super admins",
			"command", name,
			"level", spec,
			"error", err)
		return admin.AtLeast(admin.MaxLevel)
	}
	return r
}

// Build creates every known command keyed by primary name.
func Build(o Options) map[string]admin.Command {
	all := []admin.Command{
		NewKill(o.Console, o.Clients, o.Level("pakill")),
		NewLastManStanding(o.Console, o.ConfigModes, o.Level("palms")),
		NewJump(o.Console, o.ConfigModes, o.Level("pajump")),
		NewSkins(o.Console, o.Level("paskins")),
		NewFunstuff(o.Console, o.Level("pafunstuff")),
		NewGoto(o.Console, o.Level("pagoto")),
		NewStamina(o.Console, o.Level("pastamina")),
		NewIdent(o.Console, o.Clients, o.Level("paident"), o.FullIdentLevel),
	}
	out := make(map[string]admin.Command, len(all))
	for _, cmd := range all {
		out[cmd.Names()[0]] = cmd
	}
	return out
}

// Register registers help plus the named commands into the handler.
// Commands are registered in the order given so earlier ones win aliases.
func Register(h *admin.Handler, o Options, names ...string) error {
	all := Build(o)
	selected := make([]admin.Command, 0, len(names))
	for _, name := range names {
		cmd, ok := all[name]
		if !ok {
			return fmt.Errorf("unknown command %q", name)
		}
		selected = append(selected, cmd)
	}

	if _, ok := h.Lookup("help"); !ok {
		h.Register(admin.NewHelp(h))
	}
	for _, cmd := range selected {
		h.Register(cmd)
	}
	return nil
}
