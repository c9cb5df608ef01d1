// Package plugin implements the poweradmin plugin for Urban Terror.
//
// The host reports which game its console speaks; New picks the matching
// variant. Both variants share the Plugin interface: the host subscribes
// them to Events, forwards those events to OnEvent and lets them register
// their chat commands.
package plugin

import (
	"errors"
	"fmt"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin/commands"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/config"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/radiospam"
)

// Supported game identifiers.
const (
	GameUrt41 = "iourt41"
	GameUrt42 = "iourt42"
)

// ErrUnsupportedGame is returned by New for unknown game identifiers.
var ErrUnsupportedGame = errors.New("poweradminurt only supports Urban Terror 4.1 or 4.2")

// Plugin is what the host sees of a plugin variant.
type Plugin interface {
	Name() string
	// Game returns the game identifier the variant was built for.
	Game() string
	// Events returns the event types the plugin must receive.
	Events() []event.Type
	// OnEvent handles one event. Events for the same client are never
	// delivered concurrently by the host.
	OnEvent(ev event.Event)
	// RegisterCommands registers the chat commands of the variant.
	RegisterCommands(h *admin.Handler) error
}

// Deps are the host capabilities a plugin is built on.
type Deps struct {
	Console console.Console
	Clients commands.ClientFinder
	Config  config.PowerAdmin
	// Store keeps radio spam state; nil means an in-memory store.
	Store radiospam.Store
}

// New builds the plugin variant for game.
func New(game string, deps Deps) (Plugin, error) {
	if deps.Console == nil {
		return nil, errors.New("plugin requires a console")
	}
	if deps.Clients == nil {
		return nil, errors.New("plugin requires a client finder")
	}

	switch game {
	case GameUrt41:
		return newUrt41(deps), nil
	case GameUrt42:
		return newUrt42(deps), nil
	default:
		return nil, fmt.Errorf("%w: unsupported game %q", ErrUnsupportedGame, game)
	}
}

func commandOptions(deps Deps) commands.Options {
	return commands.Options{
		Console:        deps.Console,
		Clients:        deps.Clients,
		Levels:         deps.Config.Commands,
		FullIdentLevel: deps.Config.Special.PaidentFullLevel,
		ConfigModes:    deps.Config.ConfigModes,
	}
}
