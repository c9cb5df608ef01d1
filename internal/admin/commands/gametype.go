package commands

import (
	"log/slog"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
)

// Urban Terror g_gametype values.
const (
	GameTypeLastManStanding = "1"
	GameTypeJump            = "9"
)

// GameType handles commands that switch g_gametype and apply the server
// config of the new mode, e.g. !palms and !pajump.
type GameType struct {
	names    []string
	gameType string
	label    string
	mode     string

	console console.Console
	modes   map[string]string
	level   admin.LevelRange
}

// NewLastManStanding creates !palms.
func NewLastManStanding(cons console.Console, modes map[string]string, level admin.LevelRange) *GameType {
	return &GameType{
		names:    []string{"palms", "lms"},
		gameType: GameTypeLastManStanding,
		label:    "Last Man Standing",
		mode:     "lms",
		console:  cons,
		modes:    modes,
		level:    level,
	}
}

// NewJump creates !pajump.
func NewJump(cons console.Console, modes map[string]string, level admin.LevelRange) *GameType {
	return &GameType{
		names:    []string{"pajump", "jump"},
		gameType: GameTypeJump,
		label:    "Jump",
		mode:     "jump",
		console:  cons,
		modes:    modes,
		level:    level,
	}
}

func (c *GameType) Names() []string                 { return c.names }
func (c *GameType) RequiredLevel() admin.LevelRange { return c.level }
func (c *GameType) Help() string                    { return "- change game type to " + c.label }

func (c *GameType) Handle(inv *admin.Invocation) error {
	c.console.SetCvar("g_gametype", c.gameType)
	inv.Tell("^7game type changed to ^4" + c.label)

	SetConfigMode(c.console, c.modes, c.mode)
	return nil
}

// SetConfigMode executes the server cfg file configured for mode, if any.
func SetConfigMode(cons console.Console, modes map[string]string, mode string) {
	file, ok := modes[mode]
	if !ok || file == "" {
		slog.Debug("no config file for mode", "mode", mode)
		return
	}
	cons.Write("exec " + file)
	slog.Info("config mode applied", "mode", mode, "file", file)
}
