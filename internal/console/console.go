// Package console abstracts the game server console a plugin talks to.
//
// Plugins never format raw rcon lines themselves beyond game specific
// commands such as "mute" or "smite"; cvar writes, public and private
// messages go through the helpers so the quoting rules live in one place.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// TimeFormat is the layout used when printing server time to players.
const TimeFormat = "03:04PM MST 01/02/06"

// Console is the host side of the plugin contract: it executes text
// commands on the game server and exposes the server clock.
type Console interface {
	// Write sends a raw console command. Fire-and-forget.
	Write(cmd string)
	// SetCvar sets a server configuration variable.
	SetCvar(name string, value any)
	// Say broadcasts a message to every player.
	Say(msg string)
	// Message sends a private message to one player.
	Message(c *model.Client, msg string)
	// Time returns the current server time.
	Time() time.Time
	// FormatTime renders t for players.
	FormatTime(t time.Time) string
}

// Rcon is a Console that renders commands as rcon text lines and writes
// them, newline-terminated, to an io.Writer.
type Rcon struct {
	mu    sync.Mutex
	out   io.Writer
	clock func() time.Time
	loc   *time.Location
}

// NewRcon creates an Rcon console. A nil clock means time.Now and a nil
// location means UTC.
func NewRcon(out io.Writer, clock func() time.Time, loc *time.Location) *Rcon {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Rcon{out: out, clock: clock, loc: loc}
}

func (r *Rcon) Write(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintln(r.out, cmd); err != nil {
		// Delivery failures belong to the host; the plugin never retries.
		slog.Error("console write failed", "command", cmd, "error", err)
	}
}

func (r *Rcon) SetCvar(name string, value any) {
	r.Write(SetCvarCommand(name, value))
}

func (r *Rcon) Say(msg string) {
	r.Write("say " + sanitize(msg))
}

func (r *Rcon) Message(c *model.Client, msg string) {
	if c == nil {
		return
	}
	r.Write(fmt.Sprintf("tell %d %s", c.CID(), sanitize(msg)))
}

func (r *Rcon) Time() time.Time {
	return r.clock()
}

func (r *Rcon) FormatTime(t time.Time) string {
	return t.In(r.loc).Format(TimeFormat)
}

// SetCvarCommand renders the rcon line that sets a cvar.
func SetCvarCommand(name string, value any) string {
	return fmt.Sprintf("set %s \"%v\"", name, value)
}

// MuteCommand renders the rcon line that mutes a client for the given
// number of seconds.
func MuteCommand(cid int, seconds int) string {
	return fmt.Sprintf("mute %d %d", cid, seconds)
}

// sanitize keeps player supplied text on a single console line.
func sanitize(msg string) string {
	return strings.NewReplacer("\n", " ", "\r", " ", "\"", "'").Replace(msg)
}
