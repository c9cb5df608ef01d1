package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/plugin"
)

// Stats counts what a replay went through.
type Stats struct {
	Lines    int
	Events   int
	Commands int
	Skipped  int
}

// Host feeds games.log lines to a plugin and its commands.
// Not safe for concurrent use: lines must be handled in log order.
type Host struct {
	plugin   plugin.Plugin
	commands *admin.Handler
	roster   *Roster
	clock    *Clock

	subscribed map[event.Type]bool
	stats      Stats
}

// NewHost creates a host delivering the events p subscribes to.
func NewHost(p plugin.Plugin, commands *admin.Handler, roster *Roster, clock *Clock) *Host {
	subscribed := make(map[event.Type]bool)
	for _, t := range p.Events() {
		subscribed[t] = true
	}
	return &Host{
		plugin:     p,
		commands:   commands,
		roster:     roster,
		clock:      clock,
		subscribed: subscribed,
	}
}

// Stats returns the counters collected so far.
func (h *Host) Stats() Stats {
	return h.stats
}

// Run reads log lines from r until EOF or ctx is done. Malformed lines are
// logged and skipped. When ctx is done Run returns at once; if r is also an
// io.Closer it is closed so a read blocked on a quiet input ends too.
func (h *Host) Run(ctx context.Context, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { c.Close() })
		defer stop()
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
		}()

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading log: %w", err)
				}
				return nil
			}
			if err := h.HandleLine(raw); err != nil {
				if !errors.Is(err, ErrMalformed) && !errors.Is(err, model.ErrInvalidSlot) {
					return err
				}
				h.stats.Skipped++
				slog.Warn("skipping log line", "error", err)
			}
		}
	}
}

// HandleLine processes one raw log line.
func (h *Host) HandleLine(raw string) error {
	line, ok := ParseLine(raw)
	if !ok {
		return nil
	}
	h.stats.Lines++
	now := h.clock.Advance(line.Offset)

	switch line.Action {
	case ActionInitGame:
		slog.Info("new game", "time", now)
		return nil

	case ActionClientConnect, ActionClientBegin:
		cid, err := ParseSlot(line.Args)
		if err != nil {
			return err
		}
		c, err := h.roster.Connect(cid, "", now)
		if err != nil {
			return err
		}
		h.dispatch(line.Action, c, now, nil)
		return nil

	case ActionClientUserinfo, ActionClientUserinfoChanged:
		return h.onUserinfo(line, now)

	case ActionClientDisconnect:
		cid, err := ParseSlot(line.Args)
		if err != nil {
			return err
		}
		c, ok := h.roster.Remove(cid)
		if !ok {
			return nil
		}
		h.dispatch(line.Action, c, now, nil)
		return nil

	case ActionSay, ActionSayTeam:
		return h.onSay(line, now)

	case ActionRadio:
		cid, radio, err := ParseRadio(line.Args)
		if err != nil {
			return err
		}
		c, err := h.roster.Connect(cid, "", now)
		if err != nil {
			return err
		}
		h.dispatch(line.Action, c, now, radio)
		return nil
	}
	return nil
}

func (h *Host) onUserinfo(line Line, now time.Time) error {
	cid, info, err := ParseUserinfo(line.Args)
	if err != nil {
		return err
	}

	name := info["name"]
	if line.Action == ActionClientUserinfoChanged {
		name = info["n"]
	}
	c, err := h.roster.Connect(cid, name, now)
	if err != nil {
		return err
	}

	if ip, ok := info["ip"]; ok {
		host, _, _ := strings.Cut(ip, ":")
		c.SetIP(host)
	}
	if guid, ok := info["cl_guid"]; ok {
		c.SetGUID(guid)
	}
	return nil
}

func (h *Host) onSay(line Line, now time.Time) error {
	chat, err := ParseSay(line.Args)
	if err != nil {
		return err
	}
	c, err := h.roster.Connect(chat.CID, chat.Name, now)
	if err != nil {
		return err
	}

	if admin.IsCommand(chat.Text) {
		if h.commands.HandleChat(c, chat.Text) {
			h.stats.Commands++
		}
	}
	h.dispatch(line.Action, c, now, chat.Text)
	return nil
}

func (h *Host) dispatch(action string, c *model.Client, now time.Time, data any) {
	typ, ok := actionEvents[action]
	if !ok || !h.subscribed[typ] {
		return
	}
	h.stats.Events++
	h.plugin.OnEvent(event.Event{Type: typ, Client: c, Time: now, Data: data})
}
