// Package radiospam scores radio chat per player and mutes players that
// spam canned radio messages.
//
// Every radio call earns points depending on how soon it follows the
// previous one, points decay with the time elapsed since that call, and
// reaching MaxSpamPoints mutes the player for MuteDuration. While the mute
// lasts further radio calls are ignored, so the mute cannot feed itself.
package radiospam

import (
	"log/slog"
	"sync"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

const (
	DefaultMuteDuration  = 2 * time.Second
	DefaultFalloffRate   = 2 * time.Second // one point per 2s of silence
	DefaultMaxSpamPoints = 10
)

// Scoring bands. They are cumulative: a gap under 1s also counts as under 2s
// and under 20s.
const (
	slowGap  = 20 * time.Second
	fastGap  = 2 * time.Second
	burstGap = 1 * time.Second

	slowPoints   = 1
	fastPoints   = 1
	repeatPoints = 3
	burstPoints  = 3
)

// Config is built once at startup and never mutated.
type Config struct {
	Enabled       bool
	MuteDuration  time.Duration // whole seconds, >= 1s
	FalloffRate   time.Duration
	MaxSpamPoints int
}

// DefaultConfig returns the protection disabled with stock tuning.
func DefaultConfig() Config {
	return Config{
		Enabled:       false,
		MuteDuration:  DefaultMuteDuration,
		FalloffRate:   DefaultFalloffRate,
		MaxSpamPoints: DefaultMaxSpamPoints,
	}
}

// CommandSink receives console commands. console.Console satisfies it.
type CommandSink interface {
	Write(cmd string)
}

// Verdict is the outcome of one RecordRadioEvent call.
type Verdict int

const (
	VerdictDisabled Verdict = iota // protection off, nothing recorded
	VerdictIgnored                 // player cooling down after a mute
	VerdictScored                  // state updated, below threshold
	VerdictMuted                   // threshold reached, mute issued
)

func (v Verdict) String() string {
	switch v {
	case VerdictDisabled:
		return "disabled"
	case VerdictIgnored:
		return "ignored"
	case VerdictScored:
		return "scored"
	case VerdictMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// Scorer applies the radio spam heuristic.
// Safe for concurrent use: the per-event read-modify-write is serialized.
type Scorer struct {
	cfg   Config
	store Store
	sink  CommandSink

	mu sync.Mutex
}

// NewScorer creates a scorer. Invalid tuning values are replaced with the
// defaults; config loading already warned about them.
func NewScorer(cfg Config, store Store, sink CommandSink) *Scorer {
	def := DefaultConfig()
	if cfg.MuteDuration < time.Second {
		cfg.MuteDuration = def.MuteDuration
	}
	if cfg.FalloffRate <= 0 {
		cfg.FalloffRate = def.FalloffRate
	}
	if cfg.MaxSpamPoints < 1 {
		cfg.MaxSpamPoints = def.MaxSpamPoints
	}
	return &Scorer{cfg: cfg, store: store, sink: sink}
}

// Config returns the effective configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// RecordRadioEvent scores one radio call made by client at now.
func (s *Scorer) RecordRadioEvent(client *model.Client, payload event.Radio, now time.Time) Verdict {
	if !s.cfg.Enabled {
		return VerdictDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cid := client.CID()
	st := s.store.Load(cid)

	if st.CoolingDown(now) {
		slog.Debug("ignoring radio event", "client", client.String())
		return VerdictIgnored
	}

	points := 0
	var gap time.Duration
	hasGap := st.HasLastEvent()
	if hasGap {
		gap = now.Sub(st.LastEventTime)
		points = gapPoints(gap, payload == st.LastEventPayload)
	}

	spamPoints := st.SpamPoints + points

	// Decay uses only the gap since the previous call, applied to the
	// whole accumulated score.
	if hasGap {
		spamPoints -= int(gap / s.cfg.FalloffRate)
	}
	if spamPoints < 1 {
		spamPoints = 0
	}

	st.SpamPoints = spamPoints
	st.LastEventTime = now
	st.LastEventPayload = payload

	slog.Debug("radio spam points",
		"client", client.String(),
		"points", points,
		"spamPoints", spamPoints)

	if spamPoints < s.cfg.MaxSpamPoints {
		s.store.Save(cid, st)
		return VerdictScored
	}

	seconds := int(s.cfg.MuteDuration / time.Second)
	s.sink.Write(console.MuteCommand(cid, seconds))
	st.SpamPoints = s.cfg.MaxSpamPoints / 2
	st.MuteUntil = now.Add(s.cfg.MuteDuration - time.Second)
	s.store.Save(cid, st)

	slog.Info("radio spam mute",
		"client", client.String(),
		"seconds", seconds,
		"muteUntil", st.MuteUntil)

	return VerdictMuted
}

// Forget drops the state of a client, typically on disconnect.
func (s *Scorer) Forget(cid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Forget(cid)
}

// gapPoints returns the points earned by a call made gap after the previous
// one; repeated reports whether the payload matches the previous call.
func gapPoints(gap time.Duration, repeated bool) int {
	points := 0
	if gap < slowGap {
		points += slowPoints
	}
	if gap < fastGap {
		points += fastPoints
		if repeated {
			points += repeatPoints
		}
	}
	if gap < burstGap {
		points += burstPoints
	}
	return points
}
