// Package replay drives a plugin from an Urban Terror games.log.
//
// It is the reference host used by the poweradminurt command: log lines
// become client events, chat lines go to the command router and the
// console output is written as rcon text.
package replay

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
)

// Log actions understood by the host.
const (
	ActionClientConnect         = "ClientConnect"
	ActionClientUserinfo        = "ClientUserinfo"
	ActionClientUserinfoChanged = "ClientUserinfoChanged"
	ActionClientBegin           = "ClientBegin"
	ActionClientDisconnect      = "ClientDisconnect"
	ActionSay                   = "say"
	ActionSayTeam               = "sayteam"
	ActionRadio                 = "Radio"
	ActionInitGame              = "InitGame"
)

// ErrMalformed is returned for lines that carry a known action with
// arguments that do not parse.
var ErrMalformed = errors.New("malformed log line")

var (
	lineRe  = regexp.MustCompile(`^\s*(\d+):(\d{2})\s+([A-Za-z]+):\s?(.*)$`)
	radioRe = regexp.MustCompile(`^(\d+) - (\d+) - (\d+) - "(.*)" - "(.*)"$`)
	sayRe   = regexp.MustCompile(`^(\d+) (.*?):\s*(.*)$`)
)

// Line is one timestamped games.log entry.
type Line struct {
	// Offset is the game time printed at the start of the line.
	Offset time.Duration
	Action string
	Args   string
}

// ParseLine splits a raw log line. ok is false for separators and other
// lines without an action.
func ParseLine(raw string) (Line, bool) {
	m := lineRe.FindStringSubmatch(strings.TrimRight(raw, "\r\n"))
	if m == nil {
		return Line{}, false
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	return Line{
		Offset: time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second,
		Action: m[3],
		Args:   strings.TrimSpace(m[4]),
	}, true
}

// ParseSlot parses the single slot id argument of connect, begin and
// disconnect lines.
func ParseSlot(args string) (int, error) {
	cid, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, fmt.Errorf("%w: slot %q", ErrMalformed, args)
	}
	return cid, nil
}

// ParseRadio parses `<cid> - <group> - <id> - "<location>" - "<text>"`.
func ParseRadio(args string) (int, event.Radio, error) {
	m := radioRe.FindStringSubmatch(args)
	if m == nil {
		return 0, event.Radio{}, fmt.Errorf("%w: radio %q", ErrMalformed, args)
	}
	cid, _ := strconv.Atoi(m[1])
	group, _ := strconv.Atoi(m[2])
	id, _ := strconv.Atoi(m[3])
	return cid, event.Radio{Group: group, ID: id, Location: m[4], Text: m[5]}, nil
}

// Chat is a parsed say or sayteam line.
type Chat struct {
	CID  int
	Name string
	Text string
}

// ParseSay parses `<cid> <name>: <text>`.
func ParseSay(args string) (Chat, error) {
	m := sayRe.FindStringSubmatch(args)
	if m == nil {
		return Chat{}, fmt.Errorf("%w: say %q", ErrMalformed, args)
	}
	cid, _ := strconv.Atoi(m[1])
	return Chat{CID: cid, Name: m[2], Text: m[3]}, nil
}

// ParseUserinfo parses `<cid> \key\value\key\value...`. ClientUserinfoChanged
// lines use the same layout without the leading backslash.
func ParseUserinfo(args string) (int, map[string]string, error) {
	slot, rest, _ := strings.Cut(args, " ")
	cid, err := ParseSlot(slot)
	if err != nil {
		return 0, nil, err
	}

	rest = strings.TrimPrefix(strings.TrimSpace(rest), `\`)
	info := make(map[string]string)
	if rest == "" {
		return cid, info, nil
	}
	parts := strings.Split(rest, `\`)
	for i := 0; i+1 < len(parts); i += 2 {
		info[strings.ToLower(parts[i])] = parts[i+1]
	}
	return cid, info, nil
}

// Event types produced by each log action.
var actionEvents = map[string]event.Type{
	ActionClientConnect:    event.ClientConnect,
	ActionClientDisconnect: event.ClientDisconnect,
	ActionSay:              event.ClientSay,
	ActionSayTeam:          event.ClientTeamSay,
	ActionRadio:            event.ClientRadio,
}
