// Package admin provides privilege levels and chat command routing for the
// bot: commands register under a name plus aliases, are gated by the
// caller's level and are invoked with "!name" (private reply) or "@name"
// (public reply).
package admin

import (
	"fmt"
	"strconv"
	"strings"
)

// AccessLevel is a bot group with an associated privilege level.
// Level 0 = guest, 100 = super admin.
type AccessLevel struct {
	Level   int
	Name    string
	Keyword string
}

var defaultAccessLevels = map[int]*AccessLevel{
	0:   {Level: 0, Name: "Guest", Keyword: "guest"},
	1:   {Level: 1, Name: "User", Keyword: "user"},
	2:   {Level: 2, Name: "Regular", Keyword: "reg"},
	20:  {Level: 20, Name: "Moderator", Keyword: "mod"},
	40:  {Level: 40, Name: "Admin", Keyword: "admin"},
	60:  {Level: 60, Name: "Full Admin", Keyword: "fulladmin"},
	80:  {Level: 80, Name: "Senior Admin", Keyword: "senioradmin"},
	100: {Level: 100, Name: "Super Admin", Keyword: "superadmin"},
}

// MaxLevel is the highest privilege level.
const MaxLevel = 100

// GetAccessLevel returns AccessLevel for the given level value.
// Unknown levels inherit from the highest matching known level below them.
// Negative levels return nil.
func GetAccessLevel(level int) *AccessLevel {
	if level < 0 {
		return nil
	}

	if al, ok := defaultAccessLevels[level]; ok {
		return al
	}

	var best *AccessLevel
	for _, al := range defaultAccessLevels {
		if al.Level <= level && (best == nil || al.Level > best.Level) {
			best = al
		}
	}
	return best
}

// GroupName returns the name of the group a level belongs to, "None" for
// negative levels.
func GroupName(level int) string {
	if al := GetAccessLevel(level); al != nil {
		return al.Name
	}
	return "None"
}

// LevelByKeyword returns the level of a group keyword such as "mod".
func LevelByKeyword(keyword string) (int, bool) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for _, al := range defaultAccessLevels {
		if al.Keyword == keyword {
			return al.Level, true
		}
	}
	return 0, false
}

// LevelRange is the inclusive range of levels allowed to run a command.
type LevelRange struct {
	Min int
	Max int
}

// Allows reports whether level falls inside the range.
func (r LevelRange) Allows(level int) bool {
	return level >= r.Min && level <= r.Max
}

func (r LevelRange) String() string {
	if r.Max == MaxLevel {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// AtLeast returns the range [level, MaxLevel].
func AtLeast(level int) LevelRange {
	return LevelRange{Min: level, Max: MaxLevel}
}

// ParseLevelRange parses "60", "mod", "20-100" or "mod-senioradmin".
// A single value means "this level and above".
func ParseLevelRange(spec string) (LevelRange, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return LevelRange{}, fmt.Errorf("empty level")
	}

	lo, hi, isRange := strings.Cut(spec, "-")
	minLevel, err := parseLevel(lo)
	if err != nil {
		return LevelRange{}, err
	}
	if !isRange {
		return AtLeast(minLevel), nil
	}

	maxLevel, err := parseLevel(hi)
	if err != nil {
		return LevelRange{}, err
	}
	if maxLevel < minLevel {
		return LevelRange{}, fmt.Errorf("level range %q is inverted", spec)
	}
	return LevelRange{Min: minLevel, Max: maxLevel}, nil
}

func parseLevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > MaxLevel {
			return 0, fmt.Errorf("level %d out of range [0, %d]", n, MaxLevel)
		}
		return n, nil
	}
	if n, ok := LevelByKeyword(s); ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
