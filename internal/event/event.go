// Package event defines the events a host delivers to plugins.
package event

import (
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// Type identifies an event kind.
type Type int32

const (
	ClientConnect    Type = 1
	ClientDisconnect Type = 2
	ClientSay        Type = 3
	ClientTeamSay    Type = 4
	ClientRadio      Type = 5
)

func (t Type) String() string {
	switch t {
	case ClientConnect:
		return "EVT_CLIENT_CONNECT"
	case ClientDisconnect:
		return "EVT_CLIENT_DISCONNECT"
	case ClientSay:
		return "EVT_CLIENT_SAY"
	case ClientTeamSay:
		return "EVT_CLIENT_TEAM_SAY"
	case ClientRadio:
		return "EVT_CLIENT_RADIO"
	default:
		return "EVT_UNKNOWN"
	}
}

// Radio is the payload of a ClientRadio event.
// Comparable: two radio calls are the same message when all fields match.
type Radio struct {
	Group    int
	ID       int
	Location string
	Text     string
}

// Event is a single occurrence dispatched by the host.
type Event struct {
	Type   Type
	Client *model.Client
	Time   time.Time
	// Data holds Radio for ClientRadio and the chat text (string) for say events.
	Data any
}
