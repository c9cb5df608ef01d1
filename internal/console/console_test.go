package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

func newTestRcon(t *testing.T) (*Rcon, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	now := time.Date(2024, 5, 17, 21, 4, 0, 0, time.UTC)
	return NewRcon(&buf, func() time.Time { return now }, time.UTC), &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRcon_Commands(t *testing.T) {
	r, buf := newTestRcon(t)
	c, err := model.NewClient(4, "Bob", time.Time{})
	require.NoError(t, err)

	r.Write("smite 4")
	r.SetCvar("g_gametype", 1)
	r.Say("^7Goto: ^2ON")
	r.Message(c, "hello\nthere \"friend\"")
	r.Message(nil, "dropped")

	assert.Equal(t, []string{
		"smite 4",
		`set g_gametype "1"`,
		"say ^7Goto: ^2ON",
		"tell 4 hello there 'friend'",
	}, lines(buf))
}

func TestRcon_Time(t *testing.T) {
	r, _ := newTestRcon(t)
	assert.Equal(t, time.Date(2024, 5, 17, 21, 4, 0, 0, time.UTC), r.Time())
	assert.Equal(t, "09:04PM UTC 05/17/24", r.FormatTime(r.Time()))
}

func TestNewRcon_Defaults(t *testing.T) {
	r := NewRcon(&bytes.Buffer{}, nil, nil)
	assert.WithinDuration(t, time.Now(), r.Time(), time.Minute)
	assert.Equal(t, time.UTC, r.loc)
}

func TestMuteCommand(t *testing.T) {
	assert.Equal(t, "mute 7 2", MuteCommand(7, 2))
}
