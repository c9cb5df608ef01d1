package model

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	seen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c, err := NewClient(3, "^1Red^7Baron", seen)
	require.NoError(t, err)

	assert.Equal(t, 3, c.CID())
	assert.Equal(t, "RedBaron", c.Name())
	assert.Equal(t, "^1Red^7Baron", c.ExactName())
	assert.Equal(t, seen, c.TimeAdd())
	assert.Equal(t, 0, c.MaxLevel())
	assert.Equal(t, "RedBaron@3", c.String())
}

func TestNewClient_InvalidSlot(t *testing.T) {
	for _, cid := range []int{-1, MaxClients, 1000} {
		_, err := NewClient(cid, "x", time.Time{})
		assert.ErrorIs(t, err, ErrInvalidSlot, "cid %d", cid)
	}
}

func TestClient_Setters(t *testing.T) {
	c, err := NewClient(0, "old", time.Time{})
	require.NoError(t, err)

	c.SetName("^2new")
	c.SetIP("10.0.0.7")
	c.SetGUID("ABCDEF0123456789")
	c.SetMaxLevel(60)

	assert.Equal(t, "new", c.Name())
	assert.Equal(t, "^2new", c.ExactName())
	assert.Equal(t, "10.0.0.7", c.IP())
	assert.Equal(t, "ABCDEF0123456789", c.GUID())
	assert.Equal(t, 60, c.MaxLevel())
}

func TestStripColors(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"^1red", "red"},
		{"^1r^2g^3b", "rgb"},
		{"trailing^", "trailing^"},
		{"^^1x", "^x"},
		{"^éabc", "abc"},
		{"Zo^ë^7ë", "Zoë"},
		{"^日本", "本"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := StripColors(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got), "result %q is valid UTF-8", got)
		})
	}
}
