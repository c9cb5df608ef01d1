package testutil

import (
	"testing"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// Epoch is the fixed start time used by tests.
var Epoch = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

// NewClient creates a client with the given slot, name and level.
func NewClient(t testing.TB, cid int, name string, level int) *model.Client {
	t.Helper()
	c, err := model.NewClient(cid, name, Epoch.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("NewClient(%d, %q): %v", cid, name, err)
	}
	c.SetMaxLevel(level)
	c.SetIP("192.0.2.10")
	c.SetGUID("0123456789ABCDEF0123456789ABCDEF")
	return c
}
