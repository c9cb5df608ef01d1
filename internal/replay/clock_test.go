package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/testutil"
)

func TestClock_CarriesOverMapChange(t *testing.T) {
	c := NewClock(testutil.Epoch)
	assert.Equal(t, testutil.Epoch, c.Now())

	assert.Equal(t, testutil.Epoch.Add(90*time.Second), c.Advance(90*time.Second))
	assert.Equal(t, testutil.Epoch.Add(90*time.Second), c.Advance(90*time.Second))

	// offset restarts at the next map
	assert.Equal(t, testutil.Epoch.Add(95*time.Second), c.Advance(5*time.Second))
	assert.Equal(t, testutil.Epoch.Add(95*time.Second), c.Now())
}
