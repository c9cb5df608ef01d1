package radiospam

import (
	"sync"
	"time"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/event"
)

// SpamState is the per-player spam bookkeeping.
// The zero value is the state of a player who never used the radio.
type SpamState struct {
	SpamPoints       int
	LastEventTime    time.Time // zero: no previous radio event
	LastEventPayload event.Radio
	MuteUntil        time.Time
}

// HasLastEvent reports whether a previous radio event was recorded.
func (s SpamState) HasLastEvent() bool {
	return !s.LastEventTime.IsZero()
}

// CoolingDown reports whether events at now must be ignored.
func (s SpamState) CoolingDown(now time.Time) bool {
	return now.Before(s.MuteUntil)
}

// Store keeps SpamState per client slot for the lifetime of the connection.
type Store interface {
	Load(cid int) SpamState
	Save(cid int, s SpamState)
	Forget(cid int)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[int]SpamState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int]SpamState, 16)}
}

func (m *MemoryStore) Load(cid int) SpamState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[cid]
}

func (m *MemoryStore) Save(cid int, s SpamState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[cid] = s
}

func (m *MemoryStore) Forget(cid int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, cid)
}

// Len returns the number of tracked clients.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
