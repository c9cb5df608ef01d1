package model

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// MaxClients is the highest slot count an Urban Terror server hands out.
const MaxClients = 64

// ErrInvalidSlot is returned when a client slot id is outside [0, MaxClients).
var ErrInvalidSlot = errors.New("invalid client slot")

// Client is a player connected to the game server.
// The slot id (cid) is what console commands address; it is reused by the
// server once the player disconnects.
type Client struct {
	cid int

	mu        sync.RWMutex
	name      string
	exactName string
	ip        string
	guid      string
	maxLevel  int
	timeAdd   time.Time
}

// NewClient creates a client in the given slot.
// firstSeen is the time the bot first registered this player.
func NewClient(cid int, name string, firstSeen time.Time) (*Client, error) {
	if cid < 0 || cid >= MaxClients {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlot, cid)
	}
	return &Client{
		cid:       cid,
		name:      StripColors(name),
		exactName: name,
		timeAdd:   firstSeen,
	}, nil
}

// CID returns the server slot id.
func (c *Client) CID() int { return c.cid }

// Name returns the display name without color codes.
func (c *Client) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// ExactName returns the name as the player typed it, color codes included.
func (c *Client) ExactName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exactName
}

// SetName updates both the exact and the display name.
func (c *Client) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exactName = name
	c.name = StripColors(name)
}

func (c *Client) IP() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ip
}

func (c *Client) SetIP(ip string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ip = ip
}

// GUID returns the client hardware id (cl_guid).
func (c *Client) GUID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guid
}

func (c *Client) SetGUID(guid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guid = guid
}

// MaxLevel returns the highest privilege level of the groups the client is in.
func (c *Client) MaxLevel() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxLevel
}

func (c *Client) SetMaxLevel(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxLevel = level
}

// TimeAdd returns when the client was first seen.
func (c *Client) TimeAdd() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeAdd
}

// String implements fmt.Stringer for log attributes.
func (c *Client) String() string {
	return fmt.Sprintf("%s@%d", c.Name(), c.cid)
}
