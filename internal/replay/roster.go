package replay

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/model"
)

// Roster tracks the clients connected to the replayed server and resolves
// the player references admins type in commands.
type Roster struct {
	console console.Console
	level   int

	mu      sync.RWMutex
	clients map[int]*model.Client
}

// NewRoster creates an empty roster. Every client that joins gets level as
// its privilege level.
func NewRoster(cons console.Console, level int) *Roster {
	return &Roster{
		console: cons,
		level:   level,
		clients: make(map[int]*model.Client, model.MaxClients),
	}
}

// Connect returns the client in slot cid, creating it on first sight.
func (r *Roster) Connect(cid int, name string, now time.Time) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[cid]; ok {
		if name != "" {
			c.SetName(name)
		}
		return c, nil
	}

	c, err := model.NewClient(cid, name, now)
	if err != nil {
		return nil, fmt.Errorf("connect client: %w", err)
	}
	c.SetMaxLevel(r.level)
	r.clients[cid] = c
	return c, nil
}

// Get returns the client in slot cid.
func (r *Roster) Get(cid int) (*model.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[cid]
	return c, ok
}

// Remove drops the client in slot cid and returns it.
func (r *Roster) Remove(cid int) (*model.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[cid]
	delete(r.clients, cid)
	return c, ok
}

// All returns the connected clients ordered by slot.
func (r *Roster) All() []*model.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CID() < out[j].CID() })
	return out
}

// FindClients returns the clients matching text: "@<cid>" or a bare number
// selects a slot, anything else matches the color stripped names ignoring
// case. An exact name match wins over partial ones.
func (r *Roster) FindClients(text string) []*model.Client {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if slot, ok := strings.CutPrefix(text, "@"); ok {
		if cid, err := strconv.Atoi(slot); err == nil {
			if c, found := r.Get(cid); found {
				return []*model.Client{c}
			}
			return nil
		}
	}
	if cid, err := strconv.Atoi(text); err == nil {
		if c, found := r.Get(cid); found {
			return []*model.Client{c}
		}
	}

	// A Caser keeps state between calls and must not be shared.
	fold := cases.Fold()
	needle := fold.String(model.StripColors(text))

	var partial []*model.Client
	for _, c := range r.All() {
		name := fold.String(c.Name())
		if name == needle {
			return []*model.Client{c}
		}
		if strings.Contains(name, needle) {
			partial = append(partial, c)
		}
	}
	return partial
}

// FindClientPrompt resolves text to exactly one client. Otherwise it tells
// caller what was found and returns nil.
func (r *Roster) FindClientPrompt(text string, caller *model.Client) *model.Client {
	found := r.FindClients(text)
	switch len(found) {
	case 1:
		return found[0]
	case 0:
		r.tell(caller, fmt.Sprintf("^7No players found matching %s", text))
	default:
		names := make([]string, 0, len(found))
		for _, c := range found {
			names = append(names, fmt.Sprintf("%s [^2%d^7]", c.ExactName(), c.CID()))
		}
		r.tell(caller, fmt.Sprintf("^7Players matching %s: %s", text, strings.Join(names, ", ")))
	}
	return nil
}

func (r *Roster) tell(caller *model.Client, msg string) {
	if caller == nil {
		return
	}
	r.console.Message(caller, msg)
}
