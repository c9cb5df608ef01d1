package commands

import "github.com/FenixXx/b3-plugin-poweradminurt/internal/model"

// ClientFinder resolves player references typed by admins.
// Interface so the commands don't depend on the host's client registry.
type ClientFinder interface {
	// FindClientPrompt resolves text (a slot id such as "@3" or part of a
	// name) to a single connected client. When nothing or more than one
	// client matches it tells caller the candidates and returns nil.
	FindClientPrompt(text string, caller *model.Client) *model.Client
}
