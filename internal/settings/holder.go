package settings

import "sync"

// Holder is a concurrency-safe cell for the process-wide global settings.
// The scheduler reads it at every tick; the UI replaces it on save.
type Holder struct {
	mu sync.RWMutex
	g  Global
}

func NewHolder(g Global) *Holder {
	return &Holder{g: g}
}

func (h *Holder) Get() Global {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.g
}

func (h *Holder) Set(g Global) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.g = g
}
