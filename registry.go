package stencil

import "sync"

// Registry associates caller-chosen keys with finished stencil pixmaps.
// Collaborators that process many sources (a page of images, a directory of
// files) can use it to look up results they have already produced instead
// of re-dithering.
//
// Stored pixmaps are owned by the registry's users; the registry itself
// never mutates them.
//
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]*Pixmap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Pixmap)}
}

// Put records pm under key, replacing any previous entry.
func (r *Registry) Put(key string, pm *Pixmap) {
	r.mu.Lock()
	r.m[key] = pm
	r.mu.Unlock()
}

// Get returns the pixmap stored under key, if any.
func (r *Registry) Get(key string) (*Pixmap, bool) {
	r.mu.RLock()
	pm, ok := r.m[key]
	r.mu.RUnlock()
	return pm, ok
}

// Delete removes the entry for key. Deleting a missing key is a no-op.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	delete(r.m, key)
	r.mu.Unlock()
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.m)
	r.mu.RUnlock()
	return n
}
