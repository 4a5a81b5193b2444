package jobs

import "sync"

// registry tracks which job names currently have a run in flight. It is
// in-process because this service runs as a single scheduler instance; a
// multi-instance deployment would need a distributed lock instead.
type registry struct {
	mu      sync.Mutex
	running map[Name]bool
}

var defaultRegistry = &registry{running: make(map[Name]bool)}

// TryStart marks name as running, returning false if it already was.
func (r *registry) TryStart(name Name) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running[name] {
		return false
	}
	r.running[name] = true
	return true
}

// Finish clears name's running flag.
func (r *registry) Finish(name Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.running, name)
}

// IsRunning reports whether name currently has an execution in flight.
func (r *registry) IsRunning(name Name) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running[name]
}

// IsRunning reports whether name currently has an execution in flight, on
// the package's default registry.
func IsRunning(name Name) bool {
	return defaultRegistry.IsRunning(name)
}
