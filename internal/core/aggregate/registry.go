package aggregate

import "time"

// Registry is the presence-only variant of the fold, used when building
// check masters. Entries are registered once; re-ingesting a known code is
// a no-op that signals "already registered" instead of incrementing a
// quantity.
type Registry struct {
	order []string
	known map[string]time.Time
	now   func() time.Time
}

// NewRegistry creates an empty registry. now supplies registration
// timestamps.
func NewRegistry(now func() time.Time) *Registry {
	return &Registry{
		known: make(map[string]time.Time),
		now:   now,
	}
}

// Ingest registers a code. Returns false when the code is already
// registered; the registry is left unchanged in that case.
func (r *Registry) Ingest(code string) bool {
	if _, ok := r.known[code]; ok {
		return false
	}
	r.known[code] = r.now()
	r.order = append(r.order, code)
	return true
}

// Remove deletes a registered code. Returns false when the code was not
// registered.
func (r *Registry) Remove(code string) bool {
	if _, ok := r.known[code]; !ok {
		return false
	}
	delete(r.known, code)
	for i, c := range r.order {
		if c == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Codes returns all registered codes in registration order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.order))
	copy(codes, r.order)
	return codes
}

// Clear resets the registry to empty.
func (r *Registry) Clear() {
	r.order = nil
	r.known = make(map[string]time.Time)
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return len(r.order)
}
