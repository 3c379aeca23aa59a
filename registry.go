package statebox

type (
	// registry tracks listener registrations in the order they were made
	registry struct {
		subs   []*subscription
		nextID uint64
	}

	subscription struct {
		fn Listener
		id uint64
	}
)

// register appends a new subscription for fn and returns it
func (r *registry) register(fn Listener) *subscription {
	r.nextID++
	sub := &subscription{id: r.nextID, fn: fn}
	r.subs = append(r.subs, sub)
	return sub
}

// unregister removes exactly the provided subscription, reporting whether it
// was still registered. subs is copy-on-write, so snapshots taken before the
// call keep their contents
func (r *registry) unregister(sub *subscription) bool {
	for i, s := range r.subs {
		if s != sub {
			continue
		}
		next := make([]*subscription, 0, len(r.subs)-1)
		next = append(next, r.subs[:i]...)
		r.subs = append(next, r.subs[i+1:]...)
		return true
	}
	return false
}

// snapshot returns the registrations as of now. Later registrations append
// past its length and removals replace the backing array
func (r *registry) snapshot() []*subscription {
	return r.subs[:len(r.subs):len(r.subs)]
}

func (r *registry) count() int {
	return len(r.subs)
}
