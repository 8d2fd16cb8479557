package scene

// Registry owns the live objects of a scene.
//
// Mutations are two-phase: Add and Delete only record the request, and
// Sweep applies them at the start of the next tick. Phases iterate a
// snapshot, so every object present when a phase starts receives that
// phase's callback even if it is deleted halfway through.
type Registry struct {
	scene    *Scene
	nextID   ID
	active   []Object
	incoming []Object
	pending  map[ID]struct{}
	focus    []map[*Base]bool
}

// NewRegistry creates an empty registry. Objects added to it are attached
// to the given scene, which may be nil in tests.
func NewRegistry(s *Scene) *Registry {
	return &Registry{
		scene:   s,
		pending: make(map[ID]struct{}),
	}
}

// Add assigns the next ID, calls Create and queues the object for the
// active set. It never fails.
func (r *Registry) Add(o Object) ID {
	r.nextID++
	b := o.Entity()
	b.id = r.nextID
	b.scene = r.scene
	r.incoming = append(r.incoming, o)

	if c, ok := o.(Creator); ok {
		c.Create()
	}
	return b.id
}

// Delete schedules the object with the given ID for removal.
// Unknown and already deleted IDs are ignored.
func (r *Registry) Delete(id ID) {
	if id == 0 {
		return
	}
	r.pending[id] = struct{}{}
}

// Clear schedules every live object for removal, including ones added
// since the last sweep.
func (r *Registry) Clear() {
	for _, o := range r.live() {
		r.Delete(o.Entity().id)
	}
}

// Sweep applies pending additions and deletions. Additions are appended in
// Add order; removed objects get OnDestroy after the active set is updated.
func (r *Registry) Sweep() {
	if len(r.incoming) > 0 {
		r.active = append(r.active, r.incoming...)
		clear(r.incoming)
		r.incoming = r.incoming[:0]
	}
	if len(r.pending) == 0 {
		return
	}

	var removed []Object
	kept := r.active[:0]
	for _, o := range r.active {
		if _, ok := r.pending[o.Entity().id]; ok {
			removed = append(removed, o)
			continue
		}
		kept = append(kept, o)
	}
	clear(r.active[len(kept):])
	r.active = kept
	clear(r.pending)

	for _, o := range removed {
		if d, ok := o.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

// Objects returns a snapshot of the active set in registry order.
func (r *Registry) Objects() []Object {
	out := make([]Object, len(r.active))
	copy(out, r.active)
	return out
}

// Len returns the number of live objects, including ones not yet swept in.
func (r *Registry) Len() int {
	return len(r.active) + len(r.incoming)
}

// Get finds a live object by ID.
func (r *Registry) Get(id ID) (Object, bool) {
	for _, o := range r.live() {
		if o.Entity().id == id {
			return o, true
		}
	}
	return nil, false
}

// Pending reports whether the object is scheduled for removal.
func (r *Registry) Pending(id ID) bool {
	_, ok := r.pending[id]
	return ok
}

func (r *Registry) live() []Object {
	out := make([]Object, 0, r.Len())
	out = append(out, r.active...)
	return append(out, r.incoming...)
}

// DisableAllExceptMe disables every live object, then enables o.
// Previous flags are not remembered.
func (r *Registry) DisableAllExceptMe(o Object) {
	for _, other := range r.live() {
		other.Entity().disabled = true
	}
	o.Entity().disabled = false
}

// PushFocus records the disabled flag of every live object and then gives
// o exclusive input. Calls nest.
func (r *Registry) PushFocus(o Object) {
	snapshot := make(map[*Base]bool, r.Len())
	for _, other := range r.live() {
		b := other.Entity()
		snapshot[b] = b.disabled
	}
	r.focus = append(r.focus, snapshot)
	r.DisableAllExceptMe(o)
}

// PopFocus restores the flags recorded by the most recent PushFocus for
// objects that are still live. Objects added since keep their state.
func (r *Registry) PopFocus() {
	if len(r.focus) == 0 {
		return
	}
	snapshot := r.focus[len(r.focus)-1]
	r.focus = r.focus[:len(r.focus)-1]

	for _, o := range r.live() {
		b := o.Entity()
		if disabled, ok := snapshot[b]; ok {
			b.disabled = disabled
		}
	}
}

// FocusDepth returns the number of unmatched PushFocus calls.
func (r *Registry) FocusDepth() int {
	return len(r.focus)
}
