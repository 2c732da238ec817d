package export

import "iter"

// Entry is one name/slot pair of a registry snapshot.
type Entry struct {
	Name string
	Slot *Slot
}

// Registry is a parallel name/address table. Both sequences end in a
// sentinel (empty name, nil slot) so a consumer can iterate without knowing
// the length in advance. Entry order is the declaration order of the
// originating curated list; callers must not assume any other ordering.
//
// The registry is structurally read-only after Build and safe for
// concurrent reads. A patcher redirects targets through the slots it
// returns; the registry itself is never mutated.
type Registry struct {
	names []string
	slots []*Slot
	index map[string]*Slot
}

func newRegistry(capacity int) *Registry {
	return &Registry{
		names: make([]string, 0, capacity+1),
		slots: make([]*Slot, 0, capacity+1),
		index: make(map[string]*Slot, capacity),
	}
}

func (r *Registry) add(name string, slot *Slot) {
	r.names = append(r.names, name)
	r.slots = append(r.slots, slot)
	r.index[name] = slot
}

// seal appends the terminating sentinel pair.
func (r *Registry) seal() {
	r.names = append(r.names, "")
	r.slots = append(r.slots, nil)
}

// Len returns the entry count excluding the sentinel.
func (r *Registry) Len() int {
	return len(r.names) - 1
}

// Names returns the name sequence including the trailing sentinel ("").
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Slots returns the address sequence including the trailing sentinel (nil).
// The slot pointers are shared with the registry: writing through them is
// how a patcher redirects a call target.
func (r *Registry) Slots() []*Slot {
	return append([]*Slot(nil), r.slots...)
}

// At returns the i-th entry. The sentinel is addressable as At(Len()).
func (r *Registry) At(i int) Entry {
	return Entry{Name: r.names[i], Slot: r.slots[i]}
}

// Lookup resolves a registry name to its slot.
func (r *Registry) Lookup(name string) (*Slot, bool) {
	slot, ok := r.index[name]
	return slot, ok
}

// Entries returns a snapshot of the entries in declaration order,
// excluding the sentinel.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, r.Len())
	for i := range out {
		out[i] = Entry{Name: r.names[i], Slot: r.slots[i]}
	}
	return out
}

// All returns an iterator over the entries in declaration order. Iteration
// stops at the sentinel, which is never yielded.
func (r *Registry) All() iter.Seq2[string, *Slot] {
	return func(yield func(string, *Slot) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(r.names[i], r.slots[i]) {
				return
			}
		}
	}
}
