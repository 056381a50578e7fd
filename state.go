package duitseg

import (
	"iter"
	"slices"
)

// Key identifies an entry in a State. Keys are handed out in increasing order and never reused,
// also not after the entry is removed. The zero Key never identifies an entry.
type Key uint64

// Entry is a single segment: a tab, a choice, a view.
type Entry[D any] struct {
	Key   Key
	Label string
	Data  D
}

type entry[D any] struct {
	label string
	data  D
}

// State holds the entries of a segmented button, in insertion order, with at most one active entry.
// Each entry carries data of type D for use by the application, e.g. the UI to show for a view switcher.
// Use struct{} for D if you need no data.
//
// The zero State is empty and ready for use. State is owned by the application.
// Segmented only reads it, through the Segments interface.
// Operations on keys that are not in the state are ignored: a key may refer to an entry that
// was removed between the time an event was generated and the time it is handled.
type State[D any] struct {
	entries map[Key]*entry[D]
	order   []Key
	active  Key
	last    Key
}

// Segments is the read-only view of a State that a Segmented uses during layout, draw and input handling.
type Segments interface {
	Len() int
	KeyAt(index int) Key
	Label(k Key) (string, bool)
	Active() (Key, bool)
}

var _ Segments = &State[struct{}]{}

// Insert adds an entry at the end and returns its new key.
func (s *State[D]) Insert(label string, data D) Key {
	if s.entries == nil {
		s.entries = map[Key]*entry[D]{}
	}
	s.last++
	k := s.last
	s.entries[k] = &entry[D]{label, data}
	s.order = append(s.order, k)
	return k
}

// Remove deletes the entry for k. If it was the active entry, no entry is active afterwards:
// the application decides which entry to activate next, if any.
func (s *State[D]) Remove(k Key) {
	if _, ok := s.entries[k]; !ok {
		return
	}
	delete(s.entries, k)
	if i := slices.Index(s.order, k); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	if s.active == k {
		s.active = 0
	}
}

// Activate makes k the active entry, replacing the previously active entry.
// Activating an already active entry has no effect.
func (s *State[D]) Activate(k Key) {
	if _, ok := s.entries[k]; ok {
		s.active = k
	}
}

// Deactivate leaves no entry active.
func (s *State[D]) Deactivate() {
	s.active = 0
}

// Active returns the key of the active entry.
func (s *State[D]) Active() (Key, bool) {
	return s.active, s.active != 0
}

// IsActive returns whether k is the active entry.
func (s *State[D]) IsActive(k Key) bool {
	return k != 0 && s.active == k
}

// Data returns the data for k.
func (s *State[D]) Data(k Key) (data D, ok bool) {
	e, ok := s.entries[k]
	if !ok {
		return data, false
	}
	return e.data, true
}

// SetData replaces the data for k.
func (s *State[D]) SetData(k Key, data D) {
	if e, ok := s.entries[k]; ok {
		e.data = data
	}
}

// ActiveData returns the data of the active entry.
func (s *State[D]) ActiveData() (data D, ok bool) {
	if s.active == 0 {
		return data, false
	}
	return s.Data(s.active)
}

// Label returns the label shown for k.
func (s *State[D]) Label(k Key) (string, bool) {
	e, ok := s.entries[k]
	if !ok {
		return "", false
	}
	return e.label, true
}

// SetLabel changes the label for k, e.g. after the document in a tab was renamed.
func (s *State[D]) SetLabel(k Key, label string) {
	if e, ok := s.entries[k]; ok {
		e.label = label
	}
}

// Len returns the number of entries.
func (s *State[D]) Len() int {
	return len(s.order)
}

// KeyAt returns the key of the entry at position index, or the zero Key if index is out of range.
func (s *State[D]) KeyAt(index int) Key {
	if index < 0 || index >= len(s.order) {
		return 0
	}
	return s.order[index]
}

// Position returns the 0-based position of k, or -1.
func (s *State[D]) Position(k Key) int {
	if k == 0 {
		return -1
	}
	return slices.Index(s.order, k)
}

// Keys returns a copy of the keys in order.
func (s *State[D]) Keys() []Key {
	return slices.Clone(s.order)
}

// All iterates over the entries in order.
func (s *State[D]) All() iter.Seq[Entry[D]] {
	return func(yield func(Entry[D]) bool) {
		for _, k := range s.order {
			e := s.entries[k]
			if !yield(Entry[D]{k, e.label, e.data}) {
				return
			}
		}
	}
}

// Neighbor returns the key delta positions away from the active entry, stopping at the first
// and last entry. Without an active entry, a positive delta starts at the first entry and a
// negative delta at the last.
func Neighbor(segs Segments, delta int) (Key, bool) {
	n := segs.Len()
	if n == 0 || delta == 0 {
		return 0, false
	}
	index := -1
	if k, ok := segs.Active(); ok {
		for i := 0; i < n; i++ {
			if segs.KeyAt(i) == k {
				index = i
				break
			}
		}
	}
	switch {
	case index < 0 && delta > 0:
		index = delta - 1
	case index < 0:
		index = n + delta
	default:
		index += delta
	}
	index = maximum(0, minimum(n-1, index))
	return segs.KeyAt(index), true
}
