package selection

import (
	"fmt"
	"iter"
	"strings"
)

// none marks "nothing selected". Any index outside [0, Len()) means the same.
const none = -1

// Selection is an immutable list of items with at most one selected item.
//
// The selected item, when present, is always a member of the list: the
// selection is stored as a position, and every operation that changes the
// list recomputes that position.
//
// The zero value is an empty Selection with nothing selected.
//
// # Creating a selection
//
//	s := selection.New(1, 2, 3)
//	s := selection.From([]string{"a", "b", "c"})
//	s := selection.Empty[int]()
//
// # Method chaining
//
//	item, ok := selection.New(1, 2, 3, 4).
//	    SelectBy(func(n int) bool { return n > 2 }).
//	    Filter(func(n int) bool { return n%2 == 1 }).
//	    Selected() // → 3, true
type Selection[T any] struct {
	index int
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From creates a Selection from a slice (the slice is copied).
// Nothing is selected.
func From[T any](items []T) Selection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Selection[T]{index: none, items: dst}
}

// New creates a Selection from a variadic list of items (copied).
// Nothing is selected.
func New[T any](items ...T) Selection[T] {
	return From(items)
}

// Empty creates an empty Selection of type T.
func Empty[T any]() Selection[T] {
	return Selection[T]{index: none, items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToList returns a copy of the items, discarding the selection.
func (s Selection[T]) ToList() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ToSlice is an alias for [Selection.ToList].
func (s Selection[T]) ToSlice() []T { return s.ToList() }

// Len returns the number of items.
func (s Selection[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the selection contains no items.
func (s Selection[T]) IsEmpty() bool { return len(s.items) == 0 }

// Selected returns the selected item together with a presence flag.
// Returns the zero value and false when nothing is selected.
func (s Selection[T]) Selected() (T, bool) {
	i, ok := s.SelectedIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// SelectedIndex returns the position of the selected item.
// Returns -1 and false when nothing is selected.
func (s Selection[T]) SelectedIndex() (int, bool) {
	if s.index < 0 || s.index >= len(s.items) {
		return none, false
	}
	return s.index, true
}

// HasSelection reports whether an item is selected.
func (s Selection[T]) HasSelection() bool {
	_, ok := s.SelectedIndex()
	return ok
}

// IsSelected reports whether the item at index is the selected one.
func (s Selection[T]) IsSelected(index int) bool {
	i, ok := s.SelectedIndex()
	return ok && i == index
}

// All returns an iterator over (index, item) pairs in order.
//
//	for i, item := range s.All() { ... }
func (s Selection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Each calls fn(item, index, selected) for every item, where selected
// reports whether item is the selected one.
func (s Selection[T]) Each(fn func(item T, index int, selected bool)) {
	sel, ok := s.SelectedIndex()
	for i, item := range s.items {
		fn(item, i, ok && i == sel)
	}
}

// String returns a human-readable representation with the selected item
// wrapped in asterisks, e.g. "[a *b* c]". It implements [fmt.Stringer].
func (s Selection[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	s.Each(func(item T, i int, selected bool) {
		if i > 0 {
			b.WriteByte(' ')
		}
		if selected {
			fmt.Fprintf(&b, "*%v*", item)
			return
		}
		fmt.Fprintf(&b, "%v", item)
	})
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Selecting
// ─────────────────────────────────────────────────────────────────────────────

// Select selects the first item equal to target.
// When no item is equal to target the selection is returned unchanged; a
// previous selection is kept, not cleared.
func Select[T comparable](s Selection[T], target T) Selection[T] {
	return s.SelectBy(func(item T) bool { return item == target })
}

// SelectBy selects the first item for which fn returns true.
// When no item matches the selection is returned unchanged.
func (s Selection[T]) SelectBy(fn func(T) bool) Selection[T] {
	for i, item := range s.items {
		if fn(item) {
			return Selection[T]{index: i, items: s.items}
		}
	}
	return s
}

// SelectAt selects the item at index.
// An out-of-range index leaves the selection unchanged.
func (s Selection[T]) SelectAt(index int) Selection[T] {
	if index < 0 || index >= len(s.items) {
		return s
	}
	return Selection[T]{index: index, items: s.items}
}

// Deselect returns a copy of s with nothing selected.
func (s Selection[T]) Deselect() Selection[T] {
	return Selection[T]{index: none, items: s.items}
}
