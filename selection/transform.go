package selection

// This file contains the operations that rebuild the item list. Map and
// MapSelected change the item type and are therefore package-level
// functions; Filter and Reject keep it and are methods.

// Handlers holds the two functions used by [MapSelected].
type Handlers[T, U any] struct {
	// Selected is applied to the selected item, if any.
	Selected func(T) U
	// Rest is applied to every other item.
	Rest func(T) U
}

// Filter returns a new Selection with only the items for which fn returns
// true, in their original order.
//
// If the selected item survives it stays selected at its new position;
// otherwise nothing is selected. Duplicates are told apart by position, so
// an equal item elsewhere in the list is never selected in its place.
func (s Selection[T]) Filter(fn func(T) bool) Selection[T] {
	sel, ok := s.SelectedIndex()
	out := Selection[T]{index: none, items: make([]T, 0, len(s.items))}
	for i, item := range s.items {
		if !fn(item) {
			continue
		}
		if ok && i == sel {
			out.index = len(out.items)
		}
		out.items = append(out.items, item)
	}
	return out
}

// Reject returns a new Selection with the items for which fn returns true
// removed. It is the complement of [Selection.Filter].
func (s Selection[T]) Reject(fn func(T) bool) Selection[T] {
	return s.Filter(func(item T) bool { return !fn(item) })
}

// Map applies fn to every item and returns a new Selection[U].
// The selected position is unchanged.
//
//	labels := selection.Map(s, strconv.Itoa)
func Map[T, U any](s Selection[T], fn func(T) U) Selection[U] {
	sel, _ := s.SelectedIndex()
	out := make([]U, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item)
	}
	return Selection[U]{index: sel, items: out}
}

// MapSelected applies h.Selected to the selected item and h.Rest to every
// other item, in a single pass. Length, order and the selected position are
// unchanged.
//
//	rows := selection.MapSelected(s, selection.Handlers[string, string]{
//	    Selected: strings.ToUpper,
//	    Rest:     strings.ToLower,
//	})
func MapSelected[T, U any](s Selection[T], h Handlers[T, U]) Selection[U] {
	sel, ok := s.SelectedIndex()
	out := make([]U, len(s.items))
	for i, item := range s.items {
		if ok && i == sel {
			out[i] = h.Selected(item)
			continue
		}
		out[i] = h.Rest(item)
	}
	return Selection[U]{index: sel, items: out}
}
