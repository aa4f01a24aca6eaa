package selection

import "fmt"

// Tagged pairs an item with whether it is the selected one.
// It is the element type produced by [Tag].
type Tagged[T any] struct {
	Item     T
	Selected bool
}

// String returns a human-readable representation: "(item, selected)".
func (t Tagged[T]) String() string {
	return fmt.Sprintf("(%v, %t)", t.Item, t.Selected)
}

// Tag pairs every item with its selected flag. The selected position is
// unchanged.
//
//	for _, row := range selection.Tag(menu).ToList() {
//	    render(row.Item, row.Selected)
//	}
func Tag[T any](s Selection[T]) Selection[Tagged[T]] {
	return MapSelected(s, Handlers[T, Tagged[T]]{
		Selected: func(item T) Tagged[T] { return Tagged[T]{Item: item, Selected: true} },
		Rest:     func(item T) Tagged[T] { return Tagged[T]{Item: item} },
	})
}
