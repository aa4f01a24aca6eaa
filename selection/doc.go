// Package selection provides Selection, an immutable ordered list in which at
// most one item is selected.
//
// # Overview
//
// A [Selection][T] pairs a slice of items with an optional pointer to one of
// them. The pointer is positional, so it can never refer to an item outside
// the list, and duplicates are told apart by where they sit:
//
//	menu := selection.From([]string{"Burrito", "Chicken Wrap", "Taco Salad"})
//	menu = selection.Select(menu, "Burrito")
//	item, ok := menu.Selected() // → "Burrito", true
//
// # Immutability
//
// Every operation returns a *new* Selection and leaves its receiver
// unchanged. Callers may keep several snapshots alive at once (an undo
// history, say) and share them across goroutines without locking.
//
// # Selecting
//
// [Select] and [Selection.SelectBy] pick the first matching item. When
// nothing matches, the selection is left exactly as it was:
//
//	menu = selection.Select(menu, "Doner Kebab") // still "Burrito"
//
// [Selection.Deselect] clears the selection unconditionally.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the item type are package-level functions:
//
//	labels := selection.MapSelected(menu, selection.Handlers[string, string]{
//	    Selected: func(s string) string { return "> " + s },
//	    Rest:     func(s string) string { return "  " + s },
//	})
//
// Package-level functions: [Select], [Map], [MapSelected], [Tag].
package selection
