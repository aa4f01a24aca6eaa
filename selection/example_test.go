package selection_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-selection/selection"
)

func ExampleSelect() {
	s := selection.From([]string{"Burrito", "Chicken Wrap", "Taco Salad"})
	item, ok := selection.Select(s, "Burrito").Selected()
	fmt.Printf("%q %v\n", item, ok)
	item, ok = selection.Select(s, "Doner Kebab").Selected()
	fmt.Printf("%q %v\n", item, ok)
	// Output:
	// "Burrito" true
	// "" false
}

func ExampleSelection_SelectBy() {
	item, ok := selection.New("Burrito", "Chicken Wrap", "Taco Salad").
		SelectBy(func(s string) bool { return strings.HasPrefix(s, "B") }).
		Selected()
	fmt.Println(item, ok)
	// Output: Burrito true
}

func ExampleMap() {
	s := selection.Map(selection.New(1, 2, 3), func(n int) int { return n * 2 })
	fmt.Println(s.ToList())
	// Output: [2 4 6]
}

func ExampleMapSelected() {
	s := selection.Select(selection.New(1, 2, 2), 2)
	out := selection.MapSelected(s, selection.Handlers[int, int]{
		Selected: func(n int) int { return n * 2 },
		Rest:     func(n int) int { return n },
	})
	fmt.Println(out.ToList())
	// Output: [1 4 2]
}

func ExampleSelection_Filter() {
	s := selection.Select(selection.New(1, 2, 3), 2).
		Filter(func(n int) bool { return n <= 2 })
	fmt.Println(s)
	// Output: [1 *2*]
}

func ExampleTag() {
	s := selection.Select(selection.New("a", "b", "c"), "b")
	for _, row := range selection.Tag(s).ToList() {
		fmt.Println(row)
	}
	// Output:
	// (a, false)
	// (b, true)
	// (c, false)
}
