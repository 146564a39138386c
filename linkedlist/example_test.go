package linkedlist_test

import (
	"fmt"

	"github.com/npillmayer/pcoll/linkedlist"
)

// Two lists may branch off a common base; the base chain is shared, not
// copied, and extending one branch never changes the other.
func ExampleList() {
	base := linkedlist.List[int]{}.Cons(3).Cons(2).Cons(1) // ⟨1 2 3⟩
	red := base.Cons(10)
	blue := base.Cons(20)
	fmt.Println(base)
	fmt.Println(red)
	fmt.Println(blue)
	// Output:
	// (1 2 3)
	// (10 1 2 3)
	// (20 1 2 3)
}

func ExampleSplitAt() {
	l := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	prefix, suffix, _ := linkedlist.SplitAt(2, l)
	fmt.Println(prefix, suffix)
	// Output:
	// (1 2) (3 4 5)
}
