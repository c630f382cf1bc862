package dynvec_test

import (
	"fmt"

	"github.com/hupe1980/dynvec"
)

// Example demonstrates the basic push, insert and erase cycle.
func Example() {
	v := dynvec.Of(1, 2, 3)
	v.PushBack(4)

	loc := v.Insert(1, 99)
	fmt.Println(v, "inserted at", loc)

	v.Erase(loc)
	fmt.Println(v, "len", v.Len())

	// Output:
	// [1 99 2 3 4] inserted at 1
	// [1 2 3 4] len 4
}

// Example_checkedAccess demonstrates the two access modes.
func Example_checkedAccess() {
	v := dynvec.Of("a", "b")

	if s, err := v.Get(1); err == nil {
		fmt.Println(s)
	}
	if _, err := v.Get(5); err != nil {
		fmt.Println(err)
	}

	// Output:
	// b
	// index 5 out of range [0,2)
}

// Example_reserve demonstrates pre-sizing before a bulk load.
func Example_reserve() {
	v := dynvec.New[int]()
	v.Reserve(100)

	for i := 0; i < 100; i++ {
		v.PushBack(i)
	}
	fmt.Println(v.Len(), v.Cap(), v.Stats().Grows)

	// Output: 100 100 0
}

// Example_compare demonstrates lexicographic ordering.
func Example_compare() {
	a := dynvec.Of(1, 2, 3)
	b := dynvec.Of(1, 2, 4)

	fmt.Println(dynvec.Compare(a, b) < 0)
	fmt.Println(dynvec.Equal(a, a.Clone()))

	// Output:
	// true
	// true
}
