package categorizer_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/categorizer"
)

func Example() {
	ix := categorizer.New[string, string]()
	ix.Add("apple", "fruit", "red")
	ix.Add("banana", "fruit", "yellow")

	both, _ := ix.LookupAnd("fruit", "red")
	fmt.Println(both)

	either, _ := ix.LookupOr("red", "yellow")
	slices.Sort(either)
	fmt.Println(either)

	_ = ix.Remove("apple")
	fruit, _ := ix.LookupAnd("fruit")
	fmt.Println(fruit, ix.ContainsCategory("red"))

	_, err := ix.LookupOr("blue")
	fmt.Println(errors.Is(err, categorizer.ErrUnknownCategory))

	// Output:
	// [apple]
	// [apple banana]
	// [banana] true
	// true
}

func ExampleAutoCategorizer() {
	ac := categorizer.NewAuto[string, string]()
	ac.AddCaseFunc(func(s string) bool { return len(s) > 5 }, "long")

	ac.Add("strawberry")
	ac.Add("fig", "fruit")

	cats, _ := ac.Categories("strawberry")
	fmt.Println(cats)

	cats, _ = ac.Categories("fig")
	fmt.Println(cats)

	// Output:
	// [long]
	// [fruit]
}
