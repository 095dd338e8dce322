package collections_test

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/hasbyte1/ds-transformer/arr"
	"github.com/hasbyte1/ds-transformer/collections"
)

func ExampleNew() {
	w := collections.New(3, 1, 2, 2).
		Unique().
		SortDesc().
		Map(func(v any) any { return v.(int) * 10 })
	fmt.Println(w.Join(", "))
	// Output: 30, 20, 10
}

func ExampleArrayWrapper_Filter() {
	w := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(v any) bool { return v.(int)%2 == 0 })
	fmt.Println(w)
	// Output: {"1":2,"3":4,"5":6}
}

func ExampleArrayWrapper_Sort() {
	w, err := collections.New(5, 3, 1, 4, 2).Sort(collections.Descending)
	if err != nil {
		panic(err)
	}
	fmt.Println(w)

	_, err = collections.New(1).Sort(2)
	fmt.Println(err)
	// Output:
	// [5,4,3,2,1]
	// collections: invalid argument: Order must be 1 (asc) or -1 (desc): got 2
}

func ExampleArrayWrapper_Slice() {
	fmt.Println(collections.New("a", "b", "c", "d").Slice(1, 2))
	fmt.Println(collections.New("a", "b", "c", "d").Slice(-1))
	// Output:
	// {"1":"b","2":"c"}
	// {"3":"d"}
}

func ExampleArrayWrapper_Chunk() {
	chunks, err := collections.New(1, 2, 3, 4, 5).Chunk(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(chunks)
	// Output: [[1,2],[3,4],[5]]
}

func ExampleArrayWrapper_DiffWithIndexCheck() {
	other := arr.List(1, 3, 2)
	fmt.Println(collections.New(1, 2, 3).DiffWithIndexCheck(other))
	// Output: {"1":2,"2":3}
}

func ExampleArrayWrapper_FlatMerge() {
	w := collections.New(1).FlatMerge(arr.List(arr.List(2, 3), arr.List(4)))
	fmt.Println(w)
	// Output: [1,2,3,4]
}

func ExampleArrayWrapper_Implode() {
	w := collections.New(1, 2, 3).Map(func(v any) any { return strconv.Itoa(v.(int) * v.(int)) })
	fmt.Println(w.Implode(", "))
	// Output: 1, 4, 9
}

func ExampleArrayWrapper_Reduce() {
	sum := collections.New(1, 2, 3, 4, 5).
		Reduce(func(carry, item any) any { return carry.(int) + item.(int) }, 0)
	fmt.Println(sum)
	// Output: 15
}

func ExampleArrayWrapper_When() {
	w := collections.New(1, 2, 3).
		When(true, func(w *collections.ArrayWrapper) { w.Push(4) }).
		Unless(true, func(w *collections.ArrayWrapper) { w.Push(5) })
	fmt.Println(w.Count())
	// Output: 4
}

func ExampleArrayWrapper_FilterExpr() {
	w, err := collections.New(1, 2, 3, 4).FilterExpr("value > 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(w)
	// Output: {"2":3,"3":4}
}

func ExampleArrayWrapper_Macro() {
	defer collections.FlushMacros()
	collections.RegisterMacro("double", func(w *collections.ArrayWrapper, _ ...any) any {
		return w.Map(func(v any) any { return v.(int) * 2 })
	})

	out, err := collections.New(1, 2).Macro("double")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [2,4]
}

func ExamplePrintR() {
	color.NoColor = true
	fmt.Print(collections.PrintR(arr.List("a", arr.List("b"))))
	// Output:
	// Array
	// (
	//     [0] => a
	//     [1] => Array
	//         (
	//             [0] => b
	//         )
	//
	// )
}
