package timeorder_test

import (
	"fmt"

	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

func ExampleTimeOrder_FocusInPlace() {
	layers := timeorder.Layers{
		{{Node: 0, Predecessors: nil}},
		{{Node: 1, Predecessors: []int{0}}},
		{{Node: 2, Predecessors: []int{1}}},
	}
	to, err := timeorder.New(3, layers, nil)
	if err != nil {
		panic(err)
	}

	for _, step := range [][]int32{{0}, {1}, {2}} {
		if err := to.FocusInPlace(step); err != nil {
			panic(err)
		}
	}

	fmt.Println(to.AtLeaf())
	// Output: true
}
