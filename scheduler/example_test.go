package scheduler_test

import (
	"fmt"

	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

func ExampleSweep() {
	sg, _ := spatial.New(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	to, _ := timeorder.New(3, timeorder.Layers{
		{{Node: 0, Predecessors: nil}, {Node: 1, Predecessors: nil}, {Node: 2, Predecessors: nil}},
	}, nil)
	sw := scheduler.NewSweep(scheduler.New(to, sg))

	for {
		ev, more, err := sw.Next()
		if err != nil {
			panic(err)
		}
		if !more {
			break
		}
		if ev.Kind == scheduler.Backward && ev.IsLeaf {
			fmt.Println(ev.LeafPeak)
		}
	}
	// Output:
	// 3
	// 3
	// 3
	// 3
	// 3
	// 3
	// 3
}
