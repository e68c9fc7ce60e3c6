// Benchmarks the deterministic branch-and-bound driver on a fixed-size
// ring graph, grounded on tsp/bench_test.go's policy: pre-build inputs
// outside the timer, measure only the algorithmic core, no flaky time
// limits.
package search_test

import (
	"testing"

	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/search"
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

// ringScheduler builds an n-node cycle (edges i-(i+1 mod n)) with a strict
// linear TimeOrder (node i depends on node i-1), matching the chain shape
// that exercises the full branch-and-bound loop without finishing in one
// step.
func ringScheduler(n int) (*scheduler.Scheduler, error) {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	layers := make(timeorder.Layers, n)
	layers[0] = []timeorder.NodePreds{{Node: 0}}
	for i := 1; i < n; i++ {
		layers[i] = []timeorder.NodePreds{{Node: i, Predecessors: []int{i - 1}}}
	}

	sg, err := spatial.New(n, edges)
	if err != nil {
		return nil, err
	}
	to, err := timeorder.New(n, layers, nil)
	if err != nil {
		return nil, err
	}

	return scheduler.New(to, sg), nil
}

func BenchmarkDriver_Run_Chain12(b *testing.B) {
	const n = 12
	root, err := ringScheduler(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := search.NewDeterministic(n, nil)
		if err := d.Run(root, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterPareto_Chain12(b *testing.B) {
	const n = 12
	root, err := ringScheduler(n)
	if err != nil {
		b.Fatal(err)
	}
	d := search.NewDeterministic(n, nil)
	if err := d.Run(root, nil); err != nil {
		b.Fatal(err)
	}
	results := d.Results()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.FilterPareto(results, n)
	}
}
