// Package mbqcscheduler is a branch-and-bound scheduler for
// measurement-based quantum computation: given a spatial entanglement
// graph and a partial order over measurements, it finds the time-optimal
// schedule or the full time/space Pareto frontier.
//
// What it does
//
//	A coupled time/space search over two views of the same computation:
//
//	  • SpatialGraph — which qubits are live, and the peak live count
//	  • TimeOrder    — which measurements are unblocked at each step
//
//	A depth-first Sweep over legal next-measurement subsets, pruned against
//	a running Pareto frontier (BestMemoryPerTime), optionally gated by a
//	probabilistic acceptance function, optionally split across a worker
//	pool sharing one frontier under mutual exclusion.
//
// Package layout:
//
//	timer/         — cooperative deadline shared by every search driver
//	spatial/       — SpatialGraph: live-qubit tracking and peak memory
//	timeorder/     — TimeOrder + Partitioner: the measurement partial order
//	scheduler/     — Scheduler + Sweep: the search tree and its walker
//	probabilistic/ — Accept function family + seeded RNG
//	search/        — SearchDriver (deterministic and probabilistic), Pareto filter
//	parallel/      — worker-pool search sharing one frontier
//	mbqcsched/     — the library facade external callers import (Run)
//	cmd/mbqcsched/ — a thin CLI wrapper exercising the library surface
//
// See mbqcsched.Run for the single entry point most callers need.
package mbqcscheduler
