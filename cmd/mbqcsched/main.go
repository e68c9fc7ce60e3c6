package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/mbqc-scheduler/mbqcsched"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fs := flag.NewFlagSet("mbqcsched", flag.ContinueOnError)
	search := fs.Bool("s", false, "perform branch-and-bound search instead of the greedy time-optimal pass")
	fs.BoolVar(search, "search", false, "alias of -s")
	timeoutSec := fs.Float64("t", 0, "deadline in seconds; 0 disables the timer")
	fs.Float64Var(timeoutSec, "timeout", 0, "alias of -t")
	nthreads := fs.Uint("n", 1, "worker count; values below 2 run single-threaded")
	fs.UintVar(nthreads, "nthreads", 1, "alias of -n")
	taskBound := fs.Uint("b", mbqcsched.DefaultTaskBound, "cap on root-layer parallel tasks")
	fs.UintVar(taskBound, "task-bound", mbqcsched.DefaultTaskBound, "alias of -b")
	probabilistic := fs.Bool("p", false, "gate each descent through the built-in Heaviside acceptance function")
	fs.BoolVar(probabilistic, "probabilistic", false, "alias of -p")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	rest := fs.Args()
	if len(rest) != 6 {
		fmt.Fprintln(os.Stderr, "usage: mbqcsched [flags] spatial-graph-path spatial-graph-format dependency-graph-path dependency-graph-format output-path output-format")
		return 2
	}
	sgPath, sgFormat, toPath, toFormat, outPath, outFormat := rest[0], rest[1], rest[2], rest[3], rest[4], rest[5]

	n, edges, err := readSpatialGraph(sgPath, sgFormat)
	if err != nil {
		logger.Error("reading spatial graph", "error", err)
		return 1
	}
	layers, err := readTimeOrder(toPath, toFormat)
	if err != nil {
		logger.Error("reading dependency graph", "error", err)
		return 1
	}

	opts := mbqcsched.DefaultOptions()
	opts.DoSearch = *search
	opts.NThreads = int(*nthreads)
	opts.TaskBound = int(*taskBound)
	opts.Probabilistic = *probabilistic
	if *timeoutSec > 0 {
		opts.Timeout = time.Duration(*timeoutSec * float64(time.Second))
	}

	start := time.Now()
	res, err := mbqcsched.Run(n, edges, layers, nil, opts)
	if err != nil {
		logger.Error("search failed", "error", err)
		return 1
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		logger.Error("opening output file", "error", err)
		return 1
	}
	defer outFile.Close()

	if err := writeResult(outFile, outFormat, res); err != nil {
		logger.Error("writing result", "error", err)
		return 1
	}

	logger.Info("search complete",
		"paths_found", len(res.Paths),
		"timed_out", res.TimedOut,
		"elapsed", time.Since(start),
	)

	return 0
}
