package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mbqc-scheduler/mbqcsched"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

// ErrUnsupportedFormat is returned for any format tag other than "text".
// spec.md's Non-goals exclude the multi-format container; this CLI exists
// only to exercise the library surface, not to reimplement that collaborator.
var ErrUnsupportedFormat = errors.New("mbqcsched: only the \"text\" format tag is supported by this demonstration CLI")

// readSpatialGraph reads the minimal text format: a first line with N,
// followed by one "u v" edge per line.
func readSpatialGraph(path, format string) (n int, edges [][2]int, err error) {
	if format != "text" {
		return 0, nil, ErrUnsupportedFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("mbqcsched: empty spatial-graph file %q", path)
	}
	n, err = strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, nil, fmt.Errorf("mbqcsched: parsing node count: %w", err)
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, nil, fmt.Errorf("mbqcsched: malformed edge line %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, err
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, err
		}
		edges = append(edges, [2]int{u, v})
	}

	return n, edges, sc.Err()
}

// readTimeOrder reads the minimal text format: one line per layer, entries
// within a layer separated by spaces, each entry either "node" (no
// predecessors) or "node:p1,p2,..." (explicit predecessors).
func readTimeOrder(path, format string) (timeorder.Layers, error) {
	if format != "text" {
		return nil, ErrUnsupportedFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var layers timeorder.Layers
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var layer []timeorder.NodePreds
		for _, entry := range strings.Fields(line) {
			node, preds, err := parseNodeEntry(entry)
			if err != nil {
				return nil, err
			}
			layer = append(layer, timeorder.NodePreds{Node: node, Predecessors: preds})
		}
		layers = append(layers, layer)
	}

	return layers, sc.Err()
}

func parseNodeEntry(entry string) (node int, preds []int, err error) {
	parts := strings.SplitN(entry, ":", 2)
	node, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, nil, err
	}
	if len(parts) == 1 || parts[1] == "" {
		return node, nil, nil
	}
	for _, p := range strings.Split(parts[1], ",") {
		pv, err := strconv.Atoi(p)
		if err != nil {
			return 0, nil, err
		}
		preds = append(preds, pv)
	}

	return node, preds, nil
}

// writeResult writes one "time space steps" line per Path, steps rendered
// as semicolon-separated, comma-separated node lists.
func writeResult(w io.Writer, format string, res mbqcsched.Result) error {
	if format != "text" {
		return ErrUnsupportedFormat
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for _, p := range res.Paths {
		stepStrs := make([]string, len(p.Steps))
		for i, step := range p.Steps {
			nodeStrs := make([]string, len(step))
			for j, node := range step {
				nodeStrs[j] = strconv.Itoa(int(node))
			}
			stepStrs[i] = strings.Join(nodeStrs, ",")
		}
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", p.Time, p.Space, strings.Join(stepStrs, ";")); err != nil {
			return err
		}
	}

	return nil
}
