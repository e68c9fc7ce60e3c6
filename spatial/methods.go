package spatial

// New builds a Graph over N nodes from an undirected edge list whose
// endpoints are int indices in [0, N): an edge (u,v) makes v a neighbor of
// u and u a neighbor of v, and repeated edges are deduplicated.
// All nodes start Uninitialized with current = peak = 0.
func New(n int, edges [][2]int) (*Graph, error) {
	neighbors := make([]map[int32]struct{}, n)
	for i := range neighbors {
		neighbors[i] = make(map[int32]struct{})
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrMissingInput
		}
		neighbors[u][int32(v)] = struct{}{}
		neighbors[v][int32(u)] = struct{}{}
	}

	adjacency := make([][]int32, n)
	for i, set := range neighbors {
		row := make([]int32, 0, len(set))
		for nb := range set {
			row = append(row, nb)
		}
		sortInt32s(row)
		adjacency[i] = row
	}

	return &Graph{
		adjacency: adjacency,
		status:    make([]Status, n),
	}, nil
}

// sortInt32s is a small insertion sort; adjacency rows are tiny in practice
// (bounded by graph degree), so this avoids pulling in sort for one call site.
func sortInt32s(a []int32) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.status) }

// Current returns the count of currently Live nodes.
func (g *Graph) Current() int { return g.current }

// Peak returns the running maximum of Current ever observed.
func (g *Graph) Peak() int { return g.peak }

// StatusOf returns the status of node i.
func (g *Graph) StatusOf(i int) Status { return g.status[i] }

// Neighbors returns the read-only neighbor list of node i. The caller must
// not mutate the returned slice; it is shared by every clone of g.
func (g *Graph) Neighbors(i int) []int32 { return g.adjacency[i] }

// Clone returns a deep copy of the mutable state (status, current, peak)
// sharing the same immutable adjacency slice. O(N).
func (g *Graph) Clone() *Graph {
	status := make([]Status, len(g.status))
	copy(status, g.status)

	return &Graph{
		adjacency: g.adjacency,
		status:    status,
		current:   g.current,
		peak:      g.peak,
	}
}

// Focus validates S against the current state and, on success, returns a
// clone with S applied — the parent is left untouched and stays usable for
// backtracking. The scheduler's own descents go through FocusUnchecked.
func (g *Graph) Focus(s []int32) (*Graph, error) {
	if err := g.validateFocus(s); err != nil {
		return nil, err
	}
	child := g.Clone()
	child.applyFocus(s)

	return child, nil
}

// FocusInPlace validates S and, on success, mutates g directly without
// cloning, for a caller that never needs to backtrack.
func (g *Graph) FocusInPlace(s []int32) error {
	if err := g.validateFocus(s); err != nil {
		return err
	}
	g.applyFocus(s)

	return nil
}

// FocusUnchecked applies S without validation and returns a clone. The
// caller must have already verified S through TimeOrder; this is the fast
// path used by the scheduler on every search-tree descent.
func (g *Graph) FocusUnchecked(s []int32) *Graph {
	child := g.Clone()
	child.applyFocus(s)

	return child
}

func (g *Graph) validateFocus(s []int32) error {
	for _, node := range s {
		if int(node) < 0 || int(node) >= len(g.status) {
			return ErrMissingInput
		}
		if g.status[node] == Measured {
			return ErrAlreadyMeasured
		}
	}

	return nil
}

// applyFocus brings Live every node that is "first mentioned" by this step:
// a node of s itself, if still Uninitialized, and every Uninitialized
// neighbor of a node in s. A node about to be measured must first be
// entangled with its neighbors, so it occupies memory for the instant of
// the focus even if it was never live before — peak is sampled after this
// entanglement but before s is retired. Only then are the nodes of s
// removed from the live count and marked Measured.
func (g *Graph) applyFocus(s []int32) {
	for _, node := range s {
		if g.status[node] == Uninitialized {
			g.status[node] = Live
			g.current++
		}
		for _, nb := range g.adjacency[node] {
			if g.status[nb] == Uninitialized {
				g.status[nb] = Live
				g.current++
			}
		}
	}
	if g.current > g.peak {
		g.peak = g.current
	}
	for _, node := range s {
		g.current--
		g.status[node] = Measured
	}
}
