package stivalg

import "math"

// shortestPath runs Dijkstra from node 0 to node g.end() over g's
// adjacency lists and reconstructs the winning path as world coordinates.
// It returns errNoPath if the end node is unreachable.
//
// Ties in the frontier break by insertion order (nodeQueue's seq
// tie-break, spec.md §4.6), so results are deterministic modulo
// floating-point associativity, as spec.md §5 requires.
func (g *graph) shortestPath() (Path, error) {
	n := g.pool.count()
	start, end := 0, n-1
	if n > 0 {
		g.ensureAdj(n - 1) // guarantee adj has a (possibly empty) slot per node
	}

	times := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range times {
		times[i] = math.Inf(1)
		prev[i] = -1
	}
	times[start] = 0

	q := newNodeQueue()
	q.push(start, 0)

	for !q.empty() {
		item := q.pop()
		u := item.node
		if visited[u] {
			continue // stale entry, already finalized with a better time
		}
		visited[u] = true
		if u == end {
			break
		}

		for _, e := range g.adj[u] {
			if visited[e.to] {
				continue
			}
			t := times[u] + e.weight
			if t < times[e.to] {
				times[e.to] = t
				prev[e.to] = u
				q.push(e.to, t)
			}
		}
	}

	if math.IsInf(times[end], 1) {
		return Path{}, errNoPath
	}

	var reversed []Coord
	for p := end; p != -1; p = prev[p] {
		reversed = append(reversed, g.pool.coord(p))
	}
	points := make([]Coord, len(reversed))
	for i, c := range reversed {
		points[len(reversed)-1-i] = c
	}
	return NewPath(points), nil
}
