package stivalg

import "math"

// edge is a directed, weighted connection from one node to another. The
// reference implementation bounds each node's out-degree to a fixed array
// of 10; spec.md §4.6/§9 says this bound "is not exceeded under the
// connection rules" and that implementers may use dynamic lists without
// truncating, so adjacency here is a plain growable slice.
type edge struct {
	to     int
	weight float64
}

// graph is an implicit, directed, weighted multigraph built for exactly
// one endpoint pair (a,b), per spec.md §3/§4.5. It is owned exclusively by
// the planner for the duration of one pass and then discarded.
type graph struct {
	a, b         Coord
	o            Coord
	f1, f2       Coord
	major, minor float64
	barriers     []Barrier

	pool *nodePool
	adj  [][]edge

	endA, endB int // dense indices of the two endpoint anchor nodes
}

func newGraph(a, b Coord, barriers []Barrier, coveringLength, coveringWidth float64) *graph {
	o := a.Mid(b)
	r := a.Sub(o).Len()
	major := r * coveringLength
	minor := r * coveringWidth

	var f1, f2 Coord
	if major > 0 {
		f := math.Sqrt(math.Max(major*major-minor*minor, 0))
		f1 = a.Sub(o).Scale(f / major).Add(o)
		f2 = b.Sub(o).Scale(f / major).Add(o)
	} else {
		f1, f2 = o, o
	}

	return &graph{
		a: a, b: b, o: o, f1: f1, f2: f2,
		major: major, minor: minor,
		barriers: barriers,
		pool:     newNodePool(),
	}
}

// ensureAdj grows g.adj to cover node index i.
func (g *graph) ensureAdj(i int) {
	for len(g.adj) <= i {
		g.adj = append(g.adj, nil)
	}
}

// addEdge appends a directed edge. Called only by connect.
func (g *graph) addEdge(from, to int, weight float64) {
	g.ensureAdj(from)
	g.adj[from] = append(g.adj[from], edge{to: to, weight: weight})
}

func (g *graph) numNodes() int { return g.pool.count() }

func (g *graph) numEdges() int {
	n := 0
	for _, es := range g.adj {
		n += len(es)
	}
	return n
}

func (g *graph) crossesBarrier(c1, c2 Coord) bool {
	for _, b := range g.barriers {
		if b.IsCrossing(c1, c2) {
			return true
		}
	}
	return false
}

// candidate is a node index paired with its world coordinate, or the
// zero value with ok=false when a lattice cell failed the ellipse
// admissibility test (spec.md §4.5).
type candidate struct {
	idx int
	c   Coord
	ok  bool
}

// connect evaluates both directions of the segment between two
// candidates and adds one directed edge per finite, barrier-free result,
// per spec.md §4.5's connect(c1,c2,atlas) algorithm.
func (g *graph) connect(c1, c2 candidate, atlas Atlas) {
	if !c1.ok || !c2.ok {
		return
	}
	if g.crossesBarrier(c1.c, c2.c) {
		return
	}
	if t, err := (Segment{c1.c, c2.c}).Time(atlas); err == nil {
		g.addEdge(c1.idx, c2.idx, t)
	}
	if t, err := (Segment{c2.c, c1.c}).Time(atlas); err == nil {
		g.addEdge(c2.idx, c1.idx, t)
	}
}

// insideEllipse reports whether c lies within the admissibility region:
// the ellipse with focal points f1,f2 and major axis length g.major.
func (g *graph) insideEllipse(c Coord) bool {
	return c.Dist(g.f1)+c.Dist(g.f2) <= 2*g.major
}

// insertGridCandidate interns the lattice cell (x,y) centered on center
// with cell size gs and side length gSide (cells per axis), optionally
// rejecting cells outside the covering ellipse.
func (g *graph) insertGridCandidate(gs float64, gSide int, x, y int, checkEllipse bool) candidate {
	half := float64((gSide - 1) / 2)
	c := Coord{
		E: float64(x)*gs + g.o.E - half*gs,
		N: float64(y)*gs + g.o.N - half*gs,
	}
	if checkEllipse && !g.insideEllipse(c) {
		return candidate{}
	}
	idx := g.pool.internGrid(x, y, c)
	return candidate{idx: idx, c: c, ok: true}
}

// gridUnitsFor returns the (x,y) lattice coordinates of c under grid size
// gs and axis cell count gSide, inverting insertGridCandidate.
func (g *graph) gridUnitsFor(c Coord, gs float64, gSide int) (int, int) {
	half := float64((gSide - 1) / 2)
	x := int(math.Floor((c.E-g.o.E)/gs + half))
	y := int(math.Floor((c.N-g.o.N)/gs + half))
	return x, y
}

// connectEndpoint attaches endpoint anchor c (already interned with its
// own bypassing index) to the four corners of its containing unit cell,
// with the ellipse check disabled, per spec.md §4.5.
func (g *graph) connectEndpoint(anchor candidate, gs float64, gSide int, atlas Atlas) {
	x, y := g.gridUnitsFor(anchor.c, gs, gSide)
	corners := [4]candidate{
		g.insertGridCandidate(gs, gSide, x, y, false),
		g.insertGridCandidate(gs, gSide, x+1, y, false),
		g.insertGridCandidate(gs, gSide, x, y+1, false),
		g.insertGridCandidate(gs, gSide, x+1, y+1, false),
	}
	for _, c := range corners {
		g.connect(anchor, c, atlas)
	}
}

// buildCoarse builds the pass-1 lattice graph: a triangulated square grid
// of side gs spanning the covering ellipse, per spec.md §4.5.
func (g *graph) buildCoarse(gs float64, atlas Atlas) {
	gSide := 2*int(g.major/gs) + 1

	anchorA := candidate{idx: g.pool.addEndpoint(g.a), c: g.a, ok: true}
	g.endA = anchorA.idx

	for x := 0; x < gSide; x++ {
		for y := 0; y < gSide; y++ {
			c1 := g.insertGridCandidate(gs, gSide, x, y, true)
			c2 := g.insertGridCandidate(gs, gSide, x+1, y, true)
			c3 := g.insertGridCandidate(gs, gSide, x, y+1, true)
			c4 := g.insertGridCandidate(gs, gSide, x+1, y+1, true)

			g.connect(c1, c2, atlas)
			g.connect(c1, c3, atlas)
			g.connect(c1, c4, atlas)
			g.connect(c2, c3, atlas)
		}
	}

	g.connectEndpoint(anchorA, gs, gSide, atlas)

	// Intern the corners of b's cell before b itself, so that the end
	// anchor is the last node, the one shortestPath searches for.
	bx, by := g.gridUnitsFor(g.b, gs, gSide)
	for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		g.insertGridCandidate(gs, gSide, bx+d[0], by+d[1], false)
	}
	anchorB := candidate{idx: g.pool.addEndpoint(g.b), c: g.b, ok: true}
	g.endB = anchorB.idx
	g.connectEndpoint(anchorB, gs, gSide, atlas)
}

// addFineNode interns the lattice cell (x,y) at fine resolution gs,
// connecting it to any of its 8 already-interned neighbours, per spec.md
// §4.5's fine corridor build rule. It is a no-op if the cell already
// exists.
func (g *graph) addFineNode(gs float64, gSide int, x, y int, atlas Atlas) {
	if g.pool.hasGrid(x, y) {
		return
	}
	c := g.insertGridCandidate(gs, gSide, x, y, false)

	neighbours := [8][2]int{
		{x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1},
		{x - 1, y}, {x + 1, y},
		{x - 1, y + 1}, {x, y + 1}, {x + 1, y + 1},
	}
	for _, n := range neighbours {
		if !g.pool.hasGrid(n[0], n[1]) {
			continue
		}
		cn := g.insertGridCandidate(gs, gSide, n[0], n[1], false)
		g.connect(c, cn, atlas)
	}
}

// buildFineCorridor builds the pass-2 lattice graph by dragging a square
// perimeter of side ss (in fine cells) along each leg of the coarse path
// coarsePath, per spec.md §4.5. ss is params.PathWidthPass2 expressed in
// fine cells and used as the full side of the dragged square (see
// corridorHalfWidth; spec.md §9 leaves this an implementer's choice; tests
// do not depend on it being active, so the default params.PathWidthPass2
// yields ss=1, matching the reference).
func (g *graph) buildFineCorridor(coarsePath Path, gs float64, ss int, atlas Atlas) {
	if ss < 1 {
		ss = 1
	}
	gSide := 2*int(g.major/gs) + 1

	anchorA := candidate{idx: g.pool.addEndpoint(g.a), c: g.a, ok: true}
	g.endA = anchorA.idx

	points := coarsePath.Points()
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := g.gridUnitsFor(points[i], gs, gSide)
		x1, y1 := g.gridUnitsFor(points[i+1], gs, gSide)

		clen := maxInt(absInt(x1-x0), absInt(y1-y0))
		if clen == 0 {
			continue
		}

		for step := 0; step <= clen; step++ {
			var xn, yn int
			if x1 > x0 {
				xn = (x1-x0)*step/clen + x0 - ss/2
			} else {
				xn = x0 - (x0-x1)*step/clen - ss/2
			}
			if y1 > y0 {
				yn = (y1-y0)*step/clen + y0 - ss/2
			} else {
				yn = y0 - (y0-y1)*step/clen - ss/2
			}

			for k := 0; k < ss; k++ {
				g.addFineNode(gs, gSide, xn+k, yn, atlas)
				g.addFineNode(gs, gSide, xn+k+1, yn+ss, atlas)
				g.addFineNode(gs, gSide, xn, yn+k+1, atlas)
				g.addFineNode(gs, gSide, xn+ss, yn+k, atlas)
			}
		}
	}

	g.connectEndpoint(anchorA, gs, gSide, atlas)

	// As in buildCoarse: b's cell corners first, so b is the last node.
	bx, by := g.gridUnitsFor(g.b, gs, gSide)
	for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		g.insertGridCandidate(gs, gSide, bx+d[0], by+d[1], false)
	}
	anchorB := candidate{idx: g.pool.addEndpoint(g.b), c: g.b, ok: true}
	g.endB = anchorB.idx
	g.connectEndpoint(anchorB, gs, gSide, atlas)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
