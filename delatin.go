package tin

// flush rasterizes and queues every triangle added or modified since the
// last flush. After flush returns, pending is empty and the heap contains
// every live triangle.
func (m *Mesh) flush() {
	for _, t := range m.pending {
		e := 3 * t
		a, b, c := m.triangles[e], m.triangles[e+1], m.triangles[e+2]
		m.findCandidate(a, b, c, t)
	}
	m.pending = m.pending[:0]
}

// step pops the worst triangle from the queue and splits it at its
// candidate point: into three triangles in the generic (strictly
// interior) case, or via handleCollinear when the candidate lies exactly
// on one of the triangle's edges.
func (m *Mesh) step() {
	t := m.queuePop()

	e0 := 3 * t
	e1 := e0 + 1
	e2 := e0 + 2

	p0 := m.triangles[e0]
	p1 := m.triangles[e1]
	p2 := m.triangles[e2]

	ax, ay := m.coordsX[p0], m.coordsY[p0]
	bx, by := m.coordsX[p1], m.coordsY[p1]
	cx, cy := m.coordsX[p2], m.coordsY[p2]
	px, py := m.candidateX[t], m.candidateY[t]

	pn := m.addPoint(px, py)

	switch {
	case orient(ax, ay, bx, by, px, py) == 0:
		m.handleCollinear(pn, e0)
	case orient(bx, by, cx, cy, px, py) == 0:
		m.handleCollinear(pn, e1)
	case orient(cx, cy, ax, ay, px, py) == 0:
		m.handleCollinear(pn, e2)
	default:
		h0 := m.halfedges[e0]
		h1 := m.halfedges[e1]
		h2 := m.halfedges[e2]

		t0 := m.updateTriangle(e0, p0, p1, pn, h0, noHalfedge, noHalfedge)
		t1 := m.addTriangle(p1, p2, pn, h1, noHalfedge, t0+1)
		t2 := m.addTriangle(p2, p0, pn, h2, t0+2, t1+1)

		m.legalize(t0)
		m.legalize(t1)
		m.legalize(t2)
	}
}

// handleCollinear splits the mesh around a new vertex pn that lies exactly
// on half-edge a of its triangle, rather than strictly inside it. If a's
// twin is a boundary edge, the triangle fans into two; otherwise the
// opposing triangle is pulled in too and both fan into four around pn.
func (m *Mesh) handleCollinear(pn, a int32) {
	a0 := a - a%3
	al := a0 + (a+1)%3
	ar := a0 + (a+2)%3

	p0 := m.triangles[ar]
	pr := m.triangles[a]
	pl := m.triangles[al]
	hal := m.halfedges[al]
	har := m.halfedges[ar]

	b := m.halfedges[a]

	if b < 0 {
		t0 := m.updateTriangle(a0, pn, p0, pr, noHalfedge, har, noHalfedge)
		t1 := m.addTriangle(p0, pn, pl, t0, noHalfedge, hal)

		m.legalize(t0 + 1)
		m.legalize(t1 + 2)

		return
	}

	b0 := b - b%3
	bl := b0 + (b+2)%3
	br := b0 + (b+1)%3

	p1 := m.triangles[bl]
	hbl := m.halfedges[bl]
	hbr := m.halfedges[br]

	m.queueRemove(b0 / 3)

	t0 := m.updateTriangle(a0, p0, pr, pn, har, noHalfedge, noHalfedge)
	t1 := m.updateTriangle(b0, pr, p1, pn, hbr, noHalfedge, t0+1)
	t2 := m.addTriangle(p1, pl, pn, hbl, noHalfedge, t1+1)
	t3 := m.addTriangle(pl, p0, pn, hal, t0+2, t2+1)

	m.legalize(t0)
	m.legalize(t1)
	m.legalize(t2)
	m.legalize(t3)
}

// Refine performs exactly one split followed by a flush.
func (m *Mesh) Refine() {
	m.step()
	m.flush()
}

// Run advances refinement until MaxError() <= maxError. maxError must be
// non-negative.
func (m *Mesh) Run(maxError float64) error {
	if maxError < 0 {
		return ErrNegativeMaxError
	}
	for m.MaxError() > maxError {
		m.Refine()
	}

	return nil
}
