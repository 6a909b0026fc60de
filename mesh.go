package tin

// addPoint appends (x,y) to the coordinate arrays and returns the new
// vertex id. Vertex ids are dense, assigned in creation order.
func (m *Mesh) addPoint(x, y int32) int32 {
	id := int32(len(m.coordsX))
	m.coordsX = append(m.coordsX, x)
	m.coordsY = append(m.coordsY, y)
	return id
}

// addTriangle appends a new triangle (a,b,c) with the given twin half-edge
// ids (noHalfedge for a boundary edge), links any non-boundary twins back,
// initializes the triangle's metadata slot, and queues it in pending.
// Returns the id of the triangle's first half-edge.
func (m *Mesh) addTriangle(a, b, c, ab, bc, ca int32) int32 {
	e := int32(len(m.triangles))
	m.triangles = append(m.triangles, a, b, c)
	m.halfedges = append(m.halfedges, ab, bc, ca)
	m.candidateX = append(m.candidateX, 0)
	m.candidateY = append(m.candidateY, 0)
	m.rms = append(m.rms, 0)
	m.queueIndex = append(m.queueIndex, -1)

	m.linkTwins(e, ab, bc, ca)
	m.pendingAdd(e / 3)

	return e
}

// updateTriangle overwrites the triangle occupying first half-edge e in
// place: its vertices, twins, and metadata are reset as if newly created,
// but its id (e/3) is preserved. e must be a multiple of 3 addressing an
// existing triangle. This is how splits recycle the id of the triangle
// being split, so in-flight references (pending entries, legalize calls)
// keep pointing at the right slot.
func (m *Mesh) updateTriangle(e, a, b, c, ab, bc, ca int32) int32 {
	m.triangles[e+0] = a
	m.triangles[e+1] = b
	m.triangles[e+2] = c
	m.halfedges[e+0] = ab
	m.halfedges[e+1] = bc
	m.halfedges[e+2] = ca

	t := e / 3
	m.candidateX[t] = 0
	m.candidateY[t] = 0
	m.rms[t] = 0
	m.queueIndex[t] = -1

	m.linkTwins(e, ab, bc, ca)
	m.pendingAdd(t)

	return e
}

// linkTwins writes the reverse twin links for the triangle starting at
// half-edge e: for each non-boundary id among ab, bc, ca, the neighbor's
// twin slot is pointed back at the corresponding edge of e.
func (m *Mesh) linkTwins(e, ab, bc, ca int32) {
	if ab >= 0 {
		m.halfedges[ab] = e + 0
	}
	if bc >= 0 {
		m.halfedges[bc] = e + 1
	}
	if ca >= 0 {
		m.halfedges[ca] = e + 2
	}
}

// legalize examines half-edge a's twin b. If the quadrilateral formed by
// the two adjacent triangles fails the Delaunay in-circle test, the shared
// edge is flipped: both triangles are rebuilt in place (their ids
// preserved), removed from the error queue (they are re-rasterized via
// pending), and the two newly exposed outer edges are legalized
// recursively.
//
// Recursion depth is bounded by the Delaunay-flip termination argument and
// stays small in practice, but pathological inputs can drive it deep; a
// host that disallows deep call stacks should convert this to an explicit
// stack of half-edge ids.
func (m *Mesh) legalize(a int32) {
	b := m.halfedges[a]
	if b < 0 {
		return
	}

	a0 := a - a%3
	b0 := b - b%3
	al := a0 + (a+1)%3
	ar := a0 + (a+2)%3
	bl := b0 + (b+2)%3
	br := b0 + (b+1)%3

	p0 := m.triangles[ar]
	pr := m.triangles[a]
	pl := m.triangles[al]
	p1 := m.triangles[bl]

	if !inCircle(
		m.coordsX[p0], m.coordsY[p0],
		m.coordsX[pr], m.coordsY[pr],
		m.coordsX[pl], m.coordsY[pl],
		m.coordsX[p1], m.coordsY[p1],
	) {
		return
	}

	hal := m.halfedges[al]
	har := m.halfedges[ar]
	hbl := m.halfedges[bl]
	hbr := m.halfedges[br]

	m.queueRemove(a0 / 3)
	m.queueRemove(b0 / 3)

	t0 := m.updateTriangle(a0, p0, p1, pl, noHalfedge, hbl, hal)
	t1 := m.updateTriangle(b0, p1, p0, pr, t0, har, hbr)

	m.legalize(t0 + 1)
	m.legalize(t1 + 2)
}
