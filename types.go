package tin

// noHalfedge is the sentinel twin id meaning "boundary edge, no neighbor".
const noHalfedge = -1

// Sampler is the read-only height-grid collaborator the core consumes.
// Implementations need not be safe for concurrent use; a Mesh calls
// HeightAt only from the goroutine that owns it.
type Sampler interface {
	// Width returns the number of samples per row. Must be >= 2.
	Width() int
	// Height returns the number of rows. Must be >= 2.
	Height() int
	// HeightAt returns the sample value at pixel (x,y), 0 <= x < Width(),
	// 0 <= y < Height().
	HeightAt(x, y int) float64
}

// Mesh is the public façade over the half-edge triangle mesh, the
// rasterizer, the error priority queue, and the refinement driver.
//
// A Mesh is not safe for concurrent use; independent Meshes over
// independent inputs may run in parallel.
type Mesh struct {
	sampler Sampler
	width   int
	height  int

	// vertex store: append-only (x,y) pairs, indexed by vertex id.
	coordsX []int32
	coordsY []int32

	// half-edge mesh: triangle id t occupies positions 3t,3t+1,3t+2.
	triangles []int32 // vertex ids
	halfedges []int32 // twin half-edge id, or noHalfedge

	// per-triangle metadata, indexed by triangle id.
	candidateX []int32
	candidateY []int32
	rms        []float64
	queueIndex []int32 // heap position, or -1 if not in the heap

	// priority queue: parallel arrays holding the heap in heap order.
	heapTris []int32
	heapErrs []float64

	// rmsSum is the sum of rms[t] over triangles currently in the heap.
	rmsSum float64

	// pending holds triangle ids created or modified but not yet rasterized.
	pending []int32
}

// NewMesh constructs a Mesh over sampler, lays out the two initial
// triangles spanning the rectangle [0,Width-1]x[0,Height-1], and
// rasterizes them. Returns ErrGridTooSmall if Width or Height < 2.
func NewMesh(sampler Sampler) (*Mesh, error) {
	w, h := sampler.Width(), sampler.Height()
	if w < 2 || h < 2 {
		return nil, ErrGridTooSmall
	}

	maxTriangles := 2 * w * h // generous upper bound on triangle count
	m := &Mesh{
		sampler:    sampler,
		width:      w,
		height:     h,
		coordsX:    make([]int32, 0, w*h),
		coordsY:    make([]int32, 0, w*h),
		triangles:  make([]int32, 0, 3*maxTriangles),
		halfedges:  make([]int32, 0, 3*maxTriangles),
		candidateX: make([]int32, 0, maxTriangles),
		candidateY: make([]int32, 0, maxTriangles),
		rms:        make([]float64, 0, maxTriangles),
		queueIndex: make([]int32, 0, maxTriangles),
		heapTris:   make([]int32, 0, maxTriangles),
		heapErrs:   make([]float64, 0, maxTriangles),
		pending:    make([]int32, 0, 4),
	}

	x1 := int32(w - 1)
	y1 := int32(h - 1)
	p0 := m.addPoint(0, 0)
	p1 := m.addPoint(x1, 0)
	p2 := m.addPoint(0, y1)
	p3 := m.addPoint(x1, y1)

	t0 := m.addTriangle(p3, p0, p2, noHalfedge, noHalfedge, noHalfedge)
	m.addTriangle(p0, p3, p1, t0, noHalfedge, noHalfedge)
	m.flush()

	return m, nil
}

// VertexCount returns the number of vertices created so far.
func (m *Mesh) VertexCount() int { return len(m.coordsX) }

// TriangleCount returns the number of live triangles (including any still
// in the pending set).
func (m *Mesh) TriangleCount() int { return len(m.triangles) / 3 }

// Coords returns a tight array of length 2*VertexCount of interleaved
// (x,y) vertex coordinates.
func (m *Mesh) Coords() []int32 {
	out := make([]int32, 2*len(m.coordsX))
	for i := range m.coordsX {
		out[2*i] = m.coordsX[i]
		out[2*i+1] = m.coordsY[i]
	}
	return out
}

// Triangles returns a flat array of length 3*TriangleCount of vertex ids.
func (m *Mesh) Triangles() []int32 {
	out := make([]int32, len(m.triangles))
	copy(out, m.triangles)
	return out
}

// HeightAt passes through to the underlying Sampler.
func (m *Mesh) HeightAt(x, y int) float64 {
	return m.sampler.HeightAt(x, y)
}

// MaxError returns the current heap-root error: the worst per-triangle
// pixel error among all triangles presently in the queue. It is 0 only
// when no further refinement can reduce the error.
func (m *Mesh) MaxError() float64 {
	if len(m.heapErrs) == 0 {
		return 0
	}
	return m.heapErrs[0]
}

// RMSD returns the root-mean-square deviation of the mesh's plane heights
// from the sample grid, over all grid pixels.
func (m *Mesh) RMSD() float64 {
	return rmsd(m.rmsSum, m.width, m.height)
}
