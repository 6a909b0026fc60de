package tin

// findCandidate rasterizes triangle t (vertices p0,p1,p2) using incremental
// barycentric edge functions over its integer bounding box, finds the
// pixel of maximum |plane height - grid height|, accumulates squared
// error, records the candidate split point, and enqueues the triangle
// with its computed error.
func (m *Mesh) findCandidate(p0, p1, p2, t int32) {
	p0x, p0y := m.coordsX[p0], m.coordsY[p0]
	p1x, p1y := m.coordsX[p1], m.coordsY[p1]
	p2x, p2y := m.coordsX[p2], m.coordsY[p2]

	minX := min3(p0x, p1x, p2x)
	minY := min3(p0y, p1y, p2y)
	maxX := max3(p0x, p1x, p2x)
	maxY := max3(p0y, p1y, p2y)

	// forward-differencing edge functions, evaluated at (minX, minY)
	w00 := orient(p1x, p1y, p2x, p2y, minX, minY)
	w01 := orient(p2x, p2y, p0x, p0y, minX, minY)
	w02 := orient(p0x, p0y, p1x, p1y, minX, minY)

	a01 := int64(p1y - p0y)
	b01 := int64(p0x - p1x)
	a12 := int64(p2y - p1y)
	b12 := int64(p1x - p2x)
	a20 := int64(p0y - p2y)
	b20 := int64(p2x - p0x)

	// pre-multiplied z values at the vertices; division is safe because a
	// non-degenerate triangle has orient != 0.
	area := float64(orient(p0x, p0y, p1x, p1y, p2x, p2y))
	z0 := m.HeightAt(int(p0x), int(p0y)) / area
	z1 := m.HeightAt(int(p1x), int(p1y)) / area
	z2 := m.HeightAt(int(p2x), int(p2y)) / area

	var maxError, rms float64
	var mx, my int32

	for y := minY; y <= maxY; y++ {
		// advance past the left edge to the first potentially-inside pixel
		var dx int64
		if w00 < 0 && a12 != 0 {
			dx = maxI64(dx, floorDivI64(-w00, a12))
		}
		if w01 < 0 && a20 != 0 {
			dx = maxI64(dx, floorDivI64(-w01, a20))
		}
		if w02 < 0 && a01 != 0 {
			dx = maxI64(dx, floorDivI64(-w02, a01))
		}

		w0 := w00 + a12*dx
		w1 := w01 + a20*dx
		w2 := w02 + a01*dx

		wasInside := false
		for x := minX + int32(dx); x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				wasInside = true

				z := z0*float64(w0) + z1*float64(w1) + z2*float64(w2)
				dz := z - m.HeightAt(int(x), int(y))
				if dz < 0 {
					dz = -dz
				}
				rms += dz * dz
				if dz > maxError {
					maxError = dz
					mx, my = x, y
				}
			} else if wasInside {
				break
			}

			w0 += a12
			w1 += a20
			w2 += a01
		}

		w00 += b12
		w01 += b20
		w02 += b01
	}

	// a max-error pixel that coincides with an existing vertex would
	// re-split at the same point forever; clamp it to zero instead.
	if (mx == p0x && my == p0y) || (mx == p1x && my == p1y) || (mx == p2x && my == p2y) {
		maxError = 0
	}

	m.candidateX[t] = mx
	m.candidateY[t] = my
	m.rms[t] = rms

	m.queuePush(t, maxError, rms)
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// floorDivI64 returns floor(a/b) for integer a,b with b != 0, matching
// Python's "//" semantics (Go's "/" truncates toward zero instead).
func floorDivI64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
