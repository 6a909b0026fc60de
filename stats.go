package tin

import (
	"math"

	"github.com/arl/math32"
)

// rmsd computes sqrt(rmsSum / (width*height)) if rmsSum > 0, else 0.
func rmsd(rmsSum float64, width, height int) float64 {
	if rmsSum <= 0 {
		return 0
	}
	return math.Sqrt(rmsSum / float64(width*height))
}

// ErrorHistogram buckets the per-triangle max error of every triangle
// currently in the error queue into buckets equal-width bins spanning
// [0, MaxError()], and returns the per-bin triangle count. buckets must be
// positive; a non-positive value is clamped to 1.
func (m *Mesh) ErrorHistogram(buckets int) []int {
	if buckets < 1 {
		buckets = 1
	}
	hist := make([]int, buckets)

	top := m.MaxError()
	if top <= 0 {
		hist[0] = len(m.heapTris)
		return hist
	}

	width := top / float64(buckets)
	for i := range m.heapErrs {
		e := m.heapErrs[i]
		bin := int(e / width)
		if bin >= buckets {
			bin = buckets - 1
		}
		hist[bin]++
	}

	return hist
}

// VertexDensity returns the fraction of grid pixels that became mesh
// vertices: VertexCount() / (Width*Height). Uses float32 arithmetic via
// math32, matching the precision the rest of the rendering/export path
// works in.
func (m *Mesh) VertexDensity() float32 {
	total := math32.Max(1, float32(m.width*m.height))
	return math32.Min(1, float32(m.VertexCount())/total)
}
