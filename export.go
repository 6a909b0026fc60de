package tin

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// WriteOBJ writes m's current mesh as a flat Wavefront OBJ: one "v x y z"
// line per vertex (height sampled from the Sampler as Z) followed by one
// "f" line per triangle (1-based, as OBJ requires). Named out of the core
// scope by spec.md, included here because a mesh simplifier needs some
// serializer to be usable end to end.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	coords := m.Coords()
	n := len(coords) / 2
	verts := make([]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		x, y := coords[2*i], coords[2*i+1]
		z := m.HeightAt(int(x), int(y))
		verts[i] = mgl32.Vec3{float32(x), float32(y), float32(z)}
	}

	for _, v := range verts {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}

	tris := m.Triangles()
	for i := 0; i < len(tris); i += 3 {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", tris[i]+1, tris[i+1]+1, tris[i+2]+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FloatInCircle is a floating-point cross-check of the integer inCircle
// predicate, built the same way Mischanix-loopblinn/cdt checks its own
// circumcircle condition: the sign of a 4x4 determinant of
// (x, y, x^2+y^2, 1) rows. tinmesh's "verify" subcommand uses it to flag
// any triangle where the exact integer predicate and a floating
// approximation disagree near the tolerance boundary; the core mesh never
// calls this, and it should not be used to drive flips.
func FloatInCircle(ax, ay, bx, by, cx, cy, px, py float32) bool {
	m := mgl32.Mat4{
		ax, ay, ax*ax + ay*ay, 1,
		bx, by, bx*bx + by*by, 1,
		cx, cy, cx*cx + cy*cy, 1,
		px, py, px*px + py*py, 1,
	}
	return m.Det() < 0
}
