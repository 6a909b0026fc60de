package tin

// orient returns twice the signed area of triangle (a,b,c): positive iff
// (a,b,c) is counterclockwise in pixel coordinates (y grows downward, so
// (0,0),(0,1),(1,0) is positive), zero iff the three points are collinear.
//
// Inputs are integer pixel coordinates; the product is computed in 64-bit
// signed arithmetic, which is exact for the grid sizes this package targets
// (width, height up to roughly 2^20).
func orient(ax, ay, bx, by, cx, cy int32) int64 {
	return int64(bx-cx)*int64(ay-cy) - int64(by-cy)*int64(ax-cx)
}

// inCircle reports whether p lies strictly inside the circumcircle of the
// counterclockwise triangle (a,b,c). It is computed as the sign of the
// standard 3x3 determinant of squared-distance rows relative to p; the
// strict "< 0" case is treated as "inside" and used to decide edge flips.
func inCircle(ax, ay, bx, by, cx, cy, px, py int32) bool {
	dx := int64(ax - px)
	dy := int64(ay - py)
	ex := int64(bx - px)
	ey := int64(by - py)
	fx := int64(cx - px)
	fy := int64(cy - py)

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	det := dx*(ey*cp-bp*fy) - dy*(ex*cp-bp*fx) + ap*(ex*fy-ey*fx)

	return det < 0
}

// InCircle exports the exact integer in-circle predicate for callers
// outside the package that need to cross-check it against an approximate
// one, such as tinmesh's verify subcommand. The core never calls this
// exported form; it calls inCircle directly.
func InCircle(ax, ay, bx, by, cx, cy, px, py int32) bool {
	return inCircle(ax, ay, bx, by, cx, cy, px, py)
}
