package polyfence

import "math"

// edgeLength returns the length of an axis-aligned edge. One of dx, dy is
// always zero, so no square root is needed.
func edgeLength(x1, y1, x2, y2 float64) float64 {
	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)
	return dx + dy
}

// signedArea2 returns twice the signed area of the polygon described by
// verts (a closed sequence of (x, y) pairs), under the convention that a
// clockwise polygon with a standard y-axis-up frame has negative area.
func signedArea2(verts [][2]float64) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i][0]*verts[j][1] - verts[j][0]*verts[i][1]
	}
	return sum
}
