package boundary

// PointInPolygon reports whether (px, py) lies inside or on the boundary of
// the closed polygon described by edges, using ray casting. It exists only
// as an independent cross-check for tests: the solver itself derives the
// enclosed point count directly from grid coverage, which is exact and far
// cheaper, but has no code path in common with this checker.
func PointInPolygon(px, py float64, edges []Edge) bool {
	for _, e := range edges {
		if onSegment(px, py, e) {
			return true
		}
	}

	inside := false
	for _, e := range edges {
		y1, y2 := e.Y1, e.Y2
		x1, x2 := e.X1, e.X2
		// Half-open on y1 to avoid double-counting a ray that passes
		// exactly through a shared vertex of two edges.
		crosses := (y1 > py) != (y2 > py)
		if !crosses {
			continue
		}
		xCross := x1 + (py-y1)/(y2-y1)*(x2-x1)
		if px < xCross {
			inside = !inside
		}
	}
	return inside
}

func onSegment(px, py float64, e Edge) bool {
	if e.X1 == e.X2 {
		return px == e.X1 && py >= minf(e.Y1, e.Y2) && py <= maxf(e.Y1, e.Y2)
	}
	return py == e.Y1 && px >= minf(e.X1, e.X2) && px <= maxf(e.X1, e.X2)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
