// Package polyfence computes a low-cost, simply-connected, axis-aligned
// rectilinear polygon enclosing at least K of N weighted points.
//
// The solver's entry point is Solve, which sweeps grid
// discretizations of the input plane, grows and anneals candidate regions on
// each grid, and extracts the cheapest valid region's boundary.
package polyfence

// Point is a weighted building in the plane.
//
// Coordinates are expected to be non-negative. Weight may be negative, zero
// or positive; enclosing a negatively-weighted point reduces the cost of a
// region, trading off against the perimeter needed to reach it.
type Point struct {
	X, Y float64
	W    float64
}

// Edge is a clockwise-oriented axis-aligned boundary segment, in world
// coordinates.
type Edge struct {
	X1, Y1, X2, Y2 float64
}

// Solution is the best region the solver found.
type Solution struct {
	Cost     float64
	Enclosed int
	Edges    []Edge
}
