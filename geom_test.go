package polyfence

import "testing"

func TestEdgeLength(t *testing.T) {
	ttable := []struct {
		x1, y1, x2, y2 float64
		res            float64
	}{
		{0, 0, 5, 0, 5},
		{5, 0, 0, 0, 5},
		{0, 0, 0, 3, 3},
		{2, 7, 2, 7, 0},
	}

	for _, tt := range ttable {
		got := edgeLength(tt.x1, tt.y1, tt.x2, tt.y2)
		if got != tt.res {
			t.Fatalf("edgeLength(%v, %v, %v, %v) = %v, want %v",
				tt.x1, tt.y1, tt.x2, tt.y2, got, tt.res)
		}
	}
}

func TestSignedArea2(t *testing.T) {
	ttable := []struct {
		name  string
		verts [][2]float64
		res   float64
	}{
		{"ccw unit square", [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 2},
		{"cw unit square", [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, -2},
		{"degenerate line", [][2]float64{{0, 0}, {1, 0}, {2, 0}}, 0},
	}

	for _, tt := range ttable {
		got := signedArea2(tt.verts)
		if got != tt.res {
			t.Fatalf("signedArea2(%s) = %v, want %v", tt.name, got, tt.res)
		}
	}
}
