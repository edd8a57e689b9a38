package polyfence

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSolution writes sol to w: cost, enclosed count, edge count, then one
// "x1 y1 x2 y2" line per edge. Floats are written fixed-notation with 6
// fractional digits.
func WriteSolution(w io.Writer, sol Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%.6f\n", sol.Cost)
	fmt.Fprintf(bw, "%d\n", sol.Enclosed)
	fmt.Fprintf(bw, "%d\n", len(sol.Edges))
	for _, e := range sol.Edges {
		fmt.Fprintf(bw, "%.6f %.6f %.6f %.6f\n", e.X1, e.Y1, e.X2, e.Y2)
	}
	return bw.Flush()
}
