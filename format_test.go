package polyfence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSolution(t *testing.T) {
	sol := Solution{
		Cost:     -12.5,
		Enclosed: 3,
		Edges: []Edge{
			{X1: 0, Y1: 0, X2: 2, Y2: 0},
			{X1: 2, Y1: 0, X2: 2, Y2: 1},
			{X1: 2, Y1: 1, X2: 0, Y2: 1},
			{X1: 0, Y1: 1, X2: 0, Y2: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, sol))

	want := "-12.500000\n" +
		"3\n" +
		"4\n" +
		"0.000000 0.000000 2.000000 0.000000\n" +
		"2.000000 0.000000 2.000000 1.000000\n" +
		"2.000000 1.000000 0.000000 1.000000\n" +
		"0.000000 1.000000 0.000000 0.000000\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSolutionNoEdges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, Solution{Cost: 4, Enclosed: 1}))
	assert.Equal(t, "4.000000\n1\n0\n", buf.String())
}
