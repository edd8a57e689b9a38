package polyfence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidInstance(t *testing.T) {
	inst, err := Parse(strings.NewReader("3 2\n0 0 1.5\n10 20 -3\n5.5 5.5 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, inst.K)
	require.Len(t, inst.Points, 3)
	assert.Equal(t, Point{X: 10, Y: 20, W: -3}, inst.Points[1])
	assert.Equal(t, Point{X: 5.5, Y: 5.5, W: 0}, inst.Points[2])
}

func TestParseSkipsBlankLines(t *testing.T) {
	inst, err := Parse(strings.NewReader("\n2 1\n\n1 1 1\n\n\n2 2 2\n"))
	require.NoError(t, err)
	assert.Len(t, inst.Points, 2)
}

func TestParseMalformed(t *testing.T) {
	ttable := []struct {
		name, in string
	}{
		{"empty input", ""},
		{"header with one token", "3\n"},
		{"header with three tokens", "3 2 1\n"},
		{"non-numeric N", "x 1\n"},
		{"zero N", "0 1\n"},
		{"non-numeric K", "1 x\n1 1 1\n"},
		{"zero K", "1 0\n1 1 1\n"},
		{"missing point lines", "2 1\n1 1 1\n"},
		{"point line with two tokens", "1 1\n1 1\n"},
		{"point line with four tokens", "1 1\n1 1 1 1\n"},
		{"non-numeric coordinate", "1 1\na 1 1\n"},
		{"non-numeric weight", "1 1\n1 1 w\n"},
	}
	for _, tt := range ttable {
		_, err := Parse(strings.NewReader(tt.in))
		if err == nil {
			t.Fatalf("Parse(%q) = nil error, want malformed-input error", tt.name)
		}
		if !IsMalformedInput(err) {
			t.Fatalf("Parse(%q) error kind = %v, want malformed input", tt.name, err)
		}
	}
}

func TestParseKExceedsNIsInfeasible(t *testing.T) {
	_, err := Parse(strings.NewReader("1 5\n1 1 1\n"))
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
	assert.False(t, IsMalformedInput(err))
}
