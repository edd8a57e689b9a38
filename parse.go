package polyfence

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Instance is a parsed problem instance: the points plus the minimum
// coverage K.
type Instance struct {
	Points []Point
	K      int
}

// Parse reads the N/K header followed by N "x y w" triples from r. It
// returns ErrMalformedInput for any token-count or numeric-format mismatch,
// and does not invoke the solver.
func Parse(r io.Reader) (Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	fields, err := nextFields(sc)
	if err != nil {
		return Instance{}, err
	}
	if len(fields) != 2 {
		return Instance{}, newError(ErrMalformedInput,
			"header line must have exactly 2 tokens (N K), got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return Instance{}, newError(ErrMalformedInput, "invalid N %q", fields[0])
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil || k < 1 {
		return Instance{}, newError(ErrMalformedInput, "invalid K %q", fields[1])
	}

	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		fields, err := nextFields(sc)
		if err != nil {
			return Instance{}, err
		}
		if len(fields) != 3 {
			return Instance{}, newError(ErrMalformedInput,
				"point line %d must have exactly 3 tokens (x y w), got %d", i+1, len(fields))
		}
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		w, errw := strconv.ParseFloat(fields[2], 64)
		if errx != nil || erry != nil || errw != nil {
			return Instance{}, newError(ErrMalformedInput, "point line %d: non-numeric token", i+1)
		}
		points = append(points, Point{X: x, Y: y, W: w})
	}

	if _, err := nextFields(sc); err == nil {
		return Instance{}, newError(ErrMalformedInput, "more than N=%d point lines", n)
	} else if IsIOError(err) {
		return Instance{}, err
	}

	if k > n {
		return Instance{}, newError(ErrInfeasible, "K (%d) exceeds N (%d)", k, n)
	}

	return Instance{Points: points, K: k}, nil
}

// nextFields returns the whitespace-separated tokens of the next
// non-blank line, or a malformed-input error if the scanner runs out of
// input before producing one.
func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := sc.Err(); err != nil {
		return nil, newError(ErrIO, "reading input: %v", err)
	}
	return nil, newError(ErrMalformedInput, "unexpected end of input")
}
