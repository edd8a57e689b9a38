package polyfence

import "fmt"

// Kind classifies a SolveError.
type Kind int

// Error kinds returned by Parse and Solve.
const (
	// ErrMalformedInput means the instance text could not be parsed: a
	// non-numeric token, a wrong token count on a line, or an N that
	// doesn't match the number of point lines actually present.
	ErrMalformedInput Kind = iota + 1
	// ErrInfeasible means the instance is well-formed but no split in the
	// sweep produced a valid region (K > N, or every trial at every split
	// failed to reach coverage K).
	ErrInfeasible
	// ErrIO means a read or write to an external resource failed.
	ErrIO
)

func (k Kind) String() string {
	switch k {
	case ErrMalformedInput:
		return "malformed input"
	case ErrInfeasible:
		return "infeasible instance"
	case ErrIO:
		return "I/O error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// SolveError is the error type returned by Parse and Solve.
type SolveError struct {
	Kind Kind
	Msg  string
}

func (e *SolveError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(k Kind, format string, args ...interface{}) *SolveError {
	return &SolveError{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsMalformedInput reports whether err is a SolveError of kind
// ErrMalformedInput.
func IsMalformedInput(err error) bool { return hasKind(err, ErrMalformedInput) }

// IsInfeasible reports whether err is a SolveError of kind ErrInfeasible.
func IsInfeasible(err error) bool { return hasKind(err, ErrInfeasible) }

// IsIOError reports whether err is a SolveError of kind ErrIO.
func IsIOError(err error) bool { return hasKind(err, ErrIO) }

func hasKind(err error, k Kind) bool {
	se, ok := err.(*SolveError)
	return ok && se.Kind == k
}
