package polyfence

import (
	"fmt"
	"os"
	"time"
)

// LogCategory classifies a message logged to a BuildContext.
type LogCategory int

// Log categories.
const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// TimerLabel names one of the solver's accumulated-time counters.
type TimerLabel int

// Timer labels, one per pipeline stage threaded through a trial.
const (
	TimerTrial TimerLabel = iota
	TimerGrid
	TimerGreedy
	TimerAnneal
	TimerBoundary
	maxTimers
)

func (l TimerLabel) String() string {
	switch l {
	case TimerTrial:
		return "trial"
	case TimerGrid:
		return "grid"
	case TimerGreedy:
		return "greedy"
	case TimerAnneal:
		return "anneal"
	case TimerBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

const maxMessages = 1000

// BuildContext carries optional logging and per-stage timing through a
// solve. A nil *BuildContext is valid everywhere it is accepted and
// disables both logging and timing.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a BuildContext with logging and timers enabled or
// disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{logEnabled: state, timerEnabled: state}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	if ctx == nil {
		return
	}
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	if ctx == nil {
		return
	}
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx == nil || !ctx.logEnabled {
		return
	}
	ctx.numMessages = 0
}

// ResetTimers clears all accumulated timers.
func (ctx *BuildContext) ResetTimers() {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

func (ctx *BuildContext) log(category LogCategory, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages[ctx.numMessages] = prefix + fmt.Sprintf(format, v...)
	ctx.numMessages++
}

// Progressf logs a progress message.
func (ctx *BuildContext) Progressf(format string, v ...interface{}) { ctx.log(LogProgress, format, v...) }

// Warningf logs a warning message.
func (ctx *BuildContext) Warningf(format string, v ...interface{}) { ctx.log(LogWarning, format, v...) }

// Errorf logs an error message.
func (ctx *BuildContext) Errorf(format string, v ...interface{}) { ctx.log(LogError, format, v...) }

// DumpLog prints a header followed by every logged message, one per line,
// to standard error. Standard output is reserved for the solution text.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	if ctx == nil {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Fprintln(os.Stderr, ctx.messages[i])
	}
}

// LogCount returns the number of messages currently logged.
func (ctx *BuildContext) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// StartTimer starts the named timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

// StopTimer stops the named timer, adding the elapsed duration since the
// matching StartTimer call to its accumulator.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total duration accumulated by the named timer.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
