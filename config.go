package polyfence

// Config carries every tunable the solver sweep and the SA refiner read.
// The zero value is not meaningful; use DefaultConfig and override fields as
// needed, or load one from YAML via LoadConfig.
type Config struct {
	// SMax is the largest grid split swept by the driver.
	SMax int `yaml:"s_max"`

	// TrialsSmall is the trial count used for splits in [2,9].
	TrialsSmall int `yaml:"trials_small"`
	// TrialsMed is the trial count used for splits in [10,19].
	TrialsMed int `yaml:"trials_med"`
	// TrialsBig is the trial count used for split 1 or splits >= 20.
	TrialsBig int `yaml:"trials_big"`

	// SATime is the wall-clock budget, in seconds, given to the annealer
	// for each trial.
	SATime float64 `yaml:"sa_time_seconds"`
	// T0 is the annealer's initial temperature.
	T0 float64 `yaml:"sa_t0"`
	// TEnd is the annealer's final temperature.
	TEnd float64 `yaml:"sa_t_end"`
	// IMax is the annealer's iteration cap.
	IMax int `yaml:"sa_i_max"`

	// Workers is the number of goroutines the driver distributes trials
	// across. 1 (the default) runs every trial on the calling goroutine.
	Workers int `yaml:"workers"`

	// Seed seeds every per-trial random stream. 0 means "derive one from
	// the wall clock and log it", which makes the run replayable but not
	// reproducible ahead of time.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		SMax:        110,
		TrialsSmall: 80,
		TrialsMed:   20,
		TrialsBig:   1,
		SATime:      0.30,
		T0:          5.0,
		TEnd:        0.05,
		IMax:        5000,
		Workers:     1,
		Seed:        0,
	}
}

// trialsForSplit returns the trial count the driver should run at split s.
// Small splits are cheap and benefit most from jitter diversity, so they
// get the bulk of the trial budget.
func (c Config) trialsForSplit(s int) int {
	switch {
	case s >= 2 && s <= 9:
		return c.TrialsSmall
	case s >= 10 && s <= 19:
		return c.TrialsMed
	default:
		return c.TrialsBig
	}
}

// jitterEpsilon returns the jitter spread used at split s. The per-trial
// jitter is drawn as 1 - eps*U with U uniform in [0,1).
func jitterEpsilon(s int) float64 {
	if s > 4 {
		return 0.01 / float64(s)
	}
	return 5e-4
}
