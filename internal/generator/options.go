package generator

import "math/rand"

// Options configures tiling generation behavior.
type Options struct {
	Seed        int64      // Seed for reproducible tilings (0 = random)
	MaxAttempts int        // Attempts per Search; <= 0 means DefaultMaxAttempts
	Rand        *rand.Rand // Rand, when set, is used instead of Seed
	// ScaleBudget grows the attempt budget with the board area. Off by
	// default so every board gets the same fixed budget.
	ScaleBudget bool
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
		ScaleBudget: false,
	}
}
