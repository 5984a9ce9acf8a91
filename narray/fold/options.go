package fold

// Strategy selects how a fold is evaluated. Both strategies produce
// identical results for every mode.
type Strategy int

const (
	// Iterative evaluates with an accumulator loop. Stack use is constant.
	Iterative Strategy = iota
	// Recursive evaluates the defining recurrence directly. Stack use grows
	// with the range length and is capped by WithMaxDepth.
	Recursive
)

// DefaultMaxDepth is the recursion cap used by the Recursive strategy
// unless WithMaxDepth overrides it.
const DefaultMaxDepth = 1 << 16

// Option configures a fold.
type Option func(*config)

type config struct {
	strategy Strategy
	maxDepth int
}

func defaultConfig() config {
	return config{
		strategy: Iterative,
		maxDepth: DefaultMaxDepth,
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		if s == Iterative || s == Recursive {
			c.strategy = s
		}
	}
}

// WithMaxDepth sets the recursion cap for the Recursive strategy.
// Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
