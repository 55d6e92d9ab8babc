package hashtab

// Defaults applied by New when the corresponding option is not given. The
// size/threshold/moveRate trio mirrors the classic 8 / 0.75 / 4 starting
// configuration.
const (
	DefaultSize      = 8
	DefaultThreshold = 0.75
	DefaultMoveRate  = 4
)

// Config defines configurable Table options. It is filled in by the With*
// functions passed to New, NewStringMap and friends.
type Config struct {
	size          int
	threshold     float64
	moveRate      int
	shrinkEnabled bool
}

func defaultConfig() Config {
	return Config{
		size:      DefaultSize,
		threshold: DefaultThreshold,
		moveRate:  DefaultMoveRate,
	}
}

// WithSize configures the initial slot count. It must be at least 1. With
// shrinking enabled this is also the floor the table never shrinks below.
func WithSize(size int) func(*Config) {
	return func(c *Config) {
		c.size = size
	}
}

// WithThreshold configures the load factor above which the table grows.
// It must lie in (0, 1]. With shrinking enabled the table shrinks when the
// load factor drops below 1-threshold.
func WithThreshold(threshold float64) func(*Config) {
	return func(c *Config) {
		c.threshold = threshold
	}
}

// WithMoveRate configures how aggressively a growing table migrates:
// size/moveRate buckets are drained into the shadow table per mutating
// operation. It must be at least 1; a move rate of 1 disables incremental
// migration entirely and grows by immediate full rehash instead.
func WithMoveRate(moveRate int) func(*Config) {
	return func(c *Config) {
		c.moveRate = moveRate
	}
}

// WithShrinkEnabled configures automatic shrinking when the load factor
// falls below 1-threshold. The table never shrinks below its initial size.
// Disabled by default: shrinking is a full rehash and for most workloads
// not worth it.
func WithShrinkEnabled() func(*Config) {
	return func(c *Config) {
		c.shrinkEnabled = true
	}
}
