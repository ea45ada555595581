package ugen

import (
	"math/rand"
	"time"
)

// Option configures a generator that owns a random source.
type Option func(*seedConfig)

type seedConfig struct {
	seed   int64
	seeded bool
}

// WithSeed sets a deterministic random seed.
// Without it the generator is seeded from the wall clock.
func WithSeed(seed int64) Option {
	return func(c *seedConfig) {
		c.seed = seed
		c.seeded = true
	}
}

func applySeedOptions(opts []Option) seedConfig {
	var cfg seedConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// newRand returns the random source for cfg. Unseeded configs draw their
// seed from the clock; the drawn value is not reported by DescribeConfig.
func (c seedConfig) newRand() *rand.Rand {
	seed := c.seed
	if !c.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
