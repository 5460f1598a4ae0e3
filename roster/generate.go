// SPDX-License-Identifier: MIT

package roster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/footballteam/team"
)

// Deterministic generator defaults.
const (
	// DefaultSeed is used when no WithSeed/WithRand option is given, and for WithSeed(0).
	DefaultSeed int64 = 1

	// DefaultMin and DefaultMax bound generated effectiveness values (inclusive).
	DefaultMin int64 = 1
	DefaultMax int64 = 1_000_000_000
)

// Option customizes Generate by mutating a generatorConfig before any value
// is drawn. Later options override earlier ones.
type Option func(*generatorConfig)

// generatorConfig is the single source of truth for Generate knobs.
type generatorConfig struct {
	rng    *rand.Rand
	lo, hi int64
}

// WithSeed draws values from a fresh source seeded with seed.
// seed == 0 selects DefaultSeed so that the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		if seed == 0 {
			seed = DefaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws values from r. Panics on nil: a missing source is a
// programmer error, not an input error.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("roster: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithRange bounds effectiveness values to [lo, hi]. The range is checked
// by Generate, which reports ErrBadRange.
func WithRange(lo, hi int64) Option {
	return func(c *generatorConfig) {
		c.lo, c.hi = lo, hi
	}
}

// Generate returns n players with IDs 1..n and effectiveness drawn
// uniformly from the configured range.
//
// Errors:
//   - ErrNegativeSize — n < 0.
//   - ErrBadRange     — lo > hi, or hi-lo+1 does not fit in an int64.
func Generate(n int, opts ...Option) ([]team.Player, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeSize)
	}

	cfg := generatorConfig{lo: DefaultMin, hi: DefaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	span := cfg.hi - cfg.lo
	if cfg.hi < cfg.lo || span < 0 || span == math.MaxInt64 {
		return nil, fmt.Errorf("[%d, %d]: %w", cfg.lo, cfg.hi, ErrBadRange)
	}

	players := make([]team.Player, n)
	for i := range players {
		players[i] = team.Player{
			Effectiveness: cfg.lo + cfg.rng.Int63n(span+1),
			ID:            i + 1,
		}
	}

	return players, nil
}
