// Package mazegen defines tunable options and sentinel errors for maze
// generation.
package mazegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze generation.
var (
	// ErrDimensionTooSmall is returned when width or height is below 2:
	// a maze needs at least two distinct corner cells.
	ErrDimensionTooSmall = errors.New("mazegen: width and height must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mazegen: invalid option supplied")
)

// defaultExtraOpeningFactor controls how many cycle-introducing openings are
// attempted after the spanning carve, as a fraction of total cells.
const defaultExtraOpeningFactor = 0.15

// defaultApproachCorridors is the number of corridors carved toward the end
// corner after the spanning carve.
const defaultApproachCorridors = 3

// Option configures Generate via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds tunable generation parameters.
type Options struct {
	// Seed drives every random choice made by the generator. A value ≤ 0
	// selects a time-based seed, so repeated calls produce different mazes;
	// any positive value makes generation fully reproducible.
	Seed int64

	// ExtraOpeningFactor scales the number of post-carve opening attempts:
	// ⌊ExtraOpeningFactor·W·H⌋ random interior walls are probed and converted
	// to open cells when doing so connects two existing passages.
	ExtraOpeningFactor float64

	// ApproachCorridors is how many corridors are carved from near the end
	// corner toward the end after the spanning carve.
	ApproachCorridors int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns generation defaults: time-based seed, opening factor
// 0.15, and three approach corridors.
func DefaultOptions() Options {
	return Options{
		Seed:               0,
		ExtraOpeningFactor: defaultExtraOpeningFactor,
		ApproachCorridors:  defaultApproachCorridors,
		err:                nil,
	}
}

// WithSeed fixes the random seed. Values ≤ 0 keep the time-based default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithExtraOpeningFactor sets the density of cycle-introducing openings.
//
//	f ≥ 0: attempt ⌊f·W·H⌋ openings (0 disables the pass)
//	f < 0: invalid option → ErrOptionViolation
func WithExtraOpeningFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 {
			o.err = fmt.Errorf("%w: ExtraOpeningFactor cannot be negative (%v)", ErrOptionViolation, f)
			return
		}
		o.ExtraOpeningFactor = f
	}
}

// WithApproachCorridors sets how many corridors are carved toward the end.
//
//	n ≥ 0: carve n corridors (0 disables the pass)
//	n < 0: invalid option → ErrOptionViolation
func WithApproachCorridors(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ApproachCorridors cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ApproachCorridors = n
	}
}
