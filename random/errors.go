// SPDX-License-Identifier: MIT

package random

import "errors"

var (
	// ErrNeedRandSource is returned when no WithSeed/WithRand option was given.
	ErrNeedRandSource = errors.New("random: a random source is required (WithSeed or WithRand)")

	// ErrNegativeSize is returned for n < 0.
	ErrNegativeSize = errors.New("random: size must be >= 0")
)
