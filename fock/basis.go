// SPDX-License-Identifier: MIT

package fock

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxModes bounds the number of modes so determinants fit in a uint64.
const MaxModes = 62

// Basis enumerates all determinants with a fixed number of particles.
// States are sorted by their integer bit value; Index is the inverse map.
type Basis struct {
	modes     int
	particles int
	states    []uint64
	index     map[uint64]int
}

// NewBasis builds the C(modes, particles) determinant basis.
//
// Errors:
//   - ErrTooManyModes for modes < 0 or modes > MaxModes.
//   - ErrBadParticleNumber for particles outside [0, modes].
//
// Complexity: O(C(modes, particles) · particles).
func NewBasis(modes, particles int) (*Basis, error) {
	if modes < 0 || modes > MaxModes {
		return nil, fmt.Errorf("NewBasis: modes=%d: %w", modes, ErrTooManyModes)
	}
	if particles < 0 || particles > modes {
		return nil, fmt.Errorf("NewBasis: particles=%d, modes=%d: %w", particles, modes, ErrBadParticleNumber)
	}

	combos := combin.Combinations(modes, particles)
	states := make([]uint64, len(combos))
	for i, c := range combos {
		var bits uint64
		for _, p := range c {
			bits |= 1 << uint(p)
		}
		states[i] = bits
	}
	slices.Sort(states)

	index := make(map[uint64]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	return &Basis{modes: modes, particles: particles, states: states, index: index}, nil
}

// Modes returns the number of modes.
func (b *Basis) Modes() int { return b.modes }

// Particles returns the particle number of the sector.
func (b *Basis) Particles() int { return b.particles }

// Dim returns the number of determinants.
func (b *Basis) Dim() int { return len(b.states) }

// Bits returns the occupation bitstring of determinant i.
// It panics if i is out of range, like slice indexing.
func (b *Basis) Bits(i int) uint64 { return b.states[i] }

// Index returns the position of determinant bits, or false if bits is not
// in this sector.
func (b *Basis) Index(bits uint64) (int, bool) {
	i, ok := b.index[bits]

	return i, ok
}

// OccupationBits packs a list of occupied modes into a bitstring.
// Duplicates collapse; callers validate ranges.
func OccupationBits(modes []int) uint64 {
	var bits uint64
	for _, p := range modes {
		bits |= 1 << uint(p)
	}

	return bits
}
