// SPDX-License-Identifier: MIT

package wick_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/slater"
	"github.com/katalvlaran/wick/wick"
)

// ExamplePowerExpectation squares a hopping operator on one beta electron:
// the electron hops away and back with certainty.
func ExamplePowerExpectation() {
	gamma, _ := slater.OneRDM(2, slater.Occupation{Beta: []int{0}})
	hop, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	h, _ := slater.ExpandSpin(hop)

	v, _ := wick.PowerExpectation(gamma, h, 2)
	fmt.Printf("%.6f\n", real(v))
	// Output:
	// 1.000000
}

// ExampleProductExpectation evaluates ⟨Ô_1 Ô_2 Ô_3⟩ in the given order:
// hop to orbital 1, count it, hop back.
func ExampleProductExpectation() {
	gamma, _ := cmatrix.NewDiagonal([]complex128{1, 0})
	hop, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	n1, _ := cmatrix.NewDiagonal([]complex128{0, 1})

	v, _ := wick.ProductExpectation(gamma, []cmatrix.Matrix{hop, n1, hop})
	fmt.Printf("%.6f\n", real(v))
	// Output:
	// 1.000000
}

// ExampleDimensionError shows how to inspect a shape failure.
func ExampleDimensionError() {
	gamma, _ := cmatrix.NewIdentity(4)
	h, _ := cmatrix.NewIdentity(2)

	_, err := wick.PowerExpectation(gamma, h, 1)
	var de *wick.DimensionError
	if errors.As(err, &de) {
		fmt.Println(de.Operand, de.Rows, de.Want)
	}
	fmt.Println(errors.Is(err, wick.ErrDimensionMismatch))
	// Output:
	// one-body 2 4
	// true
}
