// SPDX-License-Identifier: MIT

package wick_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/wick/slater"
	"github.com/katalvlaran/wick/wick"
)

// Concurrent calls on shared read-only inputs must match serial results.
func TestConcurrentCallsAgree(t *testing.T) {
	defer goleak.VerifyNone(t)

	fx := newFixture(t, 3, slater.Occupation{Alpha: []int{0, 1}, Beta: []int{1}}, 314)
	hs := randomOps(t, 6, 4, 271)

	wantProd, err := wick.ProductExpectation(fx.gamma, hs)
	require.NoError(t, err)
	wantPow, err := wick.PowerExpectation(fx.gamma, hs[0], 5)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	prods := make([]complex128, workers)
	pows := make([]complex128, workers)
	errs := make([]error, 2*workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			prods[w], errs[2*w] = wick.ProductExpectation(fx.gamma, hs)
			pows[w], errs[2*w+1] = wick.PowerExpectation(fx.gamma, hs[0], 5)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[2*w])
		require.NoError(t, errs[2*w+1])
		assert.Equal(t, wantProd, prods[w], "worker %d", w)
		assert.Equal(t, wantPow, pows[w], "worker %d", w)
	}
}
