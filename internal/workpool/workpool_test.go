// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workpool

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRunCoversEveryIndexExactlyOnce(tst *testing.T) {
	chk.PrintTitle("RunCoversEveryIndexExactlyOnce")
	const n = 503
	hits := make([]int, n)
	Run(n, func(i int) { hits[i]++ })
	for i, h := range hits {
		if h != 1 {
			tst.Fatalf("expected index %d to be visited exactly once, got %d", i, h)
		}
	}
}

func TestRunHandlesZeroAndNegativeN(tst *testing.T) {
	chk.PrintTitle("RunHandlesZeroAndNegativeN")
	called := false
	Run(0, func(i int) { called = true })
	Run(-1, func(i int) { called = true })
	if called {
		tst.Fatal("expected fn never to be called for n <= 0")
	}
}
