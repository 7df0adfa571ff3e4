// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workpool implements the fork-join row/point partitioning shared
// by the matrix assembler (C5) and field evaluator (C8), replacing the
// teacher's MPI rank partitioning (mpi.Rank/mpi.Size in fem.go) with plain
// goroutines since this core runs single-process (spec.md §5).
package workpool

import (
	"runtime"
	"sync"
)

// Run partitions [0, n) into contiguous, disjoint stripes, one per worker,
// and runs fn(i) for every i in a stripe on its own goroutine. It blocks
// until every stripe has completed. Workers never share a stripe, so fn
// needs no locking as long as it only writes to index i's own storage.
func Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * rowsPerWorker
		hi := lo + rowsPerWorker
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
