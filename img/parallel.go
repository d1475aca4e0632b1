// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"runtime"
	"sync"
)

// Parallel partitions the index range [0,n) into contiguous chunks, one
// per worker goroutine, and calls f(lo,hi) on each chunk concurrently.
// It returns after all chunks are done. With n < 2 or a single CPU the
// call runs inline.
func Parallel(n int, f func(lo, hi int)) {
	nw := runtime.NumCPU()
	if nw > n {
		nw = n
	}
	if nw < 2 {
		if n > 0 {
			f(0, n)
		}
		return
	}
	chunk := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
