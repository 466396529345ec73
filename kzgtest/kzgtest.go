// Package kzgtest provides commitment keys for tests and benchmarks: keys
// are cached per size so the expensive Setup runs at most once per size and
// process. A commitment key is immutable, so handing the same key to many
// tests is safe.
//
// Keys come from a plain in-process Setup. In production, a key generated
// through a trusted-setup ceremony should be used instead.
package kzgtest

import (
	"sync"

	"github.com/consensys/kzg10"
)

var (
	lock     sync.Mutex
	keyCache = make(map[int]*kzg10.CommitKey)
)

// Key returns a commitment key supporting polynomials of up to t
// coefficients, memoized per t across the process.
func Key(t int) (*kzg10.CommitKey, error) {
	lock.Lock()
	defer lock.Unlock()

	if ck, ok := keyCache[t]; ok {
		return ck, nil
	}

	ck, err := kzg10.Setup(t)
	if err != nil {
		return nil, err
	}
	keyCache[t] = ck
	return ck, nil
}
