//go:build !debug

// Package debug exposes the build mode of the library. Building with the
// debug tag enables expensive invariant checks and keeps logging on under
// go test.
package debug

const Debug = false
