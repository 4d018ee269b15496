// Package workload defines the named demonstration workloads the suite runs.
//
// Each workload prepares its inputs once and exposes a set of variants:
// interchangeable implementations of the same computation. The suite times
// every variant and compares it against the first one, which acts as the
// baseline.
package workload

import (
	"context"
	"errors"
)

// Errors shared by workload construction.
var (
	ErrBadSize    = errors.New("workload: size must be positive")
	ErrBadBackend = errors.New("workload: unknown memo backend")
)

// Variant is one implementation of a workload's computation.
type Variant struct {
	Name string
	Run  func(ctx context.Context) error
}

// Workload is a named demonstration with interchangeable variants.
// Variants performs input setup, so it may be expensive; the returned
// closures are cheap to invoke repeatedly.
type Workload interface {
	Name() string
	Variants() ([]Variant, error)
}
