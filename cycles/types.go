// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Cycle tuple, enumeration methods, options and sentinel errors.

package cycles

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Length is the number of vertices in the cycles this package enumerates.
const Length = 4

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("cycles: graph is nil")

	// ErrUnknownMethod is returned for a Method outside the declared constants
	// or an unparsable method name.
	ErrUnknownMethod = errors.New("cycles: unknown enumeration method")

	// ErrCountMismatch is returned by Verify when the enumerated set and the
	// trace-based count disagree.
	ErrCountMismatch = errors.New("cycles: enumeration and trace count disagree")
)

// Cycle is a 4-cycle written as vertex indices in traversal order.
// The closing edge runs from Cycle[3] back to Cycle[0].
type Cycle [Length]int

// String renders the tuple as "(v0,v1,v2,v3)".
func (c Cycle) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", c[0], c[1], c[2], c[3])
}

// Method selects the enumeration strategy used by Find.
type Method int

const (
	// MethodPermutations tests all 24 orderings of every 4-subset.
	MethodPermutations Method = iota
	// MethodOrderings tests the 3 distinct cyclic orderings of every 4-subset.
	MethodOrderings
	// MethodCommonNeighbors pairs up common neighbours of every vertex pair.
	MethodCommonNeighbors
)

var methodNames = [...]string{
	MethodPermutations:    "permutations",
	MethodOrderings:       "orderings",
	MethodCommonNeighbors: "common-neighbors",
}

// String returns the flag-friendly name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a name produced by Method.String back to its Method.
// Matching ignores case and surrounding spaces.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == key {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
}

// Methods lists every supported Method in declaration order.
func Methods() []Method {
	return []Method{MethodPermutations, MethodOrderings, MethodCommonNeighbors}
}

// Option configures Find.
type Option func(*Options)

// Options holds the parameters of one Find call.
type Options struct {
	// Ctx allows cancellation; checked once per 4-subset or vertex pair row.
	Ctx context.Context

	// Method is the enumeration strategy.
	Method Method

	// OnCycle, if non-nil, is invoked once for each canonical cycle the first
	// time it enters the result set. Returning an error aborts Find.
	OnCycle func(c Cycle) error
}

// DefaultOptions returns Background context, MethodPermutations and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Method:  MethodPermutations,
		OnCycle: nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMethod selects the enumeration strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithOnCycle installs a hook called for every newly found canonical cycle.
func WithOnCycle(fn func(c Cycle) error) Option {
	return func(o *Options) { o.OnCycle = fn }
}
