// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: Find and its three enumeration strategies.
// Determinism:
//   - The returned Set is ordered by canonical form, so output never depends
//     on the strategy or on visiting order.
//   - OnCycle fires in discovery order, which does depend on the strategy.

package cycles

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/c4finder/core"
)

// quadOrderings are the 3 distinct cyclic orderings of a sorted 4-subset
// {a,b,c,d}, as positions into the subset. Every other ordering is a rotation
// or reflection of one of them.
var quadOrderings = [3][Length]int{
	{0, 1, 2, 3}, // a-b-c-d
	{0, 1, 3, 2}, // a-b-d-c
	{0, 2, 1, 3}, // a-c-b-d
}

// Find returns every distinct 4-cycle of g as an ordered Set.
//
// Graphs with fewer than 4 vertices yield an empty Set.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnknownMethod for an invalid Options.Method.
//   - the context error when Options.Ctx is cancelled.
//   - any error returned by Options.OnCycle.
func Find(g *core.Graph, opts ...Option) (*Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &collector{set: NewSet(), onCycle: o.OnCycle}
	var err error
	switch o.Method {
	case MethodPermutations:
		err = findPermutations(o, g, c)
	case MethodOrderings:
		err = findOrderings(o, g, c)
	case MethodCommonNeighbors:
		err = findCommonNeighbors(o, g, c)
	default:
		return nil, fmt.Errorf("cycles: Find: %v: %w", o.Method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, fmt.Errorf("cycles: Find(%v): %w", o.Method, err)
	}

	return c.set, nil
}

// collector funnels discovered cycles into the set and the optional hook.
type collector struct {
	set     *Set
	onCycle func(Cycle) error
}

func (c *collector) add(cyc Cycle) error {
	if !c.set.Add(cyc) || c.onCycle == nil {
		return nil
	}

	return c.onCycle(Canonical(cyc))
}

// forEachQuad walks every 4-subset a<b<c<d of g's vertices, checking the
// context once per subset.
func forEachQuad(o Options, g *core.Graph, fn func(quad []int) error) error {
	n := g.Order()
	if n < Length {
		return nil
	}

	gen := combin.NewCombinationGenerator(n, Length)
	quad := make([]int, Length)
	for gen.Next() {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		gen.Combination(quad)
		if err := fn(quad); err != nil {
			return err
		}
	}

	return nil
}

// findPermutations tests all 4! orderings of every 4-subset.
// Complexity: O(C(N,4)·24) adjacency tests.
func findPermutations(o Options, g *core.Graph, c *collector) error {
	perms := combin.Permutations(Length, Length)

	return forEachQuad(o, g, func(quad []int) error {
		for _, p := range perms {
			cyc := Cycle{quad[p[0]], quad[p[1]], quad[p[2]], quad[p[3]]}
			if !closes(g, cyc) {
				continue
			}
			if err := c.add(cyc); err != nil {
				return err
			}
		}

		return nil
	})
}

// findOrderings tests only the 3 cyclic orderings of every 4-subset.
// Complexity: O(C(N,4)·3) adjacency tests.
func findOrderings(o Options, g *core.Graph, c *collector) error {
	return forEachQuad(o, g, func(quad []int) error {
		for _, p := range quadOrderings {
			cyc := Cycle{quad[p[0]], quad[p[1]], quad[p[2]], quad[p[3]]}
			if !closes(g, cyc) {
				continue
			}
			if err := c.add(cyc); err != nil {
				return err
			}
		}

		return nil
	})
}

// findCommonNeighbors uses the fact that a 4-cycle u-v-w-x is exactly a pair
// {v,x} of common neighbours of the opposite corners {u,w}. Each cycle is met
// twice (once per diagonal); the set absorbs the repeat.
//
// Complexity: O(N²·Δ + C4) for maximum degree Δ.
func findCommonNeighbors(o Options, g *core.Graph, c *collector) error {
	n := g.Order()
	if n < Length {
		return nil
	}

	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		nbrs[i], _ = g.Neighbors(i) // i is always in range
	}

	common := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		for w := u + 1; w < n; w++ {
			common = intersectSorted(common[:0], nbrs[u], nbrs[w])
			for i := 0; i < len(common); i++ {
				for j := i + 1; j < len(common); j++ {
					if err := c.add(Cycle{u, common[i], w, common[j]}); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// intersectSorted appends the intersection of two ascending slices to dst.
func intersectSorted(dst, a, b []int) []int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}

	return dst
}
