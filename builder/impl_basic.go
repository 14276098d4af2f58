// SPDX-License-Identifier: MIT
// Package: c4finder/builder
//
// impl_basic.go — Empty, Path, Cycle and Complete constructors.
//
// Determinism:
//   • Vertices are added in ascending index order via cfg.idFn.
//   • Edges are emitted in lexicographic (i,j) order.

package builder

import "fmt"

const (
	methodEmpty    = "Empty"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minEmptyNodes    = 0
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// addVertices adds ids for indices [0,n) and returns them.
func addVertices(s *Spec, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		s.AddVertex(ids[i])
	}

	return ids
}

// Empty returns a Constructor adding n isolated vertices.
func Empty(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		addVertices(s, cfg, n)

		return nil
	}
}

// Path returns a Constructor for the path P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(s, cfg, n)
		for i := 0; i+1 < n; i++ {
			s.AddEdge(ids[i], ids[i+1])
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n: i → (i+1) mod n.
func Cycle(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(s, cfg, n)
		for i := 0; i < n; i++ {
			s.AddEdge(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Complete returns a Constructor for the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddEdge(ids[i], ids[j])
			}
		}

		return nil
	}
}
