// SPDX-License-Identifier: MIT
// Package: c4finder/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are leftPrefix+idFn(i), right IDs rightPrefix+idFn(j).
//   • Every left vertex is joined to every right vertex; no edges inside a side.

package builder

import "fmt"

const (
	methodBipartite   = "CompleteBipartite"
	minPartitionNodes = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
			s.AddVertex(left[i])
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
			s.AddVertex(right[j])
		}
		for _, u := range left {
			for _, v := range right {
				s.AddEdge(u, v)
			}
		}

		return nil
	}
}
