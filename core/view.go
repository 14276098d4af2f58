// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Numeric views of the adjacency for linear-algebra consumers.

package core

import "gonum.org/v1/gonum/mat"

// AdjacencyMatrix returns the symmetric 0/1 adjacency matrix of g as a gonum
// SymDense. Row/column i corresponds to vertex i.
// Returns nil for an empty graph, since gonum rejects zero-sized matrices.
//
// Complexity: O(N²).
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	n := len(g.names)
	if n == 0 {
		return nil
	}

	data := make([]float64, n*n)
	for i, ok := range g.adj {
		if ok {
			data[i] = 1
		}
	}

	return mat.NewSymDense(n, data)
}
