// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries. None of them lock: a Graph never changes.

package core

import "fmt"

// Order returns the number of vertices N.
func (g *Graph) Order() int { return len(g.names) }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.size }

// Name returns the name of vertex i, or "" when i is out of range.
func (g *Graph) Name(i int) string {
	if i < 0 || i >= len(g.names) {
		return ""
	}

	return g.names[i]
}

// Index returns the index of the named vertex.
// Returns ErrUnknownVertex when name is not part of the graph.
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("Index(%q): %w", name, ErrUnknownVertex)
	}

	return i, nil
}

// Names returns a copy of the vertex names in index order.
func (g *Graph) Names() []string {
	return append([]string(nil), g.names...)
}

// Adjacent reports whether {u,v} is an edge. Out-of-range indices are never
// adjacent to anything.
// Complexity: O(1).
func (g *Graph) Adjacent(u, v int) bool {
	n := len(g.names)
	if u < 0 || v < 0 || u >= n || v >= n {
		return false
	}

	return g.adj[u*n+v]
}

// AdjacentByName reports whether the named vertices share an edge.
// Returns ErrUnknownVertex when either name is not part of the graph.
func (g *Graph) AdjacentByName(a, b string) (bool, error) {
	u, err := g.Index(a)
	if err != nil {
		return false, fmt.Errorf("AdjacentByName: %w", err)
	}
	v, err := g.Index(b)
	if err != nil {
		return false, fmt.Errorf("AdjacentByName: %w", err)
	}

	return g.adj[u*len(g.names)+v], nil
}

// Neighbors returns the neighbours of vertex i in ascending index order.
// The returned slice is a copy.
// Returns ErrIndexOutOfRange for an invalid index.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(g.names) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrIndexOutOfRange)
	}

	return append([]int(nil), g.nbrs[i]...), nil
}

// Degree returns the number of neighbours of vertex i, or 0 for an invalid index.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= len(g.names) {
		return 0
	}

	return len(g.nbrs[i])
}

// Edges returns every edge once as an index pair {u,v} with u < v,
// sorted ascending by (u,v).
// Complexity: O(N + M).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.size)
	for u, row := range g.nbrs {
		for _, v := range row {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}
