// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Construction of immutable graphs from vertex and edge lists.
// Determinism:
//   - Vertex indices follow the order of the vertex list.
//   - Validation reports the first offending vertex or edge in input order.

package core

import "fmt"

// NewGraph builds a Graph from a list of unique vertex names and a list of
// undirected edges between them.
//
// Steps:
//  1. Resolve options.
//  2. Index vertices, rejecting empty and duplicate names.
//  3. Resolve every edge endpoint, rejecting unknown names and (by default) loops.
//  4. Mark adjacency symmetrically; duplicate edges are no-ops.
//  5. Cache ascending neighbour lists.
//
// Errors: ErrEmptyVertexID, ErrDuplicateVertex, ErrUnknownVertex, ErrLoopNotAllowed,
// wrapped with the offending names.
//
// Complexity: O(N² + M) time and O(N²) space for N vertices and M edges.
func NewGraph(vertices []string, edges []Edge, opts ...Option) (*Graph, error) {
	// 1) Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Vertex index
	n := len(vertices)
	g := &Graph{
		names: make([]string, n),
		index: make(map[string]int, n),
		adj:   make([]bool, n*n),
		nbrs:  make([][]int, n),
		opts:  append([]Option(nil), opts...),
	}
	for i, name := range vertices {
		if name == "" {
			return nil, fmt.Errorf("NewGraph: vertex #%d: %w", i, ErrEmptyVertexID)
		}
		if _, dup := g.index[name]; dup {
			return nil, fmt.Errorf("NewGraph: vertex %q: %w", name, ErrDuplicateVertex)
		}
		g.names[i] = name
		g.index[name] = i
	}

	// 3) + 4) Edges
	for _, e := range edges {
		u, ok := g.index[e.U]
		if !ok {
			return nil, fmt.Errorf("NewGraph: edge {%s,%s}: %q: %w", e.U, e.V, e.U, ErrUnknownVertex)
		}
		v, ok := g.index[e.V]
		if !ok {
			return nil, fmt.Errorf("NewGraph: edge {%s,%s}: %q: %w", e.U, e.V, e.V, ErrUnknownVertex)
		}
		if u == v {
			if o.IgnoreLoops {
				continue
			}
			return nil, fmt.Errorf("NewGraph: edge {%s,%s}: %w", e.U, e.V, ErrLoopNotAllowed)
		}
		if g.adj[u*n+v] {
			continue // duplicate edge
		}
		g.adj[u*n+v] = true
		g.adj[v*n+u] = true
		g.size++
	}

	// 5) Neighbour cache, ascending by construction of the row scan
	for u := 0; u < n; u++ {
		row := g.adj[u*n : (u+1)*n]
		for v, ok := range row {
			if ok {
				g.nbrs[u] = append(g.nbrs[u], v)
			}
		}
	}

	return g, nil
}

// WithEdges returns a new Graph with the same vertices, the same construction
// options, all edges of g and the extra edges. g itself is not modified.
//
// Complexity: O(N² + M + K) for K extra edges.
func (g *Graph) WithEdges(extra ...Edge) (*Graph, error) {
	all := make([]Edge, 0, g.size+len(extra))
	for _, p := range g.Edges() {
		all = append(all, Edge{U: g.names[p[0]], V: g.names[p[1]]})
	}
	all = append(all, extra...)

	out, err := NewGraph(g.names, all, g.opts...)
	if err != nil {
		return nil, fmt.Errorf("WithEdges: %w", err)
	}

	return out, nil
}
