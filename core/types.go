// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, functional options and sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates a vertex name of zero length.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates the same vertex name was listed twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an edge (or query) referenced a vertex name
	// that is not part of the vertex list.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrLoopNotAllowed indicates an edge {v,v}; the graph is simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrIndexOutOfRange indicates a vertex index outside [0, Order()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is an undirected edge between two named vertices.
// Orientation carries no meaning: Edge{U: "a", V: "b"} and Edge{U: "b", V: "a"}
// describe the same edge.
type Edge struct {
	U string
	V string
}

// Options holds the construction policy of a Graph.
type Options struct {
	// IgnoreLoops drops edges {v,v} instead of failing with ErrLoopNotAllowed.
	IgnoreLoops bool
}

// Option configures NewGraph.
type Option func(*Options)

// DefaultOptions returns the strict policy: self-loops are an error.
func DefaultOptions() Options {
	return Options{IgnoreLoops: false}
}

// WithLoopsIgnored makes NewGraph skip self-loops silently.
func WithLoopsIgnored() Option {
	return func(o *Options) { o.IgnoreLoops = true }
}

// Graph is an immutable undirected simple graph over named vertices.
//
// adj is an N×N row-major boolean table; nbrs caches each row's true columns
// in ascending order. Neither is ever written after NewGraph returns.
type Graph struct {
	names []string       // index → name
	index map[string]int // name → index
	adj   []bool         // adj[u*N+v] == adj[v*N+u]
	nbrs  [][]int        // ascending neighbour indices per vertex
	size  int            // distinct undirected edges
	opts  []Option       // replayed by WithEdges
}
