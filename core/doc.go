// Package core provides the immutable, undirected simple Graph that every
// other c4finder package works on.
//
// A Graph G = (V,E) is built exactly once from an explicit vertex-name list
// and an explicit edge list, then never changes:
//
//   - Vertex i is the i-th name of the list given to NewGraph; indices live in [0, N).
//   - Adjacency is a dense, symmetric boolean table, so Adjacent(u,v) is O(1).
//   - Duplicate edges (in either orientation) are idempotent: adjacency is a
//     boolean, not a multiplicity.
//   - Self-loops are rejected (ErrLoopNotAllowed) unless WithLoopsIgnored()
//     asks the constructor to drop them silently.
//   - Referencing an unknown vertex name is a construction error
//     (ErrUnknownVertex); no lookup ever indexes out of bounds.
//
// Because nothing mutates a Graph after NewGraph returns, any number of
// goroutines may query it concurrently without locks. "Changing" a graph means
// deriving a new one with WithEdges.
//
// Core Methods:
//
//	NewGraph(vertices, edges, opts...) (*Graph, error) // O(N² + M)
//	(*Graph).WithEdges(extra...) (*Graph, error)       // O(N² + M)
//
//	Order() int                     // O(1)   number of vertices
//	Size() int                      // O(1)   number of distinct edges
//	Name(i) string / Index(name)    // O(1)
//	Names() []string                // O(N)   copy, index order
//	Adjacent(u, v int) bool         // O(1)
//	AdjacentByName(a, b) (bool, error)
//	Neighbors(i) []int              // O(deg) ascending
//	Degree(i) int                   // O(1)
//	Edges() [][2]int                // O(M)   ascending, u < v
//	AdjacencyMatrix() *mat.SymDense // O(N²)  gonum view (0/1 entries)
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex name
//	ErrDuplicateVertex  – vertex name listed twice
//	ErrUnknownVertex    – edge endpoint not in the vertex list
//	ErrLoopNotAllowed   – edge {v,v} without WithLoopsIgnored
//	ErrIndexOutOfRange  – index-based query outside [0, N)
package core
