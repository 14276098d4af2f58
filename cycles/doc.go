// Package cycles enumerates the 4-cycles (C4) of a core.Graph.
//
// A 4-cycle is an ordered tuple (v0,v1,v2,v3) of distinct vertex indices such
// that v0v1, v1v2, v2v3 and v3v0 are all edges. The same undirected cycle can
// be written down in 8 ways (4 starting points × 2 directions, the dihedral
// group of the square); Canonical picks the lexicographically smallest of
// them, so equal cycles always produce identical tuples:
//
//  1. rotate the tuple so that its minimum comes first  → rot
//  2. read rot backwards from the same start            → rev = (rot0, rot3, rot2, rot1)
//  3. keep the smaller of rot and rev.
//
// Find runs one of three interchangeable strategies and collects canonical
// cycles into an ordered Set:
//
//	MethodPermutations     every 4-subset × all 24 orderings       O(C(N,4)·24)
//	MethodOrderings        every 4-subset × its 3 cyclic orderings O(C(N,4)·3)
//	MethodCommonNeighbors  pairs of common neighbours per vertex pair O(N²·Δ + C4)
//
// All three return identical sets. CountByTrace derives the number of
// 4-cycles independently from tr(A⁴) and is used by Verify as a cross-check.
//
// Errors:
//
//	ErrGraphNil       – nil *core.Graph
//	ErrUnknownMethod  – Method value outside the enum
//	ErrCountMismatch  – Verify disagreement between a Set and the trace count
package cycles
