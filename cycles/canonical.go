// SPDX-License-Identifier: MIT
//
// File: canonical.go
// Role: Dihedral symmetry of a 4-cycle: variants, comparison, canonical form.

package cycles

import "github.com/katalvlaran/c4finder/core"

// Compare orders cycles lexicographically: the leftmost differing element
// decides. Returns -1, 0 or +1.
func Compare(a, b Cycle) int {
	for i := 0; i < Length; i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Cycle) bool { return Compare(a, b) < 0 }

// rotate returns c started at position p.
func rotate(c Cycle, p int) Cycle {
	var out Cycle
	for i := 0; i < Length; i++ {
		out[i] = c[(p+i)%Length]
	}

	return out
}

// reverse returns c read backwards from the same first vertex.
func reverse(c Cycle) Cycle {
	return Cycle{c[0], c[3], c[2], c[1]}
}

// Canonical returns the representative of c's equivalence class under
// rotation and reflection.
//
// Steps:
//  1. Find the position p of the minimum element.
//  2. rot = c rotated to start at p.
//  3. rev = (rot0, rot3, rot2, rot1), the same cycle traversed backwards.
//  4. Return the lexicographically smaller of rot and rev.
//
// Complexity: O(1).
func Canonical(c Cycle) Cycle {
	// 1) position of the minimum
	p := 0
	for i := 1; i < Length; i++ {
		if c[i] < c[p] {
			p = i
		}
	}

	// 2) + 3)
	rot := rotate(c, p)
	rev := reverse(rot)

	// 4)
	if Less(rev, rot) {
		return rev
	}

	return rot
}

// IsCanonical reports whether c is already in canonical form.
func IsCanonical(c Cycle) bool { return Canonical(c) == c }

// Variants returns the 8 ways of writing c: the four rotations of c followed
// by the four rotations of c traversed backwards.
func Variants(c Cycle) [8]Cycle {
	var out [8]Cycle
	back := Cycle{c[3], c[2], c[1], c[0]}
	for p := 0; p < Length; p++ {
		out[p] = rotate(c, p)
		out[Length+p] = rotate(back, p)
	}

	return out
}

// IsCycle reports whether c is a 4-cycle of g: four distinct in-range
// vertices with every consecutive pair (including c[3]→c[0]) adjacent.
func IsCycle(g *core.Graph, c Cycle) bool {
	if g == nil {
		return false
	}
	for i := 0; i < Length; i++ {
		for j := i + 1; j < Length; j++ {
			if c[i] == c[j] {
				return false
			}
		}
	}

	return closes(g, c)
}

// closes tests the four edges of c; out-of-range indices are never adjacent.
func closes(g *core.Graph, c Cycle) bool {
	return g.Adjacent(c[0], c[1]) &&
		g.Adjacent(c[1], c[2]) &&
		g.Adjacent(c[2], c[3]) &&
		g.Adjacent(c[3], c[0])
}
