// Package c4finder finds the 4-cycles (C4) of small, fixed undirected graphs
// and reports each one exactly once, in canonical form.
//
// The work is split into small packages:
//
//	core/     : immutable Graph over named vertices with O(1) adjacency
//	cycles/   : canonical form, ordered cycle Set, Find (three strategies), CountByTrace
//	report/   : "Found K distinct 4-cycles:" / "No 4-cycles (C4) found in this graph."
//	builder/  : deterministic fixture graphs (paths, cycles, K_n, K_{p,q}, G(n,p))
//	config/   : TOML/YAML graph specifications and the built-in windmill dataset
//	cmd/      : the c4finder command line
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// is a single 4-cycle, reported as "A - B - C - D - A".
//
//	go install github.com/katalvlaran/c4finder/cmd/c4finder@latest
package c4finder
