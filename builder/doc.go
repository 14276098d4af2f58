// Package builder assembles deterministic fixture graphs for c4finder:
// isolated vertices, paths, cycles, complete and complete-bipartite graphs,
// and seeded Erdős–Rényi samples.
//
// Constructors do not touch a core.Graph directly (core graphs are immutable);
// they append vertices and edges to a Spec, and BuildGraph turns the finished
// Spec into a *core.Graph in one validated step:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
//		builder.Complete(4))
//
// Configuration primitives:
//
//   - BuilderOption / builderConfig: ID scheme, RNG, bipartite prefixes.
//   - IDFn schemes: DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A",…,"Z","AA",…).
//
// Well-known 4-cycle counts, handy for tests:
//
//	Path(n), n≥1            0
//	Cycle(4)                1   (Cycle(n), n≠4: 0)
//	Complete(n)             3·C(n,4)
//	CompleteBipartite(p,q)  C(p,2)·C(q,2)
//
// Guarantees:
//
//   - Idempotent: adding an existing vertex or edge to a Spec is a no-op.
//   - Deterministic: same constructors, options and seed ⇒ identical graphs.
//   - No panics at build time; option constructors panic on nil arguments.
package builder
