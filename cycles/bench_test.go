package cycles_test

import (
	"testing"

	"github.com/katalvlaran/c4finder/builder"
	"github.com/katalvlaran/c4finder/config"
	"github.com/katalvlaran/c4finder/cycles"
)

// benchmarkFind runs Find with method m on a seeded G(n,p) sample.
func benchmarkFind(b *testing.B, m cycles.Method, n int, p float64) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(n, p))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cycles.Find(g, cycles.WithMethod(m))
	}
}

func BenchmarkFind_Permutations_N17(b *testing.B) {
	benchmarkFind(b, cycles.MethodPermutations, 17, 0.2)
}

func BenchmarkFind_Orderings_N17(b *testing.B) {
	benchmarkFind(b, cycles.MethodOrderings, 17, 0.2)
}

func BenchmarkFind_CommonNeighbors_N17(b *testing.B) {
	benchmarkFind(b, cycles.MethodCommonNeighbors, 17, 0.2)
}

func BenchmarkFind_CommonNeighbors_N200(b *testing.B) {
	benchmarkFind(b, cycles.MethodCommonNeighbors, 200, 0.05)
}

// BenchmarkFind_Reference measures the reference windmill with the default method.
func BenchmarkFind_Reference(b *testing.B) {
	g, err := config.Reference().Graph()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cycles.Find(g)
	}
}

func BenchmarkCountByTrace_N200(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(200, 0.05))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cycles.CountByTrace(g)
	}
}
