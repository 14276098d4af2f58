package report_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/c4finder/config"
	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
	"github.com/katalvlaran/c4finder/report"
)

// ExampleWrite adds two chords to the reference windmill and prints the
// 4-cycles they create.
func ExampleWrite() {
	g, err := config.Reference().Graph()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err = g.WithEdges(core.Edge{U: "a_1", V: "b_1"}, core.Edge{U: "a", V: "b"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := cycles.Find(g, cycles.WithMethod(cycles.MethodCommonNeighbors))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = report.Write(os.Stdout, g, s)

	// Output:
	// Found 5 distinct 4-cycles:
	// a - b - a_2 - a_1 - a
	// a - b - b_1 - a_1 - a
	// a - b - b_1 - b_3 - a
	// a - a_1 - b_1 - b_3 - a
	// b - a_2 - a_1 - b_1 - b
}
