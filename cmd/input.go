package cmd

import (
	"github.com/katalvlaran/c4finder/config"
	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
)

// Input contains the input for the root command
type Input struct {
	graphFile string
	method    string
	addEdges  []string
	verify    bool
	verbose   bool
}

// Spec returns the graph specification to search: the file given with
// --file, or the built-in reference graph.
func (i *Input) Spec() (*config.GraphSpec, error) {
	if i.graphFile == "" {
		return config.Reference(), nil
	}

	return config.Load(i.graphFile)
}

// Method returns the enumeration strategy named by --method.
func (i *Input) Method() (cycles.Method, error) {
	return cycles.ParseMethod(i.method)
}

// ExtraEdges parses every --add-edge value.
func (i *Input) ExtraEdges() ([]core.Edge, error) {
	out := make([]core.Edge, 0, len(i.addEdges))
	for _, raw := range i.addEdges {
		e, err := config.ParseEdge(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}
