// Package config loads graph specifications (vertex names plus an edge list)
// from TOML or YAML files and carries the built-in reference dataset.
package config

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/c4finder/core"
)

var (
	// ErrUnsupportedFormat is returned for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrNoVertices is returned for a specification that lists edges but no
	// vertices. A specification with neither is the empty graph.
	ErrNoVertices = errors.New("config: no vertices")

	// ErrBadEdge is returned for an edge that does not name exactly two vertices.
	ErrBadEdge = errors.New("config: bad edge")
)

// GraphSpec is the on-disk shape of a graph:
//
//	name = "square"
//	vertices = ["a", "b", "c", "d"]
//	edges = [["a", "b"], ["b", "c"], ["c", "d"], ["d", "a"]]
type GraphSpec struct {
	Name     string     `toml:"name" yaml:"name"`
	Vertices []string   `toml:"vertices" yaml:"vertices"`
	Edges    [][]string `toml:"edges" yaml:"edges"`
}

// Validate checks the shape of the specification. Name resolution (unknown
// or duplicate vertices) is left to core.NewGraph.
func (s *GraphSpec) Validate() error {
	if len(s.Vertices) == 0 && len(s.Edges) > 0 {
		return errors.Wrapf(ErrNoVertices, "graph %q: %d edge(s)", s.Name, len(s.Edges))
	}
	for i, e := range s.Edges {
		if len(e) != 2 {
			return errors.Wrapf(ErrBadEdge, "graph %q: edge #%d has %d endpoints", s.Name, i, len(e))
		}
	}

	return nil
}

// CoreEdges converts the edge list into core edges.
func (s *GraphSpec) CoreEdges() ([]core.Edge, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]core.Edge, len(s.Edges))
	for i, e := range s.Edges {
		out[i] = core.Edge{U: strings.TrimSpace(e[0]), V: strings.TrimSpace(e[1])}
	}

	return out, nil
}

// Graph validates the specification and builds the immutable core graph.
func (s *GraphSpec) Graph(opts ...core.Option) (*core.Graph, error) {
	edges, err := s.CoreEdges()
	if err != nil {
		return nil, err
	}
	vertices := make([]string, len(s.Vertices))
	for i, v := range s.Vertices {
		vertices[i] = strings.TrimSpace(v)
	}
	g, err := core.NewGraph(vertices, edges, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "graph %q", s.Name)
	}

	return g, nil
}

// ParseEdge parses "u:v" into an edge, as used by --add-edge.
func ParseEdge(raw string) (core.Edge, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return core.Edge{}, errors.Wrapf(ErrBadEdge, "%q: want u:v", raw)
	}
	u, v := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if u == "" || v == "" {
		return core.Edge{}, errors.Wrapf(ErrBadEdge, "%q: empty endpoint", raw)
	}

	return core.Edge{U: u, V: v}, nil
}
