// SPDX-License-Identifier: MIT
// Package: c4finder/builder
//
// api.go - Spec accumulator and the BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/c4finder/core"
)

// Spec is a growing vertex list plus edge list, the input shape of core.NewGraph.
// Vertices keep insertion order, which becomes the index order of the graph.
type Spec struct {
	Vertices []string
	Edges    []core.Edge

	seenV map[string]struct{}
	seenE map[[2]string]struct{}
}

// NewSpec returns an empty Spec.
func NewSpec() *Spec {
	return &Spec{
		seenV: make(map[string]struct{}),
		seenE: make(map[[2]string]struct{}),
	}
}

// AddVertex appends id unless it is already present.
func (s *Spec) AddVertex(id string) {
	if _, ok := s.seenV[id]; ok {
		return
	}
	s.seenV[id] = struct{}{}
	s.Vertices = append(s.Vertices, id)
}

// AddEdge appends the undirected edge {u,v}, adding missing endpoints first.
// Repeats in either orientation are ignored.
func (s *Spec) AddEdge(u, v string) {
	s.AddVertex(u)
	s.AddVertex(v)
	key := [2]string{u, v}
	if v < u {
		key = [2]string{v, u}
	}
	if _, ok := s.seenE[key]; ok {
		return
	}
	s.seenE[key] = struct{}{}
	s.Edges = append(s.Edges, core.Edge{U: u, V: v})
}

// Constructor appends one topology to a Spec using the resolved builderConfig.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(s *Spec, cfg builderConfig) error

// BuildSpec resolves bopts and applies cons in order to a fresh Spec.
// Constructor errors are wrapped as "BuildSpec: %w".
func BuildSpec(bopts []BuilderOption, cons ...Constructor) (*Spec, error) {
	cfg := newBuilderConfig(bopts...)
	s := NewSpec()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSpec: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSpec: %w", err)
		}
	}

	return s, nil
}

// BuildGraph is BuildSpec followed by core.NewGraph(spec, copts...).
// Composing several constructors yields their disjoint (or, with shared IDs,
// overlapping) union.
func BuildGraph(copts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	s, err := BuildSpec(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g, err := core.NewGraph(s.Vertices, s.Edges, copts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
