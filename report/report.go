// Package report renders a set of 4-cycles as plain text:
//
//	Found 2 distinct 4-cycles:
//	a - a_1 - b_1 - b_3 - a
//	b - a_2 - a_1 - b_1 - b
//
// or, for an empty set,
//
//	No 4-cycles (C4) found in this graph.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
)

const (
	// NoCyclesLine is printed when the set is empty.
	NoCyclesLine = "No 4-cycles (C4) found in this graph."

	// separator joins vertex names on a cycle line.
	separator = " - "
)

// ErrNilInput is returned when the graph or the set is nil.
var ErrNilInput = errors.New("report: nil graph or cycle set")

// Header returns the count line for k cycles.
func Header(k int) string {
	if k == 0 {
		return NoCyclesLine
	}

	return fmt.Sprintf("Found %d distinct 4-cycles:", k)
}

// Line renders c closed: "v0 - v1 - v2 - v3 - v0".
// A nil graph renders as the empty string.
func Line(g *core.Graph, c cycles.Cycle) string {
	if g == nil {
		return ""
	}
	names := make([]string, 0, cycles.Length+1)
	for _, v := range c {
		names = append(names, g.Name(v))
	}
	names = append(names, g.Name(c[0]))

	return strings.Join(names, separator)
}

// Lines renders every cycle of s in ascending canonical order.
func Lines(g *core.Graph, s *cycles.Set) ([]string, error) {
	if g == nil || s == nil {
		return nil, ErrNilInput
	}
	out := make([]string, 0, s.Len())
	for _, c := range s.Values() {
		out = append(out, Line(g, c))
	}

	return out, nil
}

// Write prints the header and one line per cycle to w.
func Write(w io.Writer, g *core.Graph, s *cycles.Set) error {
	lines, err := Lines(g, s)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, Header(len(lines))); err != nil {
		return fmt.Errorf("report: Write: %w", err)
	}
	for _, l := range lines {
		if _, err = fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("report: Write: %w", err)
		}
	}

	return nil
}
