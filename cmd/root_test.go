package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c4finder/config"
	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
)

func init() {
	log.SetOutput(io.Discard)
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(context.Background(), "test")
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()

	return out.String(), err
}

func TestRoot_ReferenceGraph(t *testing.T) {
	out, err := runRoot(t)
	require.NoError(t, err)
	assert.Equal(t, "No 4-cycles (C4) found in this graph.\n", out)
}

func TestRoot_AddEdgeEveryMethod(t *testing.T) {
	want := "Found 2 distinct 4-cycles:\n" +
		"a - a_1 - b_1 - b_3 - a\n" +
		"b - a_2 - a_1 - b_1 - b\n"
	for _, m := range cycles.Methods() {
		out, err := runRoot(t, "--add-edge", "a_1:b_1", "--method", m.String(), "--verify", "-v")
		require.NoError(t, err, m.String())
		assert.Equal(t, want, out, m.String())
	}
}

func TestRoot_EmptyGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, []byte("vertices = []\nedges = []\n"), 0o600))

	for _, m := range cycles.Methods() {
		out, err := runRoot(t, "-f", path, "--method", m.String(), "--verify")
		require.NoError(t, err, m.String())
		assert.Equal(t, "No 4-cycles (C4) found in this graph.\n", out, m.String())
	}
}

func TestRoot_GraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
vertices = ["n", "e", "s", "w"]
edges = [["n", "e"], ["e", "s"], ["s", "w"], ["w", "n"]]
`), 0o600))

	out, err := runRoot(t, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Found 1 distinct 4-cycles:\nn - e - s - w - n\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := runRoot(t, "--add-edge", "a_1:nowhere")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = runRoot(t, "--add-edge", "a_1")
	assert.ErrorIs(t, err, config.ErrBadEdge)

	_, err = runRoot(t, "--method", "guess")
	assert.ErrorIs(t, err, cycles.ErrUnknownMethod)

	_, err = runRoot(t, "-f", "graph.json")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = runRoot(t, "positional")
	assert.Error(t, err)
}

func TestInput_Defaults(t *testing.T) {
	in := &Input{method: "orderings"}
	spec, err := in.Spec()
	require.NoError(t, err)
	assert.Equal(t, "windmill", spec.Name)

	m, err := in.Method()
	require.NoError(t, err)
	assert.Equal(t, cycles.MethodOrderings, m)

	edges, err := in.ExtraEdges()
	require.NoError(t, err)
	assert.Empty(t, edges)
}
