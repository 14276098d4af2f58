package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c4finder/builder"
	"github.com/katalvlaran/c4finder/config"
	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
	"github.com/katalvlaran/c4finder/report"
)

func render(t *testing.T, g *core.Graph) string {
	t.Helper()
	s, err := cycles.Find(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, g, s))

	return buf.String()
}

func TestWrite_ReferenceHasNoCycles(t *testing.T) {
	g, err := config.Reference().Graph()
	require.NoError(t, err)
	assert.Equal(t, "No 4-cycles (C4) found in this graph.\n", render(t, g))
}

func TestWrite_FewerThanFourVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, report.NoCyclesLine+"\n", render(t, g))
}

func TestWrite_ReferenceWithExtraEdge(t *testing.T) {
	g, err := config.Reference().Graph()
	require.NoError(t, err)
	g, err = g.WithEdges(core.Edge{U: "a_1", V: "b_1"})
	require.NoError(t, err)

	assert.Equal(t,
		"Found 2 distinct 4-cycles:\n"+
			"a - a_1 - b_1 - b_3 - a\n"+
			"b - a_2 - a_1 - b_1 - b\n",
		render(t, g))
}

func TestWrite_K4(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Complete(4))
	require.NoError(t, err)

	assert.Equal(t,
		"Found 3 distinct 4-cycles:\n"+
			"A - B - C - D - A\n"+
			"A - B - D - C - A\n"+
			"A - C - B - D - A\n",
		render(t, g))
}

func TestLines_NilInput(t *testing.T) {
	_, err := report.Lines(nil, cycles.NewSet())
	assert.ErrorIs(t, err, report.ErrNilInput)

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.ErrorIs(t, report.Write(&bytes.Buffer{}, g, nil), report.ErrNilInput)
	assert.Empty(t, report.Line(nil, cycles.Cycle{0, 1, 2, 3}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_WriterError(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	s, err := cycles.Find(g)
	require.NoError(t, err)

	err = report.Write(failingWriter{}, g, s)
	assert.EqualError(t, err, "report: Write: disk full")
}

func TestHeader(t *testing.T) {
	assert.Equal(t, report.NoCyclesLine, report.Header(0))
	assert.Equal(t, "Found 1 distinct 4-cycles:", report.Header(1))
}
