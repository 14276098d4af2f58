package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c4finder/builder"
	"github.com/katalvlaran/c4finder/cycles"
)

// TestCountByTrace checks the closed-walk formula on known families.
func TestCountByTrace(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"K3", builder.Complete(3), 0},
		{"C4", builder.Cycle(4), 1},
		{"K4", builder.Complete(4), 3},
		{"K7", builder.Complete(7), 105},
		{"K34", builder.CompleteBipartite(3, 4), 18},
		{"P9", builder.Path(9), 0},
		{"isolated", builder.Empty(6), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cycles.CountByTrace(build(t, tc.cons))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := cycles.CountByTrace(nil)
	assert.ErrorIs(t, err, cycles.ErrGraphNil)
}

// TestVerify checks agreement and the mismatch error.
func TestVerify(t *testing.T) {
	g := build(t, builder.Complete(4))
	s, err := cycles.Find(g)
	require.NoError(t, err)
	assert.NoError(t, cycles.Verify(g, s))

	short := cycles.NewSet(cycles.Cycle{0, 1, 2, 3})
	err = cycles.Verify(g, short)
	assert.ErrorIs(t, err, cycles.ErrCountMismatch)
	assert.Contains(t, err.Error(), "enumerated 1, trace count 3")

	assert.ErrorIs(t, cycles.Verify(g, nil), cycles.ErrCountMismatch)
	assert.ErrorIs(t, cycles.Verify(nil, s), cycles.ErrGraphNil)
}
