// SPDX-License-Identifier: MIT
package topology_test

import (
	"testing"

	"github.com/katalvlaran/kprop/topology"
	"github.com/stretchr/testify/require"
)

func TestCycle(t *testing.T) {
	ei, err := topology.Cycle(4)
	require.NoError(t, err)
	require.Equal(t, topology.EdgeIndex{
		{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 2}, {3, 0}, {0, 3},
	}, ei)

	ei, err = topology.Cycle(3, topology.WithDirected())
	require.NoError(t, err)
	require.Equal(t, topology.EdgeIndex{{0, 1}, {1, 2}, {2, 0}}, ei)

	_, err = topology.Cycle(2)
	require.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestPathStarComplete(t *testing.T) {
	ei, err := topology.Path(3, topology.WithDirected())
	require.NoError(t, err)
	require.Equal(t, topology.EdgeIndex{{0, 1}, {1, 2}}, ei)

	ei, err = topology.Star(3)
	require.NoError(t, err)
	require.Equal(t, topology.EdgeIndex{{0, 1}, {1, 0}, {0, 2}, {2, 0}}, ei)

	ei, err = topology.Complete(4)
	require.NoError(t, err)
	require.Len(t, ei, 12)
	deg, err := topology.InDegree(ei, nil, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3, 3}, deg)

	_, err = topology.Path(1)
	require.ErrorIs(t, err, topology.ErrTooFewVertices)
	_, err = topology.Star(1)
	require.ErrorIs(t, err, topology.ErrTooFewVertices)
	_, err = topology.Complete(0)
	require.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	a, err := topology.RandomSparse(20, 0.2, topology.WithSeed(7))
	require.NoError(t, err)
	b, err := topology.RandomSparse(20, 0.2, topology.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b) // same seed, same graph
	require.NoError(t, a.Validate(20))

	full, err := topology.RandomSparse(4, 1, topology.WithDirected())
	require.NoError(t, err)
	require.Len(t, full, 6)

	empty, err := topology.RandomSparse(4, 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = topology.RandomSparse(4, 0.5)
	require.ErrorIs(t, err, topology.ErrNeedRandSource)
	_, err = topology.RandomSparse(4, 1.5)
	require.ErrorIs(t, err, topology.ErrInvalidProbability)

	require.Panics(t, func() { topology.WithRand(nil) })
}
