// SPDX-License-Identifier: MIT
package kprop_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/kprop/kprop"
	"github.com/katalvlaran/kprop/matrix"
	"github.com/katalvlaran/kprop/normalize"
	"github.com/katalvlaran/kprop/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// column returns the single-column matrix with the given values.
func column(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(len(vals), 1, append([]float64(nil), vals...))
	require.NoError(t, err)

	return m
}

func ring4(t *testing.T) topology.EdgeIndex {
	t.Helper()
	ei, err := topology.Cycle(4)
	require.NoError(t, err)

	return ei
}

func assertColumn(t *testing.T, want []float64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, 1, got.Cols())
	require.Len(t, got.Data(), len(want))
	for i, w := range want {
		assert.InDelta(t, w, got.Data()[i], tol, "row %d", i)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := kprop.New(0, 2)
	require.ErrorIs(t, err, kprop.ErrBadDimension)
	_, err = kprop.New(2, 0)
	require.ErrorIs(t, err, kprop.ErrBadDimension)
	_, err = kprop.New(2, 2, kprop.WithHops(0))
	require.ErrorIs(t, err, kprop.ErrBadHops)
	_, err = kprop.New(2, 2, kprop.WithDecay(-0.1))
	require.ErrorIs(t, err, kprop.ErrBadDecay)
	_, err = kprop.New(2, 2, kprop.WithDecay(math.NaN()))
	require.ErrorIs(t, err, kprop.ErrBadDecay)
	_, err = kprop.New(2, 2, kprop.WithDecay(math.Inf(1)))
	require.ErrorIs(t, err, kprop.ErrBadDecay)
	_, err = kprop.New(2, 2, kprop.WithAggregator(normalize.Aggregator(0)))
	require.ErrorIs(t, err, normalize.ErrUnknownAggregator)

	op, err := kprop.New(3, 2, kprop.WithHops(4), kprop.WithDecay(0.5), kprop.WithCache())
	require.NoError(t, err)
	assert.Equal(t, 3, op.InDim())
	assert.Equal(t, 2, op.OutDim())
	assert.Equal(t, 4, op.Hops())
	assert.Equal(t, 0.5, op.Decay())
	assert.Equal(t, normalize.Symmetric, op.Aggregator())
	assert.True(t, op.Caching())
	assert.False(t, op.Cached())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { kprop.WithRand(nil) })
	assert.Panics(t, func() { kprop.WithParallelism(0) })
}

func TestDiffuse_RingSymmetricOneHop(t *testing.T) {
	op, err := kprop.New(1, 1)
	require.NoError(t, err)

	got, err := op.Diffuse(column(t, 1, 0, 0, 0), ring4(t), nil)
	require.NoError(t, err)
	assertColumn(t, []float64{1.0 / 3, 1.0 / 3, 0, 1.0 / 3}, got)
}

func TestDiffuse_QuadraticDecay(t *testing.T) {
	x := column(t, 1, 0, 0, 0)
	ei := ring4(t)

	// Without self-loops (K > 1) every ring weight is 1/2, so A²e0 = [½,0,½,0].
	plain, err := kprop.New(1, 1, kprop.WithHops(2))
	require.NoError(t, err)
	base, err := plain.Diffuse(x, ei, nil)
	require.NoError(t, err)
	assertColumn(t, []float64{0.5, 0, 0.5, 0}, base)

	// p = ln 2: the second step carries coeff 0.5.
	decayed, err := kprop.New(1, 1, kprop.WithHops(2), kprop.WithDecay(math.Ln2))
	require.NoError(t, err)
	got, err := decayed.Diffuse(x, ei, nil)
	require.NoError(t, err)
	assertColumn(t, []float64{0.25, 0, 0.25, 0}, got)

	// K = 3: cumulative factor exp(−3·ln2) = 1/8 on A³e0 = [0,½,0,½].
	three, err := kprop.New(1, 1, kprop.WithHops(3), kprop.WithDecay(math.Ln2))
	require.NoError(t, err)
	got, err = three.Diffuse(x, ei, nil)
	require.NoError(t, err)
	assertColumn(t, []float64{0, 1.0 / 16, 0, 1.0 / 16}, got)
}

func TestDiffuse_SelfLoopsOnlyForOneHop(t *testing.T) {
	// Single directed edge 0→1 over 3 nodes; node 2 is isolated.
	ei := topology.EdgeIndex{{Src: 0, Dst: 1}}
	x := column(t, 2, 4, 6)

	one, err := kprop.New(1, 1, kprop.WithAggregator(normalize.Uniform))
	require.NoError(t, err)
	got, err := one.Diffuse(x, ei, nil)
	require.NoError(t, err)
	// Node 0: own loop. Node 1: mean(x0, x1). Node 2: own loop.
	assertColumn(t, []float64{2, 3, 6}, got)

	two, err := kprop.New(1, 1, kprop.WithAggregator(normalize.Uniform), kprop.WithHops(2))
	require.NoError(t, err)
	_, err = two.Diffuse(x, ei, nil)
	require.ErrorIs(t, err, kprop.ErrEmptyNeighborhood)

	// Symmetric without loops: the isolated and source-only nodes go to zero.
	sym, err := kprop.New(1, 1, kprop.WithHops(2))
	require.NoError(t, err)
	got, err = sym.Diffuse(x, ei, nil)
	require.NoError(t, err)
	assertColumn(t, []float64{0, 0, 0}, got)
}

func TestDiffuse_SuppliedWeightsVerbatim(t *testing.T) {
	ei := topology.EdgeIndex{{Src: 0, Dst: 1}, {Src: 1, Dst: 1}}
	x := column(t, 3, 5)

	op, err := kprop.New(1, 1)
	require.NoError(t, err)
	got, err := op.Diffuse(x, ei, []float64{2, 0.5})
	require.NoError(t, err)
	// No loop is added for node 0; node 1 = 2·3 + 0.5·5.
	assertColumn(t, []float64{0, 8.5}, got)

	mean, err := kprop.New(1, 1, kprop.WithAggregator(normalize.Uniform))
	require.NoError(t, err)
	got, err = mean.Diffuse(x, topology.EdgeIndex{{Src: 0, Dst: 0}, {Src: 0, Dst: 1}, {Src: 1, Dst: 1}}, []float64{1, 2, 4})
	require.NoError(t, err)
	assertColumn(t, []float64{3, (6 + 20) / 2.0}, got)

	_, err = op.Diffuse(x, ei, []float64{1})
	require.ErrorIs(t, err, topology.ErrWeightLength)
}

func TestDiffuse_ShapeErrors(t *testing.T) {
	op, err := kprop.New(2, 1)
	require.NoError(t, err)

	_, err = op.Diffuse(column(t, 1, 2), topology.EdgeIndex{{Src: 0, Dst: 1}}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	x := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	_, err = op.Diffuse(x, topology.EdgeIndex{{Src: 0, Dst: 2}}, nil)
	require.ErrorIs(t, err, topology.ErrNodeOutOfRange)

	_, err = op.Apply(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiffuse_DoesNotMutateInput(t *testing.T) {
	x := column(t, 1, 0, 0, 0)
	op, err := kprop.New(1, 1, kprop.WithHops(3))
	require.NoError(t, err)
	_, err = op.Diffuse(x, ring4(t), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, x.Data())
}

func TestCache_StaleUntilInvalidated(t *testing.T) {
	op, err := kprop.New(1, 1, kprop.WithCache())
	require.NoError(t, err)

	first, err := op.Diffuse(column(t, 1, 0, 0, 0), ring4(t), nil)
	require.NoError(t, err)
	require.True(t, op.Cached())

	// Different features and a bogus topology: the cache answers without looking.
	again, err := op.Diffuse(column(t, 9, 9), topology.EdgeIndex{{Src: 7, Dst: 8}}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, first.Data(), again.Data())

	// Returned copies are independent of the stored matrix.
	again.Data()[0] = 42
	third, err := op.Diffuse(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Data(), third.Data())

	op.Invalidate()
	require.False(t, op.Cached())
	fresh, err := op.Diffuse(column(t, 0, 0, 1, 0), ring4(t), nil)
	require.NoError(t, err)
	assertColumn(t, []float64{0, 1.0 / 3, 1.0 / 3, 1.0 / 3}, fresh)
}

func TestCache_FailedComputeStoresNothing(t *testing.T) {
	op, err := kprop.New(1, 1, kprop.WithCache())
	require.NoError(t, err)
	_, err = op.Diffuse(column(t, 1, 2), topology.EdgeIndex{{Src: 0, Dst: 5}}, nil)
	require.Error(t, err)
	assert.False(t, op.Cached())
}

func TestApply_ProjectionReappliedOnCacheHit(t *testing.T) {
	op, err := kprop.New(1, 2, kprop.WithCache())
	require.NoError(t, err)
	require.NoError(t, op.Linear().SetParams(mustFrom(t, [][]float64{{1, 2}}), []float64{0, 0}))

	x := column(t, 1, 0, 0, 0)
	out, err := op.Apply(x, ring4(t), nil)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 2, out.Cols())
	v, _ := out.At(0, 1)
	assert.InDelta(t, 2.0/3, v, tol)

	require.NoError(t, op.Linear().SetParams(mustFrom(t, [][]float64{{3, 0}}), []float64{1, 1}))
	out, err = op.Apply(x, ring4(t), nil)
	require.NoError(t, err)
	v0, _ := out.At(0, 0)
	v1, _ := out.At(2, 1)
	assert.InDelta(t, 2.0, v0, tol)
	assert.InDelta(t, 1.0, v1, tol)
}

func TestApply_CachedMatchesUncached(t *testing.T) {
	ei, err := topology.RandomSparse(30, 0.2, topology.WithSeed(7))
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))
	rows := make([][]float64, 30)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	x := mustFrom(t, rows)

	cached, err := kprop.New(3, 4, kprop.WithHops(3), kprop.WithDecay(0.2), kprop.WithCache(), kprop.WithSeed(9))
	require.NoError(t, err)
	plain, err := kprop.New(3, 4, kprop.WithHops(3), kprop.WithDecay(0.2), kprop.WithSeed(9))
	require.NoError(t, err)

	a, err := cached.Apply(x, ei, nil)
	require.NoError(t, err)
	b, err := plain.Apply(x, ei, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())

	a, err = cached.Apply(x, ei, nil)
	require.NoError(t, err)
	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDiffuse_ParallelMatchesSequential(t *testing.T) {
	const n = 3000
	ei, err := topology.Cycle(n)
	require.NoError(t, err)
	ei = append(ei, topology.Edge{Src: 0, Dst: n / 2}, topology.Edge{Src: 17, Dst: 2999})

	rng := rand.New(rand.NewPCG(3, 4))
	data := make([]float64, n*2)
	for i := range data {
		data[i] = rng.Float64()
	}
	x, err := matrix.NewDenseData(n, 2, data)
	require.NoError(t, err)

	for _, agg := range []normalize.Aggregator{normalize.Symmetric, normalize.Uniform} {
		seq, err := kprop.New(2, 2, kprop.WithHops(1), kprop.WithAggregator(agg), kprop.WithParallelism(1))
		require.NoError(t, err)
		par, err := kprop.New(2, 2, kprop.WithHops(1), kprop.WithAggregator(agg), kprop.WithParallelism(8))
		require.NoError(t, err)

		a, err := seq.Diffuse(x, ei, nil)
		require.NoError(t, err)
		b, err := par.Diffuse(x, ei, nil)
		require.NoError(t, err)
		assert.Equal(t, a.Data(), b.Data(), agg.String())
	}
}

func TestDiffuse_KHopLocality(t *testing.T) {
	const n, k, target = 9, 2, 0
	ei, err := topology.Path(n)
	require.NoError(t, err)
	dist, err := topology.UpstreamDistances(ei, n, target, k)
	require.NoError(t, err)

	op, err := kprop.New(1, 1, kprop.WithHops(k))
	require.NoError(t, err)
	base := make([]float64, n)
	for i := range base {
		base[i] = float64(i + 1)
	}
	ref, err := op.Diffuse(column(t, base...), ei, nil)
	require.NoError(t, err)

	for u := 0; u < n; u++ {
		perturbed := append([]float64(nil), base...)
		perturbed[u] += 10
		got, err := op.Diffuse(column(t, perturbed...), ei, nil)
		require.NoError(t, err)
		if dist[u] == topology.Unreached {
			assert.Equal(t, ref.Data()[target], got.Data()[target], "node %d is beyond %d hops", u, k)
		}
	}
	// Node 2 sits exactly k hops away and must influence the target.
	perturbed := append([]float64(nil), base...)
	perturbed[2] += 10
	got, err := op.Diffuse(column(t, perturbed...), ei, nil)
	require.NoError(t, err)
	assert.NotEqual(t, ref.Data()[target], got.Data()[target])
}
