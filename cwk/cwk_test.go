package cwk_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coinwalk/cwk"
	"github.com/katalvlaran/coinwalk/walkgraph"
)

// pathAdj returns the 4-node unit path 0-1, 1-2, 2-3.
func pathAdj() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		0, 0, 1, 0,
	})
}

// barbellAdj returns a 6-node graph: triangle {0,1,2} bridged to triangle
// {3,4,5} by the single edge 2-3.
func barbellAdj() *mat.Dense {
	adj := mat.NewDense(6, 6, nil)
	link := func(u, v int) {
		adj.Set(u, v, 1)
		adj.Set(v, u, 1)
	}
	link(0, 1)
	link(0, 2)
	link(1, 2)
	link(3, 4)
	link(3, 5)
	link(4, 5)
	link(2, 3)

	return adj
}

// TestCompute_WalkLengthZero verifies the zero-step boundary case: with
// walkLength=0 and lengths={0}, K_train is the outer product of the
// iteration-0 label distributions divided by 1.
func TestCompute_WalkLengthZero(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, []int{1, 2}, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, out.Lengths)

	kTrain, err := out.TrainAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, kTrain.At(0, 0))
	assert.Equal(t, 0.0, kTrain.At(0, 1))
	assert.Equal(t, 0.0, kTrain.At(1, 0))
	assert.Equal(t, 1.0, kTrain.At(1, 1))

	kTest, err := out.TestAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, kTest.At(0, 0), "uniform test row · one-hot train row")
	assert.Equal(t, 0.5, kTest.At(1, 1))
}

// TestCompute_PathGraphWalkLength2 verifies the path-graph scenario
// end to end against hand-derived kernels: K_train(2) = [[2.125,.875],
// [.875,2.125]]/3, K_test(2) = [[1.4375,1.5625],[1.5625,1.4375]]/3.
func TestCompute_PathGraphWalkLength2(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, []int{1, 2}, 2, 2)
	require.NoError(t, err)

	kTrain, err := out.TrainAt(2)
	require.NoError(t, err)
	r, c := kTrain.Dims()
	assert.Equal(t, 2, r, "K_train shape 2×2 at one requested length")
	assert.Equal(t, 2, c)
	assert.InDelta(t, 2.125/3, kTrain.At(0, 0), 1e-15)
	assert.InDelta(t, 0.875/3, kTrain.At(0, 1), 1e-15)

	kTest, err := out.TestAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.4375/3, kTest.At(0, 0), 1e-15)
	assert.InDelta(t, 1.5625/3, kTest.At(0, 1), 1e-15)
}

// TestCompute_TrainKernelSymmetry verifies K_train symmetry at every
// requested length across several configurations.
func TestCompute_TrainKernelSymmetry(t *testing.T) {
	configs := []struct {
		name string
		opts []cwk.Option
	}{
		{"pure diffusion", nil},
		{"partial absorption", []cwk.Option{cwk.WithAlpha(0.6)}},
		{"clamped with prior", []cwk.Option{cwk.WithAlpha(0), cwk.WithPrior(0.5)}},
	}

	for _, tc := range configs {
		opts := append([]cwk.Option{cwk.WithWalkLengths(0, 2, 5)}, tc.opts...)
		out, err := cwk.Compute(barbellAdj(), []int{0, 4}, []int{0, 1}, []int{1, 2, 3}, 2, 5, opts...)
		require.NoError(t, err, tc.name)

		for li, length := range out.Lengths {
			k := out.Train[li]
			n, _ := k.Dims()
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					assert.InDelta(t, k.At(i, j), k.At(j, i), 1e-14,
						"%s: K_train[%d,%d] at length %d", tc.name, i, j, length)
				}
			}
		}
	}
}

// TestCompute_TrainKernelPSD verifies positive semidefiniteness of every
// train-train kernel: the smallest eigenvalue of the symmetrized matrix
// must be ≥ −1e−10 (Gram matrices of probability vectors).
func TestCompute_TrainKernelPSD(t *testing.T) {
	out, err := cwk.Compute(barbellAdj(), []int{0, 2, 4}, []int{0, 0, 1}, []int{1, 5}, 2, 6,
		cwk.WithAlpha(0.8), cwk.WithWalkLengths(1, 3, 6))
	require.NoError(t, err)

	for li, length := range out.Lengths {
		k := out.Train[li]
		n, _ := k.Dims()

		sym := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sym.SetSym(i, j, (k.At(i, j)+k.At(j, i))/2)
			}
		}

		var eig mat.EigenSym
		require.True(t, eig.Factorize(sym, false), "eigendecomposition at length %d", length)
		for _, ev := range eig.Values(nil) {
			assert.GreaterOrEqual(t, ev, -1e-10, "eigenvalue at length %d", length)
		}
	}
}

// TestCompute_Determinism verifies bit-identical outputs across two runs
// with identical inputs.
func TestCompute_Determinism(t *testing.T) {
	run := func() *cwk.Kernels {
		out, err := cwk.Compute(barbellAdj(), []int{0, 4}, []int{0, 1}, []int{1, 2, 3, 5}, 2, 4,
			cwk.WithAlpha(0.35), cwk.WithPrior(1.5), cwk.WithWalkLengths(2, 4))
		require.NoError(t, err)

		return out
	}

	a, b := run(), run()
	require.Equal(t, a.Lengths, b.Lengths)
	for li := range a.Lengths {
		assert.Equal(t, a.Train[li].RawMatrix().Data, b.Train[li].RawMatrix().Data,
			"train kernel bits at length %d", a.Lengths[li])
		assert.Equal(t, a.Test[li].RawMatrix().Data, b.Test[li].RawMatrix().Data,
			"test kernel bits at length %d", a.Lengths[li])
	}
}

// TestCompute_SubsetLengthsMatchFullRequest verifies the single-pass
// property: requesting {2,4} yields exactly the kernels obtained by
// requesting {0,1,2,3,4} and keeping lengths 2 and 4.
func TestCompute_SubsetLengthsMatchFullRequest(t *testing.T) {
	subset, err := cwk.Compute(barbellAdj(), []int{1, 5}, []int{0, 1}, []int{0, 2, 3}, 2, 4,
		cwk.WithAlpha(0.7), cwk.WithWalkLengths(2, 4))
	require.NoError(t, err)

	full, err := cwk.Compute(barbellAdj(), []int{1, 5}, []int{0, 1}, []int{0, 2, 3}, 2, 4,
		cwk.WithAlpha(0.7), cwk.WithWalkLengths(0, 1, 2, 3, 4))
	require.NoError(t, err)

	for _, length := range []int{2, 4} {
		kSub, errSub := subset.TrainAt(length)
		require.NoError(t, errSub)
		kFull, errFull := full.TrainAt(length)
		require.NoError(t, errFull)
		assert.True(t, mat.Equal(kSub, kFull), "train kernels at length %d must be identical", length)

		tSub, errSub := subset.TestAt(length)
		require.NoError(t, errSub)
		tFull, errFull := full.TestAt(length)
		require.NoError(t, errFull)
		assert.True(t, mat.Equal(tSub, tFull), "test kernels at length %d must be identical", length)
	}
}

// TestCompute_FiniteNonnegativeEntries verifies that all kernel entries
// are finite nonnegative reals for nonnegative inputs.
func TestCompute_FiniteNonnegativeEntries(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, []int{1, 2}, 2, 3,
		cwk.WithAlpha(0.5), cwk.WithWalkLengths(0, 1, 2, 3))
	require.NoError(t, err)

	check := func(k *mat.Dense, kind string, length int) {
		r, c := k.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := k.At(i, j)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s[%d,%d] at %d finite", kind, i, j, length)
				assert.GreaterOrEqual(t, v, 0.0, "%s[%d,%d] at %d nonnegative", kind, i, j, length)
			}
		}
	}
	for li, length := range out.Lengths {
		check(out.Train[li], "K_train", length)
		check(out.Test[li], "K_test", length)
	}
}

// TestCompute_UnsortedLengthsAutoSorted verifies the only permitted silent
// correction: unsorted, duplicated requests come back sorted ascending and
// de-duplicated.
func TestCompute_UnsortedLengthsAutoSorted(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, nil, 2, 3,
		cwk.WithWalkLengths(3, 1, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, out.Lengths)
}

// TestCompute_DefaultLengthIsWalkLength verifies the default request set.
func TestCompute_DefaultLengthIsWalkLength(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, nil, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out.Lengths)
}

// TestCompute_InvalidConfiguration exercises the fail-fast configuration
// surface; each failure matches both the fine sentinel and the broad class.
func TestCompute_InvalidConfiguration(t *testing.T) {
	train, labels := []int{0, 3}, []int{0, 1}

	_, err := cwk.Compute(pathAdj(), train, labels, nil, 2, 2, cwk.WithAlpha(1.5))
	assert.ErrorIs(t, err, cwk.ErrBadAlpha)
	assert.ErrorIs(t, err, cwk.ErrInvalidConfiguration)

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 2, 2, cwk.WithAlpha(-0.1))
	assert.ErrorIs(t, err, cwk.ErrBadAlpha)

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 2, -1)
	assert.ErrorIs(t, err, cwk.ErrNegativeWalkLength)

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 2, 2, cwk.WithWalkLengths(3))
	assert.ErrorIs(t, err, cwk.ErrBadWalkLengths, "requested length beyond walkLength")

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 2, 2, cwk.WithWalkLengths(-1))
	assert.ErrorIs(t, err, cwk.ErrBadWalkLengths, "negative requested length")

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 2, 2, cwk.WithPrior(0))
	assert.ErrorIs(t, err, cwk.ErrBadPseudocount)

	_, err = cwk.Compute(pathAdj(), train, labels, nil, 0, 2)
	assert.ErrorIs(t, err, cwk.ErrBadClassCount)

	_, err = cwk.Compute(pathAdj(), train, []int{0}, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrLabelMismatch)

	_, err = cwk.Compute(pathAdj(), nil, nil, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrEmptyTrainSet)
}

// TestCompute_IndexOutOfRange exercises the index/label validation; each
// failure matches both the fine sentinel and the broad class.
func TestCompute_IndexOutOfRange(t *testing.T) {
	_, err := cwk.Compute(pathAdj(), []int{-1, 3}, []int{0, 1}, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrTrainIndexRange)
	assert.ErrorIs(t, err, cwk.ErrIndexOutOfRange)

	_, err = cwk.Compute(pathAdj(), []int{0, 4}, []int{0, 1}, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrTrainIndexRange)

	_, err = cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, []int{9}, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrTestIndexRange)

	_, err = cwk.Compute(pathAdj(), []int{0, 0}, []int{0, 1}, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrDuplicateIndex)

	_, err = cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 2}, nil, 2, 2)
	assert.ErrorIs(t, err, cwk.ErrLabelRange)
	assert.ErrorIs(t, err, cwk.ErrIndexOutOfRange)
}

// TestCompute_AdjacencyErrorsSurface verifies that graph-model sentinels
// pass through Compute unchanged.
func TestCompute_AdjacencyErrorsSurface(t *testing.T) {
	_, err := cwk.Compute(nil, []int{0}, []int{0}, nil, 1, 1)
	assert.ErrorIs(t, err, walkgraph.ErrNilAdjacency)

	_, err = cwk.Compute(mat.NewDense(2, 3, nil), []int{0}, []int{0}, nil, 1, 1)
	assert.ErrorIs(t, err, walkgraph.ErrNonSquare)

	bad := pathAdj()
	bad.Set(0, 1, -1)
	_, err = cwk.Compute(bad, []int{0}, []int{0}, nil, 1, 1)
	assert.ErrorIs(t, err, walkgraph.ErrNegativeWeight)
}

// TestPropagate_ThenAssembleMatchesCompute verifies that the split entry
// points compose into exactly what Compute produces.
func TestPropagate_ThenAssembleMatchesCompute(t *testing.T) {
	train, labels, test := []int{0, 4}, []int{0, 1}, []int{1, 2, 3, 5}

	hist, err := cwk.Propagate(barbellAdj(), train, labels, 2, 4, cwk.WithAlpha(0.6))
	require.NoError(t, err)
	split, err := cwk.AssembleKernels(hist, train, test, 1, 4)
	require.NoError(t, err)

	direct, err := cwk.Compute(barbellAdj(), train, labels, test, 2, 4,
		cwk.WithAlpha(0.6), cwk.WithWalkLengths(1, 4))
	require.NoError(t, err)

	require.Equal(t, direct.Lengths, split.Lengths)
	for li := range direct.Lengths {
		assert.True(t, mat.Equal(direct.Train[li], split.Train[li]))
		assert.True(t, mat.Equal(direct.Test[li], split.Test[li]))
	}
}

// TestCompute_EmptyTestSet verifies that omitting test indices yields
// train kernels only.
func TestCompute_EmptyTestSet(t *testing.T) {
	out, err := cwk.Compute(pathAdj(), []int{0, 3}, []int{0, 1}, nil, 2, 2)
	require.NoError(t, err)

	assert.Nil(t, out.Test)
	_, err = out.TestAt(2)
	assert.ErrorIs(t, err, cwk.ErrLengthNotRequested)
}
