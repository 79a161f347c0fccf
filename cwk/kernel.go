package cwk

import (
	"gonum.org/v1/gonum/mat"
)

// assembler accumulates the running outer-product sums across iterations
// and extracts normalized kernel slices at the requested walk lengths.
type assembler struct {
	train []int
	test  []int

	// Row-gather buffers, refilled every iteration.
	pTrain *mat.Dense // numTrain×K rows of the current iteration
	pTest  *mat.Dense // numTest×K rows of the current iteration

	// Running sums S = Σ_t P_t(rows)·P_t(train)ᵀ.
	sumTrain *mat.Dense // numTrain×numTrain
	sumTest  *mat.Dense // numTest×numTrain

	// Scratch for one outer-product term per iteration.
	tmpTrain *mat.Dense
	tmpTest  *mat.Dense
}

// assemble consumes a propagation history and produces kernels at each
// requested walk length. lengths must be sorted ascending, de-duplicated,
// and bounded by hist.WalkLength() (gatherOptions guarantees all three);
// train/test indices are assumed validated by Compute, with at least one
// train node. An empty test set yields Kernels.Test == nil.
//
// For each iteration t = 0..last requested length:
//
//	S_train += P_t(train)·P_t(train)ᵀ
//	S_test  += P_t(test)·P_t(train)ᵀ
//
// and whenever t equals the next requested length, S/(t+1) is stored as
// the kernel for that length — the mean coincidence per step, so kernel
// magnitudes stay comparable across walk lengths. A cursor walks the
// sorted request list in lockstep with t, so membership testing costs
// O(walkLength) total and the loop stops after the last requested length.
//
// Complexity: O(L_max · (m+u) · m · K) time for m train nodes, u test
// nodes and largest requested length L_max.
func assemble(hist *History, train, test, lengths []int) *Kernels {
	numTrain, numTest := len(train), len(test)
	_, k := hist.steps[0].Dims()

	a := &assembler{
		train:    train,
		test:     test,
		pTrain:   mat.NewDense(numTrain, k, nil),
		sumTrain: mat.NewDense(numTrain, numTrain, nil),
		tmpTrain: mat.NewDense(numTrain, numTrain, nil),
	}
	if numTest > 0 {
		a.pTest = mat.NewDense(numTest, k, nil)
		a.sumTest = mat.NewDense(numTest, numTrain, nil)
		a.tmpTest = mat.NewDense(numTest, numTrain, nil)
	}

	out := &Kernels{
		Lengths: lengths,
		Train:   make([]*mat.Dense, 0, len(lengths)),
	}
	if numTest > 0 {
		out.Test = make([]*mat.Dense, 0, len(lengths))
	}

	cursor := 0
	for t := 0; cursor < len(lengths); t++ {
		a.accumulate(hist.steps[t])

		// Extract every kernel due at this iteration (lengths are distinct,
		// so at most one, but the loop keeps the invariant obvious).
		for cursor < len(lengths) && lengths[cursor] == t {
			norm := 1 / float64(t+1)
			kTrain := mat.NewDense(numTrain, numTrain, nil)
			kTrain.Scale(norm, a.sumTrain)
			out.Train = append(out.Train, kTrain)
			if numTest > 0 {
				kTest := mat.NewDense(numTest, numTrain, nil)
				kTest.Scale(norm, a.sumTest)
				out.Test = append(out.Test, kTest)
			}
			cursor++
		}
	}

	return out
}

// accumulate folds one iteration's distributions into the running sums.
func (a *assembler) accumulate(p *mat.Dense) {
	gatherRows(a.pTrain, p, a.train)
	a.tmpTrain.Mul(a.pTrain, a.pTrain.T())
	a.sumTrain.Add(a.sumTrain, a.tmpTrain)

	if a.pTest == nil {
		return
	}
	gatherRows(a.pTest, p, a.test)
	a.tmpTest.Mul(a.pTest, a.pTrain.T())
	a.sumTest.Add(a.sumTest, a.tmpTest)
}

// gatherRows copies the selected rows of src into dst (len(idx) rows).
func gatherRows(dst, src *mat.Dense, idx []int) {
	for i, v := range idx {
		copy(dst.RawRowView(i), src.RawRowView(v))
	}
}
