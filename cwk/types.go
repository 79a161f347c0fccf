package cwk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// History is the full propagation record: one n×K distribution matrix per
// iteration 0..WalkLength, where row v of At(t) is node v's class
// distribution after t steps.
//
// Produced once by the propagation engine and consumed read-only by the
// kernel assembler. Callers must treat the returned matrices as read-only;
// mutating them invalidates every kernel derived from the history.
type History struct {
	steps []*mat.Dense // len = walkLength+1, each n×K
}

// Len returns the number of recorded iterations, walkLength+1.
func (h *History) Len() int { return len(h.steps) }

// WalkLength returns the number of propagation steps taken.
func (h *History) WalkLength() int { return len(h.steps) - 1 }

// At returns the n×K distribution matrix after t steps, t in [0, WalkLength].
func (h *History) At(t int) (*mat.Dense, error) {
	if t < 0 || t >= len(h.steps) {
		return nil, fmt.Errorf("%w: t=%d, walkLength=%d", ErrIterationRange, t, h.WalkLength())
	}

	return h.steps[t], nil
}

// Kernels holds the assembled kernel matrices, one slice per requested
// walk length in ascending order.
//
// Train[l] is the numTrain×numTrain train-train kernel at Lengths[l]; it is
// symmetric and positive semidefinite (a Gram matrix of probability
// vectors). Test[l] is the numTest×numTrain test-train kernel. Both share
// *mat.Dense so downstream classifiers address them uniformly.
type Kernels struct {
	// Lengths lists the requested walk lengths, sorted ascending.
	Lengths []int

	// Train holds the train-train kernels, parallel to Lengths.
	Train []*mat.Dense

	// Test holds the test-train kernels, parallel to Lengths.
	Test []*mat.Dense
}

// TrainAt returns the train-train kernel at the given walk length, or
// ErrLengthNotRequested if that length was not part of the request set.
func (k *Kernels) TrainAt(length int) (*mat.Dense, error) {
	i, err := k.lookup(length)
	if err != nil {
		return nil, err
	}

	return k.Train[i], nil
}

// TestAt returns the test-train kernel at the given walk length, or
// ErrLengthNotRequested if that length was not part of the request set.
// When Compute ran with an empty test set there are no test kernels and
// every lookup fails.
func (k *Kernels) TestAt(length int) (*mat.Dense, error) {
	i, err := k.lookup(length)
	if err != nil {
		return nil, err
	}
	if k.Test == nil {
		return nil, fmt.Errorf("%w: no test kernels (empty test set)", ErrLengthNotRequested)
	}

	return k.Test[i], nil
}

// lookup resolves a walk length to its slice position. Lengths is short
// and sorted; a linear scan is simpler than binary search and never the
// bottleneck next to assembly itself.
func (k *Kernels) lookup(length int) (int, error) {
	for i, l := range k.Lengths {
		if l == length {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: length=%d, requested=%v", ErrLengthNotRequested, length, k.Lengths)
}
