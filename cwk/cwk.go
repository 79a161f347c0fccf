package cwk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coinwalk/walkgraph"
)

// Compute runs the full coinciding-walk-kernel pipeline: it validates
// every input, builds the graph model, initializes the iteration-0 label
// distributions, propagates them for walkLength partially-absorbing steps,
// and assembles train-train and test-train kernels at each requested walk
// length from the single propagation pass.
//
// Inputs:
//
//   - adj:        square nonnegative adjacency matrix (symmetric or not,
//     self-loops permitted); construction and loading are the caller's
//     concern.
//   - train:      distinct node indices carrying observed labels (≥ 1).
//   - labels:     one label per train index, each in [0, numClasses).
//   - test:       distinct node indices to score against the train set;
//     may be empty, in which case no test kernels are produced.
//   - numClasses: number of classes, ≥ 1.
//   - walkLength: number of propagation steps, ≥ 0.
//   - opts:       WithAlpha, WithWalkLengths, WithPrior, WithoutPrior.
//
// Defaults: alpha=1, walk lengths={walkLength}, no prior smoothing.
//
// Preconditions and validation (in order, fail fast — no partial
// computation after a failure):
//  1. Configuration: walkLength ≥ 0, alpha ∈ [0,1], pseudocount > 0 under
//     prior smoothing, requested lengths within [0, walkLength]
//     (auto-sorted and de-duplicated; the only silent correction).
//  2. numClasses ≥ 1 (ErrBadClassCount).
//  3. len(train) == len(labels) (ErrLabelMismatch), len(train) ≥ 1
//     (ErrEmptyTrainSet).
//  4. Adjacency validity via walkgraph.New (nil, non-square, negative or
//     non-finite entries surface as walkgraph sentinels).
//  5. Train/test indices within [0, n) and each set duplicate-free;
//     labels within [0, numClasses) — ErrIndexOutOfRange class. Overlap
//     between train and test is legal (transductive callers often score
//     training nodes too).
//
// The computation itself is a pure, deterministic function of its inputs:
// identical inputs yield bit-identical kernels. There is no retry logic —
// retrying without changing inputs cannot change the outcome.
//
// Complexity: O(walkLength·|E|·K) propagation plus O(L_max·(m+u)·m·K)
// assembly; memory O(walkLength·n·K) for the history.
func Compute(adj *mat.Dense, train, labels, test []int, numClasses, walkLength int, opts ...Option) (*Kernels, error) {
	// 1) Resolve and validate configuration.
	cfg, err := gatherOptions(walkLength, opts...)
	if err != nil {
		return nil, err
	}
	if err = validateSplit(train, labels, numClasses); err != nil {
		return nil, err
	}

	// 2) Graph model; validates the adjacency matrix and snapshots it.
	g, err := walkgraph.New(adj)
	if err != nil {
		return nil, err
	}
	n := g.NumNodes()

	// 3) Index ranges, duplicate-freedom per set.
	if err = validateIndices(n, train, ErrTrainIndexRange); err != nil {
		return nil, err
	}
	if err = validateIndices(n, test, ErrTestIndexRange); err != nil {
		return nil, err
	}

	// 4) Initialize, propagate, assemble.
	p0 := initialDistributions(n, numClasses, train, labels, cfg)
	hist, err := propagate(g, p0, trainMask(n, train), cfg.Alpha, walkLength)
	if err != nil {
		return nil, err
	}

	return assemble(hist, train, test, cfg.WalkLengths), nil
}

// Propagate exposes the propagation engine on its own: it performs the
// same validation as Compute (minus the test set) and returns the full
// per-iteration history without assembling kernels. Useful for inspecting
// label-propagation behavior directly, or for assembling kernels over
// several index sets via AssembleKernels.
func Propagate(adj *mat.Dense, train, labels []int, numClasses, walkLength int, opts ...Option) (*History, error) {
	cfg, err := gatherOptions(walkLength, opts...)
	if err != nil {
		return nil, err
	}
	if err = validateSplit(train, labels, numClasses); err != nil {
		return nil, err
	}

	g, err := walkgraph.New(adj)
	if err != nil {
		return nil, err
	}
	n := g.NumNodes()
	if err = validateIndices(n, train, ErrTrainIndexRange); err != nil {
		return nil, err
	}

	p0 := initialDistributions(n, numClasses, train, labels, cfg)

	return propagate(g, p0, trainMask(n, train), cfg.Alpha, walkLength)
}

// AssembleKernels builds kernels from an existing propagation history,
// letting several index sets reuse one propagation pass. Requested lengths
// are auto-sorted, de-duplicated, and validated against hist.WalkLength();
// indices are validated against the history dimensions.
//
// hist must have been produced with the same train set for the absorption
// semantics to be meaningful; this function only checks ranges. Omitting
// lengths requests the full walk length.
func AssembleKernels(hist *History, train, test []int, lengths ...int) (*Kernels, error) {
	if hist == nil || len(hist.steps) == 0 {
		return nil, ErrNilHistory
	}
	cfg, err := gatherOptions(hist.WalkLength(), WithWalkLengths(lengths...))
	if err != nil {
		return nil, err
	}
	if len(train) == 0 {
		return nil, ErrEmptyTrainSet
	}

	n, _ := hist.steps[0].Dims()
	if err = validateIndices(n, train, ErrTrainIndexRange); err != nil {
		return nil, err
	}
	if err = validateIndices(n, test, ErrTestIndexRange); err != nil {
		return nil, err
	}

	return assemble(hist, train, test, cfg.WalkLengths), nil
}

// validateSplit checks the structural agreement of the labeled split:
// class count, index/label length match, non-empty train set, label range.
func validateSplit(train, labels []int, numClasses int) error {
	if numClasses < 1 {
		return fmt.Errorf("%w: numClasses=%d", ErrBadClassCount, numClasses)
	}
	if len(train) != len(labels) {
		return fmt.Errorf("%w: %d indices, %d labels", ErrLabelMismatch, len(train), len(labels))
	}
	if len(train) == 0 {
		return ErrEmptyTrainSet
	}
	for i, c := range labels {
		if c < 0 || c >= numClasses {
			return fmt.Errorf("%w: label %d at position %d, numClasses=%d", ErrLabelRange, c, i, numClasses)
		}
	}

	return nil
}

// validateIndices checks that every index lies in [0,n) and appears at
// most once; rangeErr selects the train- or test-flavored sentinel.
func validateIndices(n int, idx []int, rangeErr error) error {
	seen := make(map[int]struct{}, len(idx))
	for _, v := range idx {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d, n=%d", rangeErr, v, n)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: index %d", ErrDuplicateIndex, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// trainMask marks the training nodes in a length-n boolean mask.
// Indices are assumed validated.
func trainMask(n int, train []int) []bool {
	mask := make([]bool, n)
	for _, v := range train {
		mask[v] = true
	}

	return mask
}
