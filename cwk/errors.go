package cwk

import (
	"errors"
	"fmt"
)

// Broad error classes. Every failure out of this package matches exactly
// one of these via errors.Is; the fine-grained sentinels below wrap them,
// so callers may test at either granularity.
var (
	// ErrInvalidConfiguration covers malformed parameters: alpha outside
	// [0,1], negative walk length, non-positive pseudocount under prior
	// smoothing, malformed requested walk lengths, mismatched train/label
	// lengths, or a non-positive class count.
	ErrInvalidConfiguration = errors.New("cwk: invalid configuration")

	// ErrIndexOutOfRange covers out-of-range node indices, duplicate node
	// indices, and observed labels outside [0, numClasses).
	ErrIndexOutOfRange = errors.New("cwk: index out of range")
)

// Fine-grained sentinels. Each wraps its broad class, so
// errors.Is(err, ErrBadAlpha) and errors.Is(err, ErrInvalidConfiguration)
// both hold for an alpha failure.
var (
	// ErrBadAlpha indicates alpha outside the closed interval [0,1].
	ErrBadAlpha = fmt.Errorf("%w: alpha must lie in [0,1]", ErrInvalidConfiguration)

	// ErrNegativeWalkLength indicates walkLength < 0.
	ErrNegativeWalkLength = fmt.Errorf("%w: walk length must be non-negative", ErrInvalidConfiguration)

	// ErrBadWalkLengths indicates a requested walk length that is negative
	// or exceeds walkLength. (Unsorted requests are auto-sorted, never an
	// error — the only silent correction this package performs.)
	ErrBadWalkLengths = fmt.Errorf("%w: requested walk lengths must lie in [0, walkLength]", ErrInvalidConfiguration)

	// ErrBadPseudocount indicates pseudocount ≤ 0 while prior smoothing is enabled.
	ErrBadPseudocount = fmt.Errorf("%w: pseudocount must be positive under prior smoothing", ErrInvalidConfiguration)

	// ErrBadClassCount indicates numClasses < 1.
	ErrBadClassCount = fmt.Errorf("%w: number of classes must be at least 1", ErrInvalidConfiguration)

	// ErrLabelMismatch indicates len(trainIndices) != len(observedLabels).
	ErrLabelMismatch = fmt.Errorf("%w: train indices and observed labels must have equal length", ErrInvalidConfiguration)

	// ErrEmptyTrainSet indicates that no train indices were supplied; the
	// kernel is defined over at least one labeled node.
	ErrEmptyTrainSet = fmt.Errorf("%w: at least one train index is required", ErrInvalidConfiguration)

	// ErrNilHistory indicates a nil or empty History passed to AssembleKernels.
	ErrNilHistory = fmt.Errorf("%w: propagation history is nil or empty", ErrInvalidConfiguration)
)

var (
	// ErrTrainIndexRange indicates a train index outside [0, numNodes).
	ErrTrainIndexRange = fmt.Errorf("%w: train index outside [0, numNodes)", ErrIndexOutOfRange)

	// ErrTestIndexRange indicates a test index outside [0, numNodes).
	ErrTestIndexRange = fmt.Errorf("%w: test index outside [0, numNodes)", ErrIndexOutOfRange)

	// ErrLabelRange indicates an observed label outside [0, numClasses).
	ErrLabelRange = fmt.Errorf("%w: observed label outside [0, numClasses)", ErrIndexOutOfRange)

	// ErrDuplicateIndex indicates a node index listed more than once in
	// trainIndices or testIndices.
	ErrDuplicateIndex = fmt.Errorf("%w: node index listed more than once", ErrIndexOutOfRange)

	// ErrIterationRange indicates a History lookup outside [0, WalkLength].
	ErrIterationRange = fmt.Errorf("%w: iteration outside recorded history", ErrIndexOutOfRange)
)

// ErrLengthNotRequested indicates a Kernels lookup for a walk length that
// was not part of the request set.
var ErrLengthNotRequested = errors.New("cwk: walk length was not requested")
