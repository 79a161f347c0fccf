package walkgraph

import "errors"

// Sentinel errors for graph-model construction and stepping.
// All algorithms return these sentinels and tests check them via errors.Is.
var (
	// ErrNilAdjacency indicates that a nil adjacency matrix was supplied.
	ErrNilAdjacency = errors.New("walkgraph: adjacency matrix is nil")

	// ErrNonSquare indicates the adjacency matrix is not square.
	ErrNonSquare = errors.New("walkgraph: adjacency matrix must be square")

	// ErrNegativeWeight indicates a negative edge weight in the adjacency matrix.
	ErrNegativeWeight = errors.New("walkgraph: edge weights must be non-negative")

	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("walkgraph: NaN or Inf encountered in adjacency matrix")

	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("walkgraph: node index out of range")

	// ErrShapeMismatch indicates distribution matrices with incompatible dimensions.
	ErrShapeMismatch = errors.New("walkgraph: distribution shape mismatch")

	// ErrAliasedOutput indicates that the destination matrix aliases the source;
	// stepping requires all reads of step t to complete before writes of t+1.
	ErrAliasedOutput = errors.New("walkgraph: destination must not alias source")
)
