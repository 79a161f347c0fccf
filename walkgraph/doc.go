// Package walkgraph defines the immutable graph model that the coinciding
// walk kernel propagates over: a dense, nonnegative adjacency matrix, the
// derived degree vector, and the row-normalized transition operator of a
// simple random walk.
//
// The model answers exactly one algorithmic question: "given per-node
// distribution vectors at step t, what does one random-walk step deliver to
// node v?" — Σ_j (adj[v,j] / deg[v]) · dist[j]. All graph-traversal
// arithmetic lives here so the propagation recurrence in package cwk stays
// free of adjacency bookkeeping.
//
// Zero-degree (isolated) nodes are legal: their transition is defined as
// the identity ("stay"), never a division by zero and never an error.
//
// Construction validates the adjacency matrix once (square, finite,
// nonnegative entries) and snapshots it; a Graph never mutates afterward
// and is safe for concurrent readers.
//
// Complexity:
//
//	– New:               O(n²)  validation + degree derivation
//	– StepDistribution:  O(n·K) for K-column distribution matrices
//	– StepDistributions: O(n²·K)
//
// Errors (sentinel):
//
//	– ErrNilAdjacency   if the adjacency matrix is nil.
//	– ErrNonSquare      if the adjacency matrix is not square.
//	– ErrNegativeWeight if any edge weight is negative.
//	– ErrNaNInf         if any entry is NaN or ±Inf.
//	– ErrNodeOutOfRange if a node index falls outside [0, NumNodes).
//	– ErrShapeMismatch  if distribution matrices disagree on dimensions.
//	– ErrAliasedOutput  if the destination aliases the source matrix.
package walkgraph
