package walkgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Graph wraps a validated, immutable adjacency matrix together with the
// derived degree vector. It exposes the row-normalized transition operator
// of a simple random walk without ever materializing the n×n transition
// matrix: callers step distribution matrices row by row instead.
//
// Immutable once constructed; safe for concurrent readers.
type Graph struct {
	adj *mat.Dense // private snapshot of the adjacency matrix (n×n)
	deg []float64  // deg[i] = Σ_j adj[i,j]
	n   int        // number of nodes
}

// New validates adj and constructs an immutable Graph.
//
// Validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. adj must be square (ErrNonSquare).
//  3. Every entry must be finite (ErrNaNInf) and non-negative (ErrNegativeWeight).
//
// The matrix is copied, so later mutation of adj by the caller does not
// affect the Graph. Self-loops are permitted; symmetry is not required.
//
// Complexity: O(n²) time, O(n²) space for the snapshot.
func New(adj *mat.Dense) (*Graph, error) {
	// 1) Reject nil input before touching dimensions.
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	// 2) Reject non-square matrices.
	r, c := adj.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonSquare, r, c)
	}

	// 3) Scan entries once: enforce finiteness and non-negativity,
	//    deriving degrees in the same pass.
	deg := make([]float64, r)
	var w float64
	for i := 0; i < r; i++ {
		row := adj.RawRowView(i)
		for j, v := range row {
			w = v
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d)", ErrNaNInf, i, j)
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%g", ErrNegativeWeight, i, j, w)
			}
		}
		deg[i] = floats.Sum(row)
	}

	// 4) Snapshot the matrix so the Graph owns its storage.
	snapshot := mat.DenseCopyOf(adj)

	return &Graph{adj: snapshot, deg: deg, n: r}, nil
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return g.n }

// Degree returns deg[node] = Σ_j adj[node,j].
// A zero degree marks an isolated node; it is informational, not an error.
func (g *Graph) Degree(node int) (float64, error) {
	if node < 0 || node >= g.n {
		return 0, fmt.Errorf("%w: node=%d, n=%d", ErrNodeOutOfRange, node, g.n)
	}

	return g.deg[node], nil
}

// IsIsolated reports whether node has zero degree. Out-of-range nodes
// report false; use Degree when the index is untrusted.
func (g *Graph) IsIsolated(node int) bool {
	return node >= 0 && node < g.n && g.deg[node] == 0
}

// TransitionRow writes the row of the row-normalized transition operator
// for node into dst: dst[j] = adj[node,j] / deg[node].
// For an isolated node the row is the identity row (1 at node, 0 elsewhere),
// encoding the "stay" transition.
//
// dst must have length NumNodes.
//
// Complexity: O(n).
func (g *Graph) TransitionRow(node int, dst []float64) error {
	if node < 0 || node >= g.n {
		return fmt.Errorf("%w: node=%d, n=%d", ErrNodeOutOfRange, node, g.n)
	}
	if len(dst) != g.n {
		return fmt.Errorf("%w: len(dst)=%d, want %d", ErrShapeMismatch, len(dst), g.n)
	}

	// Isolated node: identity row, no division.
	if g.deg[node] == 0 {
		for j := range dst {
			dst[j] = 0
		}
		dst[node] = 1

		return nil
	}

	inv := 1 / g.deg[node]
	row := g.adj.RawRowView(node)
	for j, w := range row {
		dst[j] = w * inv
	}

	return nil
}

// StepDistribution applies one simple random-walk step for a single node:
// dst = Σ_j (adj[node,j] / deg[node]) · dist[j,:], the neighbor-weighted
// average of the per-node distribution rows in dist.
//
// For an isolated node (deg=0) the node's own row of dist is copied into
// dst unchanged — the identity transition.
//
// dist is an n×K matrix of per-node vectors; dst must have length K.
//
// Complexity: O(d(node)·K) touching only nonzero-weight neighbors,
// O(n·K) worst case on dense rows.
func (g *Graph) StepDistribution(dist *mat.Dense, node int, dst []float64) error {
	if node < 0 || node >= g.n {
		return fmt.Errorf("%w: node=%d, n=%d", ErrNodeOutOfRange, node, g.n)
	}
	r, k := dist.Dims()
	if r != g.n {
		return fmt.Errorf("%w: dist has %d rows, want %d", ErrShapeMismatch, r, g.n)
	}
	if len(dst) != k {
		return fmt.Errorf("%w: len(dst)=%d, want %d", ErrShapeMismatch, len(dst), k)
	}

	// Isolated node: stay put.
	if g.deg[node] == 0 {
		copy(dst, dist.RawRowView(node))

		return nil
	}

	// Accumulate the neighbor-weighted average. Entries with zero weight
	// are skipped: they contribute nothing and dense row scans dominate
	// sparse graphs otherwise.
	for j := range dst {
		dst[j] = 0
	}
	inv := 1 / g.deg[node]
	weights := g.adj.RawRowView(node)
	for j, w := range weights {
		if w == 0 {
			continue
		}
		floats.AddScaled(dst, w*inv, dist.RawRowView(j))
	}

	return nil
}

// StepDistributions applies one simple random-walk step to every node:
// dst[v,:] = Σ_j (adj[v,j] / deg[v]) · dist[j,:].
//
// dist and dst must be distinct n×K matrices with identical dimensions;
// all reads of dist happen before any write of dst, so each node's update
// is independent of every other node's within the step.
//
// Complexity: O(n²·K) worst case, O(|E|·K) on sparse adjacency.
func (g *Graph) StepDistributions(dist, dst *mat.Dense) error {
	if dist == dst {
		return ErrAliasedOutput
	}
	sr, sc := dist.Dims()
	tr, tc := dst.Dims()
	if sr != g.n || tr != g.n || sc != tc {
		return fmt.Errorf("%w: dist %d×%d, dst %d×%d, n=%d", ErrShapeMismatch, sr, sc, tr, tc, g.n)
	}

	for v := 0; v < g.n; v++ {
		if err := g.StepDistribution(dist, v, dst.RawRowView(v)); err != nil {
			return err
		}
	}

	return nil
}
