package cwk

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coinwalk/walkgraph"
)

// propagation holds the state of one partially-absorbing propagation run:
// the graph, the fixed absorbing distribution p₀, the train-node mask, and
// the growing history of per-iteration states.
type propagation struct {
	g       *walkgraph.Graph
	p0      *mat.Dense // fixed absorbing distribution, never mutated
	isTrain []bool     // isTrain[v] marks partially-absorbing nodes
	alpha   float64
	steps   []*mat.Dense // steps[t] = state after t iterations
}

// propagate runs the partially-absorbing propagation engine for walkLength
// steps from p0 and returns the full history. Inputs are assumed validated
// by Compute (alpha in [0,1], walkLength ≥ 0, p0 sized numNodes×numClasses).
//
// Transition rule, applied independently per node v at each step:
//
//	train v: p_{t+1}(v) = alpha·step(p_t, v) + (1−alpha)·p₀(v)
//	free  v: p_{t+1}(v) = step(p_t, v)
//
// where step is the neighbor-weighted average of walkgraph (identity for
// isolated nodes). No renormalization is applied between iterations; rows
// may be sub-stochastic when alpha < 1, which the kernel assembler expects.
//
// Complexity: O(walkLength · |E| · K) time, O(walkLength · n · K) space
// for the recorded history.
func propagate(g *walkgraph.Graph, p0 *mat.Dense, isTrain []bool, alpha float64, walkLength int) (*History, error) {
	run := &propagation{
		g:       g,
		p0:      p0,
		isTrain: isTrain,
		alpha:   alpha,
		steps:   make([]*mat.Dense, 0, walkLength+1),
	}

	// Iteration 0 is p₀ itself.
	run.steps = append(run.steps, p0)

	n, k := p0.Dims()
	for t := 1; t <= walkLength; t++ {
		next := mat.NewDense(n, k, nil)
		if err := run.advance(next); err != nil {
			return nil, fmt.Errorf("cwk: propagation step %d: %w", t, err)
		}
		run.steps = append(run.steps, next)
	}

	return &History{steps: run.steps}, nil
}

// advance computes the next state into dst from the last recorded state.
// All reads of iteration t complete before any write of iteration t+1:
// dst is a fresh matrix, so node updates within a step are independent.
func (p *propagation) advance(dst *mat.Dense) error {
	prev := p.steps[len(p.steps)-1]

	// 1) Pure diffusion step for every node.
	if err := p.g.StepDistributions(prev, dst); err != nil {
		return err
	}

	// 2) Partial absorption on training nodes: blend the diffused row with
	//    the fixed initial distribution. The blend is exact at both ends:
	//    alpha=1 leaves the diffused row untouched, alpha=0 restores p₀.
	if p.alpha == 1 {
		return nil
	}
	for v, train := range p.isTrain {
		if !train {
			continue
		}
		row := dst.RawRowView(v)
		floats.Scale(p.alpha, row)
		floats.AddScaled(row, 1-p.alpha, p.p0.RawRowView(v))
	}

	return nil
}
