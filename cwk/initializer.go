package cwk

import "gonum.org/v1/gonum/mat"

// initialDistributions builds the iteration-0 class-distribution matrix p₀
// (numNodes×numClasses). Inputs are assumed validated by Compute.
//
// Without prior smoothing:
//   - training node with label c → one-hot at c.
//   - free node → uniform 1/numClasses.
//
// With prior smoothing (pseudocount pc, class counts over observed labels):
//   - free node:            p(k) = (count(k)+pc) / (numTrain + K·pc)
//   - training node, label c: p(k) = (count(k)+pc+[k==c]) / (numTrain + K·pc + 1)
//
// The training-node form boosts the node's own class by one full unit of
// count before normalizing, so the observed label dominates while the
// prior fills in uncertainty for the off-target classes.
func initialDistributions(numNodes, numClasses int, train, labels []int, opts Options) *mat.Dense {
	p0 := mat.NewDense(numNodes, numClasses, nil)

	if !opts.UsePrior {
		// Free nodes: uniform rows.
		uniform := 1 / float64(numClasses)
		for v := 0; v < numNodes; v++ {
			row := p0.RawRowView(v)
			for k := range row {
				row[k] = uniform
			}
		}
		// Training nodes: overwrite with one-hot rows.
		for i, v := range train {
			row := p0.RawRowView(v)
			for k := range row {
				row[k] = 0
			}
			row[labels[i]] = 1
		}

		return p0
	}

	// Empirical class counts among the observed labels.
	counts := make([]float64, numClasses)
	for _, c := range labels {
		counts[c]++
	}

	pc := opts.Pseudocount
	numTrain := float64(len(train))
	freeNorm := 1 / (numTrain + float64(numClasses)*pc)
	trainNorm := 1 / (numTrain + float64(numClasses)*pc + 1)

	// Free nodes: pseudocount-smoothed empirical frequencies.
	for v := 0; v < numNodes; v++ {
		row := p0.RawRowView(v)
		for k := range row {
			row[k] = (counts[k] + pc) * freeNorm
		}
	}

	// Training nodes: smoothed frequencies with the observed class boosted
	// by one unit of count.
	for i, v := range train {
		row := p0.RawRowView(v)
		c := labels[i]
		for k := range row {
			boost := 0.0
			if k == c {
				boost = 1
			}
			row[k] = (counts[k] + pc + boost) * trainNorm
		}
	}

	return p0
}
