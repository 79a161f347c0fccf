// Package coinwalk computes Coinciding Walk Kernels (CWK): graph kernels
// for semi-supervised node classification built from partially-absorbing
// random walks seeded at labeled nodes.
//
// 🚀 What is coinwalk?
//
//	A small, deterministic library that turns label propagation into
//	positive-semidefinite kernel matrices:
//		• walkgraph/ — immutable weighted-graph model: degrees and the
//		  row-normalized transition operator over a dense adjacency matrix
//		• cwk/      — label initialization (one-hot or prior-smoothed),
//		  the partially-absorbing propagation engine, and the kernel
//		  assembler that averages outer products across walk lengths
//
// ✨ Why choose coinwalk?
//
//   - Few labels, many nodes – built for the semi-supervised regime
//   - One pass, many kernels – evaluate several walk lengths from a
//     single propagation run
//   - Deterministic – pure functions of their inputs, no hidden state
//   - Pure Go on gonum – dense linear algebra, no cgo
//
// The kernel between two nodes is the mean inner product of their
// label-propagation probability vectors over walk lengths 0..ℓ. Training
// nodes are partially absorbing: with weight (1−alpha) they revert toward
// their fixed label distribution at every step, and with weight alpha they
// keep receiving probability mass diffused from their neighbors.
//
// Dive into cwk.Compute for the end-to-end entry point, and examples/ for
// runnable demos on small labeled graphs.
//
//	go get github.com/katalvlaran/coinwalk/cwk
package coinwalk
