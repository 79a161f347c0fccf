// Package cwk computes Coinciding Walk Kernels: train-train and test-train
// kernel matrices derived from partially-absorbing random walks seeded at
// labeled nodes. The kernel between two nodes is the mean inner product of
// their label-propagation probability vectors over walk lengths 0..ℓ, which
// makes every train-train kernel a Gram matrix — symmetric and positive
// semidefinite by construction.
//
// Algorithm outline:
//
//  1. Initialize p₀: training nodes carry their observed label (one-hot,
//     or Dirichlet-smoothed toward the empirical class prior); free nodes
//     carry the uniform distribution (or the plain empirical prior).
//  2. Propagate for walkLength steps. Per node v at step t→t+1:
//     train v: p_{t+1}(v) = alpha·Σ_j T[v,j]·p_t(j) + (1−alpha)·p₀(v)
//     free  v: p_{t+1}(v) = Σ_j T[v,j]·p_t(j)
//     where T is the row-normalized transition operator (walkgraph).
//     Every intermediate state is recorded; rows are not renormalized and
//     may be sub-stochastic when alpha < 1 — this is intentional, the
//     assembler consumes raw vectors.
//  3. Assemble: accumulate S_train += P_t(train)·P_t(train)ᵀ and
//     S_test += P_t(test)·P_t(train)ᵀ across iterations; whenever t equals
//     a requested walk length, store S/(t+1) as the kernel at that length.
//     One propagation pass serves every requested length.
//
// Absorption semantics: alpha = 1 degenerates to pure diffusion with
// seeding only at t = 0; alpha = 0 hard-clamps training rows to p₀,
// matching classical label propagation with clamped seeds.
//
// Complexity:
//
//	– Propagation: O(walkLength · |E| · K)         (K = number of classes)
//	– Assembly:    O(walkLength · (m+u) · m · K)   (m = train, u = test nodes)
//
// Errors are classified into two broad sentinels — ErrInvalidConfiguration
// and ErrIndexOutOfRange — with fine-grained wrapped sentinels underneath;
// errors.Is matches at either level. All validation happens before the
// first iteration: a failed call performs no partial computation.
//
// Everything here is a pure, deterministic function of its inputs: two
// calls with identical inputs produce bit-identical outputs.
package cwk
