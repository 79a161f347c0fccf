package cwk

import (
	"fmt"
	"sort"
)

// Defaults — single source of truth for zero-value behavior. These
// constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultAlpha is the absorption strength: 1 means pure diffusion with
	// label seeding only at iteration 0.
	DefaultAlpha = 1.0

	// DefaultUsePrior disables empirical-prior smoothing: training nodes
	// start one-hot, free nodes start uniform.
	DefaultUsePrior = false

	// DefaultPseudocount is the Dirichlet smoothing constant applied when
	// prior smoothing is enabled.
	DefaultPseudocount = 1.0
)

// Options configures a Compute call.
//
// Alpha       – absorption strength in [0,1]. Training nodes blend
//
//	alpha·(diffused mass) with (1−alpha)·p₀ at every step.
//
// WalkLengths – walk lengths at which kernels are extracted. nil or empty
//
//	means {walkLength}. Auto-sorted ascending and de-duplicated;
//	each value must lie in [0, walkLength].
//
// UsePrior    – smooth initial distributions toward the empirical class
//
//	frequencies among the observed labels.
//
// Pseudocount – additive Dirichlet constant; relevant only when UsePrior.
//
//	Must be > 0 while UsePrior is set.
type Options struct {
	Alpha       float64
	WalkLengths []int
	UsePrior    bool
	Pseudocount float64
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithAlpha sets the absorption strength. Values outside [0,1] are
// rejected by Compute with ErrBadAlpha; the setter itself never panics so
// that invalid configuration surfaces as a classified error, not a crash.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithWalkLengths requests kernel extraction at the given walk lengths.
// The request is auto-sorted and de-duplicated during resolution; negative
// values or values exceeding walkLength fail with ErrBadWalkLengths.
// Calling with no arguments restores the default {walkLength}.
func WithWalkLengths(lengths ...int) Option {
	return func(o *Options) { o.WalkLengths = lengths }
}

// WithPrior enables empirical-prior smoothing of the initial distributions
// with the given pseudocount. Non-positive pseudocounts are rejected by
// Compute with ErrBadPseudocount.
func WithPrior(pseudocount float64) Option {
	return func(o *Options) {
		o.UsePrior = true
		o.Pseudocount = pseudocount
	}
}

// WithoutPrior restores the default one-hot / uniform initialization.
func WithoutPrior() Option {
	return func(o *Options) {
		o.UsePrior = false
		o.Pseudocount = DefaultPseudocount
	}
}

// DefaultOptions returns an Options value initialized with the documented
// defaults. Use it as a starting point when inspecting or testing the
// effective configuration; Compute resolves functional options against it.
func DefaultOptions() Options {
	return Options{
		Alpha:       DefaultAlpha,
		WalkLengths: nil, // resolved to {walkLength} in gatherOptions
		UsePrior:    DefaultUsePrior,
		Pseudocount: DefaultPseudocount,
	}
}

// gatherOptions applies setters on top of defaults (last-writer-wins),
// then validates and normalizes the result against walkLength:
//   - Alpha must lie in [0,1].
//   - walkLength must be ≥ 0.
//   - Pseudocount must be > 0 when UsePrior is set.
//   - WalkLengths defaults to {walkLength}; otherwise it is copied, sorted
//     ascending and de-duplicated, and every value must lie in [0, walkLength].
//
// Sorting/de-duplication is the only silent correction performed anywhere
// in this package.
func gatherOptions(walkLength int, user ...Option) (Options, error) {
	o := DefaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	// Fail fast, configuration before data (see Compute for the full order).
	if walkLength < 0 {
		return Options{}, fmt.Errorf("%w: walkLength=%d", ErrNegativeWalkLength, walkLength)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return Options{}, fmt.Errorf("%w: alpha=%g", ErrBadAlpha, o.Alpha)
	}
	if o.UsePrior && o.Pseudocount <= 0 {
		return Options{}, fmt.Errorf("%w: pseudocount=%g", ErrBadPseudocount, o.Pseudocount)
	}

	// Resolve the requested lengths.
	if len(o.WalkLengths) == 0 {
		o.WalkLengths = []int{walkLength}

		return o, nil
	}

	lengths := make([]int, len(o.WalkLengths))
	copy(lengths, o.WalkLengths)
	sort.Ints(lengths)

	// Bounds check on the sorted copy, then de-duplicate in place.
	if lengths[0] < 0 || lengths[len(lengths)-1] > walkLength {
		return Options{}, fmt.Errorf("%w: lengths=%v, walkLength=%d", ErrBadWalkLengths, lengths, walkLength)
	}
	dedup := lengths[:1]
	for _, l := range lengths[1:] {
		if l != dedup[len(dedup)-1] {
			dedup = append(dedup, l)
		}
	}
	o.WalkLengths = dedup

	return o, nil
}
