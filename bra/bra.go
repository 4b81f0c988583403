// Package bra implements the Biased Randomized Acceptance (BRA) index
// sampler shared by the Mapper and the PJS route builder.
//
// BRA draws an index in [0, n) biased toward zero: a geometric-like draw
// whose skew is controlled by beta. beta close to 1 (GreedyBeta) collapses
// almost deterministically onto index 0 (the best-ranked element of a
// caller-sorted list); smaller beta broadens exploration toward the tail.
//
// Determinism:
//   - Every draw goes through a caller-supplied *rand.Rand. There is no
//     package-level generator and no time-based seeding anywhere in this
//     package: same RNG state in, same index out.
//   - Derive/deriveSeed let independent callers (Mapper, each source's
//     PJS, Metaheuristic's beta draws) carve out uncorrelated substreams
//     from one root seed without sharing a *rand.Rand across goroutines.
//
// Concurrency: *rand.Rand is not goroutine-safe; never share one instance
// across concurrent callers. Derive a private stream per goroutine instead.
package bra

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// GreedyBeta is the beta value that makes BRA behave (near-)deterministically,
// almost always returning index 0 of a caller-sorted-best-first list.
const GreedyBeta = 0.9999

// epsilon is the lower bound of the open interval (epsilon, 1] the uniform
// draw is taken from; it keeps log(u) finite (u==0 would yield -Inf).
const epsilon = 1e-7

// defaultSeed is the fixed "zero" seed used when callers pass seed==0, so
// New(0) still produces a reproducible, non-degenerate stream.
const defaultSeed int64 = 1

// ErrEmptyDomain indicates BRA was asked to sample from a zero-length list,
// which is a precondition violation by the caller.
var ErrEmptyDomain = errors.New("bra: n must be > 0")

// ErrBetaOutOfRange indicates beta was outside the open interval (0, 1).
var ErrBetaOutOfRange = errors.New("bra: beta must lie in (0, 1)")

// New returns a deterministic *rand.Rand. Policy: seed==0 uses defaultSeed;
// any other seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche finalizer (Vigna 2014), giving
// well-distributed, uncorrelated substreams from related inputs.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG and
// a stream identifier. If base is nil, defaultSeed is the parent. Otherwise
// base.Int63() is consumed once first, so re-deriving the same stream id
// twice from the same base never produces identical children by accident.
//
// Usage: call during setup (Mapper pass, per-source PJS, elite
// intensification) — not inside hot per-draw loops.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// BetaSampler returns a distuv.Uniform over [minBeta, maxBeta), seeded from
// rng, for callers that restart a search with a freshly randomized beta on
// every iteration (Metaheuristic's restarts, MultiStart's re-optimization
// passes). Centralizing it here keeps every beta draw in the module behind
// one distribution type instead of an ad hoc rng.Float64()*span+min.
//
// Complexity: O(1).
func BetaSampler(rng *rand.Rand, minBeta, maxBeta float64) distuv.Uniform {
	return distuv.Uniform{Min: minBeta, Max: maxBeta, Src: rng}
}

// Sample draws an index in [0, n) biased toward zero, using rng.
//
// Algorithm:
//  1. Draw u uniform in (epsilon, 1].
//  2. k = floor(log(u) / log(1-beta)).
//  3. Return k mod n.
//
// Contracts: n must be > 0 (ErrEmptyDomain); beta must lie in (0, 1)
// (ErrBetaOutOfRange). rng must be non-nil.
//
// Complexity: O(1).
func Sample(rng *rand.Rand, n int, beta float64) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyDomain
	}
	if beta <= 0 || beta >= 1 {
		return 0, ErrBetaOutOfRange
	}

	// u in (epsilon, 1]: Float64() is [0,1), so 1-Float64() is (0,1]; clamp
	// the tiny tail below epsilon to avoid log(0).
	u := 1 - rng.Float64()
	if u < epsilon {
		u = epsilon
	}

	k := int(math.Floor(math.Log(u) / math.Log(1-beta)))
	idx := k % n
	if idx < 0 {
		// Go's % keeps the sign of the dividend; k is always >= 0 here since
		// log(u)<=0 and log(1-beta)<0, but guard defensively against FP edge
		// cases (u==1 => log(u)==0 => k==0, never negative in practice).
		idx += n
	}

	return idx, nil
}
