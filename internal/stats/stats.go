// Package stats provides the sampling primitives shared by every
// generator. All functions are pure given the *rand.Rand they receive, so
// a fixed seed reproduces an identical draw sequence. Invalid parameters
// fail fast with a descriptive error rather than corrupting a run.
package stats

import (
	"fmt"
	"math"
	"math/rand"
)

// Weighted pairs a candidate with its sampling weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Choice draws one item from a weighted set. Weights are normalized
// defensively, so sets that sum to 0.999 due to float drift still work;
// an empty set or all-zero weights is an error.
func Choice[T any](r *rand.Rand, choices []Weighted[T]) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, fmt.Errorf("weighted choice over empty set")
	}
	total := 0.0
	for _, c := range choices {
		if c.Weight < 0 {
			return zero, fmt.Errorf("negative weight %g", c.Weight)
		}
		total += c.Weight
	}
	if total <= 0 {
		return zero, fmt.Errorf("weighted choice: all weights are zero")
	}
	target := r.Float64() * total
	acc := 0.0
	for _, c := range choices {
		acc += c.Weight
		if target < acc {
			return c.Item, nil
		}
	}
	return choices[len(choices)-1].Item, nil
}

// TruncatedNormal samples N(mean, std) clamped to [min, max].
func TruncatedNormal(r *rand.Rand, mean, std, min, max float64) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("truncated normal: min %g > max %g", min, max)
	}
	if std < 0 {
		return 0, fmt.Errorf("truncated normal: negative std %g", std)
	}
	v := r.NormFloat64()*std + mean
	return math.Max(min, math.Min(max, v)), nil
}

// TruncatedNormalInt samples N(mean, std) and clamps to the inclusive
// integer range [min, max].
func TruncatedNormalInt(r *rand.Rand, mean, std float64, min, max int) (int, error) {
	v, err := TruncatedNormal(r, mean, std, float64(min), float64(max))
	if err != nil {
		return 0, err
	}
	n := int(v)
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n, nil
}

// LogNormalDays samples a cycle time in whole days from a log-normal
// distribution: ln(days) ~ N(meanLog, stdLog), floored at minDays.
func LogNormalDays(r *rand.Rand, meanLog, stdLog float64, minDays int) int {
	days := int(math.Exp(r.NormFloat64()*stdLog + meanLog))
	if days < minDays {
		days = minDays
	}
	return days
}

// Bernoulli reports true with probability p.
func Bernoulli(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// IntBetween draws uniformly from the inclusive range [min, max].
func IntBetween(r *rand.Rand, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("int range: min %d > max %d", min, max)
	}
	return min + r.Intn(max-min+1), nil
}

// Sample draws n distinct items without replacement. When n exceeds the
// set size the whole set is returned in shuffled order.
func Sample[T any](r *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	idx := r.Perm(len(items))
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}
