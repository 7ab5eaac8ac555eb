package generate

import (
	"math"
	"math/rand"
	"strings"
)

// sampleInts draws k distinct values from pool without replacement. The pool
// itself is never mutated. k larger than the pool returns the whole pool in
// shuffled order.
func sampleInts(r *rand.Rand, pool []int, k int) []int {
	if k > len(pool) {
		k = len(pool)
	}
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, pool[idx[i]])
	}
	return out
}

func choiceString(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// weightedChoice draws one item with the given relative weights.
func weightedChoice(r *rand.Rand, items []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := r.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// uniform draws from [min, max).
func uniform(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// randInt draws from [min, max], both inclusive.
func randInt(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

func flag(r *rand.Rand) int {
	return r.Intn(2)
}

// roundThousand rounds a monetary amount to the nearest thousand, the
// smallest currency granularity in this dataset.
func roundThousand(v float64) float64 {
	return math.Round(v/1000) * 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
