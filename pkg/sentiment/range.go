package sentiment

import "math"

// Range accumulates the most negative and most positive scores seen
// across a whole corpus. It is returned alongside enrichment results
// instead of living in package state, so separate runs never share
// extremes.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	seen bool
}

// NewRange rebuilds a non-empty range from stored extremes, for
// callers converting scores to percentages after the fact.
func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max, seen: true}
}

// Observe widens the range to include score.
func (r *Range) Observe(score float64) {
	if !r.seen {
		r.Min = score
		r.Max = score
		r.seen = true
		return
	}
	if score < r.Min {
		r.Min = score
	}
	if score > r.Max {
		r.Max = score
	}
}

// Merge folds another range into this one.
func (r *Range) Merge(other Range) {
	if !other.seen {
		return
	}
	r.Observe(other.Min)
	r.Observe(other.Max)
}

// Empty reports whether nothing has been observed.
func (r *Range) Empty() bool {
	return !r.seen
}

// Percent maps a score onto [-100, 100]: positive scores against the
// observed maximum, negative against the observed minimum. Zero (or an
// empty range) stays zero.
func (r *Range) Percent(score float64) int {
	var fraction float64
	switch {
	case score > 0 && r.Max > 0:
		fraction = score / r.Max
	case score < 0 && r.Min < 0:
		fraction = -(math.Abs(score) / math.Abs(r.Min))
	}
	if fraction > 1 {
		fraction = 1
	}
	if fraction < -1 {
		fraction = -1
	}
	return int(math.Round(fraction * 100))
}
