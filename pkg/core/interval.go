package core

import "math"

// MinDist is the shadow-acne cutoff: the integrator's intersection
// range starts here, excluding self-intersections at t≈0.
const MinDist = 1e-3

// Interval is a real range from Min to Max used to clip ray
// parameters during intersection. Contains tests the open interior.
type Interval struct {
	Min, Max float64
}

// NewInterval builds an Interval.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Universe is the unbounded interval used by the top-level integrator
// intersection query.
func Universe() Interval {
	return Interval{Min: MinDist, Max: math.Inf(1)}
}

// Contains reports whether t lies within (Min, Max), the open interval
// used by intersection tests before accepting a root.
func (r Interval) Contains(t float64) bool {
	return t > r.Min && t < r.Max
}
