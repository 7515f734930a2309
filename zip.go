package hop

import "math"

// Zip alternates between a and b on successive unit intervals, remapping
// each interval's fractional coordinate so that both curves are traversed
// continuously: on [2k, 2k+1) the result is a evaluated over [k, k+1),
// and on [2k+1, 2k+2) it is b evaluated over [k, k+1). At the seams,
// Zip(a, b)(2k) == a(k) and Zip(a, b)(2k+1) == b(k); the staircase
// constructors rely on this.
func Zip(a, b Fn[float64]) Fn[float64] {
	return func(t float64) float64 {
		if math.Mod(t, 2) < 1 {
			return a(math.Mod(t, 1) + math.Floor(t/2))
		}
		return b(math.Mod(t, 1) + math.Floor((t-1)/2))
	}
}
