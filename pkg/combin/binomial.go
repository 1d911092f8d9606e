package combin

import (
	gcombin "gonum.org/v1/gonum/stat/combin"
)

// ExactLimit is the largest n for which Binomial uses exact integer
// arithmetic. C(60, 30) * 30 still fits in an int64.
const ExactLimit = 60

// Binomial returns C(n, r) as a float64.
// Out of range r (r < 0 or r > n) yields 0 rather than an error, since the
// probability sums walk off the edge of Pascal's triangle routinely.
func Binomial(n, r int) float64 {
	if r < 0 || r > n {
		return 0
	}
	if r == 0 || r == n {
		return 1
	}

	if r > n-r {
		r = n - r
	}

	if n <= ExactLimit {
		return float64(gcombin.Binomial(n, r))
	}

	// Multiply and divide at each step so the running value stays close
	// to an integer of the final magnitude instead of overflowing.
	v := 1.0
	for i := 0; i < r; i++ {
		v = v * float64(n-i) / float64(i+1)
	}
	return v
}
