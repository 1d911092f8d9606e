// Package stopping evaluates the explore-then-commit rule of the secretary
// problem: skip the first d of n candidates, then take the first one that
// beats everything seen so far, and win if its true rank is within the top k.
package stopping

import (
	"errors"
	"fmt"

	"github.com/runningwild/secretary/pkg/combin"
)

// ErrInvalidArgument is returned for (d, n, k) outside the model's domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Validate checks 0 <= d < n, n >= 1 and k >= 1.
func Validate(d, n, k int) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d, need n >= 1", ErrInvalidArgument, n)
	}
	if k < 1 {
		return fmt.Errorf("%w: k=%d, need k >= 1", ErrInvalidArgument, k)
	}
	if d < 0 || d >= n {
		return fmt.Errorf("%w: d=%d, need 0 <= d < n=%d", ErrInvalidArgument, d, n)
	}
	return nil
}

// Denominators caches C(n-1, j-1) for j = 1..min(k, n). The values depend
// only on j, so one table serves every (d, i) of a given (n, k).
type Denominators struct {
	n    int
	k    int
	vals []float64
}

// NewDenominators builds the cache for (n, k). Ranks j > n cannot occur, so
// the table is truncated there; those terms would otherwise be 0/0.
func NewDenominators(n, k int) Denominators {
	m := k
	if m > n {
		m = n
	}
	if m < 0 {
		m = 0
	}
	vals := make([]float64, m)
	for j := 1; j <= m; j++ {
		vals[j-1] = combin.Binomial(n-1, j-1)
	}
	return Denominators{n: n, k: k, vals: vals}
}

// N returns the number of candidates the table was built for.
func (den Denominators) N() int { return den.n }

// K returns the rank cutoff the table was built for.
func (den Denominators) K() int { return den.k }

// Success computes P(d, n, k) for the table's (n, k). It does no domain
// checking; d outside [1, n) gives 0.
func (den Denominators) Success(d int) float64 {
	n := den.n
	if d <= 0 || d >= n {
		return 0
	}

	var p float64
	for i := d + 1; i <= n; i++ {
		// Best of the first i-1 was banked during exploration, and
		// candidate i is a new running maximum.
		w := float64(d) / (float64(i-1) * float64(n))
		for j := 1; j <= len(den.vals); j++ {
			// Exactly j-1 better candidates lie after position i.
			p += w * combin.Binomial(n-i, j-1) / den.vals[j-1]
		}
	}
	return p
}

// SuccessProbability returns P(d, n, k), the probability that the rule
// commits to a candidate whose true rank is at most k. d == 0 gives 0.
func SuccessProbability(d, n, k int) (float64, error) {
	if err := Validate(d, n, k); err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil
	}
	return NewDenominators(n, k).Success(d), nil
}
