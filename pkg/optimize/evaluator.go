package optimize

import (
	"fmt"

	"github.com/runningwild/secretary/pkg/stopping"
)

// Evaluator computes P(d) for a fixed (n, k), sharing one denominator table
// and remembering every d it has already seen.
type Evaluator struct {
	den   stopping.Denominators
	cache map[int]float64
	calls int
}

func NewEvaluator(n, k int) (*Evaluator, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: search needs n >= 2, got %d", stopping.ErrInvalidArgument, n)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: search needs k >= 1, got %d", stopping.ErrInvalidArgument, k)
	}
	return &Evaluator{
		den:   stopping.NewDenominators(n, k),
		cache: make(map[int]float64),
	}, nil
}

// Evaluate returns P(d, n, k). Each distinct d is computed once.
func (e *Evaluator) Evaluate(d int) float64 {
	if p, ok := e.cache[d]; ok {
		return p
	}
	e.calls++
	p := e.den.Success(d)
	e.cache[d] = p
	return p
}

// Evaluations returns how many distinct d have been computed.
func (e *Evaluator) Evaluations() int { return e.calls }

func (e *Evaluator) N() int { return e.den.N() }
func (e *Evaluator) K() int { return e.den.K() }
