package optimize

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// Result is the optimum found by a search.
type Result struct {
	D           int     `json:"d"`
	P           float64 `json:"p"`
	Evaluations int     `json:"evaluations"`
}

// CoordinateOptimizer finds d* by step-halving hill climbing. P(d) is
// unimodal in d, so the local maximum it settles on is the global one.
type CoordinateOptimizer struct {
	eval *Evaluator
}

func NewCoordinate(n, k int) (*CoordinateOptimizer, error) {
	eval, err := NewEvaluator(n, k)
	if err != nil {
		return nil, err
	}
	return &CoordinateOptimizer{eval: eval}, nil
}

func (co *CoordinateOptimizer) Optimize() (Result, error) {
	n := co.eval.N()
	lo, hi := 1, n-1

	// Start near the classical n/e optimum.
	bestVal := int(math.Round(float64(n) / math.E))
	if bestVal < lo {
		bestVal = lo
	}
	if bestVal > hi {
		bestVal = hi
	}
	bestScore := co.eval.Evaluate(bestVal)
	log.WithFields(log.Fields{"n": n, "k": co.eval.K()}).Debugf("Initial d=%d, P=%.6f", bestVal, bestScore)

	step := (hi - lo) / 10
	if step <= 0 {
		step = 1
	}

	for step >= 1 {
		improved := false
		// Try UP
		if bestVal+step <= hi {
			if s := co.eval.Evaluate(bestVal + step); s > bestScore {
				bestVal, bestScore = bestVal+step, s
				improved = true
			}
		}
		// Try DOWN
		if !improved && bestVal-step >= lo {
			if s := co.eval.Evaluate(bestVal - step); s > bestScore {
				bestVal, bestScore = bestVal-step, s
				improved = true
			}
		}

		if improved {
			log.Debugf("  -> d=%d, P=%.6f (step %d)", bestVal, bestScore, step)
			continue
		}
		step /= 2
	}

	// Equal neighbours to the left win, as in a full sweep.
	for bestVal > lo {
		s := co.eval.Evaluate(bestVal - 1)
		if s < bestScore {
			break
		}
		bestVal, bestScore = bestVal-1, s
	}

	return Result{D: bestVal, P: bestScore, Evaluations: co.eval.Evaluations()}, nil
}
