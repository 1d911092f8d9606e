// Package simulate plays the explore-then-commit rule against random
// candidate orders so the closed form can be checked empirically.
package simulate

import (
	"fmt"
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/runningwild/secretary/pkg/stats"
	"github.com/runningwild/secretary/pkg/stopping"
)

// Simulator describes one Monte Carlo experiment.
type Simulator struct {
	N      int
	D      int
	K      int
	Trials int
	Seed   int64
}

// Result aggregates the outcome of every trial.
type Result struct {
	Trials    int     `json:"trials"`
	Successes int     `json:"successes"`
	Committed int     `json:"committed"`
	Rate      float64 `json:"rate"`
	StdErr    float64 `json:"std_err"`

	// Ranks holds the true rank (1 is best) of every committed candidate;
	// Stops holds the 1-based position at which the rule committed.
	Ranks *stats.Histogram `json:"-"`
	Stops *stats.Histogram `json:"-"`
}

func (s *Simulator) Run() (*Result, error) {
	if err := stopping.Validate(s.D, s.N, s.K); err != nil {
		return nil, err
	}
	if s.Trials < 1 {
		return nil, fmt.Errorf("%w: trials=%d, need trials >= 1", stopping.ErrInvalidArgument, s.Trials)
	}

	rnd := rand.New(rand.NewSource(s.Seed))
	res := &Result{
		Trials: s.Trials,
		Ranks:  stats.NewHistogram(int64(s.N)),
		Stops:  stats.NewHistogram(int64(s.N)),
	}

	for t := 0; t < s.Trials; t++ {
		ranks := rnd.Perm(s.N) // ranks[i] + 1 is the true rank at position i+1
		pos, rank, ok := play(ranks, s.D)
		if !ok {
			continue
		}
		res.Committed++
		if err := res.Ranks.Record(int64(rank)); err != nil {
			return nil, err
		}
		if err := res.Stops.Record(int64(pos)); err != nil {
			return nil, err
		}
		if rank <= s.K {
			res.Successes++
		}
	}

	res.Rate = float64(res.Successes) / float64(res.Trials)
	res.StdErr = math.Sqrt(res.Rate * (1 - res.Rate) / float64(res.Trials))

	log.WithFields(log.Fields{"n": s.N, "d": s.D, "k": s.K}).Debugf("Simulated %d trials: %d committed, %d successes",
		res.Trials, res.Committed, res.Successes)
	return res, nil
}

// play applies the rule to one ordering. It returns the 1-based position and
// true rank of the committed candidate, or ok=false if none beat the
// exploration phase.
func play(ranks []int, d int) (pos, rank int, ok bool) {
	if d == 0 {
		return 0, 0, false
	}
	banked := len(ranks)
	for i := 0; i < d; i++ {
		if ranks[i] < banked {
			banked = ranks[i]
		}
	}
	for i := d; i < len(ranks); i++ {
		if ranks[i] < banked {
			return i + 1, ranks[i] + 1, true
		}
	}
	return 0, 0, false
}
