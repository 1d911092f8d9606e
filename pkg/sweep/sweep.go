package sweep

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/runningwild/secretary/pkg/config"
	"github.com/runningwild/secretary/pkg/curve"
)

// Row is the optimum of one (n, k) curve.
type Row struct {
	N     int     `json:"n"`
	K     int     `json:"k"`
	BestD int     `json:"best_d"`
	BestP float64 `json:"best_p"`
	Ratio float64 `json:"ratio"`
}

// Sweeper walks n across a range, the way a slider drag would, and records
// where the optimum lands for every k.
type Sweeper struct {
	Min, Max, Step int
	Ks             []int

	cache *curve.Cache
}

func New(cfg *config.Config) *Sweeper {
	return &Sweeper{
		Min:   cfg.Sweep.Min,
		Max:   cfg.Sweep.Max,
		Step:  cfg.Sweep.Step,
		Ks:    cfg.Ks,
		cache: curve.NewCache(),
	}
}

// Run returns rows ordered by n, then by the order of Ks.
func (s *Sweeper) Run() ([]Row, error) {
	if s.Min < 2 || s.Max < s.Min {
		return nil, fmt.Errorf("no values of n to sweep in [%d, %d]", s.Min, s.Max)
	}
	if len(s.Ks) == 0 {
		return nil, fmt.Errorf("no k values to sweep")
	}
	if s.cache == nil {
		s.cache = curve.NewCache()
	}

	step := s.Step
	if step <= 0 {
		step = 1
	}

	var rows []Row
	for n := s.Min; n <= s.Max; n += step {
		curves, err := s.cache.Family(n, s.Ks)
		if err != nil {
			return nil, fmt.Errorf("sweep failed at n=%d: %w", n, err)
		}
		for _, c := range curves {
			rows = append(rows, Row{
				N:     c.N,
				K:     c.K,
				BestD: c.BestD,
				BestP: c.BestP,
				Ratio: c.Ratio(),
			})
		}
		log.WithField("n", n).Debugf("Swept %d curves", len(curves))
		// Each n is its own rendering pass.
		s.cache.Reset()
	}
	return rows, nil
}
