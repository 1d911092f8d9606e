// Package inspect turns a pointer position over the chart into per-k readouts.
package inspect

import (
	"fmt"
	"math"

	"github.com/runningwild/secretary/pkg/curve"
	"github.com/runningwild/secretary/pkg/stopping"
)

// PositionToD maps a normalized horizontal position x in [0, 1] to the
// nearest exploration length, clamped to [1, n-1].
func PositionToD(x float64, n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: need n >= 2, got %d", stopping.ErrInvalidArgument, n)
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: position is NaN", stopping.ErrInvalidArgument)
	}

	x = math.Max(0, math.Min(1, x))
	d := int(math.Round(x * float64(n)))
	if d < 1 {
		d = 1
	}
	if d > n-1 {
		d = n - 1
	}
	return d, nil
}

// Reading is the hover readout for one curve.
type Reading struct {
	K     int     `json:"k"`
	D     int     `json:"d"`
	P     float64 `json:"p"`
	BestD int     `json:"best_d"`
	BestP float64 `json:"best_p"`
}

// Gap is how far the hovered point falls short of the optimum.
func (r Reading) Gap() float64 { return r.BestP - r.P }

type Inspector struct {
	Cache *curve.Cache
	Ks    []int
}

func New(ks []int) *Inspector {
	if len(ks) == 0 {
		ks = curve.DefaultKs
	}
	return &Inspector{Cache: curve.NewCache(), Ks: ks}
}

// Readout evaluates the hovered d directly and takes the optimum from the
// cached curve for each k.
func (in *Inspector) Readout(n, d int) ([]Reading, error) {
	out := make([]Reading, 0, len(in.Ks))
	for _, k := range in.Ks {
		p, err := stopping.SuccessProbability(d, n, k)
		if err != nil {
			return nil, err
		}
		c, err := in.Cache.Get(n, k)
		if err != nil {
			return nil, err
		}
		out = append(out, Reading{K: k, D: d, P: p, BestD: c.BestD, BestP: c.BestP})
	}
	return out, nil
}

// ReadoutAt is Readout for a normalized pointer position.
func (in *Inspector) ReadoutAt(x float64, n int) ([]Reading, error) {
	d, err := PositionToD(x, n)
	if err != nil {
		return nil, err
	}
	return in.Readout(n, d)
}
