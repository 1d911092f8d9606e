// Package curve evaluates P(d, n, k) across every exploration length d and
// locates the optimum.
package curve

import (
	"fmt"

	"github.com/runningwild/secretary/pkg/analyze"
	"github.com/runningwild/secretary/pkg/stopping"
)

// DefaultKs are the rank cutoffs drawn side by side.
var DefaultKs = []int{1, 3, 5}

// Point is one (d, P) sample.
type Point struct {
	D int     `json:"d" yaml:"d"`
	P float64 `json:"p" yaml:"p"`
}

// Curve holds P(d, n, k) for d = 1..n-1 in ascending d, plus its optimum.
type Curve struct {
	N      int     `json:"n" yaml:"n"`
	K      int     `json:"k" yaml:"k"`
	Points []Point `json:"points" yaml:"points"`
	BestD  int     `json:"best_d" yaml:"best_d"`
	BestP  float64 `json:"best_p" yaml:"best_p"`
}

// Compute evaluates the curve for (n, k). One denominator table is shared by
// every d, which keeps the sweep at O(n*k) binomial ratios.
func Compute(n, k int) (*Curve, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: curve needs n >= 2, got %d", stopping.ErrInvalidArgument, n)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: curve needs k >= 1, got %d", stopping.ErrInvalidArgument, k)
	}

	den := stopping.NewDenominators(n, k)
	c := &Curve{
		N:      n,
		K:      k,
		Points: make([]Point, 0, n-1),
	}
	samples := make([]analyze.Point, 0, n-1)

	for d := 1; d < n; d++ {
		p := den.Success(d)
		c.Points = append(c.Points, Point{D: d, P: p})
		samples = append(samples, analyze.Point{X: float64(d), Y: p})
	}

	best, _ := analyze.Peak(samples)
	c.BestD = int(best.X)
	c.BestP = best.Y
	return c, nil
}

// At returns P at exploration length d. d = 0 and anything outside the
// curve give 0.
func (c *Curve) At(d int) float64 {
	if d < 1 || d > len(c.Points) {
		return 0
	}
	return c.Points[d-1].P
}

// Ratio is BestD / N, which tends to 1/e for k = 1.
func (c *Curve) Ratio() float64 {
	return float64(c.BestD) / float64(c.N)
}

// Samples converts the curve to analyze points.
func (c *Curve) Samples() []analyze.Point {
	out := make([]analyze.Point, len(c.Points))
	for i, p := range c.Points {
		out[i] = analyze.Point{X: float64(p.D), Y: p.P}
	}
	return out
}

// Family computes one curve per k, in the order given.
func Family(n int, ks []int) ([]*Curve, error) {
	out := make([]*Curve, 0, len(ks))
	for _, k := range ks {
		c, err := Compute(n, k)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
