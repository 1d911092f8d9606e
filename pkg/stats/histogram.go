package stats

import (
	"fmt"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram is a mergeable histogram over small positive integers such as
// candidate ranks and stop positions.
type Histogram struct {
	h   *hdrhistogram.Histogram
	max int64
}

// NewHistogram tracks values in [1, max]. Three significant figures keep
// every value below 2048 in its own bucket.
func NewHistogram(max int64) *Histogram {
	if max < 2 {
		max = 2
	}
	return &Histogram{
		h:   hdrhistogram.New(1, max, 3),
		max: max,
	}
}

// Record records a single value.
func (h *Histogram) Record(v int64) error {
	if v < 1 || v > h.max {
		return fmt.Errorf("value %d outside [1, %d]", v, h.max)
	}
	return h.h.RecordValue(v)
}

// Merge adds other's counts into h.
func (h *Histogram) Merge(other *Histogram) {
	if other == nil || other.TotalCount() == 0 {
		return
	}
	h.h.Merge(other.h)
}

func (h *Histogram) ValueAtQuantile(q float64) int64 {
	if h.h.TotalCount() == 0 {
		return 0
	}
	return h.h.ValueAtQuantile(q * 100)
}

func (h *Histogram) Mean() float64 {
	if h.h.TotalCount() == 0 {
		return 0
	}
	return h.h.Mean()
}

func (h *Histogram) TotalCount() int64 { return h.h.TotalCount() }

func (h *Histogram) Min() int64 { return h.h.Min() }
func (h *Histogram) Max() int64 { return h.h.Max() }

// Summary is a serializable snapshot of a histogram.
type Summary struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	P50   int64   `json:"p50"`
	P90   int64   `json:"p90"`
	P99   int64   `json:"p99"`
	Max   int64   `json:"max"`
}

func (h *Histogram) Summary() Summary {
	return Summary{
		Count: h.TotalCount(),
		Mean:  h.Mean(),
		P50:   h.ValueAtQuantile(0.50),
		P90:   h.ValueAtQuantile(0.90),
		P99:   h.ValueAtQuantile(0.99),
		Max:   h.Max(),
	}
}
