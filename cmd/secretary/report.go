package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/runningwild/secretary/pkg/curve"
	"github.com/runningwild/secretary/pkg/inspect"
	"github.com/runningwild/secretary/pkg/optimize"
	"github.com/runningwild/secretary/pkg/simulate"
	"github.com/runningwild/secretary/pkg/stats"
	"github.com/runningwild/secretary/pkg/sweep"
)

type searchResult struct {
	N int `json:"n"`
	K int `json:"k"`
	optimize.Result
}

type simReport struct {
	N         int           `json:"n"`
	D         int           `json:"d"`
	K         int           `json:"k"`
	Exact     float64       `json:"exact"`
	Estimate  float64       `json:"estimate"`
	StdErr    float64       `json:"std_err"`
	Sigma     float64       `json:"sigma"`
	Trials    int           `json:"trials"`
	Committed int           `json:"committed"`
	Ranks     stats.Summary `json:"ranks"`
	Stops     stats.Summary `json:"stops"`
}

func newSimReport(sim *simulate.Simulator, res *simulate.Result, exact float64) simReport {
	sigma := 0.0
	if res.StdErr > 0 {
		sigma = math.Abs(res.Rate-exact) / res.StdErr
	}
	return simReport{
		N:         sim.N,
		D:         sim.D,
		K:         sim.K,
		Exact:     exact,
		Estimate:  res.Rate,
		StdErr:    res.StdErr,
		Sigma:     sigma,
		Trials:    res.Trials,
		Committed: res.Committed,
		Ranks:     res.Ranks.Summary(),
		Stops:     res.Stops.Summary(),
	}
}

func printCurves(curves []*curve.Curve, points bool) {
	for _, c := range curves {
		fmt.Printf("n=%d k=%d: best d=%d (d/n=%.3f), P=%.6f\n", c.N, c.K, c.BestD, c.Ratio(), c.BestP)
		if !points {
			continue
		}
		for _, p := range c.Points {
			marker := ""
			if p.D == c.BestD {
				marker = " <- best"
			}
			fmt.Printf("  d=%4d  P=%.6f%s\n", p.D, p.P, marker)
		}
	}
}

func printReadings(n int, readings []inspect.Reading) {
	if len(readings) == 0 {
		return
	}
	fmt.Printf("n=%d d=%d (d/n=%.3f)\n", n, readings[0].D, float64(readings[0].D)/float64(n))
	for _, r := range readings {
		fmt.Printf("  k=%d: P=%.6f  best d=%d P=%.6f  gap=%.6f\n", r.K, r.P, r.BestD, r.BestP, r.Gap())
	}
}

func printSearch(results []searchResult) {
	for _, r := range results {
		fmt.Printf("n=%d k=%d: best d=%d (d/n=%.3f), P=%.6f [%d evaluations]\n",
			r.N, r.K, r.D, float64(r.D)/float64(r.N), r.P, r.Evaluations)
	}
}

func printSweep(rows []sweep.Row) {
	fmt.Printf("%6s %4s %6s %8s %10s\n", "n", "k", "d*", "d*/n", "P*")
	for _, r := range rows {
		fmt.Printf("%6d %4d %6d %8.4f %10.6f\n", r.N, r.K, r.BestD, r.Ratio, r.BestP)
	}
}

func printSimulation(reports []simReport) {
	for _, r := range reports {
		fmt.Printf("n=%d d=%d k=%d: exact P=%.6f, simulated %.6f +/- %.6f (%.1f sigma, %d trials)\n",
			r.N, r.D, r.K, r.Exact, r.Estimate, r.StdErr, r.Sigma, r.Trials)
		fmt.Printf("  committed %d/%d; rank p50=%d p90=%d; stop p50=%d p90=%d\n",
			r.Committed, r.Trials, r.Ranks.P50, r.Ranks.P90, r.Stops.P50, r.Stops.P90)
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return writeReport(flags.Report, v)
}

func writeReport(path string, v interface{}) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("Report written to %s", path)
	return nil
}
