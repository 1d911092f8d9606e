package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/runningwild/secretary/pkg/analyze"
	"github.com/runningwild/secretary/pkg/config"
	"github.com/runningwild/secretary/pkg/curve"
	"github.com/runningwild/secretary/pkg/inspect"
	"github.com/runningwild/secretary/pkg/optimize"
	"github.com/runningwild/secretary/pkg/simulate"
	"github.com/runningwild/secretary/pkg/stopping"
	"github.com/runningwild/secretary/pkg/sweep"
)

var (
	showPoints bool

	inspectX float64
	inspectD int

	sweepMin, sweepMax, sweepStep int

	simD      int
	simTrials int
	simSeed   int64
)

func init() {
	curveCmd.Flags().BoolVar(&showPoints, "points", false, "Print every (d, P) sample, not just the optimum")

	inspectCmd.Flags().Float64Var(&inspectX, "x", 0.37, "Normalized pointer position in [0, 1]")
	inspectCmd.Flags().IntVarP(&inspectD, "d", "d", 0, "Exploration length (overrides -x)")

	sweepCmd.Flags().IntVar(&sweepMin, "min", 0, "Smallest n (default from config)")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 0, "Largest n (default from config)")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 0, "Step between values of n (default from config)")

	simulateCmd.Flags().IntVarP(&simD, "d", "d", 0, "Exploration length (default: optimum for the first k)")
	simulateCmd.Flags().IntVar(&simTrials, "trials", 0, "Number of random orderings (default from config)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (default from config)")
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Compute P(d, n, k) for every d and report the optimum",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		curves, err := curve.Family(cfg.N, cfg.Ks)
		if err != nil {
			return err
		}
		for _, c := range curves {
			samples := c.Samples()
			if !analyze.Unimodal(samples, 1e-12) {
				log.WithFields(log.Fields{"n": c.N, "k": c.K}).Warnf("Curve is not unimodal (confidence %.3f)", analyze.Confidence(samples))
			}
		}

		if cfg.Output == "json" {
			return printJSON(curves)
		}
		printCurves(curves, showPoints)
		return writeReport(flags.Report, curves)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read out P at one exploration length for every k",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		in := inspect.New(cfg.Ks)
		d := inspectD
		if !cmd.Flags().Changed("d") {
			d, err = inspect.PositionToD(inspectX, cfg.N)
			if err != nil {
				return err
			}
		}
		readings, err := in.Readout(cfg.N, d)
		if err != nil {
			return err
		}

		if cfg.Output == "json" {
			return printJSON(readings)
		}
		printReadings(cfg.N, readings)
		return writeReport(flags.Report, readings)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the optimum by hill climbing, for n too large to sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		results := make([]searchResult, 0, len(cfg.Ks))
		for _, k := range cfg.Ks {
			co, err := optimize.NewCoordinate(cfg.N, k)
			if err != nil {
				return err
			}
			res, err := co.Optimize()
			if err != nil {
				return fmt.Errorf("search failed for k=%d: %w", k, err)
			}
			results = append(results, searchResult{N: cfg.N, K: k, Result: res})
		}

		if cfg.Output == "json" {
			return printJSON(results)
		}
		printSearch(results)
		return writeReport(flags.Report, results)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Track the optimum across a range of n",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := cmd.Flags()
		cfg, err := flags.LoadConfig(fs, func(cfg *config.Config) {
			if fs.Changed("min") {
				cfg.Sweep.Min = sweepMin
			}
			if fs.Changed("max") {
				cfg.Sweep.Max = sweepMax
			}
			if fs.Changed("step") {
				cfg.Sweep.Step = sweepStep
			}
		})
		if err != nil {
			return err
		}

		log.Infof("Sweeping n from %d to %d...", cfg.Sweep.Min, cfg.Sweep.Max)
		rows, err := sweep.New(cfg).Run()
		if err != nil {
			return err
		}

		if cfg.Output == "json" {
			return printJSON(rows)
		}
		printSweep(rows)
		return writeReport(flags.Report, rows)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Check P(d, n, k) against random candidate orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := cmd.Flags()
		cfg, err := flags.LoadConfig(fs, func(cfg *config.Config) {
			if fs.Changed("trials") {
				cfg.Simulate.Trials = simTrials
			}
			if fs.Changed("seed") {
				cfg.Simulate.Seed = simSeed
			}
		})
		if err != nil {
			return err
		}

		d := simD
		if !fs.Changed("d") {
			c, err := curve.Compute(cfg.N, cfg.Ks[0])
			if err != nil {
				return err
			}
			d = c.BestD
		}

		reports := make([]simReport, 0, len(cfg.Ks))
		for _, k := range cfg.Ks {
			exact, err := stopping.SuccessProbability(d, cfg.N, k)
			if err != nil {
				return err
			}
			sim := &simulate.Simulator{
				N:      cfg.N,
				D:      d,
				K:      k,
				Trials: cfg.Simulate.Trials,
				Seed:   cfg.Simulate.Seed,
			}
			res, err := sim.Run()
			if err != nil {
				return err
			}
			reports = append(reports, newSimReport(sim, res, exact))
		}

		if cfg.Output == "json" {
			return printJSON(reports)
		}
		printSimulation(reports)
		return writeReport(flags.Report, reports)
	},
}
