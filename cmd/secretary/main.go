package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/runningwild/secretary/pkg/config"
)

// Version is the semantic version number, set at build time.
var Version = "dev"

// Flags holds the options shared by every subcommand.
type Flags struct {
	ConfigFile  string
	WriteConfig string
	Verbose     bool

	N      int
	Ks     []int
	Output string
	Report string
}

var flags Flags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "secretary",
	Short: "Explore the top-k secretary problem",
	Long: `secretary computes the probability that "explore d of n candidates, then take
the next running maximum" lands on one of the top k candidates, and finds the
exploration length d that maximizes it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flags.Verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("secretary " + Version)
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "Path to YAML configuration file")
	pf.StringVar(&flags.WriteConfig, "write-config", "", "Save the effective configuration to this YAML file")
	pf.BoolVar(&flags.Verbose, "verbose", false, "Print debug logging")
	pf.IntVarP(&flags.N, "candidates", "n", 0, "Number of candidates (default 100)")
	pf.IntSliceVarP(&flags.Ks, "ranks", "k", nil, "Rank cutoffs to evaluate (default 1,3,5)")
	pf.StringVar(&flags.Output, "output", "", "Output format: 'text' or 'json'")
	pf.StringVar(&flags.Report, "report", "", "Write results to JSON file")

	rootCmd.AddCommand(versionCmd, curveCmd, inspectCmd, searchCmd, sweepCmd, simulateCmd)
}

// LoadConfig reads the config file if given, then lets explicitly set flags
// override it. Command specific overrides run before validation.
func (f *Flags) LoadConfig(fs *pflag.FlagSet, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		var err error
		cfg, err = config.Load(f.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if fs.Changed("candidates") {
		cfg.N = f.N
	}
	if fs.Changed("ranks") {
		cfg.Ks = f.Ks
	}
	if fs.Changed("output") {
		cfg.Output = f.Output
	}
	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f.maybeWriteConfig(cfg)
	return cfg, nil
}

func (f *Flags) maybeWriteConfig(cfg *config.Config) {
	if f.WriteConfig == "" {
		return
	}
	if err := cfg.Write(f.WriteConfig); err != nil {
		log.Warnf("Failed to write config file: %v", err)
		return
	}
	log.Infof("Configuration written to %s", f.WriteConfig)
}
