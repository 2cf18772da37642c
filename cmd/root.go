package cmd

import (
	"os"
	"time"

	units "github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/diskplan/plan"
	"github.com/inference-sim/diskplan/plan/manifest"
)

var (
	// CLI flags shared by run and bench
	algorithm  string // Solver name: brute, evo or naive
	dataPath   string // Path to the input manifest
	paramsPath string // Optional evolution parameters file
	seed       int64  // Seed for the evolutionary solver
	logLevel   string // Log verbosity level

	// run only
	verifyPlan bool // Replay the plan against the disk rules before printing

	// bench only
	benchRuns int // Number of seeded repetitions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "diskplan",
	Short: "Plans downloads and evictions for pairwise tasks on a bounded disk",
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadInstance reads the manifest; any failure aborts before a solver runs.
func loadInstance() *plan.Instance {
	inst, err := manifest.Load(dataPath)
	if err != nil {
		logrus.Fatalf("Failed to read input data: %v", err)
	}
	logrus.Infof("Loaded %d files (%s, %d tasks), disk size %s", len(inst.Files),
		units.BytesSize(float64(plan.SumSizes(inst.Files))), len(inst.Tasks()), units.BytesSize(float64(inst.Capacity)))
	return inst
}

// runCmd solves the instance once and prints the plan
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a plan with one solver",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		factory, err := newSolverFactory(cmd.OutOrStdout(), algorithm, paramsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		inst := loadInstance()

		solver, err := factory(seed)
		if err != nil {
			logrus.Fatalf("Failed to create %s solver: %v", algorithm, err)
		}

		start := time.Now()
		result, err := solver.Solve(inst)
		elapsed := time.Since(start)
		if err != nil {
			logrus.Fatalf("Solver %s failed: %v", algorithm, err)
		}

		if verifyPlan && result != nil {
			if err := plan.Replay(inst, result); err != nil {
				logrus.Fatalf("Plan failed verification: %v", err)
			}
			logrus.Debug("Plan verified")
		}

		writeResult(cmd.OutOrStdout(), result, elapsed)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&algorithm, "alg", plan.AlgorithmGreedy, "Solver: "+plan.AlgorithmNames())
	cmd.Flags().StringVar(&dataPath, "data", "./data.json", "Path to the input manifest (JSON or YAML)")
	cmd.Flags().StringVar(&paramsPath, "params", "", "Evolution parameters file (generations, population); evo only")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the evolutionary solver")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// init sets up CLI flags and subcommands
func init() {
	addSolverFlags(runCmd)
	runCmd.Flags().BoolVar(&verifyPlan, "verify", true, "Replay the plan against the disk rules before printing")

	addSolverFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchRuns, "runs", 10, "Number of runs, seeded seed, seed+1, ...")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}
