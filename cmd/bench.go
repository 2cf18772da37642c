package cmd

import (
	"fmt"
	"io"
	"time"

	units "github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/diskplan/plan"
)

// benchStats summarizes one metric over the runs that produced a plan.
type benchStats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

func summarize(values []float64) benchStats {
	s := benchStats{N: len(values)}
	if s.N == 0 {
		return s
	}
	s.Best = floats.Min(values)
	if s.N < 2 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	return s
}

// benchRecord is the outcome of repeating one solver over seeds.
type benchRecord struct {
	Algorithm string
	Runs      int
	NoPlan    int
	Download  benchStats
	TimeMs    benchStats
}

// runBench solves inst runs times with seeds base, base+1, ... and
// replays every plan it gets.
func runBench(inst *plan.Instance, name string, factory solverFactory, runs int, base int64) (benchRecord, error) {
	rec := benchRecord{Algorithm: name, Runs: runs}
	downloads := make([]float64, 0, runs)
	times := make([]float64, 0, runs)

	for i := 0; i < runs; i++ {
		solver, err := factory(base + int64(i))
		if err != nil {
			return benchRecord{}, fmt.Errorf("run %d: %w", i, err)
		}
		start := time.Now()
		result, err := solver.Solve(inst)
		dur := time.Since(start)
		if err != nil {
			return benchRecord{}, fmt.Errorf("run %d: %w", i, err)
		}
		if result == nil {
			rec.NoPlan++
			continue
		}
		if err := plan.Replay(inst, result); err != nil {
			return benchRecord{}, fmt.Errorf("run %d: %w", i, err)
		}
		downloads = append(downloads, float64(result.DownloadSize))
		times = append(times, float64(dur.Microseconds())/1000.0)
		logrus.Debugf("bench: run %d seed %d download %d in %v", i, base+int64(i), result.DownloadSize, dur)
	}

	rec.Download = summarize(downloads)
	rec.TimeMs = summarize(times)
	return rec, nil
}

func writeBench(w io.Writer, rec benchRecord) {
	fmt.Fprintf(w, "=== Benchmark: %s ===\n", rec.Algorithm)
	fmt.Fprintf(w, "Runs                 : %d (%d without a plan)\n", rec.Runs, rec.NoPlan)
	if rec.Download.N == 0 {
		fmt.Fprintln(w, "No result found.")
		return
	}
	fmt.Fprintf(w, "Best download        : %.0f (%s)\n", rec.Download.Best, units.BytesSize(rec.Download.Best))
	fmt.Fprintf(w, "Mean download        : %.2f\n", rec.Download.Mean)
	fmt.Fprintf(w, "Stddev download      : %.2f\n", rec.Download.Std)
	fmt.Fprintf(w, "Best time            : %.3f ms\n", rec.TimeMs.Best)
	fmt.Fprintf(w, "Mean time            : %.3f ms\n", rec.TimeMs.Mean)
	fmt.Fprintf(w, "Stddev time          : %.3f ms\n", rec.TimeMs.Std)
}

// benchCmd repeats a solver over consecutive seeds and reports statistics
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Repeat a solver over several seeds and summarize the plans",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if benchRuns <= 0 {
			logrus.Fatalf("--runs must be > 0 (got %d)", benchRuns)
		}
		factory, err := newSolverFactory(cmd.OutOrStdout(), algorithm, paramsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		inst := loadInstance()

		rec, err := runBench(inst, algorithm, factory, benchRuns, seed)
		if err != nil {
			logrus.Fatalf("Benchmark %s failed: %v", algorithm, err)
		}
		writeBench(cmd.OutOrStdout(), rec)
	},
}
