package cmd

import (
	"fmt"
	"io"
	"time"

	units "github.com/docker/go-units"

	"github.com/inference-sim/diskplan/plan"
)

// writeResult prints the elapsed time followed by the plan, or a notice
// when the solver found none.
func writeResult(w io.Writer, result *plan.WorkResult, elapsed time.Duration) {
	fmt.Fprintf(w, "Done! Took: %v\n", elapsed.Round(10*time.Microsecond))
	if result == nil {
		fmt.Fprintln(w, "No result found.")
		return
	}
	fmt.Fprintf(w, "Total downloaded data: %d (%s)\n", result.DownloadSize, units.BytesSize(float64(result.DownloadSize)))
	fmt.Fprintln(w, "Operations:")
	for _, line := range result.Lines() {
		fmt.Fprintln(w, line)
	}
}
