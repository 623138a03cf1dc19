// Reporting for finished runs: per-step tables, the summary comparison and a
// text fault chart.

package sim

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// chartWidth is the length in characters of the longest bar in PrintFaultChart.
const chartWidth = 40

// PrintStepTable writes one row per reference: step, page, frame slots F1..Fn
// ("-" for empty slots), Hit/Fault and the evicted page if any.
func PrintStepTable(w io.Writer, r *Result) {
	fmt.Fprintf(w, "\n===== %s Algorithm Step-by-Step =====\n", r.Policy.DisplayName())
	if len(r.Steps) == 0 {
		fmt.Fprintln(w, "No steps to show.")
		return
	}

	// Columns stop at the most slots any step occupied, so a huge capacity
	// over a short string does not print a column per empty frame.
	occupied := 0
	for _, s := range r.Steps {
		occupied = max(occupied, len(s.Frames))
	}
	slots := make([]string, min(r.Capacity, occupied))
	for i := range slots {
		slots[i] = fmt.Sprintf("%3s", "F"+strconv.Itoa(i+1))
	}
	header := fmt.Sprintf("%4s | %4s | %s | %-6s | %s", "Step", "Page", strings.Join(slots, " "), "Result", "Evicted")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, s := range r.Steps {
		for i := range slots {
			if i < len(s.Frames) {
				slots[i] = fmt.Sprintf("%3d", s.Frames[i])
			} else {
				slots[i] = fmt.Sprintf("%3s", "-")
			}
		}
		status := "Fault"
		if s.Hit {
			status = "Hit"
		}
		evicted := ""
		if s.Evicted != nil {
			evicted = strconv.Itoa(int(*s.Evicted))
		}
		fmt.Fprintf(w, "%4d | %4d | %s | %-6s | %s\n", s.Step, s.Page, strings.Join(slots, " "), status, evicted)
	}
}

// PrintSummary writes the faults, hits and ratios of each result side by side.
func PrintSummary(w io.Writer, results []*Result) {
	fmt.Fprintln(w, "\n===== Summary Comparison =====")
	header := fmt.Sprintf("%-10s | %6s | %6s | %13s | %14s", "Algorithm", "Faults", "Hits", "Hit Ratio (%)", "Miss Ratio (%)")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for _, r := range results {
		fmt.Fprintf(w, "%-10s | %6d | %6d | %13.2f | %14.2f\n",
			r.Policy.DisplayName(), r.Faults, r.Hits(), r.HitRatio()*100, r.MissRatio()*100)
	}
}

// FaultAxis maps each policy's display name to its fault count, the data
// behind the comparison chart.
func FaultAxis(results []*Result) map[string]int {
	axis := make(map[string]int, len(results))
	for _, r := range results {
		axis[r.Policy.DisplayName()] = r.Faults
	}
	return axis
}

// PrintFaultChart draws a horizontal bar per result, scaled to the largest fault count.
func PrintFaultChart(w io.Writer, results []*Result) {
	fmt.Fprintln(w, "\n===== Page Fault Comparison =====")
	maxFaults := 0
	for _, r := range results {
		maxFaults = max(maxFaults, r.Faults)
	}
	for _, r := range results {
		bar := 0
		if maxFaults > 0 {
			bar = r.Faults * chartWidth / maxFaults
		}
		fmt.Fprintf(w, "%-10s | %s %d\n", r.Policy.DisplayName(), strings.Repeat("#", bar), r.Faults)
	}
}

// PrintSweep writes faults per capacity for each policy and flags anomalies.
func PrintSweep(w io.Writer, policy Policy, points []SweepPoint) {
	fmt.Fprintf(w, "\n===== %s Faults by Frame Count =====\n", policy.DisplayName())
	fmt.Fprintf(w, "%6s | %6s\n", "Frames", "Faults")
	for _, p := range points {
		fmt.Fprintf(w, "%6d | %6d\n", p.Capacity, p.Faults)
	}
	for _, a := range FindAnomalies(points) {
		fmt.Fprintf(w, "Belady's anomaly: %d frames -> %d faults, %d frames -> %d faults\n",
			a.From.Capacity, a.From.Faults, a.To.Capacity, a.To.Faults)
	}
}
