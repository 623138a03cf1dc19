package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesim/pagesim/sim"
)

var sweepPolicyName string

// executeSweep runs each policy across [lo, hi] frames and reports anomalies.
// It returns the number of anomalies found.
func executeSweep(w io.Writer, refs []sim.Page, policies []sim.Policy, lo, hi int) (int, error) {
	anomalies := 0
	for _, p := range policies {
		points, err := sim.Sweep(p, refs, lo, hi)
		if err != nil {
			return 0, err
		}
		sim.PrintSweep(w, p, points)
		anomalies += len(sim.FindAnomalies(points))
	}
	return anomalies, nil
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Count faults across a range of frame counts",
	Long:  "Run each policy once per frame count and report where adding frames increased faults (Belady's anomaly).",
	Run: func(cmd *cobra.Command, args []string) {
		src := source
		src.DefaultsPath = defaultsPath
		in, err := resolveReferences(src)
		if err != nil {
			logrus.Fatalf("Invalid reference string: %v", err)
		}
		policies, err := selectPolicies(sweepPolicyName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		policies = scenarioPolicies(policies, in.Scenario, cmd.Flags())

		hi := maxFrames
		if hi == 0 {
			hi = sim.DistinctPages(in.Refs)
		}
		n, err := executeSweep(cmd.OutOrStdout(), in.Refs, policies, minFrames, hi)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		logrus.Infof("Sweep complete: %d anomalies across frames %d..%d", n, minFrames, hi)
	},
}

func init() {
	addReferenceFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&minFrames, "min-frames", 1, "Smallest frame count")
	sweepCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "Largest frame count (0 = number of distinct pages)")
	sweepCmd.Flags().StringVar(&sweepPolicyName, "policy", "all", "Policy to sweep (all, fifo, lru, optimal)")

	rootCmd.AddCommand(sweepCmd)
}
