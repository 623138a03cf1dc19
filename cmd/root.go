package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pagesim/pagesim/sim"
	"github.com/pagesim/pagesim/sim/trace"
)

var (
	logLevel     string // Log verbosity level
	defaultsPath string // Path to defaults.yaml with presets

	// Reference string sources, shared by run and sweep
	source referenceSource

	// CLI flags for run
	frames     int    // Number of physical frames
	policyName string // "all" or a single policy
	showSteps  bool   // Print per-step tables
	showChart  bool   // Print the fault comparison chart
	traceLevel string // Eviction trace verbosity

	// CLI flags for sweep
	minFrames int // Smallest frame count in the sweep
	maxFrames int // Largest frame count in the sweep (0 = number of distinct pages)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator (FIFO, LRU, Optimal)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runPlan is everything a run needs once flags and scenario file are merged.
type runPlan struct {
	Refs       []sim.Page
	Frames     int
	Policies   []sim.Policy
	TraceLevel trace.TraceLevel
	ShowSteps  bool
	ShowChart  bool
}

// selectPolicies maps the --policy flag to a policy list.
func selectPolicies(name string) ([]sim.Policy, error) {
	if name == "all" || name == "" {
		return sim.AllPolicies(), nil
	}
	p, err := sim.ParsePolicy(name)
	if err != nil {
		return nil, err
	}
	return []sim.Policy{p}, nil
}

// scenarioPolicies returns the scenario's policy list unless --policy was set explicitly.
func scenarioPolicies(policies []sim.Policy, sc *sim.Scenario, flags *pflag.FlagSet) []sim.Policy {
	if sc == nil || flags.Changed("policy") {
		return policies
	}
	return sc.PolicyList()
}

// applyScenario overlays scenario values on plan. An explicitly set flag
// always wins over the scenario; a nil scenario leaves plan untouched.
func applyScenario(plan *runPlan, sc *sim.Scenario, flags *pflag.FlagSet) {
	if sc == nil {
		return
	}
	if !flags.Changed("frames") {
		plan.Frames = sc.Frames
	}
	plan.Policies = scenarioPolicies(plan.Policies, sc, flags)
	if !flags.Changed("trace-level") && sc.TraceLevel != "" {
		plan.TraceLevel = trace.TraceLevel(sc.TraceLevel)
	}
}

// executeRun simulates every policy in the plan and writes the report to w.
func executeRun(w io.Writer, plan runPlan) error {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: plan.TraceLevel})
	results, err := sim.SimulateAll(plan.Policies, plan.Refs, plan.Frames, st)
	if err != nil {
		return err
	}
	if plan.ShowSteps {
		for _, r := range results {
			sim.PrintStepTable(w, r)
		}
	}
	sim.PrintSummary(w, results)
	if plan.ShowChart {
		sim.PrintFaultChart(w, results)
	}
	if st.Enabled() {
		printTraceSummary(w, st)
	}
	return nil
}

// printTraceSummary writes eviction totals per policy and the most evicted pages.
func printTraceSummary(w io.Writer, st *trace.SimulationTrace) {
	summary := trace.Summarize(st)
	fmt.Fprintln(w, "\n===== Eviction Trace =====")
	fmt.Fprintf(w, "Total evictions : %d\n", summary.TotalEvictions)
	fmt.Fprintf(w, "Unique victims  : %d\n", summary.UniqueVictims)
	for _, p := range sim.AllPolicies() {
		if n, ok := summary.EvictionsByPolicy[string(p)]; ok {
			fmt.Fprintf(w, "%-10s : %d evictions\n", p.DisplayName(), n)
		}
	}
	for _, e := range st.Evictions {
		fmt.Fprintf(w, "%-8s step %3d: load %d, evict %d (%s) candidates=%v\n",
			sim.Policy(e.Policy).DisplayName(), e.Step, e.Page, e.Victim, e.Reason, e.Candidates)
	}
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run FIFO, LRU and Optimal over one reference string",
	Run: func(cmd *cobra.Command, args []string) {
		src := source
		src.DefaultsPath = defaultsPath
		in, err := resolveReferences(src)
		if err != nil {
			logrus.Fatalf("Invalid reference string: %v", err)
		}

		plan := runPlan{Refs: in.Refs, Frames: frames, ShowSteps: showSteps, ShowChart: showChart,
			TraceLevel: trace.TraceLevel(traceLevel)}
		plan.Policies, err = selectPolicies(policyName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		applyScenario(&plan, in.Scenario, cmd.Flags())
		if !trace.IsValidTraceLevel(string(plan.TraceLevel)) {
			logrus.Fatalf("Unknown trace level %q; valid levels: none, evictions", plan.TraceLevel)
		}
		if distinct := sim.DistinctPages(plan.Refs); plan.Frames >= distinct {
			logrus.Warnf("%d frames hold all %d distinct pages; only compulsory faults will occur", plan.Frames, distinct)
		}

		logrus.Infof("Starting simulation with %d frames, %d references, policies=%v",
			plan.Frames, len(plan.Refs), plan.Policies)
		if err := executeRun(cmd.OutOrStdout(), plan); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addReferenceFlags registers the reference-source flags on a command.
func addReferenceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&source.Refs, "refs", "", "Page reference string, space or comma separated (e.g. \"7 0 1 2 0 3\")")
	cmd.Flags().StringVar(&source.Preset, "preset", "", "Named reference string from the defaults file")
	cmd.Flags().StringVar(&source.Scenario, "scenario", "", "Path to a scenario YAML file")
	cmd.Flags().IntVar(&source.RandomLength, "random-length", 0, "Generate a random reference string of this length")
	cmd.Flags().IntVar(&source.RandomPages, "random-pages", 10, "Distinct pages in a generated reference string")
	cmd.Flags().Float64Var(&source.Locality, "locality", 0, "Probability a generated reference stays in the working set")
	cmd.Flags().IntVar(&source.WorkingSet, "working-set", 3, "Working set size for generated references")
	cmd.Flags().Int64Var(&source.Seed, "seed", 42, "Seed for random reference generation")
}

// presetsCmd lists the named reference strings
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the sample reference strings in the defaults file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadDefaultsConfig(defaultsPath)
		w := cmd.OutOrStdout()
		for _, name := range cfg.presetNames() {
			p := cfg.Presets[name]
			fmt.Fprintf(w, "%-12s %s\n%-12s %s\n", name, p.Description, "", sim.FormatReferences(p.References))
		}
	},
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "defaults.yaml", "Path to the defaults file with presets")

	addReferenceFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 3, "Number of physical frames")
	runCmd.Flags().StringVar(&policyName, "policy", "all", "Policy to run (all, fifo, lru, optimal)")
	runCmd.Flags().BoolVar(&showSteps, "steps", true, "Print the step-by-step frame table of each policy")
	runCmd.Flags().BoolVar(&showChart, "chart", true, "Print the page fault comparison chart")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Eviction trace level (none, evictions)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(presetsCmd)
}
