package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/render"
	"github.com/pavanmanishd/vector/internal/scenario"
	"github.com/pavanmanishd/vector/internal/tui"
)

var (
	configFile string
	noChart    bool
	cfg        *config.Config
)

// main runs the vectorlab commands and exits with status 1 if the selected
// command fails.
func main() {
	log.SetFlags(0)
	log.SetPrefix("vectorlab: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// newRootCmd registers the vectorlab commands on a fresh root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vectorlab",
		Short:         "explore growable array storage, growth and rollback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configFile != "" {
				cfg, err = config.Load(configFile)
			} else {
				cfg, err = config.LoadOptional(config.FileName)
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	growCmd := &cobra.Command{
		Use:   "grow [count]",
		Short: "append count ints and show every reallocation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGrow,
	}
	growCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the capacity chart")

	runCmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "run a scenario and check the container invariants",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the capacity chart")

	stepCmd := &cobra.Command{
		Use:   "step <scenario.yaml>",
		Short: "step through a scenario interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  stepScenario,
	}

	metricsCmd := &cobra.Command{
		Use:   "metrics [count]",
		Short: "print storage metrics after count appends",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printMetrics,
	}

	rootCmd.AddCommand(growCmd, runCmd, stepCmd, metricsCmd)
	return rootCmd
}

func countArg(args []string) (int, error) {
	if len(args) == 0 {
		return cfg.Grow.Count, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

// fill appends 0..n-1 to a fresh vector and calls onGrow at every reallocation.
func fill(n int, onGrow func(push, oldCap, newCap int)) (*vector.Vector[int], []float64, error) {
	v := vector.New[int]()
	caps := []float64{float64(v.Cap())}
	for i := 0; i < n; i++ {
		old := v.Cap()
		if err := v.PushBack(i); err != nil {
			return nil, nil, err
		}
		if v.Cap() != old && onGrow != nil {
			onGrow(i+1, old, v.Cap())
		}
		caps = append(caps, float64(v.Cap()))
	}
	return v, caps, nil
}

func runGrow(cmd *cobra.Command, args []string) error {
	n, err := countArg(args)
	if err != nil {
		return err
	}
	styles := render.NewStyles(cfg.Theme)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("appending %d elements", n)))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PUSH\tOLD CAP\tNEW CAP")
	v, caps, err := fill(n, func(push, oldCap, newCap int) {
		fmt.Fprintf(w, "%d\t%d\t%d\n", push, oldCap, newCap)
	})
	w.Flush()
	if err != nil {
		return err
	}
	defer v.Release()

	fmt.Fprintln(out, styles.Status(scenario.Snapshot{Len: v.Len(), Cap: v.Cap(), Live: v.Len()}))
	if !noChart {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.GrowthChart(caps, cfg.Chart, "capacity per push"))
	}
	return nil
}

func printMetrics(cmd *cobra.Command, args []string) error {
	n, err := countArg(args)
	if err != nil {
		return err
	}
	v, _, err := fill(n, nil)
	if err != nil {
		return err
	}
	defer v.Release()

	data, err := yaml.Marshal(v.Metrics())
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func loadTrace(path string) (*scenario.Trace, error) {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return scenario.Run(s)
}

func runScenario(cmd *cobra.Command, args []string) error {
	tr, err := loadTrace(args[0])
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), tr)
}

// report prints tr and fails if any container invariant was violated.
func report(out io.Writer, tr *scenario.Trace) error {
	styles := render.NewStyles(cfg.Theme)
	fmt.Fprint(out, styles.Table(tr))
	if !noChart {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.GrowthChart(tr.Caps(), cfg.Chart, "capacity per step"))
	}
	if failed := tr.Failures(); len(failed) > 0 {
		fmt.Fprintf(out, "%d step(s) rolled back after an element failure\n", len(failed))
	}
	if err := tr.Check(); err != nil {
		return fmt.Errorf("invariant check failed:\n%w", err)
	}
	fmt.Fprintln(out, styles.Live.Render("all invariants held"))
	return nil
}

func stepScenario(cmd *cobra.Command, args []string) error {
	tr, err := loadTrace(args[0])
	if err != nil {
		return err
	}
	return tui.Run(tr, cfg)
}
