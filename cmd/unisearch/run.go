package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unisearch/ids"
	"github.com/katalvlaran/unisearch/internal/config"
	"github.com/katalvlaran/unisearch/internal/logging"
	"github.com/katalvlaran/unisearch/internal/metrics"
	"github.com/katalvlaran/unisearch/internal/report"
	"github.com/katalvlaran/unisearch/search"
	"github.com/katalvlaran/unisearch/ucs"
	"github.com/katalvlaran/unisearch/vacuum"
)

// engine is the common signature of every search entry point.
type engine func(search.Problem[vacuum.State, vacuum.Action], vacuum.State, ...search.Option) (*search.Result[vacuum.State, vacuum.Action], error)

type strategy struct {
	name  string
	solve engine
}

// strategies lists the engines in report order.
var strategies = []strategy{
	{ucs.StrategyTree, ucs.TreeSearch[vacuum.State, vacuum.Action]},
	{ucs.StrategyGraph, ucs.GraphSearch[vacuum.State, vacuum.Action]},
	{ids.Strategy, ids.Search[vacuum.State, vacuum.Action]},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the search engines on the configured instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err = applyLimitFlags(cmd, &cfg); err != nil {
			return err
		}

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		names, _ := cmd.Flags().GetStringSlice("strategy")
		chosen, err := selectStrategies(names)
		if err != nil {
			return err
		}

		instance, _ := cmd.Flags().GetString("instance")
		if instance != "" {
			in, err := cfg.Instance(instance)
			if err != nil {
				return err
			}
			cfg.Instances = []config.Instance{in}
		}

		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}

		if err = runInstances(cmd.OutOrStdout(), cfg, chosen, logger, rec); err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("metrics-file"); path != "" {
			if err = metrics.WriteTextfile(path, reg); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceP("strategy", "s", nil, "Strategies to run (UCTS, UCGS, IDTS); all when empty")
	runCmd.Flags().StringP("instance", "i", "", "Run only the named instance")
	runCmd.Flags().Int("max-expansions", 0, "Override the expansion ceiling")
	runCmd.Flags().Duration("time-limit", 0, "Override the wall-clock ceiling")
	runCmd.Flags().Int("max-depth", 0, "Override the iterative-deepening depth ceiling")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")
}

// runInstances runs every chosen strategy on every instance and prints the report.
func runInstances(out io.Writer, cfg config.Config, chosen []strategy, logger *slog.Logger, rec *metrics.Recorder) error {
	w, err := cfg.World()
	if err != nil {
		return err
	}

	opts := append(cfg.SearchOptions(), search.WithLogger(logger))
	p := report.NewPrinter(out)
	for _, in := range cfg.Instances {
		start, err := in.State(w)
		if err != nil {
			return fmt.Errorf("instance %q: %w", in.Name, err)
		}

		p.Banner(in.Name)
		for _, st := range chosen {
			logger.Info("running", slog.String("instance", in.Name), slog.String("strategy", st.name))
			res, err := st.solve(w, start, opts...)
			if err != nil {
				return fmt.Errorf("%s on %q: %w", st.name, in.Name, err)
			}
			rec.Observe(res.Strategy, string(res.Outcome()), res.Expanded, res.Generated, res.Elapsed)
			report.Result(p, res, w.Describe)
		}
	}

	return p.Err()
}

// selectStrategies resolves names (case-insensitive) in report order; empty means all.
func selectStrategies(names []string) ([]strategy, error) {
	if len(names) == 0 {
		return strategies, nil
	}

	want := make([]string, len(names))
	for i, n := range names {
		want[i] = strings.ToUpper(strings.TrimSpace(n))
		if !slices.ContainsFunc(strategies, func(s strategy) bool { return s.name == want[i] }) {
			return nil, fmt.Errorf("unknown strategy %q", n)
		}
	}

	chosen := make([]strategy, 0, len(want))
	for _, s := range strategies {
		if slices.Contains(want, s.name) {
			chosen = append(chosen, s)
		}
	}

	return chosen, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// applyLimitFlags copies explicitly set limit flags over cfg and revalidates.
func applyLimitFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("max-expansions") {
		cfg.Limits.MaxExpansions, _ = flags.GetInt("max-expansions")
	}
	if flags.Changed("time-limit") {
		cfg.Limits.TimeLimit, _ = flags.GetDuration("time-limit")
	}
	if flags.Changed("max-depth") {
		cfg.Limits.MaxDepth, _ = flags.GetInt("max-depth")
	}

	return cfg.Validate()
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	return logging.New(level, format, cmd.ErrOrStderr()), nil
}
