package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TrevorS/wsp"
)

type options struct {
	output    string
	initial   string
	algo      string
	count     int
	distance  float64
	dimension int
	seed      uint64
	adaptive  int
	metric    string
	transpose bool
	verbose   bool
	logFormat string
}

func newRootCommand() (*cobra.Command, error) {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "wsp",
		Short: "Select a space-filling subset of random points with the WSP algorithm",
		Long: `Generate a uniform random point set and remove points until every remaining
pair is at least --distance apart. With --adaptive N, the distance is searched
so that N points remain instead.

Every flag can also be set through a WSP_-prefixed environment variable
(WSP_NB_INITIAL=500) or a config file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", configFile, err)
				}
			}
			opts := loadOptions(v)
			return run(opts, cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Optional config file (yaml, json or toml)")
	flags.StringP("output", "o", "wsp.csv", "Output file where the remaining points are stored")
	flags.StringP("initial", "i", "initial.csv", "Output file for the initial point set (empty to skip)")
	flags.StringP("algo", "a", "random", "Algorithm generating the initial set of candidate points")
	flags.IntP("nb-initial", "n", 2000, "Number of points in the initial set of candidate points")
	flags.Float64P("distance", "d", 1.0, "Minimal distance desired between remaining points")
	flags.IntP("dimension", "m", 20, "Dimension of the points")
	flags.Uint64P("seed", "s", 51, "Seed for the generation of the initial set")
	flags.Int("adaptive", 0, "Search the distance leaving this many points (0 disables)")
	flags.String("metric", "manhattan", "Distance metric: manhattan, sqeuclidean, euclidean, chebyshev")
	flags.Bool("transpose", false, "Write one row per dimension instead of one row per point")
	flags.BoolP("verbose", "v", false, "Log every adaptive search iteration")
	flags.String("log-format", "text", "Log format: text or json")

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}
	return cmd, nil
}

// bindFlags lets environment variables and config files override defaults
// for every flag except --config itself.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix("WSP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

func loadOptions(v *viper.Viper) options {
	return options{
		output:    v.GetString("output"),
		initial:   v.GetString("initial"),
		algo:      v.GetString("algo"),
		count:     v.GetInt("nb-initial"),
		distance:  v.GetFloat64("distance"),
		dimension: v.GetInt("dimension"),
		seed:      v.GetUint64("seed"),
		adaptive:  v.GetInt("adaptive"),
		metric:    v.GetString("metric"),
		transpose: v.GetBool("transpose"),
		verbose:   v.GetBool("verbose"),
		logFormat: v.GetString("log-format"),
	}
}

func newLogger(w io.Writer, format string, verbose bool) (*wsp.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	switch format {
	case "text":
		return wsp.NewTextLogger(w, level), nil
	case "json":
		return wsp.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func run(opts options, logOut io.Writer) error {
	if opts.algo != "random" {
		return fmt.Errorf("unsupported algorithm %q: only \"random\" is available", opts.algo)
	}
	metric, err := wsp.ParseMetric(opts.metric)
	if err != nil {
		return err
	}
	logger, err := newLogger(logOut, opts.logFormat, opts.verbose)
	if err != nil {
		return err
	}

	cfg := wsp.DefaultConfig()
	cfg.Metric = metric
	cfg.Logger = logger

	ps, err := wsp.NewRandomPointSet(opts.count, opts.dimension, opts.seed, cfg)
	if err != nil {
		return err
	}
	for i := 0; i < min(5, ps.Len()); i++ {
		logger.Debug("initial point", "index", i, "coords", ps.Point(i))
	}

	if opts.initial != "" {
		if err := wsp.SaveCSV(opts.initial, ps.Points(), opts.transpose); err != nil {
			return err
		}
	}

	if opts.adaptive > 0 {
		res, err := wsp.AdaptiveWSP(ps, opts.adaptive, opts.verbose)
		if err != nil {
			return err
		}
		if !res.Exact {
			logger.Warn("target not reachable, kept best approximation",
				"target", res.Target, "active", res.Active, "distance", res.Distance)
		}
	} else if err := wsp.WSP(ps, opts.distance); err != nil {
		return err
	}

	sum := wsp.Summarize(ps)
	logger.Info("wsp completed",
		"active", sum.Active,
		"removed", sum.Removed,
		"min_separation", sum.MinSeparation,
		"mean_nearest", sum.MeanNearest,
	)

	return ps.SaveRemainingCSV(opts.output, opts.transpose)
}
