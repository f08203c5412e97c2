// Package cli implements the strrev command.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mel2oo/go-reverse/internal/config"
	"github.com/mel2oo/go-reverse/internal/logging"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath        string
	strategies        []string
	logLevel          string
	prettyLogs        bool
	maxRecursionDepth int
	json              bool
	check             bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "strrev [text...]",
		Short: "Reverse text with the slicing, iterative and recursive strategies",
		Long: "strrev prints each text alongside its reversal by every selected strategy.\n" +
			"With no arguments it runs over a fixed set of sample strings.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			log := logging.New(cmd.ErrOrStderr(), logging.Config{
				Level:  cfg.LogLevel,
				Pretty: f.prettyLogs,
			})

			inputs := args
			if len(inputs) == 0 {
				inputs = cfg.Samples
			}

			d, err := newDemo(cfg, log, f.json)
			if err != nil {
				log.Error().Err(err).Msg("invalid configuration")
				return err
			}
			return d.run(cmd.OutOrStdout(), inputs)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML file with samples, strategies and limits")
	fs.StringSliceVarP(&f.strategies, "strategy", "s", nil, "strategy to run: slicing, iteration or recursion (repeatable, default all)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&f.prettyLogs, "pretty-logs", false, "human-readable logs instead of JSON")
	fs.IntVar(&f.maxRecursionDepth, "max-recursion-depth", 0, "deepest recursion, in code units, for the recursive strategy")
	fs.BoolVar(&f.json, "json", false, "treat each argument as a JSON value; only JSON strings are accepted")
	fs.BoolVar(&f.check, "check", false, "fail when the strategies disagree")

	return cmd
}

// resolveConfig starts from defaults, overlays the config file, then any
// flags set on the command line.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("strategy") {
		strategies, err := config.ParseStrategies(f.strategies)
		if err != nil {
			return config.Config{}, errors.Wrap(err, "--strategy")
		}
		cfg.Strategies = strategies
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("max-recursion-depth") {
		cfg.MaxRecursionDepth = f.maxRecursionDepth
	}
	if fs.Changed("check") {
		cfg.Check = f.check
	}

	return cfg, nil
}
