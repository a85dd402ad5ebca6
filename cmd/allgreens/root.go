package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/allgreens/datasets"
	"github.com/YuminosukeSato/allgreens/internal/config"
	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"github.com/YuminosukeSato/allgreens/pkg/log"
	"github.com/YuminosukeSato/allgreens/report"
	"github.com/YuminosukeSato/allgreens/stats"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "allgreens",
		Short: "Correlation and r² ranking for the All Greens franchise data",
		Long: `allgreens computes the Pearson correlation matrix of the six All Greens
variables over 14 stores, then ranks x2..x6 by their coefficient of
determination (r²) against x1. The report goes to stdout; logs go to stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := log.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return errors.SafeExecute("allgreens.run", func() error {
				return run(cmd.OutOrStdout(), cfg)
			})
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "optional YAML config file")
	f.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	f.String("log-format", "", "log format: console or json (default console)")
	f.String("reference", "", "label of the reference variable (default: first variable)")

	return cmd
}

func run(w io.Writer, cfg *config.Config) error {
	logger := log.GetLoggerWithName("cli")
	ds := datasets.LoadAllGreens()

	reference := 0
	if cfg.Reference != "" {
		i, err := ds.Index(cfg.Reference)
		if err != nil {
			return err
		}
		reference = i
	}

	res, err := stats.Analyze(ds, reference)
	if err != nil {
		return err
	}
	logger.Debug("writing report",
		log.OperationKey, log.OperationReport,
		log.ReferenceKey, res.Ranking.Reference,
	)
	return report.Text(w, res)
}
