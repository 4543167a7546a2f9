package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minibank-dev/minibank/internal/report"
	"github.com/minibank-dev/minibank/internal/script"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var format string
	var keepGoing bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "run <script.csv>",
		Short: "Replay an operation script against a fresh ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatCSV {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatCSV)
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ops, err := script.Load(args[0])
			if err != nil {
				return err
			}

			mgr, err := seededManager(cfg, logger)
			if err != nil {
				return fmt.Errorf("seeding accounts: %w", err)
			}

			logger.Info("running script",
				zap.String("bank", cfg.Bank.Name),
				zap.String("script", args[0]),
				zap.Int("operations", len(ops)),
				zap.Int("seeded_accounts", len(cfg.Accounts)))

			runner := script.NewRunner(mgr, script.KeepGoing(keepGoing), script.WithLogger(logger))
			entries, runErr := runner.Run(cmd.Context(), ops)

			out := cmd.OutOrStdout()
			if err := writeReport(out, format, entries); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			if summary {
				fmt.Fprintf(out, "\n%s\n", cfg.Bank.Name)
				if err := report.WriteSummary(out, mgr.Accounts(), mgr.TotalDeposits()); err != nil {
					return fmt.Errorf("writing summary: %w", err)
				}
			}

			logger.Info("script finished",
				zap.Int("attempted", len(entries)),
				zap.Int("failed", len(report.Failed(entries))),
				zap.Stringer("total_deposits", mgr.TotalDeposits()))
			return runErr
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "report format: text or csv")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue after rejected operations")
	cmd.Flags().BoolVar(&summary, "summary", false, "print account balances and total deposits after the run")

	return cmd
}

func writeReport(w io.Writer, format string, entries []report.Entry) error {
	if format == formatCSV {
		return report.WriteCSV(w, entries)
	}
	return report.WriteText(w, entries)
}
