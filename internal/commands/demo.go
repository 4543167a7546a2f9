package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/report"
	"github.com/minibank-dev/minibank/internal/script"
)

func newDemoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in walkthrough against an empty ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			// Seed accounts are ignored: the walkthrough opens its own.
			mgr := bank.NewManager(bank.WithLogger(logger))
			runner := script.NewRunner(mgr, script.WithLogger(logger))

			entries, runErr := runner.Run(cmd.Context(), script.DemoScript())
			if err := report.WriteNarrative(cmd.OutOrStdout(), entries); err != nil {
				return err
			}
			return runErr
		},
	}
}
