package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/buildinfo"
	"github.com/minibank-dev/minibank/internal/config"
	"github.com/minibank-dev/minibank/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "minibank",
		Short:   "In-memory banking ledger with deposits, withdrawals and loans",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file (optional unless set explicitly)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))

	return rootCmd
}

// loadConfig reads the config file. A missing file is only an error when
// --config was given explicitly.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(""), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	return logging.New(level)
}

// seededManager creates a Manager with the config's seed accounts opened.
func seededManager(cfg *config.Config, logger *zap.Logger) (*bank.Manager, error) {
	openings := make([]bank.Opening, 0, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		amount, err := a.Amount()
		if err != nil {
			return nil, err
		}
		openings = append(openings, bank.Opening{Holder: a.Holder, InitialDeposit: amount})
	}

	mgr := bank.NewManager(bank.WithLogger(logger))
	if err := mgr.Seed(openings); err != nil {
		return nil, err
	}
	return mgr, nil
}
