package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/altman/pkg/config"
)

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	configFile string
	env        string
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "zscore",
		Short: "Altman Z-Score - 재무 부실 예측",
		Long: `Altman Z-Score CLI

Scores one company's solvency from seven balance-sheet and income inputs
and classifies it as Safe, Grey or Distress.

Usage:
  go run ./cmd/zscore [command]

Examples:
  go run ./cmd/zscore score
  go run ./cmd/zscore score --file company.yaml --ratios
  go run ./cmd/zscore serve --port 8080`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&opts.env, "env", "", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newScoreCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

// Execute runs the root command.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig applies the persistent flags on top of the environment
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.configFile)
	if err != nil {
		return nil, err
	}

	if o.env != "" {
		cfg.Env = o.env
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
