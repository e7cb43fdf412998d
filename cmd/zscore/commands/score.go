package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/snapshot"
	"github.com/wonny/altman/internal/zscore"
	"github.com/wonny/altman/pkg/logger"
)

type scoreOptions struct {
	file       string
	company    string
	showRatios bool
	asJSON     bool
	values     contracts.FinancialSnapshot
}

// numericFlag binds one --flag to a snapshot field
type numericFlag struct {
	name  string
	usage string
	ref   *float64
}

// numericFlags maps flag names to the fields of s
func numericFlags(s *contracts.FinancialSnapshot) []numericFlag {
	return []numericFlag{
		{"working-capital", "current assets minus current liabilities", &s.WorkingCapital},
		{"retained-earnings", "retained earnings", &s.RetainedEarnings},
		{"ebit", "earnings before interest and taxes", &s.EBIT},
		{"market-cap", "market value of equity", &s.MarketCap},
		{"total-liabilities", "total liabilities (must be non-zero)", &s.TotalLiabilities},
		{"sales", "net sales", &s.Sales},
		{"total-assets", "total assets (must be non-zero)", &s.TotalAssets},
	}
}

func newScoreCmd(global *globalOptions) *cobra.Command {
	opts := &scoreOptions{values: snapshot.Default()}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Z-Score 계산",
		Long: `Scores one company and prints the Z-Score and its zone.

Without flags the built-in Tesla FY2024 example is scored. Values from --file
are used as the base and any numeric flag given explicitly overrides them.

Example:
  go run ./cmd/zscore score
  go run ./cmd/zscore score --company "Acme" --total-assets 500 --total-liabilities 200 \
      --working-capital 60 --retained-earnings 90 --ebit 40 --market-cap 300 --sales 650
  go run ./cmd/zscore score --file acme.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML snapshot file")
	cmd.Flags().StringVar(&opts.company, "company", opts.values.Company, "company name")
	cmd.Flags().BoolVar(&opts.showRatios, "ratios", false, "print the X1..X5 ratio table")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	for _, f := range numericFlags(&opts.values) {
		cmd.Flags().Float64Var(f.ref, f.name, *f.ref, f.usage)
	}

	return cmd
}

func runScore(cmd *cobra.Command, global *globalOptions, opts *scoreOptions) error {
	cfg, err := global.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(cfg, cmd.ErrOrStderr())

	snap, err := resolveSnapshot(cmd, opts)
	if err != nil {
		return err
	}

	if err := snapshot.Validate(snap); err != nil {
		log.WithError(err).Warn("Rejected snapshot")
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	result := zscore.NewCalculator(log).Calculate(cmd.Context(), snap)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		if !result.Finite {
			return fmt.Errorf("score for %q is not a finite number", snap.Company)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	PrintReport(out, result)
	if opts.showRatios {
		PrintRatioTable(out, result.Ratios)
	}

	return nil
}

// resolveSnapshot layers explicit flags over the file (if any) over the defaults
func resolveSnapshot(cmd *cobra.Command, opts *scoreOptions) (contracts.FinancialSnapshot, error) {
	flags := cmd.Flags()
	if opts.file == "" {
		snap := opts.values
		snap.Company = opts.company
		// the built-in name only belongs to the built-in figures
		if !flags.Changed("company") && anyNumericChanged(cmd) {
			snap.Company = ""
		}
		return snap, nil
	}

	// validation runs again once the overrides are applied
	snap, err := snapshot.Load(opts.file)
	var verr snapshot.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return contracts.FinancialSnapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	if flags.Changed("company") {
		snap.Company = opts.company
	}
	flagged := opts.values
	fileRefs := numericFlags(&snap)
	for i, f := range numericFlags(&flagged) {
		if flags.Changed(f.name) {
			*fileRefs[i].ref = *f.ref
		}
	}

	return snap, nil
}

func anyNumericChanged(cmd *cobra.Command) bool {
	for _, f := range numericFlags(&contracts.FinancialSnapshot{}) {
		if cmd.Flags().Changed(f.name) {
			return true
		}
	}
	return false
}
