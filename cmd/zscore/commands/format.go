package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/zscore"
)

// PrintReport prints the analysis block for one result
func PrintReport(w io.Writer, result contracts.ScoreResult) {
	company := result.Company
	if company == "" {
		company = "Unnamed Company"
	}

	fmt.Fprintf(w, "--- Financial Analysis for %s ---\n", company)
	fmt.Fprintf(w, "Final Z-Score: %s\n", result.FormattedScore())
	fmt.Fprintf(w, "Current Condition: %s\n", result.Status)
}

// PrintRatioTable prints X1..X5 with their weights and weighted contribution
func PrintRatioTable(w io.Writer, ratios contracts.Ratios) {
	columns := []string{"Ratio", "Value", "Weight", "Contribution"}
	widths := []int{20, 10, 8, 12}

	fmt.Fprintln(w)
	PrintTableHeader(w, columns, widths)
	for i, v := range ratios {
		PrintTableRow(w, []string{
			contracts.RatioLabels[i],
			fmt.Sprintf("%.4f", v),
			fmt.Sprintf("%.1f", zscore.Weights[i]),
			fmt.Sprintf("%.4f", zscore.Weights[i]*v),
		}, widths)
	}
}

// PrintTableHeader prints a table header
func PrintTableHeader(w io.Writer, columns []string, widths []int) {
	PrintTableRow(w, columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", totalWidth))
}

// PrintTableRow prints a table row
func PrintTableRow(w io.Writer, values []string, widths []int) {
	for i, val := range values {
		fmt.Fprintf(w, "%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}
