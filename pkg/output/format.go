// Package output provides utilities for formatting and displaying payoff
// simulation results.
package output

import (
	"fmt"
	"strings"

	"github.com/finwell/debt-payoff/pkg/format"
	"github.com/finwell/debt-payoff/pkg/payoff"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(comparison payoff.Comparison, projections []payoff.Projection) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Strategy comparison ---\n")
	fmt.Printf("Strategy  | Months | Total Interest | Payoff Order\n")
	fmt.Printf("________  | ______ | ______________ | ____________\n")
	_, _ = p.Printf("snowball  | %d | %s | %s\n",
		comparison.Snowball.Months,
		format.WholeCurrency(comparison.Snowball.TotalInterest),
		strings.Join(comparison.Snowball.Order, " -> "))
	_, _ = p.Printf("avalanche | %d | %s | %s\n",
		comparison.Avalanche.Months,
		format.WholeCurrency(comparison.Avalanche.TotalInterest),
		strings.Join(comparison.Avalanche.Order, " -> "))

	switch {
	case comparison.InterestDifference > 0:
		fmt.Printf("\nAvalanche saves %s in interest over snowball\n",
			format.WholeCurrency(comparison.InterestDifference))
	case comparison.InterestDifference < 0:
		fmt.Printf("\nSnowball saves %s in interest over avalanche\n",
			format.WholeCurrency(-comparison.InterestDifference))
	default:
		fmt.Printf("\nBoth strategies pay the same interest\n")
	}

	fmt.Printf("Versus paying minimums only (%s): %d months and %s in interest saved\n",
		comparison.Selected, comparison.MonthsSaved, format.WholeCurrency(comparison.InterestSaved))

	selected := comparison.Snowball
	if comparison.Selected == payoff.Avalanche {
		selected = comparison.Avalanche
	}
	if len(selected.Payoffs) > 0 {
		fmt.Printf("\n--- Payoff schedule (%s) ---\n", comparison.Selected)
		fmt.Printf("Loan    | Month | Cumulative Interest\n")
		fmt.Printf("____    | _____ | ___________________\n")
		for _, record := range selected.Payoffs {
			_, _ = p.Printf("%s | %d | %s\n", record.Name, record.Month, format.Currency(record.CumulativeInterest))
		}
	}

	if len(projections) > 0 {
		fmt.Printf("\n--- Loan projections at minimum payment ---\n")
		fmt.Printf("Loan    | Months Remaining | Next Payment | Notes\n")
		fmt.Printf("____    | ________________ | ____________ | _____\n")
		for _, projection := range projections {
			note := ""
			if !projection.PaymentCoversInterest {
				note = "payment does not cover interest"
			}
			fmt.Printf("%s | %d | %s | %s\n",
				projection.Name, projection.MonthsRemaining, projection.NextPaymentDate, note)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(comparison payoff.Comparison, projections []payoff.Projection) {
	fmt.Printf("\"strategy\",\"months\",\"total interest\",\"order\"\n")
	for _, row := range []struct {
		name   string
		result payoff.Result
	}{
		{"snowball", comparison.Snowball},
		{"avalanche", comparison.Avalanche},
	} {
		fmt.Printf("\"%s\",\"%d\",\"%.0f\",\"%s\"\n",
			row.name, row.result.Months, row.result.TotalInterest,
			strings.Join(row.result.Order, ";"))
	}

	fmt.Printf("\n\"loan\",\"months remaining\",\"next payment\",\"payment covers interest\"\n")
	for _, projection := range projections {
		fmt.Printf("\"%s\",\"%d\",\"%s\",\"%t\"\n",
			projection.Name, projection.MonthsRemaining,
			projection.NextPaymentDate, projection.PaymentCoversInterest)
	}
}
