package integration

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/finwell/debt-payoff/internal/config"
	"github.com/finwell/debt-payoff/pkg/payoff"
	"github.com/finwell/debt-payoff/pkg/testutil"
)

// TestConfigToComparisonFlow exercises the full pipeline: YAML config in,
// strategy comparison out.
func TestConfigToComparisonFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
loans:
  - name: Card
    balance: 500
    interestRate: 20
    minimumPayment: 50
  - name: Car
    balance: 2000
    interestRate: 10
    minimumPayment: 100
extraPayment: 100
strategy: avalanche
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	comparison := payoff.CompareStrategies(nil, conf.PayoffLoans(), conf.ExtraPayment, payoff.Strategy(conf.Strategy), conf.MaxMonths)

	// The smaller loan also carries the higher rate, so both orderings
	// coincide and the comparator must degrade gracefully.
	if comparison.InterestDifference != 0 {
		t.Errorf("InterestDifference = %.2f, expected 0 for coinciding orders", comparison.InterestDifference)
	}
	if comparison.Snowball.Months != comparison.Avalanche.Months {
		t.Errorf("months differ: snowball %d, avalanche %d",
			comparison.Snowball.Months, comparison.Avalanche.Months)
	}

	card := testutil.FindPayoff(comparison.Avalanche, "Card")
	car := testutil.FindPayoff(comparison.Avalanche, "Car")
	if card == nil || car == nil {
		t.Fatalf("missing payoff records: %+v", comparison.Avalanche.Payoffs)
	}
	if card.Month >= car.Month {
		t.Errorf("Card (month %d) should clear before Car (month %d)", card.Month, car.Month)
	}
	if comparison.Avalanche.Months != car.Month {
		t.Errorf("portfolio months %d should equal final payoff month %d",
			comparison.Avalanche.Months, car.Month)
	}

	// The extra payment must beat the minimums-only baseline on time and,
	// with these rates, on interest.
	if comparison.MonthsSaved <= 0 {
		t.Errorf("MonthsSaved = %d, expected positive", comparison.MonthsSaved)
	}
	if comparison.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", comparison.InterestSaved)
	}
	if comparison.Avalanche.TotalInterest != math.Trunc(comparison.Avalanche.TotalInterest) {
		t.Errorf("TotalInterest = %v, expected whole units", comparison.Avalanche.TotalInterest)
	}
}
