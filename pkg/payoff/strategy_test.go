package payoff_test

import (
	"reflect"
	"testing"

	"github.com/finwell/debt-payoff/pkg/datetime"
	"github.com/finwell/debt-payoff/pkg/payoff"
	"github.com/finwell/debt-payoff/pkg/testutil"
)

func TestSnowballOrder(t *testing.T) {
	loans := []payoff.Loan{
		{Name: "Big", Balance: 5000},
		{Name: "Small", Balance: 200},
		{Name: "Medium", Balance: 1200},
	}

	ordered := payoff.SnowballOrder(loans)

	names := orderedNames(ordered)
	if !reflect.DeepEqual(names, []string{"Small", "Medium", "Big"}) {
		t.Errorf("SnowballOrder = %v", names)
	}
	// The input slice is untouched.
	if loans[0].Name != "Big" {
		t.Errorf("SnowballOrder mutated its input")
	}
}

func TestAvalancheOrder(t *testing.T) {
	loans := []payoff.Loan{
		{Name: "Cheap", InterestRate: 3.5},
		{Name: "Expensive", InterestRate: 24.99},
		{Name: "Middling", InterestRate: 12},
	}

	ordered := payoff.AvalancheOrder(loans)

	names := orderedNames(ordered)
	if !reflect.DeepEqual(names, []string{"Expensive", "Middling", "Cheap"}) {
		t.Errorf("AvalancheOrder = %v", names)
	}
}

func TestOrderingIsStableOnTies(t *testing.T) {
	equalBalances := []payoff.Loan{
		{Name: "First", Balance: 1000, InterestRate: 5},
		{Name: "Second", Balance: 1000, InterestRate: 15},
		{Name: "Third", Balance: 1000, InterestRate: 10},
	}
	names := orderedNames(payoff.SnowballOrder(equalBalances))
	if !reflect.DeepEqual(names, []string{"First", "Second", "Third"}) {
		t.Errorf("snowball tie-break changed input order: %v", names)
	}

	equalRates := []payoff.Loan{
		{Name: "First", Balance: 3000, InterestRate: 9.9},
		{Name: "Second", Balance: 100, InterestRate: 9.9},
		{Name: "Third", Balance: 2000, InterestRate: 9.9},
	}
	names = orderedNames(payoff.AvalancheOrder(equalRates))
	if !reflect.DeepEqual(names, []string{"First", "Second", "Third"}) {
		t.Errorf("avalanche tie-break changed input order: %v", names)
	}
}

func TestAvalancheNeverPaysMoreInterestThanSnowball(t *testing.T) {
	tests := []struct {
		name  string
		loans []payoff.Loan
		extra float64
	}{
		{
			name: "Small cheap loan vs large expensive loan",
			loans: []payoff.Loan{
				{Name: "A", Balance: 500, InterestRate: 1, MinimumPayment: 25},
				{Name: "B", Balance: 5000, InterestRate: 22, MinimumPayment: 150},
			},
			extra: 200,
		},
		{
			name: "Three loans with distinct rates",
			loans: []payoff.Loan{
				{Name: "A", Balance: 1200, InterestRate: 6, MinimumPayment: 60},
				{Name: "B", Balance: 800, InterestRate: 19, MinimumPayment: 40},
				{Name: "C", Balance: 3000, InterestRate: 11, MinimumPayment: 120},
			},
			extra: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparison := payoff.CompareStrategies(nil, tt.loans, tt.extra, payoff.Avalanche, 360)
			if comparison.Avalanche.TotalInterest > comparison.Snowball.TotalInterest {
				t.Errorf("avalanche interest %.2f exceeds snowball %.2f",
					comparison.Avalanche.TotalInterest, comparison.Snowball.TotalInterest)
			}
			if comparison.InterestDifference != comparison.Snowball.TotalInterest-comparison.Avalanche.TotalInterest {
				t.Errorf("InterestDifference %.2f is not snowball minus avalanche",
					comparison.InterestDifference)
			}
		})
	}
}

func TestCompareStrategiesCoincidingOrders(t *testing.T) {
	// The smaller loan also carries the higher rate, so both strategies
	// produce the same ordering and must produce identical results.
	loans := []payoff.Loan{
		{Name: "Small", Balance: 500, InterestRate: 20, MinimumPayment: 50},
		{Name: "Large", Balance: 2000, InterestRate: 10, MinimumPayment: 100},
	}

	comparison := payoff.CompareStrategies(nil, loans, 100, payoff.Snowball, 360)

	if !reflect.DeepEqual(comparison.Snowball.Order, []string{"Small", "Large"}) {
		t.Errorf("snowball order = %v", comparison.Snowball.Order)
	}
	if !reflect.DeepEqual(comparison.Snowball, comparison.Avalanche) {
		t.Errorf("coinciding orders should yield identical results:\n%+v\n%+v",
			comparison.Snowball, comparison.Avalanche)
	}
	if comparison.InterestDifference != 0 {
		t.Errorf("InterestDifference = %.2f, expected 0", comparison.InterestDifference)
	}
}

func TestCompareStrategiesBaselineSavings(t *testing.T) {
	loans := []payoff.Loan{
		{Name: "Only", Balance: 1000, InterestRate: 0, MinimumPayment: 100},
	}

	comparison := payoff.CompareStrategies(nil, loans, 100, payoff.Snowball, 360)

	// With the extra the loan clears in 5 months instead of 10.
	if comparison.Snowball.Months != 5 {
		t.Errorf("Months with extra = %d, expected 5", comparison.Snowball.Months)
	}
	if comparison.MonthsSaved != 5 {
		t.Errorf("MonthsSaved = %d, expected 5", comparison.MonthsSaved)
	}
	if comparison.InterestSaved != 0 {
		t.Errorf("InterestSaved = %.2f, expected 0 for a zero-rate loan", comparison.InterestSaved)
	}
}

func TestCompareStrategiesSavingsNeverNegative(t *testing.T) {
	loans := []payoff.Loan{
		{Name: "A", Balance: 750, InterestRate: 14, MinimumPayment: 50},
		{Name: "B", Balance: 2500, InterestRate: 8, MinimumPayment: 90},
	}

	for _, extra := range []float64{0, 25, 500} {
		comparison := payoff.CompareStrategies(nil, loans, extra, payoff.Avalanche, 360)
		if comparison.MonthsSaved < 0 {
			t.Errorf("extra %.0f: MonthsSaved = %d", extra, comparison.MonthsSaved)
		}
		if comparison.InterestSaved < 0 {
			t.Errorf("extra %.0f: InterestSaved = %.2f", extra, comparison.InterestSaved)
		}
	}
}

func TestCompareStrategiesPayoffSchedule(t *testing.T) {
	loans := []payoff.Loan{
		{Name: "A", Balance: 100, InterestRate: 0, MinimumPayment: 100},
		{Name: "B", Balance: 1000, InterestRate: 0, MinimumPayment: 50},
	}

	comparison := payoff.CompareStrategies(nil, loans, 0, payoff.Snowball, 360)

	a := testutil.FindPayoff(comparison.Snowball, "A")
	if a == nil || a.Month != 1 {
		t.Errorf("expected A cleared at month 1, got %+v", a)
	}
	b := testutil.FindPayoff(comparison.Snowball, "B")
	if b == nil || b.Month != comparison.Snowball.Months {
		t.Errorf("expected B cleared in the final month, got %+v", b)
	}
	if testutil.FindPayoff(comparison.Snowball, "missing") != nil {
		t.Errorf("unexpected payoff record for unknown loan")
	}
}

func TestProjectLoans(t *testing.T) {
	now := datetime.MustParseTime(datetime.DateTimeLayout, "2024-03-15")
	loans := []payoff.Loan{
		{Name: "Interest-free", Balance: 1200, InterestRate: 0, MinimumPayment: 100, StartDate: "2024-01-31"},
		{Name: "Underwater", Balance: 10000, InterestRate: 24, MinimumPayment: 10},
		{Name: "Paid", Balance: 0, InterestRate: 5, MinimumPayment: 50},
	}

	projections := payoff.ProjectLoans(loans, now, 360)

	if len(projections) != 3 {
		t.Fatalf("expected 3 projections, got %d", len(projections))
	}

	first := projections[0]
	if first.MonthsRemaining != 12 || !first.PaymentCoversInterest {
		t.Errorf("interest-free projection = %+v", first)
	}
	if first.NextPaymentDate != "2024-03-31" {
		t.Errorf("NextPaymentDate = %s, expected 2024-03-31", first.NextPaymentDate)
	}

	second := projections[1]
	if second.PaymentCoversInterest {
		t.Errorf("underwater loan should signal payment does not cover interest")
	}
	if second.MonthsRemaining != 360 {
		t.Errorf("underwater MonthsRemaining = %d, expected cap", second.MonthsRemaining)
	}
	if second.NextPaymentDate != "" {
		t.Errorf("loan without start date should have empty NextPaymentDate")
	}

	third := projections[2]
	if third.MonthsRemaining != 0 || !third.PaymentCoversInterest {
		t.Errorf("paid loan projection = %+v", third)
	}
}

func orderedNames(loans []payoff.Loan) []string {
	names := make([]string, len(loans))
	for i, loan := range loans {
		names[i] = loan.Name
	}
	return names
}
