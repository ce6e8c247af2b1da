package payoff

import (
	"sort"
	"time"

	"github.com/finwell/debt-payoff/pkg/amortize"
	"github.com/finwell/debt-payoff/pkg/datetime"
	"github.com/finwell/debt-payoff/pkg/mathutil"
	"go.uber.org/zap"
)

// Strategy identifies a loan payoff ordering.
type Strategy string

const (
	// Snowball prioritizes the smallest balance first.
	Snowball Strategy = "snowball"
	// Avalanche prioritizes the highest interest rate first.
	Avalanche Strategy = "avalanche"
)

// Comparison is the outcome of comparing the two payoff strategies over the
// same loan set and extra-payment budget. InterestDifference is signed,
// snowball total minus avalanche total, so a positive value is the interest
// saved by choosing avalanche. MonthsSaved and InterestSaved measure the
// selected strategy against a zero-extra-payment baseline run with the same
// order, and are never negative.
type Comparison struct {
	Snowball           Result
	Avalanche          Result
	InterestDifference float64
	Selected           Strategy
	MonthsSaved        int
	InterestSaved      float64
}

// SnowballOrder returns the loans sorted ascending by balance. Loans with
// equal balances keep their input order.
func SnowballOrder(loans []Loan) []Loan {
	ordered := make([]Loan, len(loans))
	copy(ordered, loans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance < ordered[j].Balance
	})
	return ordered
}

// AvalancheOrder returns the loans sorted descending by interest rate. Loans
// with equal rates keep their input order.
func AvalancheOrder(loans []Loan) []Loan {
	ordered := make([]Loan, len(loans))
	copy(ordered, loans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].InterestRate > ordered[j].InterestRate
	})
	return ordered
}

// OrderFor returns the loans ordered for the given strategy. Unknown
// strategies fall back to snowball.
func OrderFor(strategy Strategy, loans []Loan) []Loan {
	if strategy == Avalanche {
		return AvalancheOrder(loans)
	}
	return SnowballOrder(loans)
}

// CompareStrategies runs the payoff simulation under both the snowball and
// avalanche orderings with the given extra payment, plus a zero-extra
// baseline under the selected strategy's ordering to measure the marginal
// benefit of the extra payment.
func CompareStrategies(logger *zap.Logger, loans []Loan, extraPayment float64, selected Strategy, maxMonths int) Comparison {
	if logger == nil {
		logger = zap.NewNop()
	}

	comparison := Comparison{
		Snowball:  Simulate(logger, SnowballOrder(loans), extraPayment, maxMonths),
		Avalanche: Simulate(logger, AvalancheOrder(loans), extraPayment, maxMonths),
		Selected:  selected,
	}
	comparison.InterestDifference = comparison.Snowball.TotalInterest - comparison.Avalanche.TotalInterest

	chosen := comparison.Snowball
	if selected == Avalanche {
		chosen = comparison.Avalanche
	}
	baseline := Simulate(logger, OrderFor(selected, loans), 0, maxMonths)
	comparison.MonthsSaved = baseline.Months - chosen.Months
	if comparison.MonthsSaved < 0 {
		comparison.MonthsSaved = 0
	}
	comparison.InterestSaved = mathutil.Max(0, baseline.TotalInterest-chosen.TotalInterest)
	return comparison
}

// Projection is a display-oriented view of a single loan: how many months
// remain at the minimum payment, whether that payment covers accruing
// interest, and the estimated next payment date when a start date is known.
type Projection struct {
	Name                  string
	MonthsRemaining       int
	PaymentCoversInterest bool
	NextPaymentDate       string
}

// ProjectLoans computes per-loan projections for display. Loans without a
// parseable start date get an empty next payment date.
func ProjectLoans(loans []Loan, now time.Time, maxMonths int) []Projection {
	projections := make([]Projection, 0, len(loans))
	for _, loan := range loans {
		p := amortize.MonthsToPayoff(loan.Balance, loan.MinimumPayment, loan.InterestRate, maxMonths)
		projection := Projection{
			Name:                  loan.Name,
			MonthsRemaining:       p.Months,
			PaymentCoversInterest: p.PaymentCoversInterest,
		}
		if loan.StartDate != "" {
			if start, err := time.Parse(datetime.DateTimeLayout, loan.StartDate); err == nil {
				projection.NextPaymentDate = datetime.NextPaymentDate(start, now).Format(datetime.DateTimeLayout)
			}
		}
		projections = append(projections, projection)
	}
	return projections
}
