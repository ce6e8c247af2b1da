// Package payoff simulates paying off a portfolio of loans in a chosen
// priority order with a shared, cascading extra-payment budget, and compares
// the snowball and avalanche payoff strategies.
package payoff

import (
	"fmt"

	"github.com/finwell/debt-payoff/pkg/amortize"
	"github.com/finwell/debt-payoff/pkg/mathutil"
	"go.uber.org/zap"
)

// Loan is a read-only snapshot of a single loan as the simulator sees it.
// StartDate and TermMonths are carried for display-oriented projections only;
// the simulator itself uses Balance, InterestRate and MinimumPayment.
type Loan struct {
	Name           string
	Balance        float64
	InterestRate   float64 // annual percentage, e.g. 19.99
	MinimumPayment float64
	StartDate      string // optional, constants.DateTimeLayout
	TermMonths     int    // optional
}

// LoanPayoff records the month a loan first reached zero balance and the
// portfolio's cumulative interest paid up to that point, rounded to cents.
type LoanPayoff struct {
	Name               string
	Month              int
	CumulativeInterest float64
}

// Result is the outcome of one portfolio payoff simulation.
type Result struct {
	Order         []string
	Months        int
	TotalInterest float64 // rounded to whole currency units
	Payoffs       []LoanPayoff
}

// monthState is the per-month simulation state threaded through each step:
// working balances aligned with the loan order, the extra-payment pool
// available this month, and the running interest accumulator. Steps produce
// a new state rather than mutating shared variables so a single month is
// independently testable.
type monthState struct {
	balances       []float64
	availableExtra float64
	totalInterest  float64
}

func (s monthState) anyOutstanding() bool {
	for _, b := range s.balances {
		if b > 0 {
			return true
		}
	}
	return false
}

// step advances the simulation by one month: interest accrues on every
// outstanding balance, the first outstanding loan in priority order receives
// its minimum payment plus the entire extra pool, every other outstanding
// loan receives its own minimum, and minimum payments freed by loans
// clearing this month join the extra pool starting the following month.
func step(s monthState, loans []Loan) monthState {
	next := monthState{
		balances:       make([]float64, len(s.balances)),
		availableExtra: s.availableExtra,
		totalInterest:  s.totalInterest,
	}
	copy(next.balances, s.balances)

	target := -1
	for i, b := range next.balances {
		if b > 0 {
			target = i
			break
		}
	}

	freed := 0.0
	for i, loan := range loans {
		if next.balances[i] <= 0 {
			continue
		}
		payment := loan.MinimumPayment
		if i == target {
			payment += s.availableExtra
		}
		p := amortize.Step(next.balances[i], payment, loan.InterestRate)
		next.totalInterest += p.Interest
		next.balances[i] = p.RemainingBalance
		if next.balances[i] <= 0 {
			freed += loan.MinimumPayment
		}
	}
	// Freed minimums become available the month after their loan clears,
	// never within the clearing month itself.
	next.availableExtra += freed
	return next
}

// Simulate runs a month-by-month payoff of loans in the given priority
// order with the given extra-payment budget, bounded by maxMonths. Loans
// that are already paid off are excluded before simulation; negative
// balances, rates and payments are clamped to zero at the boundary. The
// maxMonths cap is the termination guarantee for portfolios whose minimum
// payments cannot cover accruing interest; hitting it is not an error.
func Simulate(logger *zap.Logger, loans []Loan, extraPayment float64, maxMonths int) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := make([]Loan, 0, len(loans))
	for _, loan := range loans {
		loan.Balance = mathutil.ClampNonNegative(loan.Balance)
		loan.InterestRate = mathutil.ClampNonNegative(loan.InterestRate)
		loan.MinimumPayment = mathutil.ClampNonNegative(loan.MinimumPayment)
		if loan.Balance > 0 {
			active = append(active, loan)
		}
	}

	result := Result{Order: make([]string, len(active))}
	state := monthState{
		balances:       make([]float64, len(active)),
		availableExtra: mathutil.ClampNonNegative(extraPayment),
	}
	for i, loan := range active {
		result.Order[i] = loan.Name
		state.balances[i] = loan.Balance
	}

	for month := 1; month <= maxMonths && state.anyOutstanding(); month++ {
		previous := state
		state = step(state, active)
		result.Months = month
		for i, loan := range active {
			if previous.balances[i] > 0 && state.balances[i] <= 0 {
				logger.Debug(fmt.Sprintf("month %d: loan %s paid off, freeing %.2f minimum payment",
					month, loan.Name, loan.MinimumPayment),
					zap.String("op", "payoff.Simulate"),
				)
				result.Payoffs = append(result.Payoffs, LoanPayoff{
					Name:               loan.Name,
					Month:              month,
					CumulativeInterest: mathutil.Round(state.totalInterest),
				})
			}
		}
	}

	result.TotalInterest = mathutil.RoundWhole(state.totalInterest)
	return result
}
