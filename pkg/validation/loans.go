package validation

import (
	"fmt"
	"time"

	"github.com/finwell/debt-payoff/pkg/amortize"
	"github.com/finwell/debt-payoff/pkg/constants"
	"github.com/finwell/debt-payoff/pkg/datetime"
	"github.com/finwell/debt-payoff/pkg/mathutil"
)

// LoanWarnings inspects a single loan's terms and returns human-readable
// warnings for conditions the engine handles defensively but the user should
// know about: negative inputs that will be clamped, and payments that can
// never amortize the balance. Warnings are informational; they never stop a
// simulation.
func LoanWarnings(name string, balance, interestRate, minimumPayment float64) []string {
	var warnings []string

	if balance < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative balance (%.2f) - treated as paid off", name, balance))
	}
	if interestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative interest rate (%.2f) - treated as interest-free", name, interestRate))
	}
	if minimumPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative minimum payment (%.2f) - treated as zero", name, minimumPayment))
	}

	if mathutil.IsPositive(balance) {
		projection := amortize.MonthsToPayoff(balance, minimumPayment, interestRate, constants.DefaultMaxMonths)
		if !projection.PaymentCoversInterest {
			warnings = append(warnings, fmt.Sprintf(
				"Loan '%s' minimum payment %.2f does not cover its monthly interest - the balance will never amortize at the minimum payment",
				name, minimumPayment))
		}
	}

	return warnings
}

// MaturityWarning checks whether a loan is already past its scheduled
// maturity while still carrying a balance. Loans without a start date or
// term are skipped.
func MaturityWarning(name, startDate string, termMonths int, balance float64, currentDate string) (string, error) {
	if startDate == "" || termMonths <= 0 || !mathutil.IsPositive(balance) {
		return "", nil
	}

	maturityDate, err := datetime.OffsetDate(startDate, constants.DateTimeLayout, termMonths)
	if err != nil {
		return "", err
	}
	past, err := datetime.DateBeforeDate(maturityDate, currentDate)
	if err != nil {
		return "", err
	}
	if past {
		return fmt.Sprintf("Loan '%s' is past its scheduled maturity (%s) but still carries a balance of %.2f",
			name, maturityDate, balance), nil
	}
	return "", nil
}

// ValidateStartDate checks that a loan's optional start date parses with the
// expected layout.
func ValidateStartDate(name, startDate string) error {
	if startDate == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateTimeLayout, startDate); err != nil {
		return fmt.Errorf("loan '%s' has invalid start date %q: expected layout %s",
			name, startDate, constants.DateTimeLayout)
	}
	return nil
}
