// Package amortize provides the shared amortization physics for the
// debt-payoff engine: the single-period step primitive, the closed-form
// months-to-payoff projection, and the iterative schedule generator.
package amortize

import (
	"math"
	"time"

	"github.com/finwell/debt-payoff/pkg/constants"
	"github.com/finwell/debt-payoff/pkg/datetime"
	"github.com/finwell/debt-payoff/pkg/mathutil"
)

// Payment holds the values for a given payment period.
type Payment struct {
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// Entry is one row of an amortization schedule.
type Entry struct {
	Date time.Time
	Payment
}

// Projection is the result of a single-loan payoff projection. Months is
// always finite and bounded by the cap supplied to MonthsToPayoff. When
// PaymentCoversInterest is false the loan cannot amortize under its terms
// and Months carries the cap; callers must surface that as a warning rather
// than treating it as a real payoff horizon.
type Projection struct {
	Months                int
	PaymentCoversInterest bool
}

// MonthlyRate converts an annual percentage rate to a monthly fractional
// rate. Negative rates are clamped to zero.
func MonthlyRate(annualRatePercent float64) float64 {
	return mathutil.ClampNonNegative(annualRatePercent) /
		(constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Step applies one period of amortization to a balance: interest accrues on
// the opening balance, then the payment is applied, interest first. The
// actual payment never exceeds balance plus accrued interest, so a final
// period never overpays. When the payment does not cover accrued interest
// the principal portion is zero and the shortfall capitalizes into the
// remaining balance.
func Step(balance, monthlyPayment, annualRatePercent float64) Payment {
	interest := balance * MonthlyRate(annualRatePercent)
	payment := mathutil.Min(monthlyPayment, balance+interest)
	principal := mathutil.Min(payment-interest, balance)
	if principal < 0 {
		principal = 0
	}
	remaining := mathutil.Max(0, balance+interest-payment)
	if mathutil.IsZero(remaining) {
		// Snap machine error to a clean zero so downstream comparisons and
		// termination checks are exact.
		remaining = 0
	}
	return Payment{
		Payment:          payment,
		Principal:        principal,
		Interest:         interest,
		RemainingBalance: remaining,
	}
}

// MonthsToPayoff computes how many monthly periods are needed to retire a
// loan using the closed-form amortization formula. The result is always in
// [0, maxMonths]. A non-positive balance projects to zero months. A
// non-positive payment, or a payment at or below the first period's
// interest, projects to maxMonths with PaymentCoversInterest false.
func MonthsToPayoff(balance, monthlyPayment, annualRatePercent float64, maxMonths int) Projection {
	balance = mathutil.ClampNonNegative(balance)
	if balance == 0 {
		return Projection{Months: 0, PaymentCoversInterest: true}
	}
	if monthlyPayment <= 0 {
		return Projection{Months: maxMonths, PaymentCoversInterest: false}
	}

	monthlyRate := MonthlyRate(annualRatePercent)
	if monthlyRate == 0 {
		months := int(math.Ceil(balance / monthlyPayment))
		if months > maxMonths {
			months = maxMonths
		}
		return Projection{Months: months, PaymentCoversInterest: true}
	}

	if monthlyPayment <= balance*monthlyRate {
		// The payment never exceeds accruing interest; the balance can never
		// amortize under these terms.
		return Projection{Months: maxMonths, PaymentCoversInterest: false}
	}

	months := int(math.Ceil(-math.Log(1-monthlyRate*balance/monthlyPayment) / math.Log(1+monthlyRate)))
	if months > maxMonths {
		months = maxMonths
	}
	if months < 0 {
		months = 0
	}
	return Projection{Months: months, PaymentCoversInterest: true}
}

// Schedule produces the period-by-period amortization schedule for a single
// loan by iterative simulation, starting at start and advancing one calendar
// month per entry. The schedule stops at zero balance or after maxEntries
// rows, whichever comes first. A non-positive balance or payment yields an
// empty schedule.
func Schedule(balance, monthlyPayment, annualRatePercent float64, start time.Time, maxEntries int) []Entry {
	if balance <= 0 || monthlyPayment <= 0 {
		return nil
	}

	var entries []Entry
	date := start
	for i := 0; i < maxEntries; i++ {
		p := Step(balance, monthlyPayment, annualRatePercent)
		entries = append(entries, Entry{Date: date, Payment: p})
		balance = p.RemainingBalance
		if balance == 0 {
			break
		}
		date = datetime.AddMonths(start, i+1)
	}
	return entries
}
