// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/finwell/debt-payoff/pkg/payoff"
)

// FindPayoff finds a loan's payoff record by name in a simulation result.
// Returns a pointer to the record if found, nil otherwise.
func FindPayoff(result payoff.Result, name string) *payoff.LoanPayoff {
	for i := range result.Payoffs {
		if result.Payoffs[i].Name == name {
			return &result.Payoffs[i]
		}
	}
	return nil
}
