// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/finwell/debt-payoff/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateStrategy checks if the strategy name is one of the supported
// payoff strategies.
func ValidateStrategy(strategy string) error {
	if strategy != constants.StrategySnowball && strategy != constants.StrategyAvalanche {
		return fmt.Errorf("expected strategy of %s or %s, got %s",
			constants.StrategySnowball, constants.StrategyAvalanche, strategy)
	}
	return nil
}
