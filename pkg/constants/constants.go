// Package constants provides shared constants for the debt-payoff application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Simulation constants
const (
	// DefaultMaxMonths caps any payoff simulation; it bounds runtime when
	// minimum payments cannot cover accruing interest.
	DefaultMaxMonths = 360

	// DefaultMaxScheduleEntries caps the number of rows produced for a
	// single-loan amortization schedule.
	DefaultMaxScheduleEntries = 360
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Strategy name constants
const (
	// StrategySnowball prioritizes the smallest balance first
	StrategySnowball = "snowball"

	// StrategyAvalanche prioritizes the highest interest rate first
	StrategyAvalanche = "avalanche"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
