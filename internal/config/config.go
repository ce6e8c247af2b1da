// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/finwell/debt-payoff/pkg/constants"
	"github.com/finwell/debt-payoff/pkg/payoff"
	"github.com/finwell/debt-payoff/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for debt-payoff.
type Configuration struct {
	Loans        []Loan
	ExtraPayment float64
	Strategy     string
	MaxMonths    int
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Loan indicates a single loan and its parameters.
type Loan struct {
	Name           string
	Balance        float64
	InterestRate   float64 // annual percentage
	MinimumPayment float64
	StartDate      string // optional, DateTimeLayout
	TermMonths     int    // optional
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration, viper.DecodeHook(dateToStringHookFunc()))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// dateToStringHookFunc converts time.Time values back to DateTimeLayout
// strings during unmarshalling. YAML resolves unquoted dates like 2023-06-15
// to time.Time, which would otherwise fail to decode into the string date
// fields.
func dateToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == reflect.TypeOf(time.Time{}) && to.Kind() == reflect.String {
			return data.(time.Time).Format(DateTimeLayout), nil
		}
		return data, nil
	}
}

// ApplyDefaults fills in defaults for optional top-level settings.
func (conf *Configuration) ApplyDefaults() {
	if conf.Strategy == "" {
		conf.Strategy = constants.StrategySnowball
	}
	if conf.MaxMonths <= 0 {
		conf.MaxMonths = constants.DefaultMaxMonths
	}
}

// ValidateConfiguration checks the configuration for conditions worth
// surfacing to the user and returns them as warnings. The engine clamps
// degenerate numeric inputs itself, so none of these are fatal.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateStrategy(conf.Strategy); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - using %s", err, constants.StrategySnowball))
		conf.Strategy = constants.StrategySnowball
	}

	if conf.ExtraPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("Extra payment %.2f is negative - treated as zero", conf.ExtraPayment))
	}

	if len(conf.Loans) == 0 {
		warnings = append(warnings, "No loans configured - nothing to simulate")
	}

	currentDate := time.Now().Format(DateTimeLayout)
	for _, loan := range conf.Loans {
		warnings = append(warnings, validation.LoanWarnings(loan.Name, loan.Balance, loan.InterestRate, loan.MinimumPayment)...)
		if err := validation.ValidateStartDate(loan.Name, loan.StartDate); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		warning, err := validation.MaturityWarning(loan.Name, loan.StartDate, loan.TermMonths, loan.Balance, currentDate)
		if err == nil && warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}

// PayoffLoans converts the configured loans into the engine's loan
// snapshots.
func (conf *Configuration) PayoffLoans() []payoff.Loan {
	loans := make([]payoff.Loan, len(conf.Loans))
	for i, loan := range conf.Loans {
		loans[i] = payoff.Loan{
			Name:           loan.Name,
			Balance:        loan.Balance,
			InterestRate:   loan.InterestRate,
			MinimumPayment: loan.MinimumPayment,
			StartDate:      loan.StartDate,
			TermMonths:     loan.TermMonths,
		}
	}
	return loans
}
