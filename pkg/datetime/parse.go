// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/finwell/debt-payoff/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMonths advances the month component of t by months, which may be
// negative. The day of month is preserved unless the target month has fewer
// days, in which case it clamps to the target month's last day; Jan 31 plus
// one month yields the last day of February, never a day in March. Note that
// time.Time.AddDate normalizes overflow instead of clamping, so it cannot be
// used here.
func AddMonths(t time.Time, months int) time.Time {
	// time.Date normalizes out-of-range months, so anchoring to the first of
	// the target month is safe for any offset.
	anchor := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := DaysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return AddMonths(t, months).Format(layout), nil
}

// NextPaymentDate estimates the next monthly payment date for a loan that
// started at start: the first monthly anniversary of start strictly after
// now. Used for display only; simulations track period indexes instead.
func NextPaymentDate(start, now time.Time) time.Time {
	if start.After(now) {
		return start
	}
	// Anchor each anniversary on the original start so a clamped month does
	// not permanently shorten the day of month (Jan 31 -> Feb 28 -> Mar 31).
	next := start
	for k := 1; !next.After(now); k++ {
		next = AddMonths(start, k)
	}
	return next
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
