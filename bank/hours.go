package bank

import "time"

// Withdrawal window: Monday through Friday, hours 9 through 17.
// The upper bound is inclusive on purpose, so withdrawals are accepted up
// to 17:59. Changing closingHour to 16 (or the comparison to >=) is the
// one-line switch to a conventional 9-to-5 window.
const (
	openingHour = 9
	closingHour = 17
)

// ValidateBusinessWindow reports whether t falls inside the withdrawal
// window, returning the day or hour violation as a ValidationError.
func ValidateBusinessWindow(t time.Time) error {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrOutsideBusinessDays
	}
	if h := t.Hour(); h < openingHour || h > closingHour {
		return ErrOutsideBusinessHours
	}
	return nil
}
