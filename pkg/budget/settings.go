package budget

import (
	"errors"
	"fmt"
)

const (
	DefaultBudget         = 700
	DefaultPayDay         = 28
	DefaultSaturdayBudget = 60
)

var (
	ErrInvalidPayDay  = errors.New("pay day must be between 1 and 31")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Settings holds the allowance parameters shared by the period resolver,
// the allocator and the formatter.
type Settings struct {
	// Budget is the total amount available for one pay period.
	Budget int
	// PayDay is the day of month a pay period starts on.
	PayDay int
	// SaturdayBudget is the flat amount reserved for every Saturday.
	SaturdayBudget int
}

func DefaultSettings() Settings {
	return Settings{
		Budget:         DefaultBudget,
		PayDay:         DefaultPayDay,
		SaturdayBudget: DefaultSaturdayBudget,
	}
}

// WithDefaults replaces a zero Budget or PayDay with its default.
func (s Settings) WithDefaults() Settings {
	if s.Budget == 0 {
		s.Budget = DefaultBudget
	}
	if s.PayDay == 0 {
		s.PayDay = DefaultPayDay
	}
	return s
}

func (s Settings) Validate() error {
	if s.PayDay < 1 || s.PayDay > 31 {
		return fmt.Errorf("%w: got %d", ErrInvalidPayDay, s.PayDay)
	}
	if s.Budget < 0 {
		return fmt.Errorf("budget: %w", ErrNegativeAmount)
	}
	if s.SaturdayBudget < 0 {
		return fmt.Errorf("saturday budget: %w", ErrNegativeAmount)
	}
	return nil
}

// Remain returns what is left of s.Budget after currentDayNumber days, of
// which countSaturdays were Saturdays, spending perDay on every other day.
func (s Settings) Remain(perDay, currentDayNumber, countSaturdays int) int {
	saturdaysSpent := countSaturdays * s.SaturdayBudget
	weekdaysSpent := (currentDayNumber - countSaturdays) * perDay
	return s.Budget - weekdaysSpent - saturdaysSpent
}

// BudgetRemain is Remain evaluated against the default settings.
func BudgetRemain(perDay, currentDayNumber, countSaturdays int) int {
	return DefaultSettings().Remain(perDay, currentDayNumber, countSaturdays)
}
