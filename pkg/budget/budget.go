package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrDegeneratePeriod = errors.New("degenerate period, no weekdays")

// Budget splits an amount across a pay period: Saturdays get a flat
// SaturdayBudget, every other day gets DailyBudget. It is immutable; running
// balances are produced by a Ledger.
type Budget struct {
	TotalDays      int
	CountSaturdays int
	// Amount is the budget the split was derived from.
	Amount         int
	SaturdayBudget int
	DailyBudget    int
	// Remainer is what the flat split leaves unallocated, never negative.
	Remainer int
}

// New derives the daily budget and remainder for a period of totalDays days
// containing countSaturdays Saturdays.
func New(totalDays, countSaturdays int, settings Settings) (Budget, error) {
	settings = settings.WithDefaults()
	weekdayCount := totalDays - countSaturdays
	if weekdayCount <= 0 {
		return Budget{}, fmt.Errorf("%w: %d days, %d saturdays", ErrDegeneratePeriod, totalDays, countSaturdays)
	}

	available := decimal.NewFromInt(int64(settings.Budget - settings.SaturdayBudget*countSaturdays))
	weekdays := decimal.NewFromInt(int64(weekdayCount))

	// floor, not truncation: a negative available amount rounds down
	daily := available.Div(weekdays).Floor()
	remainer := available.Sub(weekdays.Mul(daily)).Floor()
	if remainer.IsNegative() {
		remainer = decimal.Zero
	}

	return Budget{
		TotalDays:      totalDays,
		CountSaturdays: countSaturdays,
		Amount:         settings.Budget,
		SaturdayBudget: settings.SaturdayBudget,
		DailyBudget:    int(daily.IntPart()),
		Remainer:       int(remainer.IntPart()),
	}, nil
}

// Allowance is the amount attributed to day.
func (b Budget) Allowance(day time.Time) int {
	if day.Weekday() == time.Saturday {
		return b.SaturdayBudget
	}
	return b.DailyBudget
}

// RunningBalances folds days, in the given order, into the balance left after
// each of them.
func (b Budget) RunningBalances(days []time.Time) []int {
	ledger := b.Ledger()
	balances := make([]int, 0, len(days))
	for _, day := range days {
		balances = append(balances, ledger.Decrement(day))
	}
	return balances
}

// Ledger starts a running balance at the full Amount.
func (b Budget) Ledger() *Ledger {
	return &Ledger{budget: b, balance: b.Amount}
}

// Ledger is the mutable running balance of one walk over a period. Decrement
// must be called once per day in ascending date order.
type Ledger struct {
	budget  Budget
	balance int
}

// Decrement spends the allowance of day and returns the new balance.
func (l *Ledger) Decrement(day time.Time) int {
	l.balance -= l.budget.Allowance(day)
	return l.balance
}

func (l *Ledger) Balance() int {
	return l.balance
}
