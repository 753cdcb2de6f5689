package schedule

import (
	"time"

	"github.com/paydaycal/paydaycal/internal/utils"
	"github.com/paydaycal/paydaycal/pkg/budget"
	"github.com/paydaycal/paydaycal/pkg/period"
)

// DateFormat is the "dd Mon" layout used for day labels.
const DateFormat = "02 Jan"

// Day is one calendar cell of a schedule. Days of the previous period are
// padding for the calendar grid and carry no budget data.
type Day struct {
	Number          int
	Remains         int
	Budget          int
	Date            time.Time
	IsCurrent       bool
	IsSaturday      bool
	IsCurrentPeriod bool
}

type Schedule struct {
	// Reference is the date the schedule was computed for.
	Reference   time.Time
	Period      period.PlanningPeriod
	Days        []Day
	DailyBudget int
	TotalDays   int
	Remainer    int
}

// CurrentDay returns the day matching the reference date, if it is part of
// the period.
func (s Schedule) CurrentDay() (Day, bool) {
	for _, day := range s.Days {
		if day.IsCurrent {
			return day, true
		}
	}
	return Day{}, false
}

// PeriodDays returns the days that belong to the pay period, without padding.
func (s Schedule) PeriodDays() []Day {
	days := make([]Day, 0, s.TotalDays)
	for _, day := range s.Days {
		if day.IsCurrentPeriod {
			days = append(days, day)
		}
	}
	return days
}

// Format walks the period one day at a time, spending the budget allowance of
// each day, and prepends the tail of the previous period so the sequence
// starts on a Saturday.
func Format(b budget.Budget, p period.PlanningPeriod, payDay int, now time.Time) Schedule {
	periodDays := p.Days()
	balances := b.RunningBalances(periodDays)

	stubs := prependDays(p.StartDate, payDay)
	days := make([]Day, 0, len(stubs)+len(periodDays))
	days = append(days, stubs...)
	for i, date := range periodDays {
		days = append(days, Day{
			Number:          i + 1,
			Remains:         balances[i],
			Budget:          b.Allowance(date),
			Date:            date,
			IsCurrent:       utils.SameDay(date, now),
			IsSaturday:      date.Weekday() == time.Saturday,
			IsCurrentPeriod: true,
		})
	}

	return Schedule{
		Reference:   utils.DateOf(now),
		Period:      p,
		Days:        days,
		DailyBudget: b.DailyBudget,
		TotalDays:   p.TotalDays,
		Remainer:    b.Remainer,
	}
}

// prependDays returns isoWeekday(firstDay)+1 days preceding firstDay in
// ascending order, numbered downwards from payDay-1.
func prependDays(firstDay time.Time, payDay int) []Day {
	weekdayNumber := isoWeekday(firstDay)
	stubs := make([]Day, weekdayNumber+1)

	day := firstDay
	number := payDay
	for i := weekdayNumber; i >= 0; i-- {
		day = day.AddDate(0, 0, -1)
		number--
		stubs[i] = Day{
			Number:     number,
			Date:       day,
			IsSaturday: day.Weekday() == time.Saturday,
		}
	}
	return stubs
}

// isoWeekday numbers Monday as 1 and Sunday as 7.
func isoWeekday(date time.Time) int {
	return (int(date.Weekday())+6)%7 + 1
}
