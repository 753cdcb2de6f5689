package period

import (
	"fmt"
	"time"

	"github.com/paydaycal/paydaycal/internal/utils"
)

// PlanningPeriod is the pay period that contains a reference date. It runs
// from StartDate (inclusive) to EndDate (exclusive).
type PlanningPeriod struct {
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	CountSaturdays int
}

// Resolve returns the pay period containing now. The period starts on payDay
// of the current month, or of the previous month when now is before this
// month's pay day. A payDay beyond the length of a month is clamped to that
// month's last day.
func Resolve(now time.Time, payDay int) PlanningPeriod {
	today := utils.DateOf(now)
	year, month := today.Year(), today.Month()
	if today.Day() < clampedDay(year, month, payDay) {
		year, month = previousMonth(year, month)
	}

	start := time.Date(year, month, clampedDay(year, month, payDay), 0, 0, 0, 0, time.UTC)
	nextYear, nextMonth := nextMonth(year, month)
	end := time.Date(nextYear, nextMonth, clampedDay(nextYear, nextMonth, payDay), 0, 0, 0, 0, time.UTC)

	totalDays := daysBetween(start, end)
	return PlanningPeriod{
		StartDate:      start,
		EndDate:        end,
		TotalDays:      totalDays,
		CountSaturdays: countSaturdays(start, totalDays),
	}
}

// Days returns every date of the period in ascending order.
func (p PlanningPeriod) Days() []time.Time {
	days := make([]time.Time, 0, p.TotalDays)
	for date := p.StartDate; date.Before(p.EndDate); date = date.AddDate(0, 0, 1) {
		days = append(days, date)
	}
	return days
}

// Contains reports whether date falls inside [StartDate, EndDate).
func (p PlanningPeriod) Contains(date time.Time) bool {
	day := utils.DateOf(date)
	return !day.Before(p.StartDate) && day.Before(p.EndDate)
}

// WeekdayCount is the number of days in the period that are not counted as Saturdays.
func (p PlanningPeriod) WeekdayCount() int {
	return p.TotalDays - p.CountSaturdays
}

func (p PlanningPeriod) String() string {
	return fmt.Sprintf("[%s, %s)", p.StartDate.Format(time.DateOnly), p.EndDate.Format(time.DateOnly))
}

// countSaturdays counts Saturdays in (start, start+totalDays].
func countSaturdays(start time.Time, totalDays int) int {
	count := 0
	day := start
	for i := 0; i < totalDays; i++ {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday {
			count++
		}
	}
	return count
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampedDay(year int, month time.Month, day int) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
