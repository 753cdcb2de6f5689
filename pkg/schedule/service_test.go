package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/paydaycal/paydaycal/internal/utils"
	"github.com/paydaycal/paydaycal/pkg/budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

func TestServiceImpl_GetSchedule_UsesClock(t *testing.T) {
	service := NewService(budget.DefaultSettings(), clock)

	s, err := service.GetSchedule(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 28), s.Period.StartDate)
	assert.Equal(t, date(2024, 3, 15), s.Reference)
	current, ok := s.CurrentDay()
	require.True(t, ok)
	assert.Equal(t, date(2024, 3, 15), current.Date)
}

func TestServiceImpl_GetSchedule_UsesReference(t *testing.T) {
	service := NewService(budget.DefaultSettings(), clock)
	reference := date(2024, 4, 2)

	s, err := service.GetSchedule(context.Background(), &reference)

	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 28), s.Period.StartDate)
	assert.Equal(t, 31, s.TotalDays)
	assert.Equal(t, 15, s.DailyBudget)
	assert.Equal(t, 10, s.Remainer)
	current, ok := s.CurrentDay()
	require.True(t, ok)
	assert.Equal(t, reference, current.Date)
}

func TestServiceImpl_GetSchedule_CustomSettings(t *testing.T) {
	settings := budget.Settings{Budget: 1000, PayDay: 1, SaturdayBudget: 100}
	service := NewService(settings, clock)

	s, err := service.GetSchedule(context.Background(), nil)

	require.NoError(t, err)
	// March 2024 has 31 days; Saturdays counted in (Mar 1, Apr 1] are 2, 9, 16, 23, 30
	assert.Equal(t, date(2024, 3, 1), s.Period.StartDate)
	assert.Equal(t, 31, s.TotalDays)
	assert.Equal(t, 5, s.Period.CountSaturdays)
	assert.Equal(t, 19, s.DailyBudget)
	assert.Equal(t, 6, s.Remainer)
	// March 1st is a Friday: six padding days numbered from the pay day downwards
	require.Len(t, s.Days, 31+6)
	assert.Equal(t, -5, s.Days[0].Number)
	assert.Equal(t, 0, s.Days[5].Number)
	assert.Equal(t, 1, s.Days[6].Number)
}
