package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/paydaycal/paydaycal/internal/utils"
	"github.com/paydaycal/paydaycal/pkg/budget"
	"github.com/paydaycal/paydaycal/pkg/period"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetSchedule computes the schedule for reference, or for the current
	// date when reference is nil.
	GetSchedule(ctx context.Context, reference *time.Time) (Schedule, error)
}

type ServiceImpl struct {
	settings budget.Settings
	clock    utils.Clock
}

func NewService(settings budget.Settings, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		settings: settings.WithDefaults(),
		clock:    clock,
	}
}

func (s *ServiceImpl) GetSchedule(ctx context.Context, reference *time.Time) (Schedule, error) {
	var now time.Time
	if reference != nil {
		now = *reference
	} else {
		now = s.clock.Now()
	}

	p := period.Resolve(now, s.settings.PayDay)
	b, err := budget.New(p.TotalDays, p.CountSaturdays, s.settings)
	if err != nil {
		log.Warnf("unable to split budget for period %s: %v", p, err)
		return Schedule{}, fmt.Errorf("failed to allocate budget: %w", err)
	}

	log.WithFields(log.Fields{
		"reference":   now.Format(time.DateOnly),
		"period":      p.String(),
		"totalDays":   p.TotalDays,
		"saturdays":   p.CountSaturdays,
		"dailyBudget": b.DailyBudget,
		"remainer":    b.Remainer,
	}).Debug("Computed allowance split")

	return Format(b, p, s.settings.PayDay, now), nil
}
