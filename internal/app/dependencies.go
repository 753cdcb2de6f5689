package app

import (
	"github.com/paydaycal/paydaycal/internal/config"
	"github.com/paydaycal/paydaycal/internal/utils"
	"github.com/paydaycal/paydaycal/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock utils.Clock

	ScheduleService *schedule.ServiceImpl
	CsvRenderer     *schedule.CsvRendererImpl
	IcalRenderer    *schedule.IcalRendererImpl
	ScheduleHandler *schedule.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application, clock utils.Clock) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = clock

	deps.ScheduleService = schedule.NewService(cfg.Allowance.Settings(), deps.Clock)
	deps.CsvRenderer = schedule.NewCsvRenderer()
	deps.IcalRenderer = schedule.NewIcalRenderer()
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService, deps.CsvRenderer, deps.IcalRenderer)

	return deps
}
