package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/paydaycal/paydaycal/internal/rest"
	"github.com/paydaycal/paydaycal/pkg/budget"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidDate = errors.New("invalid date")

type DayDTO struct {
	Number          int    `json:"number"`
	Remains         int    `json:"remains"`
	Budget          int    `json:"budget"`
	Date            string `json:"date"`
	IsCurrent       bool   `json:"is_current"`
	IsSaturday      bool   `json:"is_saturday"`
	IsCurrentPeriod bool   `json:"is_current_period"`
}

type ScheduleDTO struct {
	Days        []DayDTO `json:"days"`
	DailyBudget int      `json:"daily_budget"`
	TotalDays   int      `json:"total_days"`
	Remainer    int      `json:"remainer"`
}

type Handler struct {
	service   Service
	renderers []Renderer
}

// NewHandler creates a handler answering with JSON unless the Accept header
// asks for the media type of one of the renderers.
func NewHandler(service Service, renderers ...Renderer) *Handler {
	return &Handler{service: service, renderers: renderers}
}

func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	reference, err := ParseReferenceDate(r.URL.Query().Get("date"))
	if err != nil {
		log.Debugf("rejecting schedule request: %v", err)
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "date must be in YYYY-MM-DD format")
		return
	}

	schedule, err := handler.service.GetSchedule(r.Context(), reference)
	if err != nil {
		if errors.Is(err, budget.ErrDegeneratePeriod) {
			rest.WriteError(w, http.StatusUnprocessableEntity, "Unable to allocate budget", err.Error())
			return
		}
		log.Errorf("failed to compute schedule: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if renderer := handler.rendererFor(r.Header.Get("Accept")); renderer != nil {
		body, err := renderer.RenderSchedule(schedule)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", renderer.MediaType()+"; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			log.Errorf("failed to write %s response: %v", renderer.MediaType(), err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(ToDTO(schedule)); err != nil {
		log.Errorf("failed to encode schedule: %v", err)
	}
}

func (handler *Handler) rendererFor(accept string) Renderer {
	for _, renderer := range handler.renderers {
		if strings.Contains(accept, renderer.MediaType()) {
			return renderer
		}
	}
	return nil
}

// ParseReferenceDate parses an optional YYYY-MM-DD date. An empty value
// yields nil, meaning "today".
func ParseReferenceDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, errors.Join(ErrInvalidDate, err)
	}
	return &date, nil
}

func ToDTO(schedule Schedule) ScheduleDTO {
	days := make([]DayDTO, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		days = append(days, DayDTO{
			Number:          day.Number,
			Remains:         day.Remains,
			Budget:          day.Budget,
			Date:            day.Date.Format(DateFormat),
			IsCurrent:       day.IsCurrent,
			IsSaturday:      day.IsSaturday,
			IsCurrentPeriod: day.IsCurrentPeriod,
		})
	}
	return ScheduleDTO{
		Days:        days,
		DailyBudget: schedule.DailyBudget,
		TotalDays:   schedule.TotalDays,
		Remainer:    schedule.Remainer,
	}
}
