package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paydaycal/paydaycal/internal/rest"
	"github.com/paydaycal/paydaycal/pkg/budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingService struct {
	err error
}

func (s failingService) GetSchedule(ctx context.Context, reference *time.Time) (Schedule, error) {
	return Schedule{}, s.err
}

func setupHandlerTest() *Handler {
	service := NewService(budget.DefaultSettings(), clock)
	return NewHandler(service, NewCsvRenderer(), NewIcalRenderer())
}

func TestGetSchedule_JSON(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ScheduleDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 18, response.DailyBudget)
	assert.Equal(t, 29, response.TotalDays)
	assert.Equal(t, 10, response.Remainer)
	require.Len(t, response.Days, 33)
	assert.Equal(t, DayDTO{Number: 24, Date: "24 Feb", IsSaturday: true}, response.Days[0])
	assert.Equal(t, DayDTO{
		Number:          17,
		Remains:         310,
		Budget:          18,
		Date:            "15 Mar",
		IsCurrent:       true,
		IsCurrentPeriod: true,
	}, response.Days[20])
}

func TestGetSchedule_JSONFieldNames(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.ElementsMatch(t, []string{"days", "daily_budget", "total_days", "remainer"}, keys(raw))

	days := raw["days"].([]any)
	first := days[0].(map[string]any)
	assert.ElementsMatch(t,
		[]string{"number", "remains", "budget", "date", "is_current", "is_saturday", "is_current_period"},
		keys(first))
}

func TestGetSchedule_WithDate(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?date=2024-04-02", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response ScheduleDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 31, response.TotalDays)
	assert.Equal(t, 15, response.DailyBudget)
	assert.Equal(t, "23 Mar", response.Days[0].Date)
}

func TestGetSchedule_InvalidDate(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?date=15.03.2024", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response rest.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid date format", response.Error)
}

func TestGetSchedule_DegeneratePeriod(t *testing.T) {
	handler := NewHandler(failingService{err: fmt.Errorf("failed to allocate budget: %w", budget.ErrDegeneratePeriod)})
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var response rest.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Details, "degenerate period")
}

func TestGetSchedule_ServiceError(t *testing.T) {
	handler := NewHandler(failingService{err: fmt.Errorf("boom")})
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSchedule_CSV(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	req.Header.Set("Accept", "text/csv")
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 1+33+3)
	assert.Equal(t, "number,date,budget,remains,is_saturday,is_current,is_current_period", lines[0])
	assert.Equal(t, "remainer,10", lines[len(lines)-1])
}

func TestGetSchedule_ICalendar(t *testing.T) {
	handler := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	req.Header.Set("Accept", "text/calendar")
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, 29, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
}

func TestParseReferenceDate(t *testing.T) {
	got, err := ParseReferenceDate("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseReferenceDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 15), *got)

	_, err = ParseReferenceDate("2024-13-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
