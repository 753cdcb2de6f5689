package schedule

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const productID = "-//paydaycal//Allowance Schedule//EN"

// IcalRendererImpl exports the days of the pay period as all-day events.
// Padding days are skipped.
type IcalRendererImpl struct {
}

func NewIcalRenderer() *IcalRendererImpl {
	return &IcalRendererImpl{}
}

func (r *IcalRendererImpl) MediaType() string {
	return "text/calendar"
}

func (r *IcalRendererImpl) RenderSchedule(schedule Schedule) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, day := range schedule.PeriodDays() {
		cal.Children = append(cal.Children, dayToEvent(day, schedule.Reference).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		log.Errorf("Error encoding calendar: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func dayToEvent(day Day, stamp time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, dayUID(day.Date))
	event.Props.SetText(ical.PropSummary, fmt.Sprintf("Allowance %d (%d left)", day.Budget, day.Remains))
	event.Props.SetDate(ical.PropDateTimeStart, day.Date)
	event.Props.SetDate(ical.PropDateTimeEnd, day.Date.AddDate(0, 0, 1))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	return event
}

// dayUID is stable for a date so re-imported calendars update in place.
func dayUID(date time.Time) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("paydaycal:"+date.Format(time.DateOnly)))
	return id.String() + "@paydaycal"
}
