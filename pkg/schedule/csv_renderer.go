package schedule

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Renderer turns a schedule into one text representation.
type Renderer interface {
	MediaType() string
	RenderSchedule(schedule Schedule) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (r *CsvRendererImpl) MediaType() string {
	return "text/csv"
}

func (r *CsvRendererImpl) RenderSchedule(schedule Schedule) (string, error) {
	data := make([][]string, 0, len(schedule.Days)+4)
	data = append(data, []string{"number", "date", "budget", "remains", "is_saturday", "is_current", "is_current_period"})
	for _, day := range schedule.Days {
		data = append(data, []string{
			strconv.Itoa(day.Number),
			day.Date.Format(DateFormat),
			strconv.Itoa(day.Budget),
			strconv.Itoa(day.Remains),
			strconv.FormatBool(day.IsSaturday),
			strconv.FormatBool(day.IsCurrent),
			strconv.FormatBool(day.IsCurrentPeriod),
		})
	}
	data = append(data,
		[]string{"daily_budget", strconv.Itoa(schedule.DailyBudget)},
		[]string{"total_days", strconv.Itoa(schedule.TotalDays)},
		[]string{"remainer", strconv.Itoa(schedule.Remainer)},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
