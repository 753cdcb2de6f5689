package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paydaycal/paydaycal/pkg/schedule"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

const cellWidth = 9

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Width(cellWidth)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Width(cellWidth)

	stubStyle = cellStyle.
			Foreground(ColorTextDim)

	saturdayStyle = cellStyle.
			Foreground(ColorOrange)

	currentStyle = cellStyle.
			Bold(true).
			Foreground(ColorAccent).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	overspentStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(7*cellWidth - 2).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderSchedule lays the days out as a seven column calendar grid; the
// padding days of the previous period fill the first row.
func RenderSchedule(s schedule.Schedule) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("ALLOWANCE  %s",
		s.Period.StartDate.Format("02 Jan 2006")+" - "+s.Period.EndDate.AddDate(0, 0, -1).Format("02 Jan 2006"))))
	b.WriteString("\n\n")

	if len(s.Days) > 0 {
		header := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			header = append(header, headerStyle.Render(s.Days[0].Date.AddDate(0, 0, i).Format("Mon")))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
		b.WriteString("\n")
	}

	for start := 0; start < len(s.Days); start += 7 {
		end := min(start+7, len(s.Days))
		cells := make([]string, 0, 7)
		for _, day := range s.Days[start:end] {
			cells = append(cells, renderCell(day))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Daily budget %d  %s  Days %d  %s  Remainder %d\n",
		s.DailyBudget, mutedStyle.Render("|"), s.TotalDays, mutedStyle.Render("|"), s.Remainer))
	if current, ok := s.CurrentDay(); ok {
		remains := fmt.Sprintf("%d", current.Remains)
		if current.Remains < 0 {
			remains = overspentStyle.Render(remains)
		}
		b.WriteString(fmt.Sprintf("  Today (day %d): spend %d, %s left\n", current.Number, current.Budget, remains))
	}
	return b.String()
}

func renderCell(day schedule.Day) string {
	label := day.Date.Format(schedule.DateFormat)
	if !day.IsCurrentPeriod {
		return stubStyle.Render(label + "\n")
	}

	content := fmt.Sprintf("%s\n%d", label, day.Remains)
	switch {
	case day.IsCurrent:
		return currentStyle.Render(content)
	case day.IsSaturday:
		return saturdayStyle.Render(content)
	default:
		return cellStyle.Render(content)
	}
}
