package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/paydaycal/paydaycal/internal/config"
	"github.com/paydaycal/paydaycal/internal/utils"
	"github.com/paydaycal/paydaycal/pkg/schedule"
	"github.com/spf13/cobra"
)

var (
	flagDate   string
	flagFormat string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the allowance schedule of the current pay period",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagDate, "date", "", "Reference date (YYYY-MM-DD), defaults to today")
	showCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, json, csv or ics")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	reference, err := schedule.ParseReferenceDate(flagDate)
	if err != nil {
		return err
	}

	service := schedule.NewService(cfg.Allowance.Settings(), utils.SystemClock{})
	s, err := service.GetSchedule(context.Background(), reference)
	if err != nil {
		return err
	}
	return writeSchedule(cmd.OutOrStdout(), s, flagFormat)
}

func writeSchedule(out io.Writer, s schedule.Schedule, format string) error {
	switch format {
	case "table":
		_, err := fmt.Fprint(out, RenderSchedule(s))
		return err
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "    ")
		return encoder.Encode(schedule.ToDTO(s))
	case "csv":
		return render(out, schedule.NewCsvRenderer(), s)
	case "ics":
		return render(out, schedule.NewIcalRenderer(), s)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func render(out io.Writer, renderer schedule.Renderer, s schedule.Schedule) error {
	body, err := renderer.RenderSchedule(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, body)
	return err
}
