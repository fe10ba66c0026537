package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"gardiendutemps.fr/gardien/core"
)

const sheetName = "Feuille de temps"

// PeriodReport renders a period summary as an xlsx workbook: one row per day
// (most recent first, as computed) and a totals block underneath.
func PeriodReport(summary core.PeriodSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Date", "Arrivée", "Départ", "Pause (h)", "Travail (h)", "Statut"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, day := range summary.Days {
		values := []interface{}{
			day.Date,
			formatClock(day.Arrival),
			formatClock(day.Departure),
			float64(day.BreakMinutes) / 60,
			float64(day.WorkedMinutes) / 60,
			string(day.Status),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	totals := [][2]interface{}{
		{"Total travaillé (h)", summary.TotalWorkedHours},
		{"Total pauses (h)", summary.TotalBreakHours},
		{"Jours travaillés", summary.WorkingDaysCount},
		{"Moyenne (h/jour)", summary.AverageHoursPerWorkingDay},
		{"Heures attendues", summary.ExpectedHours},
		{"Écart", summary.DeltaHours},
	}
	for _, t := range totals {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t[1]); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
