package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Business Report"

// ExportExcel renders the business report as an xlsx workbook with the
// same sections as the CSV export.
func ExportExcel(report Report) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := file.SetRowStyle(reportSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	summary := report.Summary
	if err := writeRow(file, row, []any{
		"Summary", summary.Month, summary.Year,
		summary.TotalIncome, summary.TotalExpenses, summary.NetProfit,
		summary.ServicesDone, summary.ProductsSold, "", "", "",
	}); err != nil {
		return nil, err
	}
	row++

	for _, perf := range report.EmployeePerformance {
		if err := writeRow(file, row, []any{
			"Employee Performance", summary.Month, summary.Year,
			"", "", "", "", "",
			perf.Name, perf.TasksCompleted, perf.Revenue,
		}); err != nil {
			return nil, err
		}
		row++
	}

	for _, revenue := range report.MonthlyRevenue {
		if err := writeRow(file, row, []any{
			"Monthly Revenue", revenue.Month, revenue.Year,
			revenue.Income, revenue.Expenses, revenue.Profit,
			"", "", "", "", "",
		}); err != nil {
			return nil, err
		}
		row++
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}

func writeRow(file *excelize.File, row int, values []any) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := file.SetSheetRow(reportSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write report row %d: %w", row, err)
	}
	return nil
}
