package reports

import (
	"strconv"
	"strings"

	"hvacops/internal/export"
)

var reportHeaders = []string{
	"Report Type",
	"Month",
	"Year",
	"Total Income",
	"Total Expenses",
	"Net Profit",
	"Services Done",
	"Products Sold",
	"Employee Name",
	"Tasks Completed",
	"Revenue Generated",
}

// ExportCSV renders the three-section business report: one Summary row,
// the employee performance rows, then the monthly revenue rows. Each row
// type fills only its own columns and leaves the rest blank.
func ExportCSV(report Report) []byte {
	var b strings.Builder
	b.WriteString(export.Line(reportHeaders))

	summary := report.Summary
	b.WriteString(export.Row([]export.Field{
		{Value: "Summary"},
		{Value: summary.Month},
		{Value: strconv.Itoa(summary.Year)},
		{Value: amount(summary.TotalIncome)},
		{Value: amount(summary.TotalExpenses)},
		{Value: amount(summary.NetProfit)},
		{Value: strconv.Itoa(summary.ServicesDone)},
		{Value: strconv.Itoa(summary.ProductsSold)},
		{}, {}, {},
	}))

	for _, perf := range report.EmployeePerformance {
		b.WriteString(export.Row([]export.Field{
			{Value: "Employee Performance"},
			{Value: summary.Month},
			{Value: strconv.Itoa(summary.Year)},
			{}, {}, {}, {}, {},
			{Value: perf.Name, Text: true},
			{Value: strconv.Itoa(perf.TasksCompleted)},
			{Value: amount(perf.Revenue)},
		}))
	}

	for _, revenue := range report.MonthlyRevenue {
		b.WriteString(export.Row([]export.Field{
			{Value: "Monthly Revenue"},
			{Value: revenue.Month},
			{Value: strconv.Itoa(revenue.Year)},
			{Value: amount(revenue.Income)},
			{Value: amount(revenue.Expenses)},
			{Value: amount(revenue.Profit)},
			{}, {}, {}, {}, {},
		}))
	}

	return []byte(b.String())
}

func amount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
