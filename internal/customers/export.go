package customers

import (
	"strconv"

	"hvacops/internal/export"
	"hvacops/internal/shared"
)

var exportColumns = []export.Column[Customer]{
	{Header: "ID", Value: func(c Customer) string { return c.ID }},
	{Header: "Name", Text: true, Value: func(c Customer) string { return c.Name }},
	{Header: "Email", Value: func(c Customer) string { return c.Email }},
	{Header: "Phone", Value: func(c Customer) string { return c.Phone }},
	{Header: "Primary Address", Text: true, Value: DefaultAddress},
	{Header: "Status", Value: func(c Customer) string { return c.Status }},
	{Header: "Total Complaints", Value: func(c Customer) string { return strconv.Itoa(c.TotalComplaints) }},
	{Header: "Resolved Complaints", Value: func(c Customer) string { return strconv.Itoa(c.ResolvedComplaints) }},
	{Header: "Total Spent", Value: func(c Customer) string { return formatAmount(c.TotalSpent) }},
	{Header: "Join Date", Value: func(c Customer) string { return shared.FormatDate(c.JoinDate) }},
	{Header: "Last Contact", Value: func(c Customer) string { return shared.FormatDate(c.LastContactDate) }},
}

func ExportCSV(records []Customer) []byte {
	return export.CSV(records, exportColumns)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
