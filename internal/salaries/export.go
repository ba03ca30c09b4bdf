package salaries

import (
	"strconv"

	"hvacops/internal/export"
	"hvacops/internal/shared"
)

var exportColumns = []export.Column[SalaryRecord]{
	{Header: "ID", Value: func(r SalaryRecord) string { return r.ID }},
	{Header: "Employee Name", Text: true, Value: func(r SalaryRecord) string { return r.EmployeeName }},
	{Header: "Position", Text: true, Value: func(r SalaryRecord) string { return r.Position }},
	{Header: "Month", Value: func(r SalaryRecord) string { return r.Month }},
	{Header: "Year", Value: func(r SalaryRecord) string { return strconv.Itoa(r.Year) }},
	{Header: "Base Salary", Value: func(r SalaryRecord) string { return amount(r.BaseSalary) }},
	{Header: "Overtime", Value: func(r SalaryRecord) string { return amount(r.Overtime) }},
	{Header: "Bonus", Value: func(r SalaryRecord) string { return amount(r.Bonus) }},
	{Header: "Deductions", Value: func(r SalaryRecord) string { return amount(r.Deductions) }},
	{Header: "Leave Deductions", Value: func(r SalaryRecord) string { return amount(r.LeaveDeductions) }},
	{Header: "Paid Leaves", Value: func(r SalaryRecord) string { return strconv.Itoa(r.PaidLeavesTaken) }},
	{Header: "Unpaid Leaves", Value: func(r SalaryRecord) string { return strconv.Itoa(r.UnpaidLeavesTaken) }},
	{Header: "Net Salary", Value: func(r SalaryRecord) string { return amount(r.NetSalary) }},
	{Header: "Status", Value: func(r SalaryRecord) string { return r.Status }},
	{Header: "Payment Method", Value: func(r SalaryRecord) string { return r.PaymentMethod }},
	{Header: "Pay Date", Value: func(r SalaryRecord) string {
		if r.PayDate == nil {
			return ""
		}
		return shared.FormatDate(*r.PayDate)
	}},
}

func ExportCSV(records []SalaryRecord) []byte {
	return export.CSV(records, exportColumns)
}

func amount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
