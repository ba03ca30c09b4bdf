// Package payroll holds the salary and leave-deduction arithmetic. All
// monetary results are rounded half away from zero to 2 decimals.
package payroll

import "math"

// DaysPerMonth is the divisor for pro-rating a monthly salary to a daily
// rate, regardless of the calendar month.
const DaysPerMonth = 30

const FreeCasualLeavesPerMonth = 1

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func DailyRate(baseSalary float64) float64 {
	return baseSalary / DaysPerMonth
}

// CasualOverageDeduction bills every casual leave day beyond the monthly
// free allowance at the daily rate.
func CasualOverageDeduction(casualLeavesTaken int, baseSalary float64) float64 {
	overage := casualLeavesTaken - FreeCasualLeavesPerMonth
	if overage < 0 {
		overage = 0
	}
	return Round2(float64(overage) * DailyRate(baseSalary))
}

// UnpaidDeduction bills every unpaid leave day in full at the daily rate.
// Paid leaves never incur a deduction.
func UnpaidDeduction(unpaidLeavesTaken int, baseSalary float64) float64 {
	return Round2(float64(unpaidLeavesTaken) * DailyRate(baseSalary))
}

func LeaveDeduction(casualLeavesTaken, unpaidLeavesTaken int, baseSalary float64) float64 {
	return Round2(CasualOverageDeduction(casualLeavesTaken, baseSalary) + UnpaidDeduction(unpaidLeavesTaken, baseSalary))
}

// NetSalary composes the net pay. No bounds checking: a net salary may go
// negative when deductions exceed earnings.
func NetSalary(baseSalary, overtime, bonus, deductions, leaveDeduction float64) float64 {
	return Round2(baseSalary + overtime + bonus - deductions - leaveDeduction)
}
