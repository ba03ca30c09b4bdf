package salaries

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusPaid       = "paid"

	MethodBank  = "bank"
	MethodCash  = "cash"
	MethodCheck = "check"
)

var (
	Statuses       = []string{StatusPending, StatusProcessing, StatusPaid}
	PaymentMethods = []string{MethodBank, MethodCash, MethodCheck}
)

// SalaryRecord is a point-in-time payroll snapshot. LeaveDeductions and
// NetSalary are composed when the record is created and recomposed only
// through UpdateInputs.
type SalaryRecord struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employeeId"`
	EmployeeName      string     `json:"employeeName"`
	Position          string     `json:"position"`
	BaseSalary        float64    `json:"baseSalary"`
	Overtime          float64    `json:"overtime"`
	Bonus             float64    `json:"bonus"`
	Deductions        float64    `json:"deductions"`
	LeaveDeductions   float64    `json:"leaveDeductions"`
	PaidLeavesTaken   int        `json:"paidLeavesTaken"`
	UnpaidLeavesTaken int        `json:"unpaidLeavesTaken"`
	CasualLeavesTaken int        `json:"casualLeavesTaken"`
	NetSalary         float64    `json:"netSalary"`
	Month             string     `json:"month"`
	Year              int        `json:"year"`
	Status            string     `json:"status"`
	PayDate           *time.Time `json:"payDate,omitempty"`
	PaymentMethod     string     `json:"paymentMethod"`
}
