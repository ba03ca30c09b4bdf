package salaries

import (
	"errors"
	"fmt"
	"time"

	"hvacops/internal/payroll"
	"hvacops/internal/store"
)

var ErrInvalidStatus = errors.New("invalid status")

// statusStamps maps a target status to the timestamp written on entry.
var statusStamps = map[string]func(*SalaryRecord, time.Time){
	StatusPaid: func(r *SalaryRecord, now time.Time) { r.PayDate = &now },
}

type Service struct {
	records *store.Collection[SalaryRecord]
}

func NewService() *Service {
	return &Service{
		records: store.NewCollection(func(r *SalaryRecord) *string { return &r.ID }),
	}
}

// Create composes leave deductions and net salary from the pay inputs and
// stores the record as pending.
func (s *Service) Create(record SalaryRecord) SalaryRecord {
	record.ID = ""
	record.Status = StatusPending
	record.PayDate = nil
	if record.PaymentMethod == "" {
		record.PaymentMethod = MethodBank
	}
	compose(&record)
	return s.records.Insert(record)
}

func (s *Service) Get(id string) (SalaryRecord, error) {
	return s.records.Get(id)
}

func (s *Service) List(status string) []SalaryRecord {
	if status != "" {
		return s.records.List(func(r SalaryRecord) bool { return r.Status == status })
	}
	return s.records.List()
}

// UpdateInputs replaces the pay inputs and recomposes the derived amounts.
// Editing a composed field directly is not possible.
func (s *Service) UpdateInputs(id string, record SalaryRecord) (SalaryRecord, error) {
	return s.records.Mutate(id, func(stored *SalaryRecord) {
		stored.EmployeeName = record.EmployeeName
		stored.Position = record.Position
		stored.BaseSalary = record.BaseSalary
		stored.Overtime = record.Overtime
		stored.Bonus = record.Bonus
		stored.Deductions = record.Deductions
		stored.PaidLeavesTaken = record.PaidLeavesTaken
		stored.UnpaidLeavesTaken = record.UnpaidLeavesTaken
		stored.CasualLeavesTaken = record.CasualLeavesTaken
		stored.Month = record.Month
		stored.Year = record.Year
		stored.PaymentMethod = record.PaymentMethod
		compose(stored)
	})
}

func (s *Service) SetStatus(id, status string) (SalaryRecord, error) {
	valid := false
	for _, candidate := range Statuses {
		if status == candidate {
			valid = true
			break
		}
	}
	if !valid {
		return SalaryRecord{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.records.Mutate(id, func(stored *SalaryRecord) {
		stored.Status = status
		if stamp, ok := statusStamps[status]; ok {
			stamp(stored, time.Now().UTC())
		}
	})
}

// TotalNet sums net salaries over an optional status filter.
func (s *Service) TotalNet(status string) float64 {
	total := 0.0
	for _, record := range s.List(status) {
		total += record.NetSalary
	}
	return payroll.Round2(total)
}

func compose(record *SalaryRecord) {
	record.LeaveDeductions = payroll.LeaveDeduction(record.CasualLeavesTaken, record.UnpaidLeavesTaken, record.BaseSalary)
	record.NetSalary = payroll.NetSalary(record.BaseSalary, record.Overtime, record.Bonus, record.Deductions, record.LeaveDeductions)
}
