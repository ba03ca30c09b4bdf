package salaries

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleRecord() SalaryRecord {
	return SalaryRecord{
		EmployeeName:      "John Smith",
		Position:          "Field Technician",
		BaseSalary:        3500,
		Overtime:          200,
		Bonus:             150,
		Deductions:        350,
		PaidLeavesTaken:   1,
		UnpaidLeavesTaken: 1,
		CasualLeavesTaken: 0,
		Month:             "January",
		Year:              2024,
		PaymentMethod:     MethodBank,
	}
}

func TestCreateComposesDerivedFields(t *testing.T) {
	s := NewService()

	record := s.Create(sampleRecord())
	if record.Status != StatusPending {
		t.Fatalf("expected pending, got %s", record.Status)
	}
	if record.LeaveDeductions != 116.67 {
		t.Fatalf("expected leave deductions 116.67, got %v", record.LeaveDeductions)
	}
	if record.NetSalary != 3383.33 {
		t.Fatalf("expected net 3383.33, got %v", record.NetSalary)
	}
	if record.PayDate != nil {
		t.Fatal("expected no pay date before payment")
	}
}

func TestCreateWithCasualOverage(t *testing.T) {
	s := NewService()

	input := sampleRecord()
	input.BaseSalary = 3000
	input.Overtime = 0
	input.Bonus = 0
	input.Deductions = 0
	input.UnpaidLeavesTaken = 0
	input.CasualLeavesTaken = 3

	record := s.Create(input)
	if record.LeaveDeductions != 200 {
		t.Fatalf("expected 200 for two billable casual days, got %v", record.LeaveDeductions)
	}
	if record.NetSalary != 2800 {
		t.Fatalf("expected net 2800, got %v", record.NetSalary)
	}
}

func TestUpdateInputsRecomposes(t *testing.T) {
	s := NewService()
	record := s.Create(sampleRecord())

	edit := sampleRecord()
	edit.BaseSalary = 3000
	edit.UnpaidLeavesTaken = 0

	updated, err := s.UpdateInputs(record.ID, edit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LeaveDeductions != 0 {
		t.Fatalf("expected leave deductions recomposed to 0, got %v", updated.LeaveDeductions)
	}
	if updated.NetSalary != 3000 {
		t.Fatalf("expected net 3000, got %v", updated.NetSalary)
	}
}

func TestSetStatusPaidStampsPayDate(t *testing.T) {
	s := NewService()
	record := s.Create(sampleRecord())

	processing, err := s.SetStatus(record.ID, StatusProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processing.PayDate != nil {
		t.Fatal("expected no pay date for processing")
	}

	paid, err := s.SetStatus(record.ID, StatusPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PayDate == nil {
		t.Fatal("expected pay date stamp")
	}
	if time.Since(*paid.PayDate) > time.Minute {
		t.Fatal("expected a recent pay date")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	s := NewService()
	record := s.Create(sampleRecord())

	if _, err := s.SetStatus(record.ID, "settled"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTotalNet(t *testing.T) {
	s := NewService()
	first := s.Create(sampleRecord())
	s.Create(sampleRecord())

	if _, err := s.SetStatus(first.ID, StatusPaid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.TotalNet(StatusPaid); got != 3383.33 {
		t.Fatalf("expected paid total 3383.33, got %v", got)
	}
	if got := s.TotalNet(""); got != 6766.66 {
		t.Fatalf("expected total 6766.66, got %v", got)
	}
}

func TestExportCSVColumns(t *testing.T) {
	s := NewService()
	record := s.Create(sampleRecord())

	got := string(ExportCSV(s.List("")))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Employee Name,Position,Month,Year,Base Salary,Overtime,Bonus,Deductions,Leave Deductions,Paid Leaves,Unpaid Leaves,Net Salary,Status,Payment Method,Pay Date" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	want := record.ID + `,"John Smith","Field Technician",January,2024,3500,200,150,350,116.67,1,1,3383.33,pending,bank,`
	if lines[1] != want {
		t.Fatalf("expected row %q, got %q", want, lines[1])
	}
}

func TestPayslipPDF(t *testing.T) {
	s := NewService()
	record := s.Create(sampleRecord())

	data, err := PayslipPDF(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatal("expected a PDF document")
	}
}
