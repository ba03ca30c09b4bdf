package payroll

import "testing"

func TestCasualOverageDeduction(t *testing.T) {
	if got := CasualOverageDeduction(0, 3000); got != 0 {
		t.Fatalf("expected 0 for no casual leaves, got %v", got)
	}
	if got := CasualOverageDeduction(1, 3000); got != 0 {
		t.Fatalf("expected 0 for the free casual leave, got %v", got)
	}
	if got := CasualOverageDeduction(3, 3000); got != 200 {
		t.Fatalf("expected 200 for two billable casual days, got %v", got)
	}
}

func TestUnpaidDeduction(t *testing.T) {
	if got := UnpaidDeduction(0, 3000); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := UnpaidDeduction(2, 3000); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}
	if got := UnpaidDeduction(1, 3500); got != 116.67 {
		t.Fatalf("expected 116.67, got %v", got)
	}
}

func TestZeroBaseSalaryYieldsZeroDeductions(t *testing.T) {
	if got := LeaveDeduction(5, 5, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestNetSalary(t *testing.T) {
	leave := LeaveDeduction(0, 1, 3500)
	if leave != 116.67 {
		t.Fatalf("expected leave deduction 116.67, got %v", leave)
	}
	net := NetSalary(3500, 200, 150, 350, leave)
	if net != 3383.33 {
		t.Fatalf("expected net 3383.33, got %v", net)
	}
}

func TestNetSalaryIsLinearInBonus(t *testing.T) {
	base := NetSalary(3000, 100, 0, 200, 50)
	bumped := NetSalary(3000, 100, 75, 200, 50)
	if bumped-base != 75 {
		t.Fatalf("expected bonus bump of 75, got %v", bumped-base)
	}
}

func TestNetSalaryMayGoNegative(t *testing.T) {
	if net := NetSalary(100, 0, 0, 500, 0); net != -400 {
		t.Fatalf("expected -400, got %v", net)
	}
}
