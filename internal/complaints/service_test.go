package complaints

import (
	"errors"
	"testing"

	"hvacops/internal/store"
)

type ledgerStub struct {
	complaints  map[string]int
	resolutions map[string]int
	payments    map[string]float64
}

func newLedgerStub() *ledgerStub {
	return &ledgerStub{
		complaints:  map[string]int{},
		resolutions: map[string]int{},
		payments:    map[string]float64{},
	}
}

func (l *ledgerStub) RecordComplaint(customerID string) error {
	l.complaints[customerID]++
	return nil
}

func (l *ledgerStub) RecordResolution(customerID string) error {
	l.resolutions[customerID]++
	return nil
}

func (l *ledgerStub) RecordPayment(customerID string, amount float64) error {
	l.payments[customerID] += amount
	return nil
}

func TestCreateDefaults(t *testing.T) {
	ledger := newLedgerStub()
	s := NewService(ledger)

	complaint := s.Create(Complaint{
		CustomerID:      "c1",
		CustomerName:    "ABC Corporation",
		Title:           "AC not cooling",
		Priority:        PriorityHigh,
		ServiceType:     "repair",
		EstimatedAmount: 800,
	})

	if complaint.Status != StatusPending {
		t.Fatalf("expected pending, got %s", complaint.Status)
	}
	if complaint.PaymentStatus != PaymentPending {
		t.Fatalf("expected payment pending, got %s", complaint.PaymentStatus)
	}
	if complaint.ActualPrice != 800 || complaint.FinalPrice != 800 || complaint.Discount != 0 {
		t.Fatal("expected pricing defaulted from the estimate")
	}
	if complaint.ServiceDetails.TotalServiceCost != 800 {
		t.Fatalf("expected service cost 800, got %v", complaint.ServiceDetails.TotalServiceCost)
	}
	if ledger.complaints["c1"] != 1 {
		t.Fatal("expected customer complaint counter bumped")
	}
}

func TestUpdateRecomputesFinalPrice(t *testing.T) {
	s := NewService(nil)
	complaint := s.Create(Complaint{Title: "Install unit", EstimatedAmount: 1000})

	complaint.ActualPrice = 1200
	complaint.Discount = 150
	complaint.FinalPrice = 99999 // callers cannot force a stale value

	updated, err := s.Update(complaint.ID, complaint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FinalPrice != 1050 {
		t.Fatalf("expected final price 1050, got %v", updated.FinalPrice)
	}
}

func TestSetStatusStampsCompletionOnce(t *testing.T) {
	ledger := newLedgerStub()
	s := NewService(ledger)
	complaint := s.Create(Complaint{CustomerID: "c1", Title: "Repair"})

	done, err := s.SetStatus(complaint.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatal("expected completedAt stamp")
	}
	if ledger.resolutions["c1"] != 1 {
		t.Fatal("expected resolution recorded")
	}

	// completing an already-completed request must not double-count
	if _, err := s.SetStatus(complaint.ID, StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.resolutions["c1"] != 1 {
		t.Fatalf("expected a single resolution, got %d", ledger.resolutions["c1"])
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	s := NewService(nil)
	complaint := s.Create(Complaint{Title: "Repair"})

	if _, err := s.SetStatus(complaint.ID, "done"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSetStatusMissing(t *testing.T) {
	s := NewService(nil)

	if _, err := s.SetStatus("missing", StatusAssigned); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetPaymentCreditsDelta(t *testing.T) {
	ledger := newLedgerStub()
	s := NewService(ledger)
	complaint := s.Create(Complaint{CustomerID: "c1", Title: "Repair", EstimatedAmount: 1000})

	if _, err := s.SetPayment(complaint.ID, PaymentPartial, 400); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.SetPayment(complaint.ID, PaymentPaid, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.payments["c1"] != 1000 {
		t.Fatalf("expected 1000 credited in total, got %v", ledger.payments["c1"])
	}

	stored, _ := s.Get(complaint.ID)
	if stored.PaymentStatus != PaymentPaid || stored.PaidAmount != 1000 {
		t.Fatal("expected payment fields updated")
	}
}

func TestUpdateServiceDetailsDerivesTotals(t *testing.T) {
	s := NewService(nil)
	complaint := s.Create(Complaint{Title: "Repair"})

	updated, err := s.UpdateServiceDetails(complaint.ID, ServiceDetail{
		ServiceCategory: "cooling",
		LaborCost:       150,
		PartsUsed: []Part{
			{Name: "Compressor", Category: "compressor", Condition: "new", OriginalPrice: 400, SalePrice: 500, Quantity: 1},
			{Name: "Filter", Category: "filter", Condition: "replaced", OriginalPrice: 60, SalePrice: 50, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details := updated.ServiceDetails
	if details.TotalServiceCost != 750 {
		t.Fatalf("expected total 750, got %v", details.TotalServiceCost)
	}
	if details.PartsUsed[0].Profit != 100 || details.PartsUsed[0].Loss != 0 {
		t.Fatalf("expected compressor profit 100, got %+v", details.PartsUsed[0])
	}
	if details.PartsUsed[1].Profit != 0 || details.PartsUsed[1].Loss != 20 {
		t.Fatalf("expected filter loss 20, got %+v", details.PartsUsed[1])
	}
	if details.PartsUsed[0].ID == "" {
		t.Fatal("expected generated part id")
	}
}
