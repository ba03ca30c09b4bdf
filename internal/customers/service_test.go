package customers

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCreateDefaults(t *testing.T) {
	s := NewService()

	customer := s.Create(Customer{
		Name:  "ABC Corporation",
		Phone: "+91 98765 43210",
		Addresses: []Address{
			{Label: "Head Office", Address: "123 Business Ave", IsDefault: true},
		},
	})
	if customer.ID == "" {
		t.Fatal("expected generated id")
	}
	if customer.Status != StatusActive {
		t.Fatalf("expected active, got %s", customer.Status)
	}
	if customer.TotalComplaints != 0 || customer.ResolvedComplaints != 0 || customer.TotalSpent != 0 {
		t.Fatal("expected zero aggregates at creation")
	}
	if customer.JoinDate.IsZero() || customer.LastContactDate.IsZero() {
		t.Fatal("expected join and last-contact dates")
	}
	if customer.Addresses[0].ID == "" {
		t.Fatal("expected generated address id")
	}
}

func TestCreateWithoutDefaultPromotesFirstAddress(t *testing.T) {
	s := NewService()

	customer := s.Create(Customer{
		Name:  "XYZ Ltd",
		Phone: "1",
		Addresses: []Address{
			{Label: "A", Address: "addr a"},
			{Label: "B", Address: "addr b"},
		},
	})
	if !customer.Addresses[0].IsDefault || customer.Addresses[1].IsDefault {
		t.Fatal("expected first address promoted to default")
	}
}

func TestCreateWithTwoDefaultsKeepsFirst(t *testing.T) {
	s := NewService()

	customer := s.Create(Customer{
		Name:  "XYZ Ltd",
		Phone: "1",
		Addresses: []Address{
			{Label: "A", Address: "addr a", IsDefault: true},
			{Label: "B", Address: "addr b", IsDefault: true},
		},
	})
	if !customer.Addresses[0].IsDefault || customer.Addresses[1].IsDefault {
		t.Fatal("expected exactly one default address")
	}
}

func TestAddAddressTakesOverDefault(t *testing.T) {
	s := NewService()
	customer := s.Create(Customer{
		Name:      "XYZ Ltd",
		Phone:     "1",
		Addresses: []Address{{Label: "A", Address: "addr a", IsDefault: true}},
	})

	updated, err := s.AddAddress(customer.ID, Address{Label: "B", Address: "addr b", IsDefault: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := 0
	for _, addr := range updated.Addresses {
		if addr.IsDefault {
			defaults++
			if addr.Label != "B" {
				t.Fatalf("expected B as default, got %s", addr.Label)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestAggregates(t *testing.T) {
	s := NewService()
	customer := s.Create(Customer{Name: "ABC", Phone: "1"})

	if err := s.RecordComplaint(customer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RecordResolution(customer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RecordPayment(customer.ID, 1500.50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := s.Get(customer.ID)
	if stored.TotalComplaints != 1 || stored.ResolvedComplaints != 1 {
		t.Fatal("expected complaint counters bumped")
	}
	if stored.TotalSpent != 1500.50 {
		t.Fatalf("expected total spent 1500.50, got %v", stored.TotalSpent)
	}
}

func TestRecordComplaintMissingCustomer(t *testing.T) {
	s := NewService()
	if err := s.RecordComplaint("missing"); err == nil {
		t.Fatal("expected error for missing customer")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	s := NewService()
	customer := s.Create(Customer{Name: "ABC", Phone: "1"})

	if _, err := s.SetStatus(customer.ID, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestExportCSVColumnsAndQuoting(t *testing.T) {
	customer := Customer{
		ID:    "c1",
		Name:  "ABC Corporation",
		Email: "contact@abc.com",
		Phone: "+91 98765 43210",
		Addresses: []Address{
			{ID: "a1", Label: "Head Office", Address: "123 Business Ave, Mumbai", IsDefault: true},
		},
		Status:             StatusActive,
		TotalComplaints:    8,
		ResolvedComplaints: 7,
		TotalSpent:         185000,
		JoinDate:           time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		LastContactDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	got := string(ExportCSV([]Customer{customer}))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Name,Email,Phone,Primary Address,Status,Total Complaints,Resolved Complaints,Total Spent,Join Date,Last Contact" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	want := `c1,"ABC Corporation",contact@abc.com,+91 98765 43210,"123 Business Ave, Mumbai",active,8,7,185000,2023-06-15,2024-01-15`
	if lines[1] != want {
		t.Fatalf("expected row %q, got %q", want, lines[1])
	}
}
