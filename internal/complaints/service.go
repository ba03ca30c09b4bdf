package complaints

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hvacops/internal/payroll"
	"hvacops/internal/store"
)

var ErrInvalidStatus = errors.New("invalid status")

// CustomerLedger receives aggregate updates as service requests progress.
type CustomerLedger interface {
	RecordComplaint(customerID string) error
	RecordResolution(customerID string) error
	RecordPayment(customerID string, amount float64) error
}

// statusStamps maps a target status to the timestamp written on entry.
var statusStamps = map[string]func(*Complaint, time.Time){
	StatusCompleted: func(c *Complaint, now time.Time) { c.CompletedAt = &now },
}

type Service struct {
	records   *store.Collection[Complaint]
	customers CustomerLedger
}

// NewService creates the complaint service. The ledger may be nil when no
// customer aggregates are kept (tests).
func NewService(customers CustomerLedger) *Service {
	return &Service{
		records:   store.NewCollection(func(c *Complaint) *string { return &c.ID }),
		customers: customers,
	}
}

func (s *Service) Create(complaint Complaint) Complaint {
	complaint.ID = ""
	complaint.Status = StatusPending
	complaint.CreatedAt = time.Now().UTC()
	complaint.CompletedAt = nil
	complaint.PaymentStatus = PaymentPending
	complaint.ActualPrice = complaint.EstimatedAmount
	complaint.Discount = 0
	complaint.FinalPrice = complaint.EstimatedAmount
	complaint.PaidAmount = 0
	complaint.ServiceDetails = ServiceDetail{
		PartsUsed:        []Part{},
		TotalServiceCost: complaint.EstimatedAmount,
	}

	stored := s.records.Insert(complaint)
	if s.customers != nil && stored.CustomerID != "" {
		if err := s.customers.RecordComplaint(stored.CustomerID); err != nil {
			slog.Warn("customer complaint counter update failed", "customerId", stored.CustomerID, "err", err)
		}
	}
	return stored
}

func (s *Service) Get(id string) (Complaint, error) {
	return s.records.Get(id)
}

func (s *Service) List(status, priority string) []Complaint {
	predicates := make([]func(Complaint) bool, 0, 2)
	if status != "" {
		predicates = append(predicates, func(c Complaint) bool { return c.Status == status })
	}
	if priority != "" {
		predicates = append(predicates, func(c Complaint) bool { return c.Priority == priority })
	}
	return s.records.List(predicates...)
}

// Update replaces descriptive and pricing fields, re-deriving finalPrice
// from actualPrice and discount so the two never drift apart.
func (s *Service) Update(id string, complaint Complaint) (Complaint, error) {
	return s.records.Mutate(id, func(stored *Complaint) {
		stored.Title = complaint.Title
		stored.Description = complaint.Description
		stored.Priority = complaint.Priority
		stored.ServiceType = complaint.ServiceType
		stored.EmployeeID = complaint.EmployeeID
		stored.EmployeeName = complaint.EmployeeName
		stored.EstimatedAmount = complaint.EstimatedAmount
		stored.EstimatedTime = complaint.EstimatedTime
		stored.ActualPrice = complaint.ActualPrice
		stored.Discount = complaint.Discount
		stored.FinalPrice = payroll.Round2(complaint.ActualPrice - complaint.Discount)
		stored.Notes = complaint.Notes
	})
}

func (s *Service) SetStatus(id, status string) (Complaint, error) {
	if !contains(Statuses, status) {
		return Complaint{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	wasCompleted := false
	updated, err := s.records.Mutate(id, func(stored *Complaint) {
		wasCompleted = stored.Status == StatusCompleted
		stored.Status = status
		if stamp, ok := statusStamps[status]; ok {
			stamp(stored, time.Now().UTC())
		}
	})
	if err != nil {
		return Complaint{}, err
	}

	if s.customers != nil && status == StatusCompleted && !wasCompleted && updated.CustomerID != "" {
		if err := s.customers.RecordResolution(updated.CustomerID); err != nil {
			slog.Warn("customer resolution counter update failed", "customerId", updated.CustomerID, "err", err)
		}
	}
	return updated, nil
}

// SetPayment updates the payment status and paid amount; the delta over the
// previous paid amount is credited to the customer's lifetime spend.
func (s *Service) SetPayment(id, paymentStatus string, paidAmount float64) (Complaint, error) {
	if !contains(PaymentStatuses, paymentStatus) {
		return Complaint{}, fmt.Errorf("%w: %s", ErrInvalidStatus, paymentStatus)
	}

	var delta float64
	updated, err := s.records.Mutate(id, func(stored *Complaint) {
		delta = paidAmount - stored.PaidAmount
		stored.PaymentStatus = paymentStatus
		stored.PaidAmount = paidAmount
	})
	if err != nil {
		return Complaint{}, err
	}

	if s.customers != nil && delta != 0 && updated.CustomerID != "" {
		if err := s.customers.RecordPayment(updated.CustomerID, delta); err != nil {
			slog.Warn("customer payment update failed", "customerId", updated.CustomerID, "err", err)
		}
	}
	return updated, nil
}

// UpdateServiceDetails replaces the nested service record, re-deriving part
// profit/loss and the total cost (parts at sale price plus labor).
func (s *Service) UpdateServiceDetails(id string, details ServiceDetail) (Complaint, error) {
	partsTotal := 0.0
	for i := range details.PartsUsed {
		part := &details.PartsUsed[i]
		if part.ID == "" {
			part.ID = store.NewID()
		}
		if part.Quantity < 1 {
			part.Quantity = 1
		}
		margin := (part.SalePrice - part.OriginalPrice) * float64(part.Quantity)
		if margin >= 0 {
			part.Profit = payroll.Round2(margin)
			part.Loss = 0
		} else {
			part.Profit = 0
			part.Loss = payroll.Round2(-margin)
		}
		partsTotal += part.SalePrice * float64(part.Quantity)
	}
	details.TotalServiceCost = payroll.Round2(partsTotal + details.LaborCost)
	if details.PartsUsed == nil {
		details.PartsUsed = []Part{}
	}

	return s.records.Mutate(id, func(stored *Complaint) {
		stored.ServiceDetails = details
	})
}

func contains(allowed []string, value string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}
