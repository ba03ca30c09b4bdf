package customers

import (
	"errors"
	"fmt"
	"time"

	"hvacops/internal/store"
)

var ErrInvalidStatus = errors.New("invalid status")

type Service struct {
	records *store.Collection[Customer]
}

func NewService() *Service {
	return &Service{
		records: store.NewCollection(func(c *Customer) *string { return &c.ID }),
	}
}

func (s *Service) Create(customer Customer) Customer {
	now := time.Now().UTC()
	customer.ID = ""
	customer.Addresses = normalizeDefault(withAddressIDs(customer.Addresses))
	customer.Status = StatusActive
	customer.TotalComplaints = 0
	customer.ResolvedComplaints = 0
	customer.TotalSpent = 0
	customer.JoinDate = now
	customer.LastContactDate = now
	customer.MonthlyData = map[string]MonthlyMetrics{}
	return s.records.Insert(customer)
}

func (s *Service) Get(id string) (Customer, error) {
	return s.records.Get(id)
}

func (s *Service) List(status string) []Customer {
	if status != "" {
		return s.records.List(func(c Customer) bool { return c.Status == status })
	}
	return s.records.List()
}

// Update replaces contact fields and the address list. Aggregates and
// monthly data stay owned by their recording operations.
func (s *Service) Update(id string, customer Customer) (Customer, error) {
	return s.records.Mutate(id, func(stored *Customer) {
		stored.Name = customer.Name
		stored.Email = customer.Email
		stored.Phone = customer.Phone
		stored.Addresses = normalizeDefault(withAddressIDs(customer.Addresses))
	})
}

func (s *Service) SetStatus(id, status string) (Customer, error) {
	if status != StatusActive && status != StatusInactive {
		return Customer{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.records.Mutate(id, func(stored *Customer) {
		stored.Status = status
	})
}

// AddAddress appends an address. When the new address claims the default
// slot, every sibling loses it; when no default exists yet, the new
// address takes it.
func (s *Service) AddAddress(id string, address Address) (Customer, error) {
	return s.records.Mutate(id, func(stored *Customer) {
		address.ID = store.NewID()
		if address.IsDefault {
			for i := range stored.Addresses {
				stored.Addresses[i].IsDefault = false
			}
		}
		stored.Addresses = normalizeDefault(append(stored.Addresses, address))
	})
}

// RecordComplaint bumps the complaint counter and refreshes last contact.
func (s *Service) RecordComplaint(id string) error {
	_, err := s.records.Mutate(id, func(stored *Customer) {
		stored.TotalComplaints++
		stored.LastContactDate = time.Now().UTC()
	})
	return err
}

func (s *Service) RecordResolution(id string) error {
	_, err := s.records.Mutate(id, func(stored *Customer) {
		stored.ResolvedComplaints++
	})
	return err
}

// RecordPayment adds a received amount to the customer's lifetime spend.
func (s *Service) RecordPayment(id string, amount float64) error {
	_, err := s.records.Mutate(id, func(stored *Customer) {
		stored.TotalSpent += amount
	})
	return err
}

func (s *Service) UpsertMonthlyMetrics(id, month string, metrics MonthlyMetrics) (Customer, error) {
	return s.records.Mutate(id, func(stored *Customer) {
		if stored.MonthlyData == nil {
			stored.MonthlyData = map[string]MonthlyMetrics{}
		}
		stored.MonthlyData[month] = metrics
	})
}

func withAddressIDs(addresses []Address) []Address {
	out := make([]Address, len(addresses))
	copy(out, addresses)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = store.NewID()
		}
	}
	return out
}

// normalizeDefault keeps at most one default address: the first claimed
// default wins, and the first address becomes default when none claims it.
func normalizeDefault(addresses []Address) []Address {
	if len(addresses) == 0 {
		return []Address{}
	}
	seen := false
	for i := range addresses {
		if addresses[i].IsDefault {
			if seen {
				addresses[i].IsDefault = false
			}
			seen = true
		}
	}
	if !seen {
		addresses[0].IsDefault = true
	}
	return addresses
}
