package leave

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hvacops/internal/store"
)

var (
	ErrInvalidRange    = errors.New("invalid leave date range")
	ErrInvalidType     = errors.New("invalid leave type")
	ErrAlreadyReviewed = errors.New("leave request already reviewed")
)

// Roster receives approved leave usage for the employee record.
type Roster interface {
	AddLeaveUsage(employeeID, leaveType, reason string, dates []time.Time) error
}

type Service struct {
	records *store.Collection[Request]
	roster  Roster
}

// NewService creates the leave request service. The roster may be nil when
// requests are not linked to an employee record.
func NewService(roster Roster) *Service {
	return &Service{
		records: store.NewCollection(func(r *Request) *string { return &r.ID }),
		roster:  roster,
	}
}

// Submit stores a pending request with the day count frozen at submission.
func (s *Service) Submit(request Request) (Request, error) {
	if request.LeaveType != TypePaid && request.LeaveType != TypeCasual {
		return Request{}, fmt.Errorf("%w: %s", ErrInvalidType, request.LeaveType)
	}
	days, err := CalculateDays(request.StartDate, request.EndDate)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	request.ID = ""
	request.Days = days
	request.Status = StatusPending
	request.AppliedAt = time.Now().UTC()
	request.ReviewedAt = nil
	request.ReviewedBy = ""
	request.Comments = ""
	return s.records.Insert(request), nil
}

func (s *Service) Get(id string) (Request, error) {
	return s.records.Get(id)
}

func (s *Service) List(status string) []Request {
	if status != "" {
		return s.records.List(func(r Request) bool { return r.Status == status })
	}
	return s.records.List()
}

func (s *Service) Approve(id, reviewedBy, comments string) (Request, error) {
	request, err := s.review(id, StatusApproved, reviewedBy, comments)
	if err != nil {
		return Request{}, err
	}

	if s.roster != nil && request.EmployeeID != "" {
		dates := SpanDates(request.StartDate, request.EndDate)
		if err := s.roster.AddLeaveUsage(request.EmployeeID, request.LeaveType, request.Reason, dates); err != nil {
			slog.Warn("leave usage roster update failed", "employeeId", request.EmployeeID, "err", err)
		}
	}
	return request, nil
}

func (s *Service) Reject(id, reviewedBy, comments string) (Request, error) {
	return s.review(id, StatusRejected, reviewedBy, comments)
}

func (s *Service) review(id, status, reviewedBy, comments string) (Request, error) {
	var reviewErr error
	request, err := s.records.Mutate(id, func(stored *Request) {
		if stored.Status != StatusPending {
			reviewErr = fmt.Errorf("%w: %s", ErrAlreadyReviewed, stored.Status)
			return
		}
		now := time.Now().UTC()
		stored.Status = status
		stored.ReviewedAt = &now
		stored.ReviewedBy = reviewedBy
		stored.Comments = comments
	})
	if err != nil {
		return Request{}, err
	}
	if reviewErr != nil {
		return Request{}, reviewErr
	}
	return request, nil
}
