package employees

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"hvacops/internal/shared"
	"hvacops/internal/store"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// taskStamps maps a target task status to the timestamp written on entry.
var taskStamps = map[string]func(*DailyTask, time.Time){
	TaskStatusCompleted: func(task *DailyTask, now time.Time) { task.CompletedAt = &now },
}

type Service struct {
	records *store.Collection[Employee]
}

func NewService() *Service {
	return &Service{
		records: store.NewCollection(func(e *Employee) *string { return &e.ID }),
	}
}

func (s *Service) Create(emp Employee) Employee {
	emp.ID = ""
	emp.Status = StatusActive
	emp.DailyTasks = []DailyTask{}
	emp.MonthlyData = map[string]MonthlySnapshot{}
	emp.TotalLeaves = AnnualLeaveEntitlement
	emp.UsedLeaves = 0
	emp.PaidLeaves = 0
	emp.CasualLeaves = 0
	emp.LeaveDetails = []LeaveDetail{}
	emp.CreatedAt = time.Now().UTC()
	return s.records.Insert(emp)
}

func (s *Service) Get(id string) (Employee, error) {
	return s.records.Get(id)
}

// List returns non-deleted employees in insertion order. A status filter
// may name any status, including "deleted".
func (s *Service) List(status string) []Employee {
	if status != "" {
		return s.records.List(func(e Employee) bool { return e.Status == status })
	}
	return s.records.List(func(e Employee) bool { return e.Status != StatusDeleted })
}

// Update replaces the employee's profile fields, keeping tasks, leave
// counters and monthly data owned by their own operations.
func (s *Service) Update(id string, emp Employee) (Employee, error) {
	return s.records.Mutate(id, func(stored *Employee) {
		stored.FullName = emp.FullName
		stored.Email = emp.Email
		stored.Phone = emp.Phone
		stored.Address = emp.Address
		stored.Position = emp.Position
		stored.BaseSalary = emp.BaseSalary
		stored.ProfileImage = emp.ProfileImage
		stored.Documents = emp.Documents
		stored.CurrentLocation = emp.CurrentLocation
	})
}

// SetStatus soft-deletes via the "deleted" status; records are never
// physically removed.
func (s *Service) SetStatus(id, status string) (Employee, error) {
	if !validStatus(status, Statuses) {
		return Employee{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.records.Mutate(id, func(stored *Employee) {
		stored.Status = status
	})
}

func (s *Service) AssignTask(employeeID string, task DailyTask) (DailyTask, error) {
	now := time.Now().UTC()
	task.ID = store.NewID()
	task.Date = shared.FormatDate(now)
	task.Status = TaskStatusAssigned
	task.AssignedAt = now
	task.CompletedAt = nil

	_, err := s.records.Mutate(employeeID, func(stored *Employee) {
		stored.DailyTasks = append(stored.DailyTasks, task)
	})
	if err != nil {
		return DailyTask{}, err
	}
	return task, nil
}

func (s *Service) SetTaskStatus(employeeID, taskID, status string) (DailyTask, error) {
	if !validStatus(status, TaskStatuses) {
		return DailyTask{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	var updated DailyTask
	found := false
	_, err := s.records.Mutate(employeeID, func(stored *Employee) {
		for i := range stored.DailyTasks {
			if stored.DailyTasks[i].ID != taskID {
				continue
			}
			stored.DailyTasks[i].Status = status
			if stamp, ok := taskStamps[status]; ok {
				stamp(&stored.DailyTasks[i], time.Now().UTC())
			}
			updated = stored.DailyTasks[i]
			found = true
			return
		}
	})
	if err != nil {
		return DailyTask{}, err
	}
	if !found {
		return DailyTask{}, ErrTaskNotFound
	}
	return updated, nil
}

func (s *Service) ListTasks(employeeID string) ([]DailyTask, error) {
	emp, err := s.records.Get(employeeID)
	if err != nil {
		return nil, err
	}
	return emp.DailyTasks, nil
}

// AddLeaveUsage appends one leave detail per day and keeps the counters
// consistent with the detail list.
func (s *Service) AddLeaveUsage(employeeID, leaveType, reason string, dates []time.Time) error {
	_, err := s.records.Mutate(employeeID, func(stored *Employee) {
		for _, date := range dates {
			stored.LeaveDetails = append(stored.LeaveDetails, LeaveDetail{
				ID:     store.NewID(),
				Date:   shared.FormatDate(date),
				Type:   leaveType,
				Reason: reason,
			})
			switch leaveType {
			case "paid":
				stored.PaidLeaves++
			case "casual":
				stored.CasualLeaves++
			}
		}
		stored.UsedLeaves = len(stored.LeaveDetails)
	})
	return err
}

func (s *Service) UpsertMonthlySnapshot(employeeID, month string, snapshot MonthlySnapshot) (Employee, error) {
	return s.records.Mutate(employeeID, func(stored *Employee) {
		if stored.MonthlyData == nil {
			stored.MonthlyData = map[string]MonthlySnapshot{}
		}
		stored.MonthlyData[month] = snapshot
	})
}

// MonthKeys returns an employee's snapshot months sorted descending.
func MonthKeys(emp Employee) []string {
	keys := make([]string, 0, len(emp.MonthlyData))
	for key := range emp.MonthlyData {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

func validStatus(status string, allowed []string) bool {
	for _, candidate := range allowed {
		if status == candidate {
			return true
		}
	}
	return false
}
