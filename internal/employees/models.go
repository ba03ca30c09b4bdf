package employees

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDeleted  = "deleted"

	TaskStatusAssigned   = "assigned"
	TaskStatusReached    = "reached"
	TaskStatusChecking   = "checking"
	TaskStatusWorking    = "working"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"

	// AnnualLeaveEntitlement is fixed at creation and never recomputed.
	AnnualLeaveEntitlement = 24
)

var Statuses = []string{StatusActive, StatusInactive, StatusDeleted}

var TaskStatuses = []string{
	TaskStatusAssigned,
	TaskStatusReached,
	TaskStatusChecking,
	TaskStatusWorking,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

type Employee struct {
	ID              string                     `json:"id"`
	FullName        string                     `json:"fullName"`
	Email           string                     `json:"email"`
	Phone           string                     `json:"phone"`
	Address         string                     `json:"address"`
	Position        string                     `json:"position"`
	BaseSalary      float64                    `json:"baseSalary"`
	Status          string                     `json:"status"`
	ProfileImage    string                     `json:"profileImage,omitempty"`
	Documents       Documents                  `json:"documents"`
	CurrentLocation *Location                  `json:"currentLocation,omitempty"`
	DailyTasks      []DailyTask                `json:"dailyTasks"`
	MonthlyData     map[string]MonthlySnapshot `json:"monthlyData"`
	TotalLeaves     int                        `json:"totalLeaves"`
	UsedLeaves      int                        `json:"usedLeaves"`
	PaidLeaves      int                        `json:"paidLeaves"`
	CasualLeaves    int                        `json:"casualLeaves"`
	LeaveDetails    []LeaveDetail              `json:"leaveDetails"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

type Documents struct {
	PANCard        string `json:"panCard,omitempty"`
	AadharCard     string `json:"aadharCard,omitempty"`
	ElectionCard   string `json:"electionCard,omitempty"`
	DrivingLicense string `json:"drivingLicense,omitempty"`
}

// Location is a static snapshot carried on the record; there is no live
// tracking behind it.
type Location struct {
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Address     string    `json:"address"`
	LastUpdated time.Time `json:"lastUpdated"`
	IsOnline    bool      `json:"isOnline"`
}

type DailyTask struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	CustomerID   string     `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	AssignedAt   time.Time  `json:"assignedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type LeaveDetail struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type MonthlySnapshot struct {
	TasksAssigned   int     `json:"tasksAssigned"`
	TasksCompleted  int     `json:"tasksCompleted"`
	Salary          float64 `json:"salary"`
	LeaveDays       int     `json:"leaveDays"`
	PaidLeaveDays   int     `json:"paidLeaveDays"`
	CasualLeaveDays int     `json:"casualLeaveDays"`
	Performance     int     `json:"performance"`
}
