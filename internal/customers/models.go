package customers

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

type Customer struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email,omitempty"`
	Phone              string                    `json:"phone"`
	Addresses          []Address                 `json:"addresses"`
	Status             string                    `json:"status"`
	TotalComplaints    int                       `json:"totalComplaints"`
	ResolvedComplaints int                       `json:"resolvedComplaints"`
	TotalSpent         float64                   `json:"totalSpent"`
	JoinDate           time.Time                 `json:"joinDate"`
	LastContactDate    time.Time                 `json:"lastContactDate"`
	MonthlyData        map[string]MonthlyMetrics `json:"monthlyData"`
}

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

type MonthlyMetrics struct {
	Complaints        int     `json:"complaints"`
	PaymentsReceived  float64 `json:"paymentsReceived"`
	ServicesCompleted int     `json:"servicesCompleted"`
	TotalSpent        float64 `json:"totalSpent"`
	Satisfaction      int     `json:"satisfaction"`
	LastContact       string  `json:"lastContact"`
}

// DefaultAddress returns the customer's default address text, or "" when no
// address is on file.
func DefaultAddress(c Customer) string {
	for _, addr := range c.Addresses {
		if addr.IsDefault {
			return addr.Address
		}
	}
	return ""
}
