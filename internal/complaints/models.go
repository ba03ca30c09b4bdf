package complaints

import "time"

const (
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var (
	Statuses        = []string{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled}
	PaymentStatuses = []string{PaymentPending, PaymentPartial, PaymentPaid}
	Priorities      = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	ServiceTypes    = []string{"repair", "installation", "maintenance", "emergency", "consultation"}
)

type Complaint struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	EmployeeID      string        `json:"employeeId"`
	EmployeeName    string        `json:"employeeName"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	Priority        string        `json:"priority"`
	CreatedAt       time.Time     `json:"createdAt"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
	PaymentStatus   string        `json:"paymentStatus"`
	EstimatedAmount float64       `json:"estimatedAmount"`
	ActualPrice     float64       `json:"actualPrice"`
	Discount        float64       `json:"discount"`
	FinalPrice      float64       `json:"finalPrice"`
	EstimatedTime   float64       `json:"estimatedTime"`
	PaidAmount      float64       `json:"paidAmount"`
	ServiceType     string        `json:"serviceType"`
	ServiceDetails  ServiceDetail `json:"acServiceDetails"`
	Notes           string        `json:"notes"`
}

type ServiceDetail struct {
	ServiceCategory  string  `json:"serviceCategory"`
	PartsUsed        []Part  `json:"partsUsed"`
	LaborCost        float64 `json:"laborCost"`
	TotalServiceCost float64 `json:"totalServiceCost"`
}

type Part struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Condition     string  `json:"condition"`
	OriginalPrice float64 `json:"originalPrice"`
	SalePrice     float64 `json:"salePrice"`
	Quantity      int     `json:"quantity"`
	Profit        float64 `json:"profit"`
	Loss          float64 `json:"loss"`
}
