package server

import (
	"log/slog"
	"time"

	"hvacops/internal/complaints"
	"hvacops/internal/customers"
	"hvacops/internal/employees"
	"hvacops/internal/leave"
	"hvacops/internal/salaries"
)

// seed loads a small demo data set through the regular services so that
// derived fields and customer aggregates are computed the same way live
// traffic would compute them.
func (a *App) seed() {
	abc := a.Customers.Create(customers.Customer{
		Name:  "ABC Corporation",
		Email: "contact@abc.com",
		Phone: "+91 98765 43210",
		Addresses: []customers.Address{
			{Label: "Head Office", Address: "123 Business Ave, Mumbai, Maharashtra 400001", IsDefault: true},
			{Label: "Branch Office", Address: "456 Corporate Blvd, Mumbai, Maharashtra 400002"},
		},
	})
	xyz := a.Customers.Create(customers.Customer{
		Name:  "XYZ Ltd",
		Phone: "+91 87654 32109",
		Addresses: []customers.Address{
			{Label: "Main Office", Address: "789 Corporate Blvd, Delhi, Delhi 110001", IsDefault: true},
		},
	})

	john := a.Employees.Create(employees.Employee{
		FullName:   "John Smith",
		Email:      "john@company.com",
		Phone:      "+91 98765 43210",
		Address:    "123 Main St, Mumbai, Maharashtra",
		Position:   "Field Technician",
		BaseSalary: 35000,
		Documents: employees.Documents{
			PANCard:    "ABCDE1234F",
			AadharCard: "1234 5678 9012",
		},
	})
	sarah := a.Employees.Create(employees.Employee{
		FullName:   "Sarah Johnson",
		Email:      "sarah@company.com",
		Phone:      "+91 87654 32109",
		Address:    "456 Oak Ave, Delhi, Delhi",
		Position:   "Senior Technician",
		BaseSalary: 42000,
		Documents: employees.Documents{
			PANCard:        "FGHIJ5678K",
			DrivingLicense: "DL1234567890",
		},
	})

	if _, err := a.Employees.AssignTask(john.ID, employees.DailyTask{
		CustomerID:   abc.ID,
		CustomerName: abc.Name,
		Description:  "Fix air conditioning unit",
		Notes:        "Unit needs new compressor",
	}); err != nil {
		slog.Warn("seed task failed", "employee", john.FullName, "err", err)
	}
	if task, err := a.Employees.AssignTask(sarah.ID, employees.DailyTask{
		CustomerID:   xyz.ID,
		CustomerName: xyz.Name,
		Description:  "Install new HVAC system",
		Notes:        "Installation completed successfully",
	}); err != nil {
		slog.Warn("seed task failed", "employee", sarah.FullName, "err", err)
	} else if _, err := a.Employees.SetTaskStatus(sarah.ID, task.ID, employees.TaskStatusCompleted); err != nil {
		slog.Warn("seed task status failed", "employee", sarah.FullName, "err", err)
	}

	repair := a.Complaints.Create(complaints.Complaint{
		CustomerID:      abc.ID,
		CustomerName:    abc.Name,
		EmployeeID:      john.ID,
		EmployeeName:    john.FullName,
		Title:           "AC Unit Not Cooling",
		Description:     "Central AC system not cooling properly, temperature not dropping below 75F",
		Priority:        complaints.PriorityHigh,
		ServiceType:     "repair",
		EstimatedAmount: 900,
		EstimatedTime:   4,
		Notes:           "Customer reported strange noises and poor cooling.",
	})
	if _, err := a.Complaints.UpdateServiceDetails(repair.ID, complaints.ServiceDetail{
		ServiceCategory: "Compressor Repair",
		PartsUsed: []complaints.Part{
			{Name: "AC Compressor", Category: "compressor", Condition: "replaced", OriginalPrice: 200, SalePrice: 280, Quantity: 1},
			{Name: "Refrigerant R-410A", Category: "refrigerant", Condition: "new", OriginalPrice: 45, SalePrice: 65, Quantity: 2},
		},
		LaborCost: 200,
	}); err != nil {
		slog.Warn("seed service details failed", "err", err)
	}
	if _, err := a.Complaints.SetStatus(repair.ID, complaints.StatusInProgress); err != nil {
		slog.Warn("seed status failed", "err", err)
	}
	if _, err := a.Complaints.SetPayment(repair.ID, complaints.PaymentPartial, 300); err != nil {
		slog.Warn("seed payment failed", "err", err)
	}

	now := time.Now().UTC()
	if _, err := a.Leave.Submit(leave.Request{
		EmployeeID:   john.ID,
		EmployeeName: john.FullName,
		LeaveType:    leave.TypeCasual,
		StartDate:    now.AddDate(0, 0, 5),
		EndDate:      now.AddDate(0, 0, 5),
		Reason:       "Personal appointment",
	}); err != nil {
		slog.Warn("seed leave failed", "employee", john.FullName, "err", err)
	}
	if vacation, err := a.Leave.Submit(leave.Request{
		EmployeeID:   sarah.ID,
		EmployeeName: sarah.FullName,
		LeaveType:    leave.TypePaid,
		StartDate:    now.AddDate(0, 0, 10),
		EndDate:      now.AddDate(0, 0, 14),
		Reason:       "Family vacation",
	}); err != nil {
		slog.Warn("seed leave failed", "employee", sarah.FullName, "err", err)
	} else if _, err := a.Leave.Approve(vacation.ID, "Admin", "Enjoy your trip"); err != nil {
		slog.Warn("seed leave approval failed", "employee", sarah.FullName, "err", err)
	}

	paid := a.Salaries.Create(salaries.SalaryRecord{
		EmployeeID:        john.ID,
		EmployeeName:      john.FullName,
		Position:          john.Position,
		BaseSalary:        3500,
		Overtime:          200,
		Bonus:             150,
		Deductions:        350,
		PaidLeavesTaken:   1,
		UnpaidLeavesTaken: 1,
		CasualLeavesTaken: 0,
		Month:             "January",
		Year:              2024,
		PaymentMethod:     salaries.MethodBank,
	})
	if _, err := a.Salaries.SetStatus(paid.ID, salaries.StatusPaid); err != nil {
		slog.Warn("seed salary status failed", "err", err)
	}
	a.Salaries.Create(salaries.SalaryRecord{
		EmployeeID:    sarah.ID,
		EmployeeName:  sarah.FullName,
		Position:      sarah.Position,
		BaseSalary:    4200,
		Overtime:      300,
		Bonus:         200,
		Deductions:    420,
		Month:         "January",
		Year:          2024,
		PaymentMethod: salaries.MethodBank,
	})
}
