// Package reports aggregates business figures out of the complaint and
// payroll collections and renders them as downloadable reports.
package reports

import (
	"sort"
	"time"

	"hvacops/internal/complaints"
	"hvacops/internal/payroll"
	"hvacops/internal/salaries"
)

type Summary struct {
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	ServicesDone  int     `json:"servicesDone"`
	ProductsSold  int     `json:"productsSold"`
}

type EmployeePerformance struct {
	Name           string  `json:"name"`
	TasksCompleted int     `json:"tasksCompleted"`
	Revenue        float64 `json:"revenue"`
}

type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type Report struct {
	Summary             Summary               `json:"summary"`
	EmployeePerformance []EmployeePerformance `json:"employeePerformance"`
	MonthlyRevenue      []MonthlyRevenue      `json:"monthlyRevenue"`
}

type Service struct {
	complaints *complaints.Service
	salaries   *salaries.Service
}

func NewService(complaintSvc *complaints.Service, salarySvc *salaries.Service) *Service {
	return &Service{complaints: complaintSvc, salaries: salarySvc}
}

// Build assembles the business report for one pay period. Income counts
// the final price of service requests completed in the period; expenses
// are the net salaries recorded for it.
func (s *Service) Build(month string, year int) Report {
	completed := s.complaints.List(complaints.StatusCompleted, "")

	summary := Summary{Month: month, Year: year}
	perEmployee := map[string]*EmployeePerformance{}
	perPeriod := map[string]*MonthlyRevenue{}

	for _, complaint := range completed {
		if complaint.CompletedAt == nil {
			continue
		}
		done := *complaint.CompletedAt

		period := periodRevenue(perPeriod, done)
		period.Income = payroll.Round2(period.Income + complaint.FinalPrice)
		period.Profit = payroll.Round2(period.Income - period.Expenses)

		if !inPeriod(done, month, year) {
			continue
		}
		summary.ServicesDone++
		summary.TotalIncome = payroll.Round2(summary.TotalIncome + complaint.FinalPrice)
		for _, part := range complaint.ServiceDetails.PartsUsed {
			summary.ProductsSold += part.Quantity
		}

		if complaint.EmployeeName != "" {
			perf, ok := perEmployee[complaint.EmployeeName]
			if !ok {
				perf = &EmployeePerformance{Name: complaint.EmployeeName}
				perEmployee[complaint.EmployeeName] = perf
			}
			perf.TasksCompleted++
			perf.Revenue = payroll.Round2(perf.Revenue + complaint.FinalPrice)
		}
	}

	for _, record := range s.salaries.List("") {
		summaryMatch := record.Month == month && record.Year == year
		if summaryMatch {
			summary.TotalExpenses = payroll.Round2(summary.TotalExpenses + record.NetSalary)
		}
		if recordMonth, ok := monthByName(record.Month); ok {
			stamp := time.Date(record.Year, recordMonth, 1, 0, 0, 0, 0, time.UTC)
			period := periodRevenue(perPeriod, stamp)
			period.Expenses = payroll.Round2(period.Expenses + record.NetSalary)
			period.Profit = payroll.Round2(period.Income - period.Expenses)
		}
	}
	summary.NetProfit = payroll.Round2(summary.TotalIncome - summary.TotalExpenses)

	return Report{
		Summary:             summary,
		EmployeePerformance: sortedPerformance(perEmployee),
		MonthlyRevenue:      sortedRevenue(perPeriod),
	}
}

func periodRevenue(perPeriod map[string]*MonthlyRevenue, stamp time.Time) *MonthlyRevenue {
	key := stamp.Format("2006-01")
	period, ok := perPeriod[key]
	if !ok {
		period = &MonthlyRevenue{Month: stamp.Month().String()[:3], Year: stamp.Year()}
		perPeriod[key] = period
	}
	return period
}

func inPeriod(stamp time.Time, month string, year int) bool {
	return stamp.Month().String() == month && stamp.Year() == year
}

func monthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

func sortedPerformance(perEmployee map[string]*EmployeePerformance) []EmployeePerformance {
	out := make([]EmployeePerformance, 0, len(perEmployee))
	for _, perf := range perEmployee {
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedRevenue(perPeriod map[string]*MonthlyRevenue) []MonthlyRevenue {
	keys := make([]string, 0, len(perPeriod))
	for key := range perPeriod {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]MonthlyRevenue, 0, len(keys))
	for _, key := range keys {
		out = append(out, *perPeriod[key])
	}
	return out
}
