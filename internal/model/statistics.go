package model

import "github.com/shopspring/decimal"

// ReasonCount ranks a leave reason by how often it appears.
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// MonthlyCount is the number of requests submitted in one YYYY-MM bucket.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// EmployeeLeaveDays ranks an employee by their accumulated approved leave days.
type EmployeeLeaveDays struct {
	Name      string          `json:"name"`
	TotalDays decimal.Decimal `json:"total_days"`
}

// DepartmentCount is the number of requests belonging to one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// StatisticsResponse aggregates workflow metrics for one department or for the
// whole organization. DepartmentStats is populated only for the global scope.
type StatisticsResponse struct {
	TotalRequests       int64               `json:"total_requests"`
	ApprovedRequests    int64               `json:"approved_requests"`
	PendingRequests     int64               `json:"pending_requests"`
	DeniedRequests      int64               `json:"denied_requests"`
	FinalizedRequests   int64               `json:"finalized_requests"`
	AverageDuration     decimal.Decimal     `json:"average_duration"`
	LeaveTypeStats      []ReasonCount       `json:"leave_type_stats"`
	MonthlyTrends       []MonthlyCount      `json:"monthly_trends"`
	TopEmployees        []EmployeeLeaveDays `json:"top_employees"`
	LongPendingRequests int64               `json:"long_pending_requests"`
	DepartmentStats     []DepartmentCount   `json:"department_stats,omitempty"`
}
