package model

import "github.com/shopspring/decimal"

// StatusCount holds the number of applications in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats aggregates counters for the admin dashboard.
type DashboardStats struct {
	TotalApplications   int64           `json:"totalApplications"`
	ApplicationsByStatus []StatusCount  `json:"applicationsByStatus"`
	OpenSupportRequests int64           `json:"openSupportRequests"`
	CompletedPayments   int64           `json:"completedPayments"`
	CompletedAmount     decimal.Decimal `json:"completedAmount"`
}
