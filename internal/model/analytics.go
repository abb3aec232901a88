package model

// StageTatStats is the average turnaround time jobs spend in one stage
// before leaving it.
type StageTatStats struct {
	Stage          JobStage `json:"stage"`
	AvgTimeMinutes int64    `json:"avgTimeMinutes"`
	AvgTimeDays    float64  `json:"avgTimeDays"`
}

// DailyCashSummary aggregates completed-job revenue for one calendar date.
type DailyCashSummary struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}

// RevenueSplit separates collected revenue from work still in the pipeline.
type RevenueSplit struct {
	Realized int64 `json:"realized"`
	Pending  int64 `json:"pending"`
}

// EmployeeWorkload counts jobs per employee, ignoring the role annotation
// in the assignee display name.
type EmployeeWorkload struct {
	Name      string `json:"name"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// DashboardResponse is the single payload behind the dashboard page
type DashboardResponse struct {
	StageTat       []StageTatStats    `json:"stageTat"`
	DailyCash      []DailyCashSummary `json:"dailyCash"`
	Revenue        RevenueSplit       `json:"revenue"`
	CompletedToday int                `json:"completedToday"`
	Workload       []EmployeeWorkload `json:"workload"`
	TotalJobs      int                `json:"totalJobs"`
}
