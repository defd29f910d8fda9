package models

// AdminPageSize is the fixed page size for every back-office table.
const AdminPageSize = 15

// ListQuery carries the filter state of one admin resource table.
type ListQuery struct {
	Search string `json:"search"`
	Status string `json:"status,omitempty"`
	Page   int    `json:"page"`
}

// Limit returns the page size for the query.
func (q ListQuery) Limit() int64 { return AdminPageSize }

// Offset returns the number of rows to skip for the current page.
func (q ListQuery) Offset() int64 { return int64(q.Page) * AdminPageSize }

// DashboardStats aggregates booking counters for the admin dashboard.
type DashboardStats struct {
	Total      int64   `json:"total"`
	Pending    int64   `json:"pending"`
	Confirmed  int64   `json:"confirmed"`
	InProgress int64   `json:"inProgress"`
	Completed  int64   `json:"completed"`
	Cancelled  int64   `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}
