package models

// MonthlyViews is one year/month bucket of the dashboard view aggregation.
type MonthlyViews struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Views int64 `json:"views"`
}
