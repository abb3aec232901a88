package model

// Customer is a repeat-visit record keyed by case-insensitive name.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LastVisit   int64  `json:"lastVisit"`
	TotalVisits int    `json:"totalVisits"`
}
