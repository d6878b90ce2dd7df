package model

import "time"

// Todo is one punch-list item. Optional text fields are nil when absent;
// blank form input is normalized to nil at the boundary, never stored as "".
type Todo struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description"`
	Notes             *string   `json:"notes"`
	ContractorHired   bool      `json:"contractor_hired"`
	ContractorName    *string   `json:"contractor_name"`
	ContractorDetails *string   `json:"contractor_details"`
	Cost              *int64    `json:"cost"` // integer cents
	Completed         bool      `json:"completed"`
	SortOrder         int       `json:"sort_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
