package models

// School defines the school model based on the 'schools' table
type School struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"School of Technology"`
	Code string `json:"code" db:"code" example:"TECH"`
}
