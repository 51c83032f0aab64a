package dto

import "time"

// CreateNewsRequest is the payload for publishing a news post or event
type CreateNewsRequest struct {
	Kind      string     `json:"kind" binding:"required,oneof=NEWS EVENT" example:"NEWS"`
	Title     string     `json:"title" binding:"required" example:"Autumn semester opens"`
	Body      string     `json:"body" binding:"required"`
	EventDate *time.Time `json:"eventDate,omitempty"`
}

// UpdateNewsRequest is the payload for editing a news post or event
type UpdateNewsRequest struct {
	Title     string     `json:"title" binding:"required"`
	Body      string     `json:"body" binding:"required"`
	EventDate *time.Time `json:"eventDate,omitempty"`
}
