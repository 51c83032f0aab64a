package models

import "time"

// NewsItem defines the news/event model based on the 'news' table.
// Events carry an EventDate; plain news posts leave it null.
type NewsItem struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Kind        NewsKind   `json:"kind" db:"kind" example:"NEWS"`
	Title       string     `json:"title" db:"title" example:"Autumn semester opens"`
	Body        string     `json:"body" db:"body"`
	CoverURL    *string    `json:"coverUrl,omitempty" db:"cover_url"`
	PublishedAt time.Time  `json:"publishedAt" db:"published_at"`
	EventDate   *time.Time `json:"eventDate,omitempty" db:"event_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
