package models

import "time"

// Asset defines the IT asset model based on the 'assets' table
type Asset struct {
	ID                int64       `json:"id" db:"id" example:"1"`
	Tag               string      `json:"tag" db:"tag" example:"SYK-IT-00042"`
	Name              string      `json:"name" db:"name" example:"ThinkPad T14"`
	Category          string      `json:"category" db:"category" example:"laptop"`
	Status            AssetStatus `json:"status" db:"status" example:"IN_STOCK"`
	AssignedProfileID *int64      `json:"assignedProfileId,omitempty" db:"assigned_profile_id"`
	PhotoURL          *string     `json:"photoUrl,omitempty" db:"photo_url"`
	PurchasedAt       *time.Time  `json:"purchasedAt,omitempty" db:"purchased_at"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time   `json:"updatedAt" db:"updated_at"`

	AssignedProfile *Profile `json:"assignedProfile,omitempty"` // Relation, no db tag
}
