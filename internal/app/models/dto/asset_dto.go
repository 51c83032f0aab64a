package dto

import "time"

// CreateAssetRequest is the payload for registering an IT asset
type CreateAssetRequest struct {
	Tag         string     `json:"tag" binding:"required" example:"SYK-IT-00042"`
	Name        string     `json:"name" binding:"required" example:"ThinkPad T14"`
	Category    string     `json:"category" binding:"required" example:"laptop"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
}

// UpdateAssetRequest is the payload for updating asset metadata
type UpdateAssetRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=IN_STOCK ASSIGNED IN_REPAIR RETIRED"`
}

// AssignAssetRequest assigns an asset to a profile
type AssignAssetRequest struct {
	ProfileID int64 `json:"profileId" binding:"required,min=1" example:"7"`
}
