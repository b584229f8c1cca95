package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PostedBy    uuid.UUID `json:"posted_by"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Quantity    string    `json:"quantity"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"` // "Available", "Reserved", "Collected"
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	PostedAt    time.Time `json:"posted_at"`
	ExpiresAt   time.Time `json:"expires_at"`

	Poster *User    `gorm:"foreignKey:PostedBy"`
	Claims []*Claim `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
