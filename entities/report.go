package entities

import (
	"github.com/google/uuid"
)

type Report struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	TargetType string    `json:"target_type"` // "FoodItem", "User"
	TargetID   uuid.UUID `json:"target_id"`
	Reason     string    `json:"reason"`
	Comments   string    `gorm:"type:text" json:"comments,omitempty"`
	Status     string    `json:"status"` // "Open", "Resolved"

	Reporter *User `gorm:"foreignKey:ReporterID"`
	Timestamp
}
