package entities

import (
	"github.com/google/uuid"
	"time"
)

type Claim struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID        uuid.UUID  `gorm:"index" json:"food_item_id"`
	ClaimerID         uuid.UUID  `json:"claimer_id"`
	PosterID          uuid.UUID  `json:"poster_id"`
	Status            string     `json:"status"` // "Pending", "Accepted", "Rejected", "OutForDelivery", "Delivered", "DeliveryFailed"
	Reason            string     `gorm:"type:text" json:"reason"`
	DeliveryOption    string     `json:"delivery_option"` // "ClaimerPickup", "DonorDelivery", "Meetup", "PlatformDelivery"
	RequestedAt       time.Time  `json:"requested_at"`
	DeliveryFee       *float64   `json:"delivery_fee,omitempty"`
	DeliveryPartnerID *uuid.UUID `json:"delivery_partner_id,omitempty"`

	FoodItem        *FoodItem `gorm:"foreignKey:FoodItemID"`
	Claimer         *User     `gorm:"foreignKey:ClaimerID"`
	Poster          *User     `gorm:"foreignKey:PosterID"`
	DeliveryPartner *User     `gorm:"foreignKey:DeliveryPartnerID"`
	Timestamp
}
