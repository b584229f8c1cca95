package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Role        string    `json:"role"` // "Admin", "VerifiedMember", "Applicant", "DeliveryPartner"
	Rating      float64   `json:"rating"`
	Bio         string    `gorm:"type:text" json:"bio,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SocialLinks string    `gorm:"type:text" json:"social_links,omitempty"` // JSON-encoded map of platform -> URL
	IsVerified  bool      `json:"is_verified"`

	DeliveryPartner *DeliveryPartnerProfile `gorm:"foreignKey:UserID" json:"delivery_partner,omitempty"`
	Achievements    []*UserAchievement      `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Timestamp
}

type DeliveryPartnerProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	VerificationStatus string    `json:"verification_status"` // "NotSubmitted", "Pending", "Verified", "Rejected"
	VehicleType        string    `json:"vehicle_type"`
	Availability       string    `json:"availability"` // "Online", "Offline"
	Phone              string    `json:"phone"`
	Earnings           float64   `json:"earnings"`
	DriversLicenseURL  string    `json:"drivers_license_url,omitempty"`
	InsuranceURL       string    `json:"insurance_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserFollow struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID  uuid.UUID `gorm:"uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"uniqueIndex:idx_follow_pair" json:"following_id"`

	Follower  *User `gorm:"foreignKey:FollowerID"`
	Following *User `gorm:"foreignKey:FollowingID"`
	Timestamp
}
