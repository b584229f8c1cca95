package entities

import (
	"github.com/google/uuid"
)

type CommunityPost struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID uuid.UUID  `json:"author_id"`
	Title    string     `json:"title"`
	Content  string     `gorm:"type:text" json:"content"`
	ImageURL string     `json:"image_url,omitempty"`
	Likes    int        `json:"likes"`
	ClaimID  *uuid.UUID `json:"claim_id,omitempty"`

	Author *User  `gorm:"foreignKey:AuthorID"`
	Claim  *Claim `gorm:"foreignKey:ClaimID"`
	Timestamp
}
