package entities

import (
	"github.com/google/uuid"
	"time"
)

type Achievement struct {
	ID          string `gorm:"primary_key" json:"id"` // stable code, e.g. "first-share"
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	Timestamp
}

type UserAchievement struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	User        *User        `gorm:"foreignKey:UserID"`
	Achievement *Achievement `gorm:"foreignKey:AchievementID"`
}
