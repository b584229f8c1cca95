package domain

import (
	"errors"
	"time"
)

const (
	AchievementFirstShare       = "first-share"
	AchievementCommunityPioneer = "community-pioneer"
	AchievementGoodSamaritan    = "good-samaritan"
	AchievementGenerousGiver    = "generous-giver"
)

var (
	MessageSuccessGetAchievements = "achievements retrieved successfully"

	MessageFailedGetAchievements = "failed to retrieve achievements"

	ErrAchievementNotFound = errors.New("achievement not found")
)

type (
	Achievement struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}

	UserAchievement struct {
		AchievementID string    `json:"achievement_id"`
		Title         string    `json:"title,omitempty"`
		Description   string    `json:"description,omitempty"`
		Icon          string    `json:"icon,omitempty"`
		UnlockedAt    time.Time `json:"unlocked_at"`
	}
)
