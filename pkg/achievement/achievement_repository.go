package achievement

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/entities"
)

type (
	AchievementRepository interface {
		GetAchievements(ctx context.Context) ([]*entities.Achievement, error)
		GetAchievementByID(ctx context.Context, id string) (*entities.Achievement, error)
		HasAchievement(ctx context.Context, userID string, achievementID string) (bool, error)
		CreateUserAchievement(ctx context.Context, userAchievement *entities.UserAchievement) error
		GetUserAchievements(ctx context.Context, userID string) ([]*entities.UserAchievement, error)
	}

	achievementRepository struct {
		db *gorm.DB
	}
)

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetAchievements(ctx context.Context) ([]*entities.Achievement, error) {
	var achievements []*entities.Achievement
	if err := r.db.WithContext(ctx).Order("id asc").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) GetAchievementByID(ctx context.Context, id string) (*entities.Achievement, error) {
	var achievement entities.Achievement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) HasAchievement(ctx context.Context, userID string, achievementID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&count).Error
	return count > 0, err
}

func (r *achievementRepository) CreateUserAchievement(ctx context.Context, userAchievement *entities.UserAchievement) error {
	return r.db.WithContext(ctx).Create(userAchievement).Error
}

func (r *achievementRepository) GetUserAchievements(ctx context.Context, userID string) ([]*entities.UserAchievement, error) {
	var userAchievements []*entities.UserAchievement
	if err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at asc").
		Find(&userAchievements).Error; err != nil {
		return nil, err
	}
	return userAchievements, nil
}
