package achievement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/observability"
)

// deliveryMilestones maps the number of deliveries a poster had completed
// BEFORE the current one to the badge the current delivery unlocks, so the
// 1st, 5th and 10th delivered share each trigger an award.
var deliveryMilestones = map[int64]string{
	0: domain.AchievementCommunityPioneer,
	4: domain.AchievementGoodSamaritan,
	9: domain.AchievementGenerousGiver,
}

type (
	AchievementService interface {
		GetAchievements(ctx context.Context) ([]*domain.Achievement, error)
		GetUserAchievements(ctx context.Context, userID string) ([]*domain.UserAchievement, error)
		Award(ctx context.Context, userID string, achievementID string) error
		EvaluateFirstPost(ctx context.Context, userID string, priorPosts int64) error
		EvaluateDeliveryMilestones(ctx context.Context, posterID string, priorDeliveries int64) error
	}

	achievementService struct {
		achievementRepository AchievementRepository
	}
)

func NewAchievementService(achievementRepository AchievementRepository) AchievementService {
	return &achievementService{
		achievementRepository: achievementRepository,
	}
}

func (s *achievementService) GetAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	achievements, err := s.achievementRepository.GetAchievements(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Achievement, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, &domain.Achievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
		})
	}

	return result, nil
}

func (s *achievementService) GetUserAchievements(ctx context.Context, userID string) ([]*domain.UserAchievement, error) {
	userAchievements, err := s.achievementRepository.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserAchievement, 0, len(userAchievements))
	for _, ua := range userAchievements {
		entry := &domain.UserAchievement{
			AchievementID: ua.AchievementID,
			UnlockedAt:    ua.UnlockedAt,
		}
		if ua.Achievement != nil {
			entry.Title = ua.Achievement.Title
			entry.Description = ua.Achievement.Description
			entry.Icon = ua.Achievement.Icon
		}
		result = append(result, entry)
	}

	return result, nil
}

// Award is idempotent: a badge the user already holds is left untouched.
func (s *achievementService) Award(ctx context.Context, userID string, achievementID string) error {
	if _, err := s.achievementRepository.GetAchievementByID(ctx, achievementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAchievementNotFound
		}
		return err
	}

	exists, err := s.achievementRepository.HasAchievement(ctx, userID, achievementID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	userAchievement := &entities.UserAchievement{
		ID:            uuid.New(),
		UserID:        userUUID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}

	if err := s.achievementRepository.CreateUserAchievement(ctx, userAchievement); err != nil {
		return err
	}

	observability.AchievementsAwardedTotal.WithLabelValues(achievementID).Inc()
	return nil
}

func (s *achievementService) EvaluateFirstPost(ctx context.Context, userID string, priorPosts int64) error {
	if priorPosts != 0 {
		return nil
	}
	return s.Award(ctx, userID, domain.AchievementFirstShare)
}

func (s *achievementService) EvaluateDeliveryMilestones(ctx context.Context, posterID string, priorDeliveries int64) error {
	achievementID, ok := deliveryMilestones[priorDeliveries]
	if !ok {
		return nil
	}
	return s.Award(ctx, posterID, achievementID)
}
