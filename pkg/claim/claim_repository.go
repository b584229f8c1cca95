package claim

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
)

type (
	// ClaimRepository groups every write a claim transition touches so the
	// service can run claim, food item, conversation and earnings updates in
	// one database transaction.
	ClaimRepository interface {
		Transaction(ctx context.Context, fn func(tx ClaimRepository) error) error

		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetClaimsByClaimer(ctx context.Context, claimerID string) ([]*entities.Claim, error)
		GetClaimsByPoster(ctx context.Context, posterID string) ([]*entities.Claim, error)
		GetClaimsByFoodItem(ctx context.Context, foodItemID string) ([]*entities.Claim, error)
		UpdateClaimStatus(ctx context.Context, claimID, status string) error
		HasActiveClaimOnItem(ctx context.Context, foodItemID, excludeClaimID string) (bool, error)
		HasPendingClaimByUser(ctx context.Context, foodItemID, claimerID string) (bool, error)
		CountDeliveredByPoster(ctx context.Context, posterID, excludeClaimID string) (int64, error)

		UpdateFoodItemStatus(ctx context.Context, foodItemID, status string) error
		CreateClaimConversation(ctx context.Context, conversation *entities.Conversation) error
		CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error
		CreditPartnerEarnings(ctx context.Context, partnerUserID string, amount float64) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Transaction(ctx context.Context, fn func(tx ClaimRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&claimRepository{db: tx})
	})
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimer").
		Preload("Poster").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimsByClaimer(ctx context.Context, claimerID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Poster").
		Where("claimer_id = ?", claimerID).
		Order("requested_at desc").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) GetClaimsByPoster(ctx context.Context, posterID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimer").
		Where("poster_id = ?", posterID).
		Order("requested_at desc").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) GetClaimsByFoodItem(ctx context.Context, foodItemID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("Claimer").
		Where("food_item_id = ?", foodItemID).
		Order("requested_at desc").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) UpdateClaimStatus(ctx context.Context, claimID, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("id = ?", claimID).
		Update("status", status).Error
}

func (r *claimRepository) HasActiveClaimOnItem(ctx context.Context, foodItemID, excludeClaimID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("food_item_id = ?", foodItemID).
		Where("status IN ?", []string{domain.ClaimStatusAccepted, domain.ClaimStatusOutForDelivery})
	if excludeClaimID != "" {
		query = query.Where("id <> ?", excludeClaimID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *claimRepository) HasPendingClaimByUser(ctx context.Context, foodItemID, claimerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("food_item_id = ? AND claimer_id = ? AND status = ?", foodItemID, claimerID, domain.ClaimStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *claimRepository) CountDeliveredByPoster(ctx context.Context, posterID, excludeClaimID string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("poster_id = ? AND status = ?", posterID, domain.ClaimStatusDelivered)
	if excludeClaimID != "" {
		query = query.Where("id <> ?", excludeClaimID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *claimRepository) UpdateFoodItemStatus(ctx context.Context, foodItemID, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", foodItemID).
		Update("status", status).Error
}

func (r *claimRepository) CreateClaimConversation(ctx context.Context, conversation *entities.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *claimRepository) CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *claimRepository) CreditPartnerEarnings(ctx context.Context, partnerUserID string, amount float64) error {
	return r.db.WithContext(ctx).Model(&entities.DeliveryPartnerProfile{}).
		Where("user_id = ?", partnerUserID).
		Update("earnings", gorm.Expr("earnings + ?", amount)).Error
}
