package delivery

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
)

type (
	DeliveryRepository interface {
		GetAvailableJobs(ctx context.Context) ([]*entities.Claim, error)
		GetPartnerActiveJobs(ctx context.Context, partnerUserID string) ([]*entities.Claim, error)
		GetPartnerJobHistory(ctx context.Context, partnerUserID string) ([]*entities.Claim, error)
		AssignPartner(ctx context.Context, claimID, partnerUserID string) (bool, error)
		GetClaimByID(ctx context.Context, claimID string) (*entities.Claim, error)
		GetConversationByClaimID(ctx context.Context, claimID string) (*entities.Conversation, error)
		AddConversationParticipant(ctx context.Context, participant *entities.ConversationParticipant) error
		CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error
	}

	deliveryRepository struct {
		db *gorm.DB
	}
)

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) GetAvailableJobs(ctx context.Context) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimer").
		Preload("Poster").
		Where("status = ? AND delivery_option = ? AND delivery_partner_id IS NULL",
			domain.ClaimStatusAccepted, domain.DeliveryOptionPlatformDelivery).
		Order("requested_at asc").
		Find(&claims).Error
	return claims, err
}

func (r *deliveryRepository) GetPartnerActiveJobs(ctx context.Context, partnerUserID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimer").
		Preload("Poster").
		Where("delivery_partner_id = ? AND status IN ?",
			partnerUserID, []string{domain.ClaimStatusAccepted, domain.ClaimStatusOutForDelivery}).
		Order("requested_at asc").
		Find(&claims).Error
	return claims, err
}

func (r *deliveryRepository) GetPartnerJobHistory(ctx context.Context, partnerUserID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimer").
		Preload("Poster").
		Where("delivery_partner_id = ? AND status NOT IN ?",
			partnerUserID, []string{domain.ClaimStatusAccepted, domain.ClaimStatusOutForDelivery}).
		Order("requested_at desc").
		Find(&claims).Error
	return claims, err
}

// AssignPartner is a compare-and-set: the update only lands when the job is
// still unassigned and in the Accepted state, so two partners racing for the
// same job cannot both win.
func (r *deliveryRepository) AssignPartner(ctx context.Context, claimID, partnerUserID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("id = ? AND delivery_partner_id IS NULL AND status = ? AND delivery_option = ?",
			claimID, domain.ClaimStatusAccepted, domain.DeliveryOptionPlatformDelivery).
		Update("delivery_partner_id", partnerUserID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *deliveryRepository) GetClaimByID(ctx context.Context, claimID string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("id = ?", claimID).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *deliveryRepository) GetConversationByClaimID(ctx context.Context, claimID string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *deliveryRepository) AddConversationParticipant(ctx context.Context, participant *entities.ConversationParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *deliveryRepository) CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
