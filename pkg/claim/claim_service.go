package claim

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/events"
	"nourishnet/internal/observability"
	"nourishnet/pkg/achievement"
)

// validTransitions is the full claim state machine. A status missing from the
// map is terminal.
var validTransitions = map[string][]string{
	domain.ClaimStatusPending:        {domain.ClaimStatusAccepted, domain.ClaimStatusRejected},
	domain.ClaimStatusAccepted:       {domain.ClaimStatusOutForDelivery},
	domain.ClaimStatusOutForDelivery: {domain.ClaimStatusDelivered, domain.ClaimStatusDeliveryFailed},
}

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest, claimerID string) (*domain.Claim, error)
		GetClaimByID(ctx context.Context, claimID, requesterID string) (*domain.Claim, error)
		GetMyClaims(ctx context.Context, claimerID string) ([]*domain.Claim, error)
		GetIncomingClaims(ctx context.Context, posterID string) ([]*domain.Claim, error)
		GetItemClaims(ctx context.Context, foodItemID, requesterID string) ([]*domain.Claim, error)
		UpdateClaimStatus(ctx context.Context, claimID, newStatus, actorID string) (*domain.UpdateClaimStatusResponse, error)
	}

	claimService struct {
		claimRepository    ClaimRepository
		foodRepository     FoodReader
		achievementService achievement.AchievementService
		producer           events.Producer
	}

	// FoodReader is the slice of the food repository the claim flow needs.
	FoodReader interface {
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
	}
)

func NewClaimService(
	claimRepository ClaimRepository,
	foodRepository FoodReader,
	achievementService achievement.AchievementService,
	producer events.Producer,
) ClaimService {
	return &claimService{
		claimRepository:    claimRepository,
		foodRepository:     foodRepository,
		achievementService: achievementService,
		producer:           producer,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest, claimerID string) (*domain.Claim, error) {
	claimer, err := uuid.Parse(claimerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		return nil, domain.ErrFoodItemNotFound
	}

	if foodItem.PostedBy == claimer {
		return nil, domain.ErrClaimOwnItem
	}
	if foodItem.Status == domain.FoodStatusCollected {
		return nil, domain.ErrFoodItemUnavailable
	}

	alreadyPending, err := s.claimRepository.HasPendingClaimByUser(ctx, req.FoodItemID, claimerID)
	if err != nil {
		return nil, err
	}
	if alreadyPending {
		return nil, domain.ErrClaimAlreadyExists
	}

	claim := &entities.Claim{
		ID:             uuid.New(),
		FoodItemID:     foodItem.ID,
		ClaimerID:      claimer,
		PosterID:       foodItem.PostedBy,
		Status:         domain.ClaimStatusPending,
		Reason:         req.Reason,
		DeliveryOption: req.DeliveryOption,
		RequestedAt:    time.Now(),
	}
	if req.DeliveryOption == domain.DeliveryOptionPlatformDelivery {
		fee := domain.PLATFORM_DELIVERY_FEE
		claim.DeliveryFee = &fee
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	observability.ClaimsCreatedTotal.Inc()
	_ = s.producer.PublishClaimEvent(ctx, events.ClaimEvent{
		ClaimID:    claim.ID.String(),
		FoodItemID: claim.FoodItemID.String(),
		PosterID:   claim.PosterID.String(),
		ClaimerID:  claim.ClaimerID.String(),
		Status:     claim.Status,
		OccurredAt: time.Now(),
	})

	claim.FoodItem = foodItem
	return convertClaim(claim), nil
}

func (s *claimService) GetClaimByID(ctx context.Context, claimID, requesterID string) (*domain.Claim, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		return nil, domain.ErrClaimNotFound
	}
	if !isClaimParty(claim, requesterID) {
		return nil, domain.ErrUnauthorizedClaimAccess
	}
	return convertClaim(claim), nil
}

func (s *claimService) GetMyClaims(ctx context.Context, claimerID string) ([]*domain.Claim, error) {
	claims, err := s.claimRepository.GetClaimsByClaimer(ctx, claimerID)
	if err != nil {
		return nil, err
	}
	return convertClaims(claims), nil
}

func (s *claimService) GetIncomingClaims(ctx context.Context, posterID string) ([]*domain.Claim, error) {
	claims, err := s.claimRepository.GetClaimsByPoster(ctx, posterID)
	if err != nil {
		return nil, err
	}
	return convertClaims(claims), nil
}

// GetItemClaims lists every claim on one of the requester's own items.
func (s *claimService) GetItemClaims(ctx context.Context, foodItemID, requesterID string) ([]*domain.Claim, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodItemID)
	if err != nil {
		return nil, domain.ErrFoodItemNotFound
	}
	if foodItem.PostedBy.String() != requesterID {
		return nil, domain.ErrUnauthorizedClaimAccess
	}

	claims, err := s.claimRepository.GetClaimsByFoodItem(ctx, foodItemID)
	if err != nil {
		return nil, err
	}
	return convertClaims(claims), nil
}

// UpdateClaimStatus validates the transition and applies the status write
// together with its side effects in a single transaction, so a crash can
// never leave a claim Accepted with its item still Available.
func (s *claimService) UpdateClaimStatus(ctx context.Context, claimID, newStatus, actorID string) (*domain.UpdateClaimStatusResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		return nil, domain.ErrClaimNotFound
	}

	if !transitionAllowed(claim.Status, newStatus) {
		return nil, domain.ErrInvalidClaimTransition
	}
	if err := s.authorizeTransition(claim, newStatus, actorID); err != nil {
		return nil, err
	}

	var conversationID string
	err = s.claimRepository.Transaction(ctx, func(tx ClaimRepository) error {
		if err := tx.UpdateClaimStatus(ctx, claimID, newStatus); err != nil {
			return err
		}

		switch newStatus {
		case domain.ClaimStatusAccepted:
			if err := tx.UpdateFoodItemStatus(ctx, claim.FoodItemID.String(), domain.FoodStatusReserved); err != nil {
				return err
			}
			id, err := s.openClaimConversation(ctx, tx, claim)
			if err != nil {
				return err
			}
			conversationID = id

		case domain.ClaimStatusRejected:
			// Another accepted claim may still hold the item reserved.
			active, err := tx.HasActiveClaimOnItem(ctx, claim.FoodItemID.String(), claimID)
			if err != nil {
				return err
			}
			if !active {
				if err := tx.UpdateFoodItemStatus(ctx, claim.FoodItemID.String(), domain.FoodStatusAvailable); err != nil {
					return err
				}
			}

		case domain.ClaimStatusDelivered:
			if err := tx.UpdateFoodItemStatus(ctx, claim.FoodItemID.String(), domain.FoodStatusCollected); err != nil {
				return err
			}
			if claim.DeliveryPartnerID != nil && claim.DeliveryFee != nil {
				if err := tx.CreditPartnerEarnings(ctx, claim.DeliveryPartnerID.String(), *claim.DeliveryFee); err != nil {
					return err
				}
			}

		case domain.ClaimStatusDeliveryFailed:
			if err := tx.UpdateFoodItemStatus(ctx, claim.FoodItemID.String(), domain.FoodStatusAvailable); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.ClaimTransitionsTotal.WithLabelValues(newStatus).Inc()
	_ = s.producer.PublishClaimEvent(ctx, events.ClaimEvent{
		ClaimID:    claim.ID.String(),
		FoodItemID: claim.FoodItemID.String(),
		PosterID:   claim.PosterID.String(),
		ClaimerID:  claim.ClaimerID.String(),
		Status:     newStatus,
		OccurredAt: time.Now(),
	})

	if newStatus == domain.ClaimStatusDelivered {
		priorDeliveries, err := s.claimRepository.CountDeliveredByPoster(ctx, claim.PosterID.String(), claimID)
		if err != nil {
			return nil, err
		}
		if err := s.achievementService.EvaluateDeliveryMilestones(ctx, claim.PosterID.String(), priorDeliveries); err != nil {
			return nil, err
		}
	}

	return &domain.UpdateClaimStatusResponse{
		ClaimID:        claimID,
		Status:         newStatus,
		ConversationID: conversationID,
	}, nil
}

func (s *claimService) authorizeTransition(claim *entities.Claim, newStatus, actorID string) error {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	switch newStatus {
	case domain.ClaimStatusAccepted, domain.ClaimStatusRejected:
		if claim.PosterID != actor {
			return domain.ErrUnauthorizedClaimAccess
		}
	default:
		// Delivery progress comes from the assigned partner, or from the
		// poster when no platform partner is involved.
		if claim.DeliveryPartnerID != nil && *claim.DeliveryPartnerID == actor {
			return nil
		}
		if claim.PosterID != actor {
			return domain.ErrUnauthorizedClaimAccess
		}
	}
	return nil
}

// openClaimConversation creates the claim's conversation with both parties and
// an opening system message. The unique index on claim_id keeps a retried
// accept from creating a second one.
func (s *claimService) openClaimConversation(ctx context.Context, tx ClaimRepository, claim *entities.Claim) (string, error) {
	claimID := claim.ID
	conversation := &entities.Conversation{
		ID:      uuid.New(),
		ClaimID: &claimID,
		Participants: []*entities.ConversationParticipant{
			{ID: uuid.New(), UserID: claim.PosterID},
			{ID: uuid.New(), UserID: claim.ClaimerID},
		},
	}
	if err := tx.CreateClaimConversation(ctx, conversation); err != nil {
		return "", err
	}

	text := "Claim accepted. You can now coordinate the handover here."
	if claim.FoodItem != nil {
		text = "Claim for \"" + claim.FoodItem.Title + "\" accepted. You can now coordinate the handover here."
	}
	message := &entities.ChatMessage{
		ID:              uuid.New(),
		ConversationID:  conversation.ID,
		Text:            text,
		IsSystemMessage: true,
		SentAt:          time.Now(),
	}
	if err := tx.CreateChatMessage(ctx, message); err != nil {
		return "", err
	}

	return conversation.ID.String(), nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func isClaimParty(claim *entities.Claim, userID string) bool {
	if claim.PosterID.String() == userID || claim.ClaimerID.String() == userID {
		return true
	}
	return claim.DeliveryPartnerID != nil && claim.DeliveryPartnerID.String() == userID
}

func convertClaim(claim *entities.Claim) *domain.Claim {
	result := &domain.Claim{
		ID:             claim.ID.String(),
		FoodItemID:     claim.FoodItemID.String(),
		ClaimerID:      claim.ClaimerID.String(),
		PosterID:       claim.PosterID.String(),
		Status:         claim.Status,
		Reason:         claim.Reason,
		DeliveryOption: claim.DeliveryOption,
		RequestedAt:    claim.RequestedAt,
		DeliveryFee:    claim.DeliveryFee,
	}
	if claim.FoodItem != nil {
		result.FoodItemTitle = claim.FoodItem.Title
	}
	if claim.Claimer != nil {
		result.ClaimerName = claim.Claimer.Name
	}
	if claim.Poster != nil {
		result.PosterName = claim.Poster.Name
	}
	if claim.DeliveryPartnerID != nil {
		result.DeliveryPartnerID = claim.DeliveryPartnerID.String()
	}
	return result
}

func convertClaims(claims []*entities.Claim) []*domain.Claim {
	result := make([]*domain.Claim, 0, len(claims))
	for _, c := range claims {
		result = append(result, convertClaim(c))
	}
	return result
}
