package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/observability"
	"nourishnet/internal/utils/storage"
	"nourishnet/pkg/user"
)

type (
	DeliveryService interface {
		GetAvailableJobs(ctx context.Context, partnerUserID string) ([]*domain.DeliveryJob, error)
		GetPartnerJobs(ctx context.Context, partnerUserID string) (*domain.PartnerJobsResponse, error)
		AcceptJob(ctx context.Context, claimID, partnerUserID string) (*domain.DeliveryJob, error)
		SubmitVerification(ctx context.Context, req domain.SubmitVerificationRequest, partnerUserID string) error
		ReviewVerification(ctx context.Context, partnerUserID, status string) error
		SetAvailability(ctx context.Context, partnerUserID, availability string) error
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
		userRepository     user.UserRepository
		presence           PresenceTracker
		s3                 storage.AwsS3
	}
)

func NewDeliveryService(
	deliveryRepository DeliveryRepository,
	userRepository user.UserRepository,
	presence PresenceTracker,
	s3 storage.AwsS3,
) DeliveryService {
	return &deliveryService{
		deliveryRepository: deliveryRepository,
		userRepository:     userRepository,
		presence:           presence,
		s3:                 s3,
	}
}

func (s *deliveryService) GetAvailableJobs(ctx context.Context, partnerUserID string) ([]*domain.DeliveryJob, error) {
	if err := s.requireVerifiedPartner(ctx, partnerUserID); err != nil {
		return nil, err
	}

	claims, err := s.deliveryRepository.GetAvailableJobs(ctx)
	if err != nil {
		return nil, err
	}
	return convertJobs(claims), nil
}

func (s *deliveryService) GetPartnerJobs(ctx context.Context, partnerUserID string) (*domain.PartnerJobsResponse, error) {
	active, err := s.deliveryRepository.GetPartnerActiveJobs(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}
	history, err := s.deliveryRepository.GetPartnerJobHistory(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	return &domain.PartnerJobsResponse{
		Active:  convertJobs(active),
		History: convertJobs(history),
	}, nil
}

func (s *deliveryService) AcceptJob(ctx context.Context, claimID, partnerUserID string) (*domain.DeliveryJob, error) {
	if _, err := uuid.Parse(claimID); err != nil {
		return nil, domain.ErrParseUUID
	}
	if err := s.requireVerifiedPartner(ctx, partnerUserID); err != nil {
		return nil, err
	}

	won, err := s.deliveryRepository.AssignPartner(ctx, claimID, partnerUserID)
	if err != nil {
		return nil, err
	}
	if !won {
		observability.DeliveryJobConflictsTotal.Inc()
		return nil, domain.ErrDeliveryJobTaken
	}
	observability.DeliveryJobsAcceptedTotal.Inc()

	if err := s.joinClaimConversation(ctx, claimID, partnerUserID); err != nil {
		return nil, err
	}

	claim, err := s.deliveryRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		return nil, domain.ErrDeliveryJobNotFound
	}
	return convertJob(claim), nil
}

func (s *deliveryService) SubmitVerification(ctx context.Context, req domain.SubmitVerificationRequest, partnerUserID string) error {
	profile, err := s.userRepository.GetPartnerProfileByUserID(ctx, partnerUserID)
	if err != nil {
		return domain.ErrPartnerNotFound
	}

	licenseKey, err := s.s3.UploadFile(
		fmt.Sprintf("license-%s", partnerUserID), req.DriversLicense, "verification", storage.AllowDocument...)
	if err != nil {
		return err
	}
	insuranceKey, err := s.s3.UploadFile(
		fmt.Sprintf("insurance-%s", partnerUserID), req.Insurance, "verification", storage.AllowDocument...)
	if err != nil {
		return err
	}

	profile.VehicleType = req.VehicleType
	profile.Phone = req.Phone
	profile.DriversLicenseURL = s.s3.GetPublicLinkKey(licenseKey)
	profile.InsuranceURL = s.s3.GetPublicLinkKey(insuranceKey)
	profile.VerificationStatus = domain.VerificationPending

	return s.userRepository.UpdatePartnerProfile(ctx, profile)
}

func (s *deliveryService) ReviewVerification(ctx context.Context, partnerUserID, status string) error {
	if status != domain.VerificationVerified && status != domain.VerificationRejected {
		return domain.ErrInvalidVerificationState
	}

	profile, err := s.userRepository.GetPartnerProfileByUserID(ctx, partnerUserID)
	if err != nil {
		return domain.ErrPartnerNotFound
	}
	if profile.VerificationStatus != domain.VerificationPending {
		return domain.ErrInvalidVerificationState
	}

	profile.VerificationStatus = status
	return s.userRepository.UpdatePartnerProfile(ctx, profile)
}

func (s *deliveryService) SetAvailability(ctx context.Context, partnerUserID, availability string) error {
	if availability != domain.AvailabilityOnline && availability != domain.AvailabilityOffline {
		return domain.ErrInvalidAvailability
	}
	if err := s.requireVerifiedPartner(ctx, partnerUserID); err != nil {
		return err
	}

	profile, err := s.userRepository.GetPartnerProfileByUserID(ctx, partnerUserID)
	if err != nil {
		return domain.ErrPartnerNotFound
	}
	if profile.Availability == availability {
		return nil
	}

	profile.Availability = availability
	if err := s.userRepository.UpdatePartnerProfile(ctx, profile); err != nil {
		return err
	}

	partner, err := s.userRepository.GetUserByID(ctx, partnerUserID)
	if err != nil {
		return err
	}
	if availability == domain.AvailabilityOnline {
		observability.DeliveryPartnersOnline.Inc()
		return s.presence.SetOnline(ctx, partnerUserID, partner.Latitude, partner.Longitude)
	}
	observability.DeliveryPartnersOnline.Dec()
	return s.presence.SetOffline(ctx, partnerUserID)
}

func (s *deliveryService) requireVerifiedPartner(ctx context.Context, partnerUserID string) error {
	profile, err := s.userRepository.GetPartnerProfileByUserID(ctx, partnerUserID)
	if err != nil {
		return domain.ErrPartnerNotFound
	}
	if profile.VerificationStatus != domain.VerificationVerified {
		return domain.ErrPartnerNotVerified
	}
	return nil
}

func (s *deliveryService) joinClaimConversation(ctx context.Context, claimID, partnerUserID string) error {
	conversation, err := s.deliveryRepository.GetConversationByClaimID(ctx, claimID)
	if err != nil {
		return err
	}

	partnerID, err := uuid.Parse(partnerUserID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if err := s.deliveryRepository.AddConversationParticipant(ctx, &entities.ConversationParticipant{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		UserID:         partnerID,
	}); err != nil {
		return err
	}

	partner, err := s.userRepository.GetUserByID(ctx, partnerUserID)
	if err != nil {
		return err
	}
	return s.deliveryRepository.CreateChatMessage(ctx, &entities.ChatMessage{
		ID:              uuid.New(),
		ConversationID:  conversation.ID,
		Text:            fmt.Sprintf("%s has accepted the delivery job and joined the chat.", partner.Name),
		IsSystemMessage: true,
		SentAt:          time.Now(),
	})
}

func convertJob(claim *entities.Claim) *domain.DeliveryJob {
	job := &domain.DeliveryJob{
		ClaimID:     claim.ID.String(),
		FoodItemID:  claim.FoodItemID.String(),
		Status:      claim.Status,
		RequestedAt: claim.RequestedAt,
	}
	if claim.DeliveryFee != nil {
		job.DeliveryFee = *claim.DeliveryFee
	}
	if claim.FoodItem != nil {
		job.FoodItemTitle = claim.FoodItem.Title
		job.PickupAddress = claim.FoodItem.Address
	}
	if claim.Poster != nil {
		job.PosterName = claim.Poster.Name
	}
	if claim.Claimer != nil {
		job.ClaimerName = claim.Claimer.Name
	}
	return job
}

func convertJobs(claims []*entities.Claim) []*domain.DeliveryJob {
	result := make([]*domain.DeliveryJob, 0, len(claims))
	for _, c := range claims {
		result = append(result, convertJob(c))
	}
	return result
}
