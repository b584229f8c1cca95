package delivery

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/pkg/user"
)

type fakeDeliveryRepo struct {
	claims        map[string]*entities.Claim
	conversations map[string]*entities.Conversation
	participants  []*entities.ConversationParticipant
	messages      []*entities.ChatMessage
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{
		claims:        map[string]*entities.Claim{},
		conversations: map[string]*entities.Conversation{},
	}
}

func (f *fakeDeliveryRepo) GetAvailableJobs(ctx context.Context) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.Status == domain.ClaimStatusAccepted &&
			c.DeliveryOption == domain.DeliveryOptionPlatformDelivery &&
			c.DeliveryPartnerID == nil {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeDeliveryRepo) GetPartnerActiveJobs(ctx context.Context, partnerUserID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.DeliveryPartnerID != nil && c.DeliveryPartnerID.String() == partnerUserID &&
			(c.Status == domain.ClaimStatusAccepted || c.Status == domain.ClaimStatusOutForDelivery) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeDeliveryRepo) GetPartnerJobHistory(ctx context.Context, partnerUserID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.DeliveryPartnerID != nil && c.DeliveryPartnerID.String() == partnerUserID &&
			c.Status != domain.ClaimStatusAccepted && c.Status != domain.ClaimStatusOutForDelivery {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeDeliveryRepo) AssignPartner(ctx context.Context, claimID, partnerUserID string) (bool, error) {
	claim, ok := f.claims[claimID]
	if !ok {
		return false, nil
	}
	if claim.DeliveryPartnerID != nil || claim.Status != domain.ClaimStatusAccepted ||
		claim.DeliveryOption != domain.DeliveryOptionPlatformDelivery {
		return false, nil
	}
	partnerID := uuid.MustParse(partnerUserID)
	claim.DeliveryPartnerID = &partnerID
	return true, nil
}

func (f *fakeDeliveryRepo) GetClaimByID(ctx context.Context, claimID string) (*entities.Claim, error) {
	claim, ok := f.claims[claimID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return claim, nil
}

func (f *fakeDeliveryRepo) GetConversationByClaimID(ctx context.Context, claimID string) (*entities.Conversation, error) {
	conversation, ok := f.conversations[claimID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return conversation, nil
}

func (f *fakeDeliveryRepo) AddConversationParticipant(ctx context.Context, participant *entities.ConversationParticipant) error {
	f.participants = append(f.participants, participant)
	return nil
}

func (f *fakeDeliveryRepo) CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

// fakeUserRepo stubs only the lookups the delivery flow touches.
type fakeUserRepo struct {
	user.UserRepository
	users    map[string]*entities.User
	profiles map[string]*entities.DeliveryPartnerProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*entities.User{},
		profiles: map[string]*entities.DeliveryPartnerProfile{},
	}
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetPartnerProfileByUserID(ctx context.Context, userID string) (*entities.DeliveryPartnerProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) UpdatePartnerProfile(ctx context.Context, profile *entities.DeliveryPartnerProfile) error {
	f.profiles[profile.UserID.String()] = profile
	return nil
}

type recordingPresence struct {
	online map[string]bool
}

func (r *recordingPresence) SetOnline(ctx context.Context, partnerUserID string, lat, lng float64) error {
	r.online[partnerUserID] = true
	return nil
}

func (r *recordingPresence) SetOffline(ctx context.Context, partnerUserID string) error {
	delete(r.online, partnerUserID)
	return nil
}

func (r *recordingPresence) OnlineCount(ctx context.Context) (int64, error) {
	return int64(len(r.online)), nil
}

type deliveryFixture struct {
	service  DeliveryService
	repo     *fakeDeliveryRepo
	users    *fakeUserRepo
	presence *recordingPresence
	partner  uuid.UUID
}

func newDeliveryFixture() *deliveryFixture {
	repo := newFakeDeliveryRepo()
	users := newFakeUserRepo()
	presence := &recordingPresence{online: map[string]bool{}}

	partner := uuid.New()
	users.users[partner.String()] = &entities.User{ID: partner, Name: "Pat", Role: domain.RoleDeliveryPartner}
	users.profiles[partner.String()] = &entities.DeliveryPartnerProfile{
		ID:                 uuid.New(),
		UserID:             partner,
		VerificationStatus: domain.VerificationVerified,
		Availability:       domain.AvailabilityOffline,
	}

	return &deliveryFixture{
		service:  NewDeliveryService(repo, users, presence, nil),
		repo:     repo,
		users:    users,
		presence: presence,
		partner:  partner,
	}
}

func (fx *deliveryFixture) addJob() *entities.Claim {
	claimID := uuid.New()
	claim := &entities.Claim{
		ID:             claimID,
		FoodItemID:     uuid.New(),
		ClaimerID:      uuid.New(),
		PosterID:       uuid.New(),
		Status:         domain.ClaimStatusAccepted,
		DeliveryOption: domain.DeliveryOptionPlatformDelivery,
	}
	fx.repo.claims[claimID.String()] = claim
	fx.repo.conversations[claimID.String()] = &entities.Conversation{ID: uuid.New(), ClaimID: &claimID}
	return claim
}

func TestAcceptJobAssignsPartnerAndJoinsChat(t *testing.T) {
	fx := newDeliveryFixture()
	job := fx.addJob()

	res, err := fx.service.AcceptJob(context.Background(), job.ID.String(), fx.partner.String())
	require.NoError(t, err)
	assert.Equal(t, job.ID.String(), res.ClaimID)

	require.NotNil(t, job.DeliveryPartnerID)
	assert.Equal(t, fx.partner, *job.DeliveryPartnerID)

	require.Len(t, fx.repo.participants, 1)
	assert.Equal(t, fx.partner, fx.repo.participants[0].UserID)

	require.Len(t, fx.repo.messages, 1)
	assert.True(t, fx.repo.messages[0].IsSystemMessage)
	assert.Equal(t, fmt.Sprintf("%s has accepted the delivery job and joined the chat.", "Pat"), fx.repo.messages[0].Text)
}

func TestAcceptJobSecondPartnerGetsConflict(t *testing.T) {
	fx := newDeliveryFixture()
	job := fx.addJob()

	rival := uuid.New()
	fx.users.users[rival.String()] = &entities.User{ID: rival, Name: "Riley"}
	fx.users.profiles[rival.String()] = &entities.DeliveryPartnerProfile{
		ID:                 uuid.New(),
		UserID:             rival,
		VerificationStatus: domain.VerificationVerified,
	}

	_, err := fx.service.AcceptJob(context.Background(), job.ID.String(), fx.partner.String())
	require.NoError(t, err)

	_, err = fx.service.AcceptJob(context.Background(), job.ID.String(), rival.String())
	assert.ErrorIs(t, err, domain.ErrDeliveryJobTaken)
	assert.Equal(t, fx.partner, *job.DeliveryPartnerID)
}

func TestAcceptJobUnverifiedPartnerForbidden(t *testing.T) {
	fx := newDeliveryFixture()
	job := fx.addJob()
	fx.users.profiles[fx.partner.String()].VerificationStatus = domain.VerificationPending

	_, err := fx.service.AcceptJob(context.Background(), job.ID.String(), fx.partner.String())
	assert.ErrorIs(t, err, domain.ErrPartnerNotVerified)
	assert.Nil(t, job.DeliveryPartnerID)
}

func TestAvailableAndPartnerJobsArePartitioned(t *testing.T) {
	fx := newDeliveryFixture()
	open := fx.addJob()

	taken := fx.addJob()
	_, err := fx.service.AcceptJob(context.Background(), taken.ID.String(), fx.partner.String())
	require.NoError(t, err)

	done := fx.addJob()
	_, err = fx.service.AcceptJob(context.Background(), done.ID.String(), fx.partner.String())
	require.NoError(t, err)
	done.Status = domain.ClaimStatusDelivered

	available, err := fx.service.GetAvailableJobs(context.Background(), fx.partner.String())
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, open.ID.String(), available[0].ClaimID)

	mine, err := fx.service.GetPartnerJobs(context.Background(), fx.partner.String())
	require.NoError(t, err)
	require.Len(t, mine.Active, 1)
	assert.Equal(t, taken.ID.String(), mine.Active[0].ClaimID)
	require.Len(t, mine.History, 1)
	assert.Equal(t, done.ID.String(), mine.History[0].ClaimID)
}

func TestSetAvailabilityTracksPresence(t *testing.T) {
	fx := newDeliveryFixture()

	require.NoError(t, fx.service.SetAvailability(context.Background(), fx.partner.String(), domain.AvailabilityOnline))
	assert.True(t, fx.presence.online[fx.partner.String()])
	assert.Equal(t, domain.AvailabilityOnline, fx.users.profiles[fx.partner.String()].Availability)

	require.NoError(t, fx.service.SetAvailability(context.Background(), fx.partner.String(), domain.AvailabilityOffline))
	assert.False(t, fx.presence.online[fx.partner.String()])

	err := fx.service.SetAvailability(context.Background(), fx.partner.String(), "Sometimes")
	assert.ErrorIs(t, err, domain.ErrInvalidAvailability)
}

func TestReviewVerification(t *testing.T) {
	fx := newDeliveryFixture()
	profile := fx.users.profiles[fx.partner.String()]
	profile.VerificationStatus = domain.VerificationPending

	require.NoError(t, fx.service.ReviewVerification(context.Background(), fx.partner.String(), domain.VerificationVerified))
	assert.Equal(t, domain.VerificationVerified, profile.VerificationStatus)

	// already resolved
	err := fx.service.ReviewVerification(context.Background(), fx.partner.String(), domain.VerificationRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidVerificationState)
}
