package claim

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/events"
	"nourishnet/pkg/achievement"
)

type fakeClaimRepo struct {
	claims        map[string]*entities.Claim
	items         map[string]*entities.FoodItem
	conversations []*entities.Conversation
	messages      []*entities.ChatMessage
	earnings      map[string]float64
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{
		claims:   map[string]*entities.Claim{},
		items:    map[string]*entities.FoodItem{},
		earnings: map[string]float64{},
	}
}

func (f *fakeClaimRepo) Transaction(ctx context.Context, fn func(tx ClaimRepository) error) error {
	return fn(f)
}

func (f *fakeClaimRepo) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	f.claims[claim.ID.String()] = claim
	return nil
}

func (f *fakeClaimRepo) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	claim.FoodItem = f.items[claim.FoodItemID.String()]
	return claim, nil
}

func (f *fakeClaimRepo) GetClaimsByClaimer(ctx context.Context, claimerID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.ClaimerID.String() == claimerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeClaimRepo) GetClaimsByPoster(ctx context.Context, posterID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.PosterID.String() == posterID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeClaimRepo) GetClaimsByFoodItem(ctx context.Context, foodItemID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, c := range f.claims {
		if c.FoodItemID.String() == foodItemID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeClaimRepo) UpdateClaimStatus(ctx context.Context, claimID, status string) error {
	claim, ok := f.claims[claimID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	claim.Status = status
	return nil
}

func (f *fakeClaimRepo) HasActiveClaimOnItem(ctx context.Context, foodItemID, excludeClaimID string) (bool, error) {
	for _, c := range f.claims {
		if c.ID.String() == excludeClaimID || c.FoodItemID.String() != foodItemID {
			continue
		}
		if c.Status == domain.ClaimStatusAccepted || c.Status == domain.ClaimStatusOutForDelivery {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClaimRepo) HasPendingClaimByUser(ctx context.Context, foodItemID, claimerID string) (bool, error) {
	for _, c := range f.claims {
		if c.FoodItemID.String() == foodItemID && c.ClaimerID.String() == claimerID && c.Status == domain.ClaimStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClaimRepo) CountDeliveredByPoster(ctx context.Context, posterID, excludeClaimID string) (int64, error) {
	var count int64
	for _, c := range f.claims {
		if c.ID.String() == excludeClaimID {
			continue
		}
		if c.PosterID.String() == posterID && c.Status == domain.ClaimStatusDelivered {
			count++
		}
	}
	return count, nil
}

func (f *fakeClaimRepo) UpdateFoodItemStatus(ctx context.Context, foodItemID, status string) error {
	item, ok := f.items[foodItemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Status = status
	return nil
}

func (f *fakeClaimRepo) CreateClaimConversation(ctx context.Context, conversation *entities.Conversation) error {
	for _, existing := range f.conversations {
		if existing.ClaimID != nil && conversation.ClaimID != nil && *existing.ClaimID == *conversation.ClaimID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.conversations = append(f.conversations, conversation)
	return nil
}

func (f *fakeClaimRepo) CreateChatMessage(ctx context.Context, message *entities.ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeClaimRepo) CreditPartnerEarnings(ctx context.Context, partnerUserID string, amount float64) error {
	f.earnings[partnerUserID] += amount
	return nil
}

func (f *fakeClaimRepo) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

type fakeAchievementRepo struct {
	held map[string]bool
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{held: map[string]bool{}}
}

func (f *fakeAchievementRepo) GetAchievements(ctx context.Context) ([]*entities.Achievement, error) {
	return nil, nil
}

func (f *fakeAchievementRepo) GetAchievementByID(ctx context.Context, id string) (*entities.Achievement, error) {
	switch id {
	case domain.AchievementFirstShare, domain.AchievementCommunityPioneer,
		domain.AchievementGoodSamaritan, domain.AchievementGenerousGiver:
		return &entities.Achievement{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAchievementRepo) HasAchievement(ctx context.Context, userID, achievementID string) (bool, error) {
	return f.held[userID+"/"+achievementID], nil
}

func (f *fakeAchievementRepo) CreateUserAchievement(ctx context.Context, ua *entities.UserAchievement) error {
	f.held[ua.UserID.String()+"/"+ua.AchievementID] = true
	return nil
}

func (f *fakeAchievementRepo) GetUserAchievements(ctx context.Context, userID string) ([]*entities.UserAchievement, error) {
	return nil, nil
}

type claimFixture struct {
	service ClaimService
	repo    *fakeClaimRepo
	badges  *fakeAchievementRepo
	poster  uuid.UUID
	claimer uuid.UUID
	partner uuid.UUID
	itemID  uuid.UUID
}

func newClaimFixture() *claimFixture {
	repo := newFakeClaimRepo()
	badges := newFakeAchievementRepo()

	fx := &claimFixture{
		repo:    repo,
		badges:  badges,
		poster:  uuid.New(),
		claimer: uuid.New(),
		partner: uuid.New(),
		itemID:  uuid.New(),
	}
	repo.items[fx.itemID.String()] = &entities.FoodItem{
		ID:       fx.itemID,
		PostedBy: fx.poster,
		Title:    "Sourdough loaves",
		Status:   domain.FoodStatusAvailable,
	}
	fx.service = NewClaimService(repo, repo, achievement.NewAchievementService(badges), events.NopProducer{})
	return fx
}

func (fx *claimFixture) createClaim(t *testing.T, option string) *domain.Claim {
	t.Helper()
	claim, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "would love this for the week",
		DeliveryOption: option,
	}, fx.claimer.String())
	require.NoError(t, err)
	return claim
}

func TestCreateClaimOwnItemRejected(t *testing.T) {
	fx := newClaimFixture()

	_, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "mine anyway",
		DeliveryOption: domain.DeliveryOptionClaimerPickup,
	}, fx.poster.String())

	assert.ErrorIs(t, err, domain.ErrClaimOwnItem)
}

func TestCreateClaimCollectedItemRejected(t *testing.T) {
	fx := newClaimFixture()
	fx.repo.items[fx.itemID.String()].Status = domain.FoodStatusCollected

	_, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "too late",
		DeliveryOption: domain.DeliveryOptionClaimerPickup,
	}, fx.claimer.String())

	assert.ErrorIs(t, err, domain.ErrFoodItemUnavailable)
}

func TestCreateClaimDuplicatePendingRejected(t *testing.T) {
	fx := newClaimFixture()
	fx.createClaim(t, domain.DeliveryOptionClaimerPickup)

	_, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "asking twice",
		DeliveryOption: domain.DeliveryOptionClaimerPickup,
	}, fx.claimer.String())

	assert.ErrorIs(t, err, domain.ErrClaimAlreadyExists)
}

func TestCreateClaimPlatformDeliveryFee(t *testing.T) {
	fx := newClaimFixture()

	claim := fx.createClaim(t, domain.DeliveryOptionPlatformDelivery)
	require.NotNil(t, claim.DeliveryFee)
	assert.Equal(t, domain.PLATFORM_DELIVERY_FEE, *claim.DeliveryFee)

	stored := fx.repo.claims[claim.ID]
	require.NotNil(t, stored.DeliveryFee)
	assert.Equal(t, domain.PLATFORM_DELIVERY_FEE, *stored.DeliveryFee)
}

func TestCreateClaimPickupHasNoFee(t *testing.T) {
	fx := newClaimFixture()

	claim := fx.createClaim(t, domain.DeliveryOptionClaimerPickup)
	assert.Nil(t, claim.DeliveryFee)
}

func TestAcceptReservesItemAndOpensConversation(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionMeetup)

	res, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusAccepted, fx.poster.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusReserved, fx.repo.items[fx.itemID.String()].Status)
	assert.NotEmpty(t, res.ConversationID)

	require.Len(t, fx.repo.conversations, 1)
	conversation := fx.repo.conversations[0]
	require.Len(t, conversation.Participants, 2)
	participantIDs := []uuid.UUID{conversation.Participants[0].UserID, conversation.Participants[1].UserID}
	assert.Contains(t, participantIDs, fx.poster)
	assert.Contains(t, participantIDs, fx.claimer)

	require.Len(t, fx.repo.messages, 1)
	assert.True(t, fx.repo.messages[0].IsSystemMessage)
	assert.Nil(t, fx.repo.messages[0].SenderID)
}

func TestAcceptByClaimerForbidden(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionMeetup)

	_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusAccepted, fx.claimer.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedClaimAccess)
}

func TestRejectReleasesItemWhenNoActiveClaim(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionMeetup)

	_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusRejected, fx.poster.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusAvailable, fx.repo.items[fx.itemID.String()].Status)
}

func TestRejectKeepsItemReservedWhileAnotherClaimHoldsIt(t *testing.T) {
	fx := newClaimFixture()
	accepted := fx.createClaim(t, domain.DeliveryOptionMeetup)
	_, err := fx.service.UpdateClaimStatus(context.Background(), accepted.ID, domain.ClaimStatusAccepted, fx.poster.String())
	require.NoError(t, err)

	otherClaimer := uuid.New()
	pending, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "second in line",
		DeliveryOption: domain.DeliveryOptionClaimerPickup,
	}, otherClaimer.String())
	require.NoError(t, err)

	_, err = fx.service.UpdateClaimStatus(context.Background(), pending.ID, domain.ClaimStatusRejected, fx.poster.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusReserved, fx.repo.items[fx.itemID.String()].Status)
}

func TestDeliveredCollectsItemCreditsPartnerAndAwardsBadge(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionPlatformDelivery)

	_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusAccepted, fx.poster.String())
	require.NoError(t, err)

	// platform partner picks up the job
	fx.repo.claims[claim.ID].DeliveryPartnerID = &fx.partner

	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusOutForDelivery, fx.partner.String())
	require.NoError(t, err)

	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusDelivered, fx.partner.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusCollected, fx.repo.items[fx.itemID.String()].Status)
	assert.Equal(t, domain.PLATFORM_DELIVERY_FEE, fx.repo.earnings[fx.partner.String()])
	assert.True(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementCommunityPioneer])
}

func TestDeliveryFailedReleasesItem(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionDonorDelivery)

	_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusAccepted, fx.poster.String())
	require.NoError(t, err)
	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusOutForDelivery, fx.poster.String())
	require.NoError(t, err)
	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusDeliveryFailed, fx.poster.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusAvailable, fx.repo.items[fx.itemID.String()].Status)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionMeetup)

	// skipping Accepted entirely
	_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusDelivered, fx.poster.String())
	assert.ErrorIs(t, err, domain.ErrInvalidClaimTransition)

	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusRejected, fx.poster.String())
	require.NoError(t, err)

	// Rejected is terminal
	_, err = fx.service.UpdateClaimStatus(context.Background(), claim.ID, domain.ClaimStatusAccepted, fx.poster.String())
	assert.ErrorIs(t, err, domain.ErrInvalidClaimTransition)
}

func TestDeliveredIsTerminal(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.createClaim(t, domain.DeliveryOptionMeetup)

	for _, status := range []string{domain.ClaimStatusAccepted, domain.ClaimStatusOutForDelivery, domain.ClaimStatusDelivered} {
		_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, status, fx.poster.String())
		require.NoError(t, err)
	}

	for _, status := range []string{
		domain.ClaimStatusAccepted, domain.ClaimStatusRejected,
		domain.ClaimStatusOutForDelivery, domain.ClaimStatusDeliveryFailed,
	} {
		_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID, status, fx.poster.String())
		assert.ErrorIs(t, err, domain.ErrInvalidClaimTransition)
	}
}

func TestMilestoneBadgesAtFifthAndTenthDelivery(t *testing.T) {
	fx := newClaimFixture()

	deliver := func(n int) {
		for i := 0; i < n; i++ {
			itemID := uuid.New()
			fx.repo.items[itemID.String()] = &entities.FoodItem{
				ID:       itemID,
				PostedBy: fx.poster,
				Status:   domain.FoodStatusAvailable,
			}
			claim := &entities.Claim{
				ID:          uuid.New(),
				FoodItemID:  itemID,
				ClaimerID:   fx.claimer,
				PosterID:    fx.poster,
				Status:      domain.ClaimStatusOutForDelivery,
				RequestedAt: time.Now(),
			}
			fx.repo.claims[claim.ID.String()] = claim
			_, err := fx.service.UpdateClaimStatus(context.Background(), claim.ID.String(), domain.ClaimStatusDelivered, fx.poster.String())
			require.NoError(t, err)
		}
	}

	deliver(4)
	assert.True(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementCommunityPioneer])
	assert.False(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementGoodSamaritan])

	deliver(1)
	assert.True(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementGoodSamaritan])
	assert.False(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementGenerousGiver])

	deliver(5)
	assert.True(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementGenerousGiver])
}

func TestClaimLifecycleEndToEnd(t *testing.T) {
	fx := newClaimFixture()

	winner := fx.createClaim(t, domain.DeliveryOptionClaimerPickup)

	rivalClaimer := uuid.New()
	rival, err := fx.service.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodItemID:     fx.itemID.String(),
		Reason:         "could pick it up tonight",
		DeliveryOption: domain.DeliveryOptionClaimerPickup,
	}, rivalClaimer.String())
	require.NoError(t, err)

	_, err = fx.service.UpdateClaimStatus(context.Background(), winner.ID, domain.ClaimStatusAccepted, fx.poster.String())
	require.NoError(t, err)
	assert.Equal(t, domain.FoodStatusReserved, fx.repo.items[fx.itemID.String()].Status)

	_, err = fx.service.UpdateClaimStatus(context.Background(), rival.ID, domain.ClaimStatusRejected, fx.poster.String())
	require.NoError(t, err)
	assert.Equal(t, domain.FoodStatusReserved, fx.repo.items[fx.itemID.String()].Status)
	assert.Equal(t, domain.ClaimStatusRejected, fx.repo.claims[rival.ID].Status)

	_, err = fx.service.UpdateClaimStatus(context.Background(), winner.ID, domain.ClaimStatusOutForDelivery, fx.poster.String())
	require.NoError(t, err)
	_, err = fx.service.UpdateClaimStatus(context.Background(), winner.ID, domain.ClaimStatusDelivered, fx.poster.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FoodStatusCollected, fx.repo.items[fx.itemID.String()].Status)
	assert.Equal(t, domain.ClaimStatusDelivered, fx.repo.claims[winner.ID].Status)
	assert.True(t, fx.badges.held[fx.poster.String()+"/"+domain.AchievementCommunityPioneer])
}
