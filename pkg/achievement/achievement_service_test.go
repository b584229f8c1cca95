package achievement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
)

type fakeAchievementRepo struct {
	catalog map[string]*entities.Achievement
	awarded []*entities.UserAchievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	repo := &fakeAchievementRepo{catalog: map[string]*entities.Achievement{}}
	for _, id := range []string{
		domain.AchievementFirstShare,
		domain.AchievementCommunityPioneer,
		domain.AchievementGoodSamaritan,
		domain.AchievementGenerousGiver,
	} {
		repo.catalog[id] = &entities.Achievement{ID: id}
	}
	return repo
}

func (f *fakeAchievementRepo) GetAchievements(ctx context.Context) ([]*entities.Achievement, error) {
	var result []*entities.Achievement
	for _, a := range f.catalog {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAchievementRepo) GetAchievementByID(ctx context.Context, id string) (*entities.Achievement, error) {
	a, ok := f.catalog[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeAchievementRepo) HasAchievement(ctx context.Context, userID, achievementID string) (bool, error) {
	for _, ua := range f.awarded {
		if ua.UserID.String() == userID && ua.AchievementID == achievementID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAchievementRepo) CreateUserAchievement(ctx context.Context, ua *entities.UserAchievement) error {
	f.awarded = append(f.awarded, ua)
	return nil
}

func (f *fakeAchievementRepo) GetUserAchievements(ctx context.Context, userID string) ([]*entities.UserAchievement, error) {
	var result []*entities.UserAchievement
	for _, ua := range f.awarded {
		if ua.UserID.String() == userID {
			result = append(result, ua)
		}
	}
	return result, nil
}

func (f *fakeAchievementRepo) countFor(userID string) int {
	n := 0
	for _, ua := range f.awarded {
		if ua.UserID.String() == userID {
			n++
		}
	}
	return n
}

func TestAwardIsIdempotent(t *testing.T) {
	repo := newFakeAchievementRepo()
	service := NewAchievementService(repo)
	userID := uuid.New().String()

	require.NoError(t, service.Award(context.Background(), userID, domain.AchievementFirstShare))
	require.NoError(t, service.Award(context.Background(), userID, domain.AchievementFirstShare))

	assert.Equal(t, 1, repo.countFor(userID))
}

func TestAwardUnknownBadge(t *testing.T) {
	service := NewAchievementService(newFakeAchievementRepo())

	err := service.Award(context.Background(), uuid.New().String(), "midnight-snacker")
	assert.ErrorIs(t, err, domain.ErrAchievementNotFound)
}

func TestEvaluateFirstPost(t *testing.T) {
	repo := newFakeAchievementRepo()
	service := NewAchievementService(repo)
	userID := uuid.New().String()

	require.NoError(t, service.EvaluateFirstPost(context.Background(), userID, 3))
	assert.Equal(t, 0, repo.countFor(userID))

	require.NoError(t, service.EvaluateFirstPost(context.Background(), userID, 0))
	assert.Equal(t, 1, repo.countFor(userID))
	assert.Equal(t, domain.AchievementFirstShare, repo.awarded[0].AchievementID)
}

func TestEvaluateDeliveryMilestones(t *testing.T) {
	repo := newFakeAchievementRepo()
	service := NewAchievementService(repo)
	userID := uuid.New().String()

	cases := map[int64]string{
		0: domain.AchievementCommunityPioneer,
		4: domain.AchievementGoodSamaritan,
		9: domain.AchievementGenerousGiver,
	}
	for prior, want := range cases {
		before := repo.countFor(userID)
		require.NoError(t, service.EvaluateDeliveryMilestones(context.Background(), userID, prior))
		require.Equal(t, before+1, repo.countFor(userID))
		assert.Equal(t, want, repo.awarded[len(repo.awarded)-1].AchievementID)
	}

	// in-between counts award nothing
	for _, prior := range []int64{1, 2, 3, 5, 8, 10, 42} {
		before := repo.countFor(userID)
		require.NoError(t, service.EvaluateDeliveryMilestones(context.Background(), userID, prior))
		assert.Equal(t, before, repo.countFor(userID))
	}
}
