package food

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/utils/genai"
	"nourishnet/pkg/achievement"
)

type fakeFoodRepo struct {
	items map[string]*entities.FoodItem
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{items: map[string]*entities.FoodItem{}}
}

func (f *fakeFoodRepo) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	f.items[foodItem.ID.String()] = foodItem
	return nil
}

func (f *fakeFoodRepo) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeFoodRepo) GetFoodItems(ctx context.Context, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if status == "all" || status == "" || item.Status == status {
			result = append(result, item)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeFoodRepo) GetUserFoodItems(ctx context.Context, userID string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if item.PostedBy.String() == userID {
			result = append(result, item)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeFoodRepo) GetNearbyFoodItems(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.FoodItem, []float64, error) {
	return nil, nil, nil
}

func (f *fakeFoodRepo) CountItemsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.PostedBy.String() == userID {
			count++
		}
	}
	return count, nil
}

type fakeBadgeRepo struct {
	awarded []string
}

func (f *fakeBadgeRepo) GetAchievements(ctx context.Context) ([]*entities.Achievement, error) {
	return nil, nil
}

func (f *fakeBadgeRepo) GetAchievementByID(ctx context.Context, id string) (*entities.Achievement, error) {
	return &entities.Achievement{ID: id}, nil
}

func (f *fakeBadgeRepo) HasAchievement(ctx context.Context, userID, achievementID string) (bool, error) {
	for _, a := range f.awarded {
		if a == achievementID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBadgeRepo) CreateUserAchievement(ctx context.Context, ua *entities.UserAchievement) error {
	f.awarded = append(f.awarded, ua.AchievementID)
	return nil
}

func (f *fakeBadgeRepo) GetUserAchievements(ctx context.Context, userID string) ([]*entities.UserAchievement, error) {
	return nil, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(filename string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return dir + "/" + filename, nil
}

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

type cannedGenerator struct{ text string }

func (g cannedGenerator) GenerateFoodDescription(ctx context.Context, title string) string {
	return g.text
}

func newFoodService(repo *fakeFoodRepo, badges *fakeBadgeRepo, gen genai.DescriptionGenerator) FoodService {
	return NewFoodService(repo, achievement.NewAchievementService(badges), fakeS3{}, gen)
}

func TestPostFoodItemAwardsFirstShareOnce(t *testing.T) {
	repo := newFakeFoodRepo()
	badges := &fakeBadgeRepo{}
	service := newFoodService(repo, badges, cannedGenerator{})
	posterID := uuid.New().String()

	req := domain.AddFoodItemRequest{
		Title:       "Garden tomatoes",
		Description: "a full basket",
		Quantity:    "2 kg",
		ExpiresAt:   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Latitude:    52.52,
		Longitude:   13.405,
		Address:     "Prenzlauer Berg",
	}

	first, err := service.PostFoodItem(context.Background(), req, posterID)
	require.NoError(t, err)
	assert.Equal(t, domain.FoodStatusAvailable, first.Status)
	assert.Equal(t, []string{domain.AchievementFirstShare}, badges.awarded)

	_, err = service.PostFoodItem(context.Background(), req, posterID)
	require.NoError(t, err)
	assert.Len(t, badges.awarded, 1)
}

func TestPostFoodItemInvalidExpiry(t *testing.T) {
	service := newFoodService(newFakeFoodRepo(), &fakeBadgeRepo{}, cannedGenerator{})

	_, err := service.PostFoodItem(context.Background(), domain.AddFoodItemRequest{
		Title:       "Leftover stew",
		Description: "hearty",
		Quantity:    "1 pot",
		ExpiresAt:   "tomorrow-ish",
		Address:     "somewhere",
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestGenerateDescriptionPassesThroughGenerator(t *testing.T) {
	service := newFoodService(newFakeFoodRepo(), &fakeBadgeRepo{}, cannedGenerator{text: "Fresh and ready for pickup."})

	res, err := service.GenerateDescription(context.Background(), domain.GenerateDescriptionRequest{Title: "Bread"})
	require.NoError(t, err)
	assert.Equal(t, "Fresh and ready for pickup.", res.Description)
}

func TestGenerateDescriptionFallback(t *testing.T) {
	service := newFoodService(newFakeFoodRepo(), &fakeBadgeRepo{}, cannedGenerator{text: genai.FallbackDescription})

	res, err := service.GenerateDescription(context.Background(), domain.GenerateDescriptionRequest{Title: "Bread"})
	require.NoError(t, err)
	assert.Equal(t, genai.FallbackDescription, res.Description)
}
