package food

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/utils/genai"
	"nourishnet/internal/utils/storage"
	"nourishnet/pkg/achievement"
)

type (
	FoodService interface {
		PostFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, status string, page, limit int) ([]*domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string) (*domain.FoodItemResponse, error)
		GetUserFoodItems(ctx context.Context, userID string, page, limit int) ([]*domain.FoodItemResponse, int64, error)
		GetNearbyFoodItems(ctx context.Context, req domain.GetNearbyFoodItemsRequest) ([]*domain.FoodItemResponse, error)
		GenerateDescription(ctx context.Context, req domain.GenerateDescriptionRequest) (*domain.GenerateDescriptionResponse, error)
	}

	foodService struct {
		foodRepository     FoodRepository
		achievementService achievement.AchievementService
		s3                 storage.AwsS3
		descriptions       genai.DescriptionGenerator
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	achievementService achievement.AchievementService,
	s3 storage.AwsS3,
	descriptions genai.DescriptionGenerator,
) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		achievementService: achievementService,
		s3:                 s3,
		descriptions:       descriptions,
	}
}

func (s *foodService) PostFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error) {
	posterID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	imageURL := ""
	if req.Image != nil {
		key := fmt.Sprintf("food-%s", uuid.New().String())
		objectKey, err := s.s3.UploadFile(key, req.Image, "food-items", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	priorPosts, err := s.foodRepository.CountItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		PostedBy:    posterID,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		ImageURL:    imageURL,
		Status:      domain.FoodStatusAvailable,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		PostedAt:    time.Now(),
		ExpiresAt:   expiresAt,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}

	if err := s.achievementService.EvaluateFirstPost(ctx, userID, priorPosts); err != nil {
		return nil, err
	}

	return convertFoodItem(foodItem), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, status string, page, limit int) ([]*domain.FoodItemResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		result = append(result, convertFoodItem(item))
	}

	return result, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (*domain.FoodItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		return nil, domain.ErrFoodItemNotFound
	}

	return convertFoodItem(foodItem), nil
}

func (s *foodService) GetUserFoodItems(ctx context.Context, userID string, page, limit int) ([]*domain.FoodItemResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	foodItems, count, err := s.foodRepository.GetUserFoodItems(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		result = append(result, convertFoodItem(item))
	}

	return result, count, nil
}

func (s *foodService) GetNearbyFoodItems(ctx context.Context, req domain.GetNearbyFoodItemsRequest) ([]*domain.FoodItemResponse, error) {
	foodItems, distances, err := s.foodRepository.GetNearbyFoodItems(ctx, req.Latitude, req.Longitude, req.Radius)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodItemResponse, 0, len(foodItems))
	for i, item := range foodItems {
		converted := convertFoodItem(item)
		converted.Distance = distances[i]
		result = append(result, converted)
	}

	return result, nil
}

func (s *foodService) GenerateDescription(ctx context.Context, req domain.GenerateDescriptionRequest) (*domain.GenerateDescriptionResponse, error) {
	return &domain.GenerateDescriptionResponse{
		Description: s.descriptions.GenerateFoodDescription(ctx, req.Title),
	}, nil
}

func convertFoodItem(foodItem *entities.FoodItem) *domain.FoodItemResponse {
	response := &domain.FoodItemResponse{
		ID:          foodItem.ID.String(),
		PostedBy:    foodItem.PostedBy.String(),
		Title:       foodItem.Title,
		Description: foodItem.Description,
		Quantity:    foodItem.Quantity,
		ImageURL:    foodItem.ImageURL,
		Status:      foodItem.Status,
		Latitude:    foodItem.Latitude,
		Longitude:   foodItem.Longitude,
		Address:     foodItem.Address,
		PostedAt:    foodItem.PostedAt,
		ExpiresAt:   foodItem.ExpiresAt,
	}
	if foodItem.Poster != nil {
		response.PosterName = foodItem.Poster.Name
	}
	return response
}
