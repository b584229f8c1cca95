package food

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/entities"
)

type nearbyFoodItem struct {
	entities.FoodItem
	Distance float64
}

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, status string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetUserFoodItems(ctx context.Context, userID string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetNearbyFoodItems(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.FoodItem, []float64, error)
		CountItemsByUser(ctx context.Context, userID string) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Poster").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{})

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Poster").
		Offset(offset).Limit(limit).
		Order("posted_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetUserFoodItems(ctx context.Context, userID string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("posted_by = ?", userID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("posted_at desc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetNearbyFoodItems(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.FoodItem, []float64, error) {
	var rows []*nearbyFoodItem

	// PostgreSQL earthdistance extension; radius is in meters on the SQL side.
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM food_items
		WHERE earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		  AND status = 'Available'
		ORDER BY distance asc
	`

	radiusMeters := radiusKm * 1000

	if err := r.db.WithContext(ctx).
		Raw(query, lat, lng, lat, lng, radiusMeters).
		Scan(&rows).Error; err != nil {
		return nil, nil, err
	}

	items := make([]*entities.FoodItem, 0, len(rows))
	distances := make([]float64, 0, len(rows))
	for _, row := range rows {
		item := row.FoodItem
		items = append(items, &item)
		distances = append(distances, row.Distance)
	}

	return items, distances, nil
}

func (r *foodRepository) CountItemsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("posted_by = ?", userID).
		Count(&count).Error
	return count, err
}
