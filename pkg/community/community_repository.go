package community

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/entities"
)

type (
	CommunityRepository interface {
		AddPost(ctx context.Context, post *entities.CommunityPost) error
		GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error)
		GetPosts(ctx context.Context, page, limit int) ([]*entities.CommunityPost, int64, error)
		IncrementLikes(ctx context.Context, id string) error
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) AddPost(ctx context.Context, post *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityRepository) GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error) {
	var post entities.CommunityPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) GetPosts(ctx context.Context, page, limit int) ([]*entities.CommunityPost, int64, error) {
	var posts []*entities.CommunityPost
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.CommunityPost{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, count, nil
}

func (r *communityRepository) IncrementLikes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.CommunityPost{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1")).Error
}
