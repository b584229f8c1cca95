package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nourishnet/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
		GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		UpdateUserRole(ctx context.Context, id string, role string) error
		MarkEmailVerified(ctx context.Context, id string) error

		// Social graph
		GetFollow(ctx context.Context, followerID, followingID string) (*entities.UserFollow, error)
		CreateFollow(ctx context.Context, follow *entities.UserFollow) error
		DeleteFollow(ctx context.Context, followerID, followingID string) error
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)

		// Delivery partner profile
		GetPartnerProfileByUserID(ctx context.Context, userID string) (*entities.DeliveryPartnerProfile, error)
		CreatePartnerProfile(ctx context.Context, profile *entities.DeliveryPartnerProfile) error
		UpdatePartnerProfile(ctx context.Context, profile *entities.DeliveryPartnerProfile) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("DeliveryPartner").
		Preload("Achievements.Achievement").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("DeliveryPartner").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) UpdateUserRole(ctx context.Context, id string, role string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"role": role}).Error
}

func (r *userRepository) MarkEmailVerified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_verified": true}).Error
}

func (r *userRepository) GetFollow(ctx context.Context, followerID, followingID string) (*entities.UserFollow, error) {
	var follow entities.UserFollow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *userRepository) CreateFollow(ctx context.Context, follow *entities.UserFollow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *userRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.UserFollow{}).Error
}

func (r *userRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) GetPartnerProfileByUserID(ctx context.Context, userID string) (*entities.DeliveryPartnerProfile, error) {
	var profile entities.DeliveryPartnerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) CreatePartnerProfile(ctx context.Context, profile *entities.DeliveryPartnerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *userRepository) UpdatePartnerProfile(ctx context.Context, profile *entities.DeliveryPartnerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
