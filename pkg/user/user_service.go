package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/utils/mailing"
	"nourishnet/internal/utils/storage"
	"nourishnet/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		GetProfile(ctx context.Context, userID string) (*domain.UserResponse, error)
		ToggleFollow(ctx context.Context, followerID, followingID string) (*domain.ToggleFollowResponse, error)
		GetUsers(ctx context.Context, page, limit int) ([]*domain.UserResponse, int64, error)
		UpdateUserRole(ctx context.Context, userID string, role string) error
		RemoveUser(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/100", req.Name),
		Role:      domain.RoleApplicant,
		Bio:       "A new member of the NourishNet community!",
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Best effort: registration succeeds even when the mail provider is down.
	_ = s.SendVerificationEmail(ctx, user.Email)

	return &domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenVerifyEmail(
		map[string]any{"user_id": user.ID.String()},
		24*time.Hour,
	)
	if err != nil {
		return err
	}

	return mailing.SendVerificationMail(user.Email, user.Name, token)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	return s.userRepository.MarkEmailVerified(ctx, userID)
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	return s.GetProfile(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Latitude != nil {
		user.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = *req.Longitude
	}
	if req.SocialLinks != nil {
		encoded, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return err
		}
		user.SocialLinks = string(encoded)
	}

	if req.Avatar != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("avatar-%s", user.ID.String()),
			req.Avatar,
			"avatars",
			storage.AllowImage...,
		)
		if err != nil {
			return err
		}
		user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.userRepository.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.userRepository.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return convertUser(user, followers, following), nil
}

func (s *userService) ToggleFollow(ctx context.Context, followerID, followingID string) (*domain.ToggleFollowResponse, error) {
	if followerID == followingID {
		return nil, domain.ErrFollowSelf
	}

	if _, err := s.userRepository.GetUserByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	_, err := s.userRepository.GetFollow(ctx, followerID, followingID)
	if err == nil {
		if err := s.userRepository.DeleteFollow(ctx, followerID, followingID); err != nil {
			return nil, err
		}
		return &domain.ToggleFollowResponse{Following: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	follow := &entities.UserFollow{
		ID:          uuid.New(),
		FollowerID:  followerUUID,
		FollowingID: followingUUID,
	}
	if err := s.userRepository.CreateFollow(ctx, follow); err != nil {
		return nil, err
	}

	return &domain.ToggleFollowResponse{Following: true}, nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]*domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, convertUser(user, 0, 0))
	}

	return result, count, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID string, role string) error {
	switch role {
	case domain.RoleAdmin, domain.RoleVerifiedMember, domain.RoleApplicant, domain.RoleDeliveryPartner:
	default:
		return domain.ErrInvalidRole
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	// Promoting to delivery partner creates the profile shell so the user can
	// submit verification documents later.
	if role == domain.RoleDeliveryPartner && user.DeliveryPartner == nil {
		profile := &entities.DeliveryPartnerProfile{
			ID:                 uuid.New(),
			UserID:             user.ID,
			VerificationStatus: domain.VerificationNotSubmitted,
			Availability:       domain.AvailabilityOffline,
		}
		if err := s.userRepository.CreatePartnerProfile(ctx, profile); err != nil {
			return err
		}
	}

	return s.userRepository.UpdateUserRole(ctx, userID, role)
}

func (s *userService) RemoveUser(ctx context.Context, userID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, userID)
}

func convertUser(user *entities.User, followers, following int64) *domain.UserResponse {
	res := &domain.UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		AvatarURL:      user.AvatarURL,
		Role:           user.Role,
		Rating:         user.Rating,
		Bio:            user.Bio,
		Latitude:       user.Latitude,
		Longitude:      user.Longitude,
		IsVerified:     user.IsVerified,
		FollowerCount:  followers,
		FollowingCount: following,
		CreatedAt:      user.CreatedAt,
	}

	if user.SocialLinks != "" {
		links := map[string]string{}
		if err := json.Unmarshal([]byte(user.SocialLinks), &links); err == nil {
			res.SocialLinks = links
		}
	}

	for _, ua := range user.Achievements {
		entry := &domain.UserAchievement{
			AchievementID: ua.AchievementID,
			UnlockedAt:    ua.UnlockedAt,
		}
		if ua.Achievement != nil {
			entry.Title = ua.Achievement.Title
			entry.Description = ua.Achievement.Description
			entry.Icon = ua.Achievement.Icon
		}
		res.Achievements = append(res.Achievements, entry)
	}

	if user.DeliveryPartner != nil {
		res.Partner = &domain.DeliveryPartnerResponse{
			VerificationStatus: user.DeliveryPartner.VerificationStatus,
			VehicleType:        user.DeliveryPartner.VehicleType,
			Availability:       user.DeliveryPartner.Availability,
			Phone:              user.DeliveryPartner.Phone,
			Earnings:           user.DeliveryPartner.Earnings,
		}
	}

	return res
}
