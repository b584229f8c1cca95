package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessSendVerifyEmail = "verification email sent successfully"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessToggleFollow    = "follow state updated successfully"
	MessageSuccessGetUsers        = "users retrieved successfully"
	MessageSuccessUpdateUserRole  = "user role updated successfully"
	MessageSuccessRemoveUser      = "user removed successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedGetProfile      = "failed to retrieve profile"
	MessageFailedToggleFollow    = "failed to update follow state"
	MessageFailedGetUsers        = "failed to retrieve users"
	MessageFailedUpdateUserRole  = "failed to update user role"
	MessageFailedRemoveUser      = "failed to remove user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrFollowSelf         = errors.New("cannot follow yourself")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name        string                `json:"name" form:"name" validate:"omitempty"`
		Bio         string                `json:"bio" form:"bio" validate:"omitempty"`
		Latitude    *float64              `json:"latitude" form:"latitude" validate:"omitempty"`
		Longitude   *float64              `json:"longitude" form:"longitude" validate:"omitempty"`
		SocialLinks map[string]string     `json:"social_links" validate:"omitempty"`
		Avatar      *multipart.FileHeader `json:"avatar" form:"avatar"`
	}

	UpdateUserRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=Admin VerifiedMember Applicant DeliveryPartner"`
	}

	UserResponse struct {
		ID             string                   `json:"id"`
		Name           string                   `json:"name"`
		Email          string                   `json:"email"`
		AvatarURL      string                   `json:"avatar_url,omitempty"`
		Role           string                   `json:"role"`
		Rating         float64                  `json:"rating"`
		Bio            string                   `json:"bio,omitempty"`
		Latitude       float64                  `json:"latitude"`
		Longitude      float64                  `json:"longitude"`
		SocialLinks    map[string]string        `json:"social_links,omitempty"`
		IsVerified     bool                     `json:"is_verified"`
		FollowerCount  int64                    `json:"follower_count"`
		FollowingCount int64                    `json:"following_count"`
		Achievements   []*UserAchievement       `json:"achievements,omitempty"`
		Partner        *DeliveryPartnerResponse `json:"delivery_partner,omitempty"`
		CreatedAt      time.Time                `json:"created_at"`
	}

	DeliveryPartnerResponse struct {
		VerificationStatus string  `json:"verification_status"`
		VehicleType        string  `json:"vehicle_type"`
		Availability       string  `json:"availability"`
		Phone              string  `json:"phone"`
		Earnings           float64 `json:"earnings"`
	}

	ToggleFollowResponse struct {
		Following bool `json:"following"`
	}
)
