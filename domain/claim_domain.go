package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending        = "Pending"
	ClaimStatusAccepted       = "Accepted"
	ClaimStatusRejected       = "Rejected"
	ClaimStatusOutForDelivery = "OutForDelivery"
	ClaimStatusDelivered      = "Delivered"
	ClaimStatusDeliveryFailed = "DeliveryFailed"

	DeliveryOptionClaimerPickup    = "ClaimerPickup"
	DeliveryOptionDonorDelivery    = "DonorDelivery"
	DeliveryOptionMeetup           = "Meetup"
	DeliveryOptionPlatformDelivery = "PlatformDelivery"

	// PLATFORM_DELIVERY_FEE is the flat fee attached to every platform-delivery claim.
	PLATFORM_DELIVERY_FEE = 5.0
)

var (
	MessageSuccessCreateClaim       = "claim created successfully"
	MessageSuccessUpdateClaimStatus = "claim status updated successfully"
	MessageSuccessGetClaims         = "claims retrieved successfully"

	MessageFailedCreateClaim       = "failed to create claim"
	MessageFailedUpdateClaimStatus = "failed to update claim status"
	MessageFailedGetClaims         = "failed to retrieve claims"

	ErrClaimNotFound           = errors.New("claim not found")
	ErrClaimAlreadyExists      = errors.New("you already have a pending claim on this item")
	ErrClaimOwnItem            = errors.New("cannot claim your own food item")
	ErrFoodItemUnavailable     = errors.New("food item is no longer available")
	ErrInvalidDeliveryOption   = errors.New("invalid delivery option")
	ErrInvalidClaimStatus      = errors.New("invalid claim status")
	ErrInvalidClaimTransition  = errors.New("claim status transition not allowed")
	ErrUnauthorizedClaimAccess = errors.New("unauthorized access to claim")
)

type (
	CreateClaimRequest struct {
		FoodItemID     string `json:"food_item_id" validate:"required,uuid"`
		Reason         string `json:"reason" validate:"required"`
		DeliveryOption string `json:"delivery_option" validate:"required,oneof=ClaimerPickup DonorDelivery Meetup PlatformDelivery"`
	}

	UpdateClaimStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Accepted Rejected OutForDelivery Delivered DeliveryFailed"`
	}

	Claim struct {
		ID                string    `json:"id"`
		FoodItemID        string    `json:"food_item_id"`
		FoodItemTitle     string    `json:"food_item_title,omitempty"`
		ClaimerID         string    `json:"claimer_id"`
		ClaimerName       string    `json:"claimer_name,omitempty"`
		PosterID          string    `json:"poster_id"`
		PosterName        string    `json:"poster_name,omitempty"`
		Status            string    `json:"status"`
		Reason            string    `json:"reason"`
		DeliveryOption    string    `json:"delivery_option"`
		RequestedAt       time.Time `json:"requested_at"`
		DeliveryFee       *float64  `json:"delivery_fee,omitempty"`
		DeliveryPartnerID string    `json:"delivery_partner_id,omitempty"`
	}

	UpdateClaimStatusResponse struct {
		ClaimID        string `json:"claim_id"`
		Status         string `json:"status"`
		ConversationID string `json:"conversation_id,omitempty"`
	}
)
