package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	VerificationNotSubmitted = "NotSubmitted"
	VerificationPending      = "Pending"
	VerificationVerified     = "Verified"
	VerificationRejected     = "Rejected"

	AvailabilityOnline  = "Online"
	AvailabilityOffline = "Offline"
)

var (
	MessageSuccessGetDeliveryJobs    = "delivery jobs retrieved successfully"
	MessageSuccessAcceptDeliveryJob  = "delivery job accepted successfully"
	MessageSuccessSubmitVerification = "verification documents submitted successfully"
	MessageSuccessReviewVerification = "verification reviewed successfully"
	MessageSuccessSetAvailability    = "availability updated successfully"

	MessageFailedGetDeliveryJobs    = "failed to retrieve delivery jobs"
	MessageFailedAcceptDeliveryJob  = "failed to accept delivery job"
	MessageFailedSubmitVerification = "failed to submit verification documents"
	MessageFailedReviewVerification = "failed to review verification"
	MessageFailedSetAvailability    = "failed to update availability"

	ErrPartnerNotFound          = errors.New("delivery partner not found")
	ErrPartnerNotVerified       = errors.New("delivery partner is not verified")
	ErrDeliveryJobTaken         = errors.New("delivery job already taken by another partner")
	ErrDeliveryJobNotFound      = errors.New("delivery job not found")
	ErrInvalidVerificationState = errors.New("invalid verification status")
	ErrInvalidAvailability      = errors.New("invalid availability state")
)

type (
	DeliveryJob struct {
		ClaimID       string    `json:"claim_id"`
		FoodItemID    string    `json:"food_item_id"`
		FoodItemTitle string    `json:"food_item_title"`
		PickupAddress string    `json:"pickup_address"`
		PosterName    string    `json:"poster_name"`
		ClaimerName   string    `json:"claimer_name"`
		Status        string    `json:"status"`
		DeliveryFee   float64   `json:"delivery_fee"`
		RequestedAt   time.Time `json:"requested_at"`
	}

	PartnerJobsResponse struct {
		Active  []*DeliveryJob `json:"active"`
		History []*DeliveryJob `json:"history"`
	}

	SubmitVerificationRequest struct {
		VehicleType    string                `json:"vehicle_type" form:"vehicle_type" validate:"required"`
		Phone          string                `json:"phone" form:"phone" validate:"required"`
		DriversLicense *multipart.FileHeader `json:"drivers_license" form:"drivers_license" validate:"required"`
		Insurance      *multipart.FileHeader `json:"insurance" form:"insurance" validate:"required"`
	}

	ReviewVerificationRequest struct {
		Status string `json:"status" validate:"required,oneof=Verified Rejected"`
	}

	SetAvailabilityRequest struct {
		Availability string `json:"availability" validate:"required,oneof=Online Offline"`
	}
)
