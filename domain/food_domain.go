package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "Available"
	FoodStatusReserved  = "Reserved"
	FoodStatusCollected = "Collected"
)

var (
	MessageSuccessAddFoodItem         = "food item posted successfully"
	MessageSuccessGetFoodItems        = "food items retrieved successfully"
	MessageSuccessGetNearbyItems      = "nearby food items retrieved successfully"
	MessageSuccessGenerateDescription = "description generated successfully"

	MessageFailedAddFoodItem    = "failed to post food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetNearbyItems = "failed to retrieve nearby food items"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	AddFoodItemRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Quantity    string                `json:"quantity" form:"quantity" validate:"required"`
		ExpiresAt   string                `json:"expires_at" form:"expires_at" validate:"required"`
		Latitude    float64               `json:"latitude" form:"latitude" validate:"required"`
		Longitude   float64               `json:"longitude" form:"longitude" validate:"required"`
		Address     string                `json:"address" form:"address" validate:"required"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	FoodItemResponse struct {
		ID          string    `json:"id"`
		PostedBy    string    `json:"posted_by"`
		PosterName  string    `json:"poster_name,omitempty"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Quantity    string    `json:"quantity"`
		ImageURL    string    `json:"image_url,omitempty"`
		Status      string    `json:"status"`
		Latitude    float64   `json:"latitude"`
		Longitude   float64   `json:"longitude"`
		Address     string    `json:"address"`
		Distance    float64   `json:"distance,omitempty"` // in meters, nearby queries only
		PostedAt    time.Time `json:"posted_at"`
		ExpiresAt   time.Time `json:"expires_at"`
	}

	GetNearbyFoodItemsRequest struct {
		Latitude  float64 `json:"latitude" query:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" query:"longitude" validate:"required"`
		Radius    float64 `json:"radius" query:"radius" validate:"required,min=1,max=50"`
	}

	GenerateDescriptionRequest struct {
		Title string `json:"title" validate:"required"`
	}

	GenerateDescriptionResponse struct {
		Description string `json:"description"`
	}
)
