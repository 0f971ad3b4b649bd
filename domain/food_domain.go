package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessUploadFoodImage   = "food image uploaded successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrFoodItemConflict  = errors.New("food item already exists")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type (
	AddFoodItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Category        string  `json:"category" validate:"omitempty"`
		Unit            string  `json:"unit" validate:"required,oneof=Kilogram Liter Pack Portion Piece"`
		InitialQuantity float64 `json:"initial_quantity" validate:"required,gt=0"`
		ExpiryDate      string  `json:"expiry_date" validate:"required"`
	}

	FoodItemResponse struct {
		ID              uint      `json:"id"`
		Name            string    `json:"name"`
		Category        string    `json:"category,omitempty"`
		Unit            string    `json:"unit"`
		InitialQuantity float64   `json:"initial_quantity"`
		ExpiryDate      time.Time `json:"expiry_date"`
		InputDate       time.Time `json:"input_date"`
		ImageURL        string    `json:"image_url,omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodItemID uint                  `json:"food_item_id" form:"food_item_id" validate:"required"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DashboardStatsResponse struct {
		TotalFoodItems   int64 `json:"total_food_items"`
		TotalWastedFood  int64 `json:"total_wasted_food"`
		AvailableWaste   int64 `json:"available_waste"`
		DistributedWaste int64 `json:"distributed_waste"`
	}
)
