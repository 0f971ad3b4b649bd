package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddWastedFood  = "wasted food recorded successfully"
	MessageSuccessGetWastedFoods = "wasted food records retrieved successfully"

	MessageFailedAddWastedFood  = "failed to record wasted food"
	MessageFailedGetWastedFoods = "failed to retrieve wasted food records"

	ErrWastedFoodNotFound    = errors.New("wasted food record not found")
	ErrWastedFoodConflict    = errors.New("wasted food record already exists")
	ErrLeftoverExceedsStock  = errors.New("leftover quantity exceeds initial stock")
	ErrInvalidWasteCondition = errors.New("invalid waste condition")
)

type (
	AddWastedFoodRequest struct {
		FoodItemID       uint    `json:"food_item_id" validate:"required"`
		LeftoverQuantity float64 `json:"leftover_quantity" validate:"required,gt=0"`
		Unit             string  `json:"unit" validate:"required,oneof=Kilogram Liter Pack Portion Piece"`
		ExpiryDate       string  `json:"expiry_date" validate:"required"`
		Condition        string  `json:"condition" validate:"required,oneof=Edible AnimalFeedCompost Disposed"`
		Form             string  `json:"form" validate:"required,oneof=Solid Liquid"`
	}

	// WastedFoodResponse carries the flattened waste row together with its
	// parent food item fields and the read-time depletion ratio.
	WastedFoodResponse struct {
		ID               uint      `json:"id"`
		FoodItemID       uint      `json:"food_item_id"`
		FoodName         string    `json:"food_name"`
		LeftoverQuantity float64   `json:"leftover_quantity"`
		InitialQuantity  float64   `json:"initial_quantity"`
		Unit             string    `json:"unit"`
		ExpiryDate       time.Time `json:"expiry_date"`
		InputDate        time.Time `json:"input_date"`
		Condition        string    `json:"condition"`
		Form             string    `json:"form"`
		Status           string    `json:"status"`
		DepletionRatio   float64   `json:"depletion_ratio"`
	}
)
