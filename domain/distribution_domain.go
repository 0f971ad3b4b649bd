package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDistribution       = "distribution created successfully"
	MessageSuccessGetDistributions         = "distributions retrieved successfully"
	MessageSuccessUpdateDistributionStatus = "distribution status updated successfully"

	MessageFailedCreateDistribution       = "failed to create distribution"
	MessageFailedGetDistributions         = "failed to retrieve distributions"
	MessageFailedUpdateDistributionStatus = "failed to update distribution status"

	ErrDistributionNotFound      = errors.New("distribution not found")
	ErrRecipientNotFound         = errors.New("recipient not found")
	ErrWastedFoodAlreadyHandled  = errors.New("wasted food already distributed")
	ErrInvalidDistributionStatus = errors.New("invalid distribution status")
	ErrInvalidDistributionDate   = errors.New("invalid distribution date")
)

type (
	CreateDistributionRequest struct {
		WastedFoodID uint   `json:"wasted_food_id" validate:"required"`
		RecipientID  uint   `json:"recipient_id" validate:"required"`
		Date         string `json:"date" validate:"required"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	UpdateDistributionStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Packing EnRoute Received"`
	}

	// DistributionResponse flattens the distribution row joined with its
	// recipient and the wasted food plus originating food item.
	DistributionResponse struct {
		ID               uint      `json:"id"`
		Date             time.Time `json:"date"`
		Notes            string    `json:"notes,omitempty"`
		Status           string    `json:"status"`
		RecipientID      uint      `json:"recipient_id"`
		RecipientName    string    `json:"recipient_name"`
		RecipientType    string    `json:"recipient_type"`
		WastedFoodID     uint      `json:"wasted_food_id"`
		FoodName         string    `json:"food_name"`
		LeftoverQuantity float64   `json:"leftover_quantity"`
		Unit             string    `json:"unit"`
		DepletionRatio   float64   `json:"depletion_ratio"`
	}
)
