package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/pkg/notification"
	"foodcycle-backend/pkg/recipient"
	"foodcycle-backend/pkg/waste"

	"gorm.io/gorm"
)

type (
	DistributionService interface {
		CreateDistribution(ctx context.Context, req domain.CreateDistributionRequest, businessID uint) (domain.DistributionResponse, error)
		GetDistributions(ctx context.Context, businessID uint, page, limit int) ([]domain.DistributionResponse, int64, error)
		UpdateDistributionStatus(ctx context.Context, id uint, req domain.UpdateDistributionStatusRequest, businessID uint) error
	}

	distributionService struct {
		distributionRepository DistributionRepository
		wasteRepository        waste.WasteRepository
		recipientRepository    recipient.RecipientRepository
		notificationRepository notification.NotificationRepository
	}
)

func NewDistributionService(
	distributionRepository DistributionRepository,
	wasteRepository waste.WasteRepository,
	recipientRepository recipient.RecipientRepository,
	notificationRepository notification.NotificationRepository,
) DistributionService {
	return &distributionService{
		distributionRepository: distributionRepository,
		wasteRepository:        wasteRepository,
		recipientRepository:    recipientRepository,
		notificationRepository: notificationRepository,
	}
}

func (s *distributionService) CreateDistribution(ctx context.Context, req domain.CreateDistributionRequest, businessID uint) (domain.DistributionResponse, error) {
	wastedFood, err := s.wasteRepository.GetWastedFoodByID(ctx, req.WastedFoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DistributionResponse{}, domain.ErrWastedFoodNotFound
		}
		return domain.DistributionResponse{}, err
	}

	if wastedFood.FoodItem == nil || wastedFood.FoodItem.BusinessID != businessID {
		return domain.DistributionResponse{}, domain.ErrWastedFoodNotFound
	}

	if wastedFood.Status != entities.WasteStatusAvailable {
		return domain.DistributionResponse{}, domain.ErrWastedFoodAlreadyHandled
	}

	rec, err := s.recipientRepository.GetRecipientByID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DistributionResponse{}, domain.ErrRecipientNotFound
		}
		return domain.DistributionResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.DistributionResponse{}, domain.ErrInvalidDistributionDate
	}

	distribution := &entities.Distribution{
		WastedFoodID: req.WastedFoodID,
		RecipientID:  req.RecipientID,
		Date:         date,
		Notes:        req.Notes,
		Status:       entities.DistributionStatusPacking,
	}

	created, err := s.distributionRepository.CreateDistribution(ctx, distribution)
	if err != nil {
		return domain.DistributionResponse{}, err
	}
	if !created {
		return domain.DistributionResponse{}, domain.ErrWastedFoodAlreadyHandled
	}

	// The in-progress record already reflects the flip done in the
	// repository transaction.
	wastedFood.Status = entities.WasteStatusDistributed
	distribution.WastedFood = wastedFood
	distribution.Recipient = rec

	subject := "Distribution created"
	message := fmt.Sprintf("%s (%.2f %s) is being packed for %s.",
		wastedFood.FoodItem.Name, wastedFood.LeftoverQuantity, wastedFood.Unit, rec.Name)
	if _, err := s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		Subject: subject,
		Message: message,
	}); err != nil {
		// Notification loss is tolerable, the distribution itself is committed.
		fmt.Printf("failed to record distribution notification: %v\n", err)
	}

	return toDistributionResponse(distribution), nil
}

func (s *distributionService) GetDistributions(ctx context.Context, businessID uint, page, limit int) ([]domain.DistributionResponse, int64, error) {
	distributions, count, err := s.distributionRepository.GetDistributions(ctx, businessID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.DistributionResponse, 0, len(distributions))
	for _, d := range distributions {
		response = append(response, toDistributionResponse(d))
	}

	return response, count, nil
}

func (s *distributionService) UpdateDistributionStatus(ctx context.Context, id uint, req domain.UpdateDistributionStatusRequest, businessID uint) error {
	distribution, err := s.distributionRepository.GetDistributionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDistributionNotFound
		}
		return err
	}

	if distribution.WastedFood == nil ||
		distribution.WastedFood.FoodItem == nil ||
		distribution.WastedFood.FoodItem.BusinessID != businessID {
		return domain.ErrDistributionNotFound
	}

	return s.distributionRepository.UpdateDistributionStatus(ctx, id, req.Status)
}

func toDistributionResponse(d *entities.Distribution) domain.DistributionResponse {
	res := domain.DistributionResponse{
		ID:           d.ID,
		Date:         d.Date,
		Notes:        d.Notes,
		Status:       d.Status,
		RecipientID:  d.RecipientID,
		WastedFoodID: d.WastedFoodID,
	}

	if d.Recipient != nil {
		res.RecipientName = d.Recipient.Name
		res.RecipientType = d.Recipient.Type
	}

	if d.WastedFood != nil {
		res.LeftoverQuantity = d.WastedFood.LeftoverQuantity
		res.Unit = d.WastedFood.Unit
		if d.WastedFood.FoodItem != nil {
			res.FoodName = d.WastedFood.FoodItem.Name
			res.DepletionRatio = waste.DepletionRatio(
				d.WastedFood.LeftoverQuantity,
				d.WastedFood.FoodItem.InitialQuantity,
			)
		}
	}

	return res
}
