package food

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/internal/utils/storage"

	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, businessID uint) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, businessID uint, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id uint, businessID uint) (domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, businessID uint) (string, error)
		GetDashboardStats(ctx context.Context, businessID uint) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, businessID uint) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.InitialQuantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	foodItem := &entities.FoodItem{
		BusinessID:      businessID,
		Name:            req.Name,
		Category:        req.Category,
		Unit:            req.Unit,
		InitialQuantity: req.InitialQuantity,
		ExpiryDate:      expiryDate,
		InputDate:       time.Now(),
	}

	created, err := s.foodRepository.AddFoodItem(ctx, foodItem)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	if !created {
		return domain.FoodItemResponse{}, domain.ErrFoodItemConflict
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, businessID uint, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, businessID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id uint, businessID uint) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.BusinessID != businessID {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, businessID uint) (string, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFoodItemNotFound
		}
		return "", err
	}

	if foodItem.BusinessID != businessID {
		return "", domain.ErrFoodItemNotFound
	}

	fileName := fmt.Sprintf("food-item-%d", foodItem.ID)
	var objectKey string

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return "", err
	}

	return foodItem.ImageURL, nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, businessID uint) (domain.DashboardStatsResponse, error) {
	stats, err := s.foodRepository.GetDashboardStats(ctx, businessID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalFoodItems:   stats["total_food_items"],
		TotalWastedFood:  stats["total_wasted_food"],
		AvailableWaste:   stats["available_waste"],
		DistributedWaste: stats["distributed_waste"],
	}, nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Unit:            item.Unit,
		InitialQuantity: item.InitialQuantity,
		ExpiryDate:      item.ExpiryDate,
		InputDate:       item.InputDate,
		ImageURL:        item.ImageURL,
	}
}
