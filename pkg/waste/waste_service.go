package waste

import (
	"context"
	"errors"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/pkg/food"

	"gorm.io/gorm"
)

type (
	WasteService interface {
		AddWastedFood(ctx context.Context, req domain.AddWastedFoodRequest, businessID uint) (domain.WastedFoodResponse, error)
		GetWastedFoods(ctx context.Context, businessID uint, page, limit int) ([]domain.WastedFoodResponse, int64, error)
		GetUndistributedWastedFoods(ctx context.Context, businessID uint, page, limit int) ([]domain.WastedFoodResponse, int64, error)
		GetWastedFoodByID(ctx context.Context, id uint, businessID uint) (domain.WastedFoodResponse, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
		foodRepository  food.FoodRepository
	}
)

func NewWasteService(wasteRepository WasteRepository, foodRepository food.FoodRepository) WasteService {
	return &wasteService{
		wasteRepository: wasteRepository,
		foodRepository:  foodRepository,
	}
}

func (s *wasteService) AddWastedFood(ctx context.Context, req domain.AddWastedFoodRequest, businessID uint) (domain.WastedFoodResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WastedFoodResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.WastedFoodResponse{}, err
	}

	if foodItem.BusinessID != businessID {
		return domain.WastedFoodResponse{}, domain.ErrFoodItemNotFound
	}

	if req.LeftoverQuantity > foodItem.InitialQuantity {
		return domain.WastedFoodResponse{}, domain.ErrLeftoverExceedsStock
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.WastedFoodResponse{}, domain.ErrInvalidExpiryDate
	}

	wastedFood := &entities.WastedFood{
		FoodItemID:       req.FoodItemID,
		LeftoverQuantity: req.LeftoverQuantity,
		Unit:             req.Unit,
		ExpiryDate:       expiryDate,
		InputDate:        time.Now(),
		Condition:        req.Condition,
		Form:             req.Form,
		Status:           entities.WasteStatusAvailable,
	}

	created, err := s.wasteRepository.AddWastedFood(ctx, wastedFood)
	if err != nil {
		return domain.WastedFoodResponse{}, err
	}
	if !created {
		return domain.WastedFoodResponse{}, domain.ErrWastedFoodConflict
	}

	wastedFood.FoodItem = foodItem
	return toWastedFoodResponse(wastedFood), nil
}

func (s *wasteService) GetWastedFoods(ctx context.Context, businessID uint, page, limit int) ([]domain.WastedFoodResponse, int64, error) {
	return s.listWastedFoods(ctx, businessID, "", page, limit)
}

func (s *wasteService) GetUndistributedWastedFoods(ctx context.Context, businessID uint, page, limit int) ([]domain.WastedFoodResponse, int64, error) {
	return s.listWastedFoods(ctx, businessID, entities.WasteStatusAvailable, page, limit)
}

func (s *wasteService) GetWastedFoodByID(ctx context.Context, id uint, businessID uint) (domain.WastedFoodResponse, error) {
	wastedFood, err := s.wasteRepository.GetWastedFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WastedFoodResponse{}, domain.ErrWastedFoodNotFound
		}
		return domain.WastedFoodResponse{}, err
	}

	if wastedFood.FoodItem == nil || wastedFood.FoodItem.BusinessID != businessID {
		return domain.WastedFoodResponse{}, domain.ErrWastedFoodNotFound
	}

	return toWastedFoodResponse(wastedFood), nil
}

func (s *wasteService) listWastedFoods(ctx context.Context, businessID uint, status string, page, limit int) ([]domain.WastedFoodResponse, int64, error) {
	wastedFoods, count, err := s.wasteRepository.GetWastedFoods(ctx, businessID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.WastedFoodResponse, 0, len(wastedFoods))
	for _, wf := range wastedFoods {
		response = append(response, toWastedFoodResponse(wf))
	}

	return response, count, nil
}

// DepletionRatio relates the leftover amount to the originating stock.
// A parent with zero initial quantity yields 0 rather than a division error.
func DepletionRatio(leftover, initial float64) float64 {
	if initial <= 0 {
		return 0
	}
	return leftover / initial
}

func toWastedFoodResponse(wf *entities.WastedFood) domain.WastedFoodResponse {
	res := domain.WastedFoodResponse{
		ID:               wf.ID,
		FoodItemID:       wf.FoodItemID,
		LeftoverQuantity: wf.LeftoverQuantity,
		Unit:             wf.Unit,
		ExpiryDate:       wf.ExpiryDate,
		InputDate:        wf.InputDate,
		Condition:        wf.Condition,
		Form:             wf.Form,
		Status:           wf.Status,
	}

	if wf.FoodItem != nil {
		res.FoodName = wf.FoodItem.Name
		res.InitialQuantity = wf.FoodItem.InitialQuantity
		res.DepletionRatio = DepletionRatio(wf.LeftoverQuantity, wf.FoodItem.InitialQuantity)
	}

	return res
}
