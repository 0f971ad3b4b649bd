package waste

import (
	"context"
	"foodcycle-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	WasteRepository interface {
		AddWastedFood(ctx context.Context, wastedFood *entities.WastedFood) (bool, error)
		GetWastedFoodByID(ctx context.Context, id uint) (*entities.WastedFood, error)
		// GetWastedFoods lists waste rows for a business, newest first, with
		// the parent food item joined in. status filters the lifecycle field
		// when non-empty.
		GetWastedFoods(ctx context.Context, businessID uint, status string, page, limit int) ([]*entities.WastedFood, int64, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) AddWastedFood(ctx context.Context, wastedFood *entities.WastedFood) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(wastedFood)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *wasteRepository) GetWastedFoodByID(ctx context.Context, id uint) (*entities.WastedFood, error) {
	var wastedFood entities.WastedFood
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("id = ?", id).
		First(&wastedFood).Error; err != nil {
		return nil, err
	}
	return &wastedFood, nil
}

func (r *wasteRepository) GetWastedFoods(ctx context.Context, businessID uint, status string, page, limit int) ([]*entities.WastedFood, int64, error) {
	var wastedFoods []*entities.WastedFood
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).
		Joins("JOIN food_items ON food_items.id = wasted_foods.food_item_id").
		Where("food_items.business_id = ?", businessID)

	if status != "" {
		query = query.Where("wasted_foods.status = ?", status)
	}

	if err := query.Model(&entities.WastedFood{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("FoodItem").
		Offset(offset).Limit(limit).
		Order("wasted_foods.id DESC").
		Find(&wastedFoods).Error; err != nil {
		return nil, 0, err
	}

	return wastedFoods, count, nil
}
