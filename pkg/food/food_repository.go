package food

import (
	"context"
	"foodcycle-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FoodRepository interface {
		// AddFoodItem inserts the row with ignore-on-conflict semantics and
		// reports whether a row was actually written.
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) (bool, error)
		GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, businessID uint, page, limit int) ([]*entities.FoodItem, int64, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetDashboardStats(ctx context.Context, businessID uint) (map[string]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(foodItem)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, businessID uint, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("business_id = ?", businessID)

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) GetDashboardStats(ctx context.Context, businessID uint) (map[string]int64, error) {
	var totalFood, totalWaste, available, distributed int64

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("business_id = ?", businessID).
		Count(&totalFood).Error; err != nil {
		return nil, err
	}

	wasteScope := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&entities.WastedFood{}).
			Joins("JOIN food_items ON food_items.id = wasted_foods.food_item_id").
			Where("food_items.business_id = ?", businessID)
	}

	if err := wasteScope().Count(&totalWaste).Error; err != nil {
		return nil, err
	}

	if err := wasteScope().Where("wasted_foods.status = ?", entities.WasteStatusAvailable).
		Count(&available).Error; err != nil {
		return nil, err
	}

	if err := wasteScope().Where("wasted_foods.status = ?", entities.WasteStatusDistributed).
		Count(&distributed).Error; err != nil {
		return nil, err
	}

	return map[string]int64{
		"total_food_items":  totalFood,
		"total_wasted_food": totalWaste,
		"available_waste":   available,
		"distributed_waste": distributed,
	}, nil
}
