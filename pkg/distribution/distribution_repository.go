package distribution

import (
	"context"
	"foodcycle-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DistributionRepository interface {
		// CreateDistribution inserts the distribution and flips the wasted
		// food row to Distributed in one transaction. Reports whether the
		// insert actually happened (false on primary key conflict).
		CreateDistribution(ctx context.Context, distribution *entities.Distribution) (bool, error)
		GetDistributionByID(ctx context.Context, id uint) (*entities.Distribution, error)
		GetDistributions(ctx context.Context, businessID uint, page, limit int) ([]*entities.Distribution, int64, error)
		UpdateDistributionStatus(ctx context.Context, id uint, status string) error
	}

	distributionRepository struct {
		db *gorm.DB
	}
)

func NewDistributionRepository(db *gorm.DB) DistributionRepository {
	return &distributionRepository{db: db}
}

func (r *distributionRepository) CreateDistribution(ctx context.Context, distribution *entities.Distribution) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(distribution)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		created = true

		return tx.Model(&entities.WastedFood{}).
			Where("id = ?", distribution.WastedFoodID).
			Update("status", entities.WasteStatusDistributed).Error
	})
	return created, err
}

func (r *distributionRepository) GetDistributionByID(ctx context.Context, id uint) (*entities.Distribution, error) {
	var distribution entities.Distribution
	if err := r.db.WithContext(ctx).
		Preload("Recipient").
		Preload("WastedFood").
		Preload("WastedFood.FoodItem").
		Where("id = ?", id).
		First(&distribution).Error; err != nil {
		return nil, err
	}
	return &distribution, nil
}

func (r *distributionRepository) GetDistributions(ctx context.Context, businessID uint, page, limit int) ([]*entities.Distribution, int64, error) {
	var distributions []*entities.Distribution
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).
		Joins("JOIN wasted_foods ON wasted_foods.id = distributions.wasted_food_id").
		Joins("JOIN food_items ON food_items.id = wasted_foods.food_item_id").
		Where("food_items.business_id = ?", businessID)

	if err := query.Model(&entities.Distribution{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Recipient").
		Preload("WastedFood").
		Preload("WastedFood.FoodItem").
		Offset(offset).Limit(limit).
		Order("distributions.id DESC").
		Find(&distributions).Error; err != nil {
		return nil, 0, err
	}

	return distributions, count, nil
}

func (r *distributionRepository) UpdateDistributionStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Distribution{}).
		Where("id = ?", id).
		Update("status", status).Error
}
