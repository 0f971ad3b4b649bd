package waste

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/pkg/food"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Business{},
		&entities.FoodItem{},
		&entities.WastedFood{},
		&entities.Recipient{},
		&entities.Distribution{},
	)
	require.NoError(t, err)

	return db
}

func seedFoodItem(t *testing.T, db *gorm.DB, initialQuantity float64) *entities.FoodItem {
	t.Helper()

	user := &entities.User{Name: "Owner", Email: "owner@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	business := &entities.Business{UserID: user.ID, Name: "Warung Sehat"}
	require.NoError(t, db.Create(business).Error)

	item := &entities.FoodItem{
		BusinessID:      business.ID,
		Name:            "Rice",
		Unit:            entities.UnitKilogram,
		InitialQuantity: initialQuantity,
		InputDate:       time.Now(),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newService(db *gorm.DB) WasteService {
	return NewWasteService(NewWasteRepository(db), food.NewFoodRepository(db))
}

func TestAddWastedFoodComputesDepletionRatio(t *testing.T) {
	db := setupTestDB(t)
	item := seedFoodItem(t, db, 10.0)
	service := newService(db)
	ctx := context.Background()

	created, err := service.AddWastedFood(ctx, domain.AddWastedFoodRequest{
		FoodItemID:       item.ID,
		LeftoverQuantity: 2.5,
		Unit:             entities.UnitKilogram,
		ExpiryDate:       "2026-12-31",
		Condition:        entities.WasteConditionEdible,
		Form:             entities.WasteFormSolid,
	}, item.BusinessID)
	require.NoError(t, err)

	assert.Equal(t, entities.WasteStatusAvailable, created.Status)
	assert.Equal(t, 0.25, created.DepletionRatio)

	list, count, err := service.GetUndistributedWastedFoods(ctx, item.BusinessID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, list, 1)
	assert.Equal(t, 0.25, list[0].DepletionRatio)
	assert.Equal(t, "Rice", list[0].FoodName)
	assert.Equal(t, 10.0, list[0].InitialQuantity)
}

func TestAddWastedFoodRejectsLeftoverAboveStock(t *testing.T) {
	db := setupTestDB(t)
	item := seedFoodItem(t, db, 10.0)
	service := newService(db)

	_, err := service.AddWastedFood(context.Background(), domain.AddWastedFoodRequest{
		FoodItemID:       item.ID,
		LeftoverQuantity: 12,
		Unit:             entities.UnitKilogram,
		ExpiryDate:       "2026-12-31",
		Condition:        entities.WasteConditionEdible,
		Form:             entities.WasteFormSolid,
	}, item.BusinessID)
	assert.ErrorIs(t, err, domain.ErrLeftoverExceedsStock)
}

func TestUndistributedListExcludesDistributedRows(t *testing.T) {
	db := setupTestDB(t)
	item := seedFoodItem(t, db, 10.0)
	service := newService(db)
	ctx := context.Background()

	available := &entities.WastedFood{
		FoodItemID: item.ID, LeftoverQuantity: 2, Unit: entities.UnitKilogram,
		InputDate: time.Now(), Condition: entities.WasteConditionEdible,
		Form: entities.WasteFormSolid, Status: entities.WasteStatusAvailable,
	}
	distributed := &entities.WastedFood{
		FoodItemID: item.ID, LeftoverQuantity: 3, Unit: entities.UnitKilogram,
		InputDate: time.Now(), Condition: entities.WasteConditionEdible,
		Form: entities.WasteFormSolid, Status: entities.WasteStatusDistributed,
	}
	require.NoError(t, db.Create(available).Error)
	require.NoError(t, db.Create(distributed).Error)

	list, count, err := service.GetUndistributedWastedFoods(ctx, item.BusinessID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, list, 1)
	assert.Equal(t, available.ID, list[0].ID)
	for _, wf := range list {
		assert.NotEqual(t, entities.WasteStatusDistributed, wf.Status)
	}

	all, count, err := service.GetWastedFoods(ctx, item.BusinessID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, all, 2)
}

func TestWastedFoodsOrderedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	item := seedFoodItem(t, db, 10.0)
	service := newService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.AddWastedFood(ctx, domain.AddWastedFoodRequest{
			FoodItemID:       item.ID,
			LeftoverQuantity: float64(i + 1),
			Unit:             entities.UnitKilogram,
			ExpiryDate:       "2026-12-31",
			Condition:        entities.WasteConditionEdible,
			Form:             entities.WasteFormSolid,
		}, item.BusinessID)
		require.NoError(t, err)
	}

	list, _, err := service.GetWastedFoods(ctx, item.BusinessID, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Greater(t, list[0].ID, list[1].ID)
	assert.Greater(t, list[1].ID, list[2].ID)
}

func TestDeletingFoodItemCascadesToWaste(t *testing.T) {
	db := setupTestDB(t)
	item := seedFoodItem(t, db, 10.0)
	service := newService(db)

	_, err := service.AddWastedFood(context.Background(), domain.AddWastedFoodRequest{
		FoodItemID:       item.ID,
		LeftoverQuantity: 2,
		Unit:             entities.UnitKilogram,
		ExpiryDate:       "2026-12-31",
		Condition:        entities.WasteConditionEdible,
		Form:             entities.WasteFormSolid,
	}, item.BusinessID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.FoodItem{}, item.ID).Error)

	var count int64
	require.NoError(t, db.Model(&entities.WastedFood{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDepletionRatio(t *testing.T) {
	assert.Equal(t, 0.25, DepletionRatio(2.5, 10))
	assert.Equal(t, 1.0, DepletionRatio(10, 10))
	assert.Equal(t, 0.0, DepletionRatio(5, 0))
}
