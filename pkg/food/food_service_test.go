package food

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"

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
	)
	require.NoError(t, err)

	return db
}

func seedBusiness(t *testing.T, db *gorm.DB) *entities.Business {
	t.Helper()

	user := &entities.User{Name: "Owner", Email: "owner@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	business := &entities.Business{UserID: user.ID, Name: "Warung Sehat", Address: "Bandung"}
	require.NoError(t, db.Create(business).Error)

	return business
}

func TestAddFoodItemThenLookupReturnsSameRecord(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	service := NewFoodService(NewFoodRepository(db), nil)
	ctx := context.Background()

	req := domain.AddFoodItemRequest{
		Name:            "Rice",
		Category:        "Staple",
		Unit:            entities.UnitKilogram,
		InitialQuantity: 20,
		ExpiryDate:      "2026-12-31",
	}

	created, err := service.AddFoodItem(ctx, req, business.ID)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := service.GetFoodItemByID(ctx, created.ID, business.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rice", got.Name)
	assert.Equal(t, "Staple", got.Category)
	assert.Equal(t, entities.UnitKilogram, got.Unit)
	assert.Equal(t, 20.0, got.InitialQuantity)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), got.ExpiryDate.UTC())
}

func TestAddFoodItemRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	service := NewFoodService(NewFoodRepository(db), nil)
	ctx := context.Background()

	_, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Rice", Unit: entities.UnitKilogram, InitialQuantity: 20, ExpiryDate: "31-12-2026",
	}, business.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Rice", Unit: entities.UnitKilogram, InitialQuantity: -1, ExpiryDate: "2026-12-31",
	}, business.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDuplicatePrimaryKeyInsertIsIgnored(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	first := &entities.FoodItem{
		ID: 42, BusinessID: business.ID, Name: "Milk",
		Unit: entities.UnitLiter, InitialQuantity: 5, InputDate: time.Now(),
	}
	created, err := repo.AddFoodItem(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &entities.FoodItem{
		ID: 42, BusinessID: business.ID, Name: "Other Milk",
		Unit: entities.UnitLiter, InitialQuantity: 9, InputDate: time.Now(),
	}
	created, err = repo.AddFoodItem(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&entities.FoodItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetFoodItemByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Milk", stored.Name)
}

func TestGetFoodItemsOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	service := NewFoodService(NewFoodRepository(db), nil)
	ctx := context.Background()

	for _, name := range []string{"Rice", "Milk", "Eggs"} {
		_, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
			Name: name, Unit: entities.UnitKilogram, InitialQuantity: 1, ExpiryDate: "2026-12-31",
		}, business.ID)
		require.NoError(t, err)
	}

	items, count, err := service.GetFoodItems(ctx, business.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, items, 3)
	assert.Equal(t, "Eggs", items[0].Name)
	assert.Equal(t, "Milk", items[1].Name)
	assert.Equal(t, "Rice", items[2].Name)
	assert.Greater(t, items[0].ID, items[1].ID)
	assert.Greater(t, items[1].ID, items[2].ID)
}

func TestGetFoodItemsPaginates(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	service := NewFoodService(NewFoodRepository(db), nil)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
			Name: fmt.Sprintf("Item %d", i), Unit: entities.UnitPiece, InitialQuantity: 1, ExpiryDate: "2026-12-31",
		}, business.ID)
		require.NoError(t, err)
	}

	page1, count, err := service.GetFoodItems(ctx, business.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.Len(t, page1, 10)

	page2, _, err := service.GetFoodItems(ctx, business.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestGetFoodItemScopedToBusiness(t *testing.T) {
	db := setupTestDB(t)
	business := seedBusiness(t, db)
	service := NewFoodService(NewFoodRepository(db), nil)
	ctx := context.Background()

	created, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Rice", Unit: entities.UnitKilogram, InitialQuantity: 20, ExpiryDate: "2026-12-31",
	}, business.ID)
	require.NoError(t, err)

	_, err = service.GetFoodItemByID(ctx, created.ID, business.ID+1)
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}
