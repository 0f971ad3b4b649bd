package recipient

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

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

	require.NoError(t, db.AutoMigrate(&entities.Recipient{}))
	return db
}

func seedRecipients(t *testing.T, db *gorm.DB) {
	t.Helper()

	recipients := []entities.Recipient{
		{Name: "Panti Asuhan Kasih", Type: entities.RecipientTypeSocial, Score: 4.5},
		{Name: "Dapur Umum Berkah", Type: entities.RecipientTypeSocial, Score: 4.2},
		{Name: "Peternakan Maggot Jaya", Type: entities.RecipientTypeLivestockCompost, Score: 4.8},
	}
	require.NoError(t, db.Create(&recipients).Error)
}

func TestGetRecipientsFiltersByType(t *testing.T) {
	db := setupTestDB(t)
	seedRecipients(t, db)
	service := NewRecipientService(NewRecipientRepository(db))
	ctx := context.Background()

	all, count, err := service.GetRecipients(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, all, 3)

	social, count, err := service.GetRecipients(ctx, entities.RecipientTypeSocial, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	for _, r := range social {
		assert.Equal(t, entities.RecipientTypeSocial, r.Type)
	}

	compost, count, err := service.GetRecipients(ctx, entities.RecipientTypeLivestockCompost, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, compost, 1)
	assert.Equal(t, "Peternakan Maggot Jaya", compost[0].Name)
}

func TestCreateRecipientReportsDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repository := NewRecipientRepository(db)
	ctx := context.Background()

	created, err := repository.CreateRecipient(ctx, &entities.Recipient{
		ID: 1, Name: "Panti Asuhan Kasih", Type: entities.RecipientTypeSocial,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repository.CreateRecipient(ctx, &entities.Recipient{
		ID: 1, Name: "Duplicate", Type: entities.RecipientTypeSocial,
	})
	require.NoError(t, err)
	assert.False(t, created)

	var stored entities.Recipient
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "Panti Asuhan Kasih", stored.Name)
}
