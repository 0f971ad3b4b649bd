package migration

import (
	"fmt"
	"path/filepath"
	"testing"

	"foodcycle-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrateCreatesSchemaAndSeedsRecipients(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, false))

	for _, table := range []string{
		"users", "businesses", "food_items", "wasted_foods",
		"recipients", "distributions", "notifications", "schema_versions",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	var version SchemaVersionRecord
	require.NoError(t, db.Order("id DESC").First(&version).Error)
	assert.Equal(t, SchemaVersion, version.Version)

	var recipients []entities.Recipient
	require.NoError(t, db.Find(&recipients).Error)
	assert.Len(t, recipients, 8)
	for _, rec := range recipients {
		assert.NotEmpty(t, rec.Name)
		assert.Contains(t, []string{entities.RecipientTypeSocial, entities.RecipientTypeLivestockCompost}, rec.Type)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, false))
	require.NoError(t, Migrate(db, false))

	var recipientCount, versionCount int64
	require.NoError(t, db.Model(&entities.Recipient{}).Count(&recipientCount).Error)
	require.NoError(t, db.Model(&SchemaVersionRecord{}).Count(&versionCount).Error)
	assert.Equal(t, int64(8), recipientCount)
	assert.Equal(t, int64(1), versionCount)
}

func TestMigratePreservesExistingRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db, false))

	user := &entities.User{Name: "Owner", Email: "owner@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, Migrate(db, false))

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateVersionMismatch(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db, false))

	user := &entities.User{Name: "Owner", Email: "owner@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, db.Model(&SchemaVersionRecord{}).
		Where("version = ?", SchemaVersion).
		Update("version", SchemaVersion+1).Error)

	err := Migrate(db, false)
	assert.ErrorIs(t, err, ErrSchemaVersionMismatch)

	// The flag authorizes the rebuild, which wipes existing data and reseeds.
	require.NoError(t, Migrate(db, true))

	var users int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	assert.Equal(t, int64(0), users)

	var version SchemaVersionRecord
	require.NoError(t, db.Order("id DESC").First(&version).Error)
	assert.Equal(t, SchemaVersion, version.Version)

	var recipients int64
	require.NoError(t, db.Model(&entities.Recipient{}).Count(&recipients).Error)
	assert.Equal(t, int64(8), recipients)
}
