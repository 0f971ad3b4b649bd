package migration

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"foodcycle-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchemaVersion is bumped whenever the table layout changes incompatibly.
const SchemaVersion = 1

var ErrSchemaVersionMismatch = errors.New("schema version mismatch")

type SchemaVersionRecord struct {
	ID        uint `gorm:"primaryKey"`
	Version   int  `gorm:"not null"`
	AppliedAt time.Time
}

func (SchemaVersionRecord) TableName() string {
	return "schema_versions"
}

//go:embed recipients.json
var recipientSeed []byte

// Migrate brings the store to the current schema version and seeds the
// recipient table on first creation. A version mismatch is only resolved by
// a rebuild when allowDestructiveReset is set; the rebuild drops every table
// and is logged loudly because it loses all data.
func Migrate(db *gorm.DB, allowDestructiveReset bool) error {
	if err := db.AutoMigrate(&SchemaVersionRecord{}); err != nil {
		return err
	}

	var current SchemaVersionRecord
	err := db.Order("id DESC").First(&current).Error
	fresh := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !fresh {
		return err
	}

	if !fresh && current.Version != SchemaVersion {
		if !allowDestructiveReset {
			return fmt.Errorf("%w: store has version %d, this build expects %d (set ALLOW_DESTRUCTIVE_RESET to rebuild, losing all data)",
				ErrSchemaVersionMismatch, current.Version, SchemaVersion)
		}
		log.Printf("WARNING: schema version %d != %d, rebuilding store destructively", current.Version, SchemaVersion)
		if err := dropAllTables(db); err != nil {
			return err
		}
		if err := db.AutoMigrate(&SchemaVersionRecord{}); err != nil {
			return err
		}
		fresh = true
	}

	// Parents before children so the FK constraints resolve.
	models := []any{
		&entities.User{},
		&entities.Business{},
		&entities.FoodItem{},
		&entities.WastedFood{},
		&entities.Recipient{},
		&entities.Distribution{},
		&entities.Notification{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	if fresh {
		if err := db.Create(&SchemaVersionRecord{Version: SchemaVersion, AppliedAt: time.Now()}).Error; err != nil {
			return err
		}
	}

	return SeedRecipients(db)
}

// SeedRecipients loads the bundled recipient reference data once, when the
// table is still empty.
func SeedRecipients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Recipient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var recipients []entities.Recipient
	if err := json.Unmarshal(recipientSeed, &recipients); err != nil {
		return fmt.Errorf("parsing recipient seed: %w", err)
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&recipients).Error; err != nil {
		return err
	}

	log.Printf("seeded %d recipients", len(recipients))
	return nil
}

func dropAllTables(db *gorm.DB) error {
	// Children before parents.
	tables := []any{
		&entities.Distribution{},
		&entities.Notification{},
		&entities.WastedFood{},
		&entities.Recipient{},
		&entities.FoodItem{},
		&entities.Business{},
		&entities.User{},
		&SchemaVersionRecord{},
	}
	return db.Migrator().DropTable(tables...)
}
