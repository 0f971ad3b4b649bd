package config

import (
	"fmt"
	"strings"

	"foodcycle-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the datastore. The embedded sqlite file is the default;
// postgres is available for deployments that outgrow a single file.
func ConnectDB() (*gorm.DB, error) {
	driver := strings.ToLower(utils.GetConfig("DB_DRIVER"))

	switch driver {
	case "sqlite", "":
		// Foreign keys are off by default in sqlite; the cascade rules in
		// the schema depend on them.
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on", utils.GetConfig("DB_PATH"))
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})

	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})

	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: sqlite, postgres)", driver)
	}
}
