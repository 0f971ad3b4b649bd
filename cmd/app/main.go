package main

import (
	"log"

	"foodcycle-backend/cmd/config"
	migration "foodcycle-backend/cmd/database/migrate"
	"foodcycle-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migration.Migrate(db, utils.AllowDestructiveReset()); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
